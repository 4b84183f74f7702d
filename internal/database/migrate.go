package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/jhasmany-fernandez/portfolio-backend/internal/utils"
)

// schema lists the CREATE TABLE statements run at startup.  Statements
// are idempotent so repeated starts are safe.  Author columns cascade
// on user deletion at the database level; no business rule depends on
// the relation beyond that.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		email VARCHAR(255) NOT NULL UNIQUE,
		name VARCHAR(255) NOT NULL DEFAULT '',
		password_hash VARCHAR(255) NOT NULL,
		role VARCHAR(32) NOT NULL DEFAULT 'user',
		is_active TINYINT(1) NOT NULL DEFAULT 1,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS home_sections (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		greeting VARCHAR(255) NOT NULL,
		roles TEXT NOT NULL,
		description TEXT NOT NULL,
		image_url VARCHAR(512) NOT NULL DEFAULT '',
		is_active TINYINT(1) NOT NULL DEFAULT 1,
		author_id BIGINT UNSIGNED NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		CONSTRAINT fk_home_sections_author FOREIGN KEY (author_id) REFERENCES users(id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS skills (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		icon VARCHAR(255) NOT NULL DEFAULT '',
		image_url VARCHAR(512) NOT NULL DEFAULT '',
		sort_order INT NOT NULL DEFAULT 0,
		is_published TINYINT(1) NOT NULL DEFAULT 1,
		author_id BIGINT UNSIGNED NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		CONSTRAINT fk_skills_author FOREIGN KEY (author_id) REFERENCES users(id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS services (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		short_description TEXT NOT NULL,
		icon VARCHAR(255) NOT NULL DEFAULT '',
		image_url VARCHAR(512) NOT NULL DEFAULT '',
		technologies TEXT NOT NULL,
		experience_level VARCHAR(64) NOT NULL DEFAULT '',
		demo_url VARCHAR(512) NOT NULL DEFAULT '',
		github_url VARCHAR(512) NOT NULL DEFAULT '',
		clients_served VARCHAR(64) NOT NULL DEFAULT '',
		projects_completed VARCHAR(64) NOT NULL DEFAULT '',
		ratings VARCHAR(64) NOT NULL DEFAULT '',
		show_demo TINYINT(1) NOT NULL DEFAULT 1,
		show_github TINYINT(1) NOT NULL DEFAULT 1,
		show_clients_served TINYINT(1) NOT NULL DEFAULT 1,
		show_projects_completed TINYINT(1) NOT NULL DEFAULT 1,
		show_ratings TINYINT(1) NOT NULL DEFAULT 1,
		sort_order INT NOT NULL DEFAULT 0,
		is_published TINYINT(1) NOT NULL DEFAULT 1,
		author_id BIGINT UNSIGNED NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		CONSTRAINT fk_services_author FOREIGN KEY (author_id) REFERENCES users(id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS testimonials (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		title VARCHAR(255) NOT NULL DEFAULT '',
		feedback TEXT NOT NULL,
		image VARCHAR(512) NOT NULL DEFAULT '',
		stars INT NOT NULL DEFAULT 5,
		is_published TINYINT(1) NOT NULL DEFAULT 1,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS footer (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		company_name VARCHAR(255) NOT NULL,
		description TEXT NOT NULL,
		email VARCHAR(255) NOT NULL,
		phone VARCHAR(64) NOT NULL,
		location_line1 VARCHAR(255) NOT NULL,
		location_line2 VARCHAR(255) NOT NULL,
		is_active TINYINT(1) NOT NULL DEFAULT 1,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS services_section (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		subtitle TEXT NOT NULL,
		is_active TINYINT(1) NOT NULL DEFAULT 1,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS testimonials_section (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		subtitle TEXT NOT NULL,
		is_active TINYINT(1) NOT NULL DEFAULT 1,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// Migrate creates the schema if missing and seeds the admin account
// that unauthenticated creates fall back to as author.
func Migrate(ctx context.Context, db *sql.DB, adminEmail, adminName, adminPassword string, bcryptCost int) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return seedAdmin(ctx, db, adminEmail, adminName, adminPassword, bcryptCost)
}

// seedAdmin inserts the default admin user when the users table is
// empty.  Content rows created without an authenticated principal
// reference this account.
func seedAdmin(ctx context.Context, db *sql.DB, email, name, password string, cost int) error {
	var n int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&n); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if n > 0 {
		return nil
	}
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if _, err := db.ExecContext(ctx,
		"INSERT INTO users (email, name, password_hash, role) VALUES (?, ?, ?, 'admin')",
		email, name, hash); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	log.Printf("seeded admin account %s", email)
	return nil
}
