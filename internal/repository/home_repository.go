package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jhasmany-fernandez/portfolio-backend/internal/model"
)

// HomeSectionRepo encapsulates all database queries for hero section
// variants.  It depends on a sql.DB connection configured elsewhere.
type HomeSectionRepo struct {
	db *sql.DB
}

// NewHomeSectionRepo constructs a HomeSectionRepo with the provided DB
// handle, allowing dependency injection in tests and at startup.
func NewHomeSectionRepo(db *sql.DB) *HomeSectionRepo {
	return &HomeSectionRepo{db: db}
}

const homeSectionCols = "id, greeting, roles, description, image_url, is_active, author_id, created_at, updated_at"

func scanHomeSection(row interface{ Scan(...any) error }) (*model.HomeSection, error) {
	var s model.HomeSection
	var roles string
	var author sql.NullInt64
	if err := row.Scan(&s.ID, &s.Greeting, &roles, &s.Description, &s.ImageURL, &s.IsActive, &author, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	s.Roles = splitList(roles)
	if author.Valid {
		s.AuthorID = uint64(author.Int64)
	}
	return &s, nil
}

// Create inserts a new home section.  On success the ID, timestamps and
// defaulted fields are populated by a follow-up SELECT so callers get a
// fully populated record.
func (r *HomeSectionRepo) Create(ctx context.Context, s *model.HomeSection) error {
	const qInsert = `INSERT INTO home_sections (greeting, roles, description, image_url, is_active, author_id)
	                 VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, qInsert,
		s.Greeting, joinList(s.Roles), s.Description, s.ImageURL, s.IsActive, nullableID(s.AuthorID))
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	stored, err := r.GetByID(ctx, uint64(id))
	if err != nil {
		return err
	}
	*s = *stored
	return nil
}

// List returns every home section, newest first.
func (r *HomeSectionRepo) List(ctx context.Context) ([]*model.HomeSection, error) {
	const q = "SELECT " + homeSectionCols + " FROM home_sections ORDER BY created_at DESC, id DESC"
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*model.HomeSection{}
	for rows.Next() {
		s, err := scanHomeSection(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches one home section or ErrNotFound.
func (r *HomeSectionRepo) GetByID(ctx context.Context, id uint64) (*model.HomeSection, error) {
	const q = "SELECT " + homeSectionCols + " FROM home_sections WHERE id = ?"
	s, err := scanHomeSection(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

// GetActive fetches the section currently flagged for public display.
func (r *HomeSectionRepo) GetActive(ctx context.Context) (*model.HomeSection, error) {
	const q = "SELECT " + homeSectionCols + " FROM home_sections WHERE is_active = 1 LIMIT 1"
	s, err := scanHomeSection(r.db.QueryRowContext(ctx, q))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

// Update writes every mutable column of the given section.
func (r *HomeSectionRepo) Update(ctx context.Context, s *model.HomeSection) error {
	const q = `UPDATE home_sections
	           SET greeting = ?, roles = ?, description = ?, image_url = ?, is_active = ?,
	               updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	_, err := r.db.ExecContext(ctx, q,
		s.Greeting, joinList(s.Roles), s.Description, s.ImageURL, s.IsActive, s.ID)
	return err
}

// SetActive deactivates all sections and activates the target one inside
// a single transaction.  If the id does not exist the transaction rolls
// back and the previous active flags are untouched.
func (r *HomeSectionRepo) SetActive(ctx context.Context, id uint64) (*model.HomeSection, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	// Rollback is a no-op once the transaction has been committed.
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "UPDATE home_sections SET is_active = 0 WHERE is_active = 1"); err != nil {
		return nil, err
	}
	res, err := tx.ExecContext(ctx,
		"UPDATE home_sections SET is_active = 1, updated_at = CURRENT_TIMESTAMP WHERE id = ?", id)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrNotFound
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Delete removes a section, reporting ErrNotFound when nothing matched.
func (r *HomeSectionRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM home_sections WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
