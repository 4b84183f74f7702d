package repository

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	"github.com/jhasmany-fernandez/portfolio-backend/internal/model"
)

// Default footer content inserted on first access when the table holds
// no active row.
var defaultFooter = model.Footer{
	CompanyName:   "Jhasmany Fernández",
	Description:   "Full-Stack Developer specializing in modern web technologies. Building scalable and performant applications with passion and precision.",
	Email:         "jhasmany.fernandez.dev@gmail.com",
	Phone:         "+591 65856280",
	LocationLine1: "Santa Cruz de la Sierra",
	LocationLine2: "Bolivia",
	IsActive:      true,
}

// DefaultFooter returns a copy of the content seeded on first access.
// The in-memory store reuses it so both implementations bootstrap the
// same row.
func DefaultFooter() model.Footer { return defaultFooter }

// FooterRepo encapsulates database queries for the singleton footer
// configuration.  The mutex serializes the check-then-insert in
// GetActiveOrCreate so concurrent first calls cannot both observe an
// empty table and insert duplicate default rows.
type FooterRepo struct {
	db *sql.DB
	mu sync.Mutex
}

// NewFooterRepo constructs a FooterRepo with the provided DB handle.
func NewFooterRepo(db *sql.DB) *FooterRepo {
	return &FooterRepo{db: db}
}

const footerCols = "id, company_name, description, email, phone, location_line1, location_line2, is_active, created_at, updated_at"

func scanFooter(row interface{ Scan(...any) error }) (*model.Footer, error) {
	var f model.Footer
	if err := row.Scan(&f.ID, &f.CompanyName, &f.Description, &f.Email, &f.Phone, &f.LocationLine1, &f.LocationLine2, &f.IsActive, &f.CreatedAt, &f.UpdatedAt); err != nil {
		return nil, err
	}
	return &f, nil
}

// GetActiveOrCreate returns the active footer row, inserting the default
// content first if none exists yet.
func (r *FooterRepo) GetActiveOrCreate(ctx context.Context) (*model.Footer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	const q = "SELECT " + footerCols + " FROM footer WHERE is_active = 1 LIMIT 1"
	f, err := scanFooter(r.db.QueryRowContext(ctx, q))
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	const qInsert = `INSERT INTO footer (company_name, description, email, phone, location_line1, location_line2, is_active)
	                 VALUES (?, ?, ?, ?, ?, ?, 1)`
	d := defaultFooter
	res, err := r.db.ExecContext(ctx, qInsert,
		d.CompanyName, d.Description, d.Email, d.Phone, d.LocationLine1, d.LocationLine2)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, uint64(id))
}

// GetByID fetches one footer row or ErrNotFound.
func (r *FooterRepo) GetByID(ctx context.Context, id uint64) (*model.Footer, error) {
	const q = "SELECT " + footerCols + " FROM footer WHERE id = ?"
	f, err := scanFooter(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return f, nil
}

// Update writes every mutable column of the given footer row.  No check
// is made that the row being updated is the active one.
func (r *FooterRepo) Update(ctx context.Context, f *model.Footer) error {
	const q = `UPDATE footer
	           SET company_name = ?, description = ?, email = ?, phone = ?,
	               location_line1 = ?, location_line2 = ?, is_active = ?,
	               updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	_, err := r.db.ExecContext(ctx, q,
		f.CompanyName, f.Description, f.Email, f.Phone, f.LocationLine1, f.LocationLine2, f.IsActive, f.ID)
	return err
}
