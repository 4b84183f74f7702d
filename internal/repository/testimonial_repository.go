package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jhasmany-fernandez/portfolio-backend/internal/model"
)

// TestimonialRepo encapsulates all database queries related to
// testimonials.  Testimonials carry no manual ordering; every listing
// is newest first.
type TestimonialRepo struct {
	db *sql.DB
}

// NewTestimonialRepo constructs a TestimonialRepo with the provided DB handle.
func NewTestimonialRepo(db *sql.DB) *TestimonialRepo {
	return &TestimonialRepo{db: db}
}

const testimonialCols = "id, name, title, feedback, image, stars, is_published, created_at, updated_at"

func scanTestimonial(row interface{ Scan(...any) error }) (*model.Testimonial, error) {
	var t model.Testimonial
	if err := row.Scan(&t.ID, &t.Name, &t.Title, &t.Feedback, &t.Image, &t.Stars, &t.IsPublished, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

// Create inserts a new testimonial and reloads it so the caller receives
// the generated id and timestamps.
func (r *TestimonialRepo) Create(ctx context.Context, t *model.Testimonial) error {
	const q = `INSERT INTO testimonials (name, title, feedback, image, stars, is_published)
	           VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, t.Name, t.Title, t.Feedback, t.Image, t.Stars, t.IsPublished)
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
	*t = *stored
	return nil
}

// List returns testimonials newest first, optionally narrowed by
// is_published.
func (r *TestimonialRepo) List(ctx context.Context, published *bool) ([]*model.Testimonial, error) {
	q := "SELECT " + testimonialCols + " FROM testimonials"
	args := []any{}
	if published != nil {
		q += " WHERE is_published = ?"
		args = append(args, *published)
	}
	q += " ORDER BY created_at DESC, id DESC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*model.Testimonial{}
	for rows.Next() {
		t, err := scanTestimonial(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches one testimonial or ErrNotFound.
func (r *TestimonialRepo) GetByID(ctx context.Context, id uint64) (*model.Testimonial, error) {
	const q = "SELECT " + testimonialCols + " FROM testimonials WHERE id = ?"
	t, err := scanTestimonial(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

// Update writes every mutable column of the given testimonial.
func (r *TestimonialRepo) Update(ctx context.Context, t *model.Testimonial) error {
	const q = `UPDATE testimonials
	           SET name = ?, title = ?, feedback = ?, image = ?, stars = ?, is_published = ?,
	               updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	_, err := r.db.ExecContext(ctx, q, t.Name, t.Title, t.Feedback, t.Image, t.Stars, t.IsPublished, t.ID)
	return err
}

// TogglePublished reads the current flag and writes its negation.
func (r *TestimonialRepo) TogglePublished(ctx context.Context, id uint64) (*model.Testimonial, error) {
	t, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	const q = "UPDATE testimonials SET is_published = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?"
	if _, err := r.db.ExecContext(ctx, q, !t.IsPublished, id); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Delete removes a testimonial, reporting ErrNotFound when nothing matched.
func (r *TestimonialRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM testimonials WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
