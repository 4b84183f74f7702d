package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jhasmany-fernandez/portfolio-backend/internal/model"
)

// SkillRepo encapsulates all database queries related to skills.
type SkillRepo struct {
	db *sql.DB
}

// NewSkillRepo constructs a SkillRepo with the provided DB handle.
func NewSkillRepo(db *sql.DB) *SkillRepo {
	return &SkillRepo{db: db}
}

const skillCols = "id, name, icon, image_url, sort_order, is_published, author_id, created_at, updated_at"

func scanSkill(row interface{ Scan(...any) error }) (*model.Skill, error) {
	var s model.Skill
	var author sql.NullInt64
	if err := row.Scan(&s.ID, &s.Name, &s.Icon, &s.ImageURL, &s.SortOrder, &s.IsPublished, &author, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	if author.Valid {
		s.AuthorID = uint64(author.Int64)
	}
	return &s, nil
}

// Create inserts a new skill and reloads it so the caller receives the
// generated id and timestamps.
func (r *SkillRepo) Create(ctx context.Context, s *model.Skill) error {
	const q = `INSERT INTO skills (name, icon, image_url, sort_order, is_published, author_id)
	           VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		s.Name, s.Icon, s.ImageURL, s.SortOrder, s.IsPublished, nullableID(s.AuthorID))
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

// List returns skills ordered by sort_order ascending, then newest
// first.  A non-nil published filter narrows by is_published; nil
// returns all rows regardless of status.
func (r *SkillRepo) List(ctx context.Context, published *bool) ([]*model.Skill, error) {
	q := "SELECT " + skillCols + " FROM skills"
	args := []any{}
	if published != nil {
		q += " WHERE is_published = ?"
		args = append(args, *published)
	}
	q += " ORDER BY sort_order ASC, created_at DESC, id DESC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*model.Skill{}
	for rows.Next() {
		s, err := scanSkill(rows)
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

// GetByID fetches one skill or ErrNotFound.
func (r *SkillRepo) GetByID(ctx context.Context, id uint64) (*model.Skill, error) {
	const q = "SELECT " + skillCols + " FROM skills WHERE id = ?"
	s, err := scanSkill(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

// Update writes every mutable column of the given skill.
func (r *SkillRepo) Update(ctx context.Context, s *model.Skill) error {
	const q = `UPDATE skills
	           SET name = ?, icon = ?, image_url = ?, sort_order = ?, is_published = ?,
	               updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	_, err := r.db.ExecContext(ctx, q, s.Name, s.Icon, s.ImageURL, s.SortOrder, s.IsPublished, s.ID)
	return err
}

// UpdateOrder sets only the sort_order field.  No reconciliation with
// other rows happens; ties and gaps are permitted.
func (r *SkillRepo) UpdateOrder(ctx context.Context, id uint64, order int) (*model.Skill, error) {
	const q = "UPDATE skills SET sort_order = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?"
	if _, err := r.db.ExecContext(ctx, q, order, id); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// TogglePublished reads the current flag and writes its negation.
// Concurrent toggles are last-write-wins.
func (r *SkillRepo) TogglePublished(ctx context.Context, id uint64) (*model.Skill, error) {
	s, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	const q = "UPDATE skills SET is_published = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?"
	if _, err := r.db.ExecContext(ctx, q, !s.IsPublished, id); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Delete removes a skill, reporting ErrNotFound when nothing matched.
func (r *SkillRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM skills WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
