package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jhasmany-fernandez/portfolio-backend/internal/model"
)

// ServiceRepo encapsulates all database queries related to service cards.
type ServiceRepo struct {
	db *sql.DB
}

// NewServiceRepo constructs a ServiceRepo with the provided DB handle.
func NewServiceRepo(db *sql.DB) *ServiceRepo {
	return &ServiceRepo{db: db}
}

const serviceCols = `id, title, short_description, icon, image_url, technologies, experience_level,
	demo_url, github_url, clients_served, projects_completed, ratings,
	show_demo, show_github, show_clients_served, show_projects_completed, show_ratings,
	sort_order, is_published, author_id, created_at, updated_at`

func scanService(row interface{ Scan(...any) error }) (*model.Service, error) {
	var s model.Service
	var techs string
	var author sql.NullInt64
	err := row.Scan(
		&s.ID, &s.Title, &s.ShortDescription, &s.Icon, &s.ImageURL, &techs, &s.ExperienceLevel,
		&s.DemoURL, &s.GithubURL, &s.ClientsServed, &s.ProjectsCompleted, &s.Ratings,
		&s.ShowDemoInPortfolio, &s.ShowGithubInPortfolio, &s.ShowClientsServedInPortfolio,
		&s.ShowProjectsCompletedInPortfolio, &s.ShowRatingsInPortfolio,
		&s.SortOrder, &s.IsPublished, &author, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.Technologies = splitList(techs)
	if author.Valid {
		s.AuthorID = uint64(author.Int64)
	}
	return &s, nil
}

// Create inserts a new service and reloads it so the caller receives the
// generated id and timestamps.
func (r *ServiceRepo) Create(ctx context.Context, s *model.Service) error {
	const q = `INSERT INTO services (title, short_description, icon, image_url, technologies,
	             experience_level, demo_url, github_url, clients_served, projects_completed, ratings,
	             show_demo, show_github, show_clients_served, show_projects_completed, show_ratings,
	             sort_order, is_published, author_id)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		s.Title, s.ShortDescription, s.Icon, s.ImageURL, joinList(s.Technologies),
		s.ExperienceLevel, s.DemoURL, s.GithubURL, s.ClientsServed, s.ProjectsCompleted, s.Ratings,
		s.ShowDemoInPortfolio, s.ShowGithubInPortfolio, s.ShowClientsServedInPortfolio,
		s.ShowProjectsCompletedInPortfolio, s.ShowRatingsInPortfolio,
		s.SortOrder, s.IsPublished, nullableID(s.AuthorID))
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

// List returns services ordered by sort_order ascending, then newest
// first, optionally narrowed by is_published.
func (r *ServiceRepo) List(ctx context.Context, published *bool) ([]*model.Service, error) {
	q := "SELECT " + serviceCols + " FROM services"
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

	out := []*model.Service{}
	for rows.Next() {
		s, err := scanService(rows)
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

// GetByID fetches one service or ErrNotFound.
func (r *ServiceRepo) GetByID(ctx context.Context, id uint64) (*model.Service, error) {
	const q = "SELECT " + serviceCols + " FROM services WHERE id = ?"
	s, err := scanService(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

// Update writes every mutable column of the given service.
func (r *ServiceRepo) Update(ctx context.Context, s *model.Service) error {
	const q = `UPDATE services
	           SET title = ?, short_description = ?, icon = ?, image_url = ?, technologies = ?,
	               experience_level = ?, demo_url = ?, github_url = ?, clients_served = ?,
	               projects_completed = ?, ratings = ?,
	               show_demo = ?, show_github = ?, show_clients_served = ?,
	               show_projects_completed = ?, show_ratings = ?,
	               sort_order = ?, is_published = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	_, err := r.db.ExecContext(ctx, q,
		s.Title, s.ShortDescription, s.Icon, s.ImageURL, joinList(s.Technologies),
		s.ExperienceLevel, s.DemoURL, s.GithubURL, s.ClientsServed, s.ProjectsCompleted, s.Ratings,
		s.ShowDemoInPortfolio, s.ShowGithubInPortfolio, s.ShowClientsServedInPortfolio,
		s.ShowProjectsCompletedInPortfolio, s.ShowRatingsInPortfolio,
		s.SortOrder, s.IsPublished, s.ID)
	return err
}

// UpdateOrder sets only the sort_order field.
func (r *ServiceRepo) UpdateOrder(ctx context.Context, id uint64, order int) (*model.Service, error) {
	const q = "UPDATE services SET sort_order = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?"
	if _, err := r.db.ExecContext(ctx, q, order, id); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// TogglePublished reads the current flag and writes its negation.
func (r *ServiceRepo) TogglePublished(ctx context.Context, id uint64) (*model.Service, error) {
	s, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	const q = "UPDATE services SET is_published = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?"
	if _, err := r.db.ExecContext(ctx, q, !s.IsPublished, id); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Delete removes a service, reporting ErrNotFound when nothing matched.
func (r *ServiceRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM services WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
