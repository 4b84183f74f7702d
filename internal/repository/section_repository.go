package repository

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	"github.com/jhasmany-fernandez/portfolio-backend/internal/model"
)

// Tables served by SectionRepo.  Both hold identical singleton subtitle
// rows, one per public page section.
const (
	TableServicesSection     = "services_section"
	TableTestimonialsSection = "testimonials_section"
)

// Default subtitles inserted on first access, keyed by table.
var defaultSubtitles = map[string]string{
	TableServicesSection:     "I offer a wide range of services to ensure you have the best written code and stay ahead in the competition.",
	TableTestimonialsSection: "Don't just take our word for it - see what actual users of our service have to say about their experience.",
}

// DefaultSubtitle returns the subtitle seeded for the given table.
func DefaultSubtitle(table string) string { return defaultSubtitles[table] }

// SectionRepo serves one of the singleton section subtitle tables.  The
// table name comes from the fixed constants above, never from request
// input, so interpolating it into queries is safe.  The mutex guards
// the check-then-insert in GetActiveOrCreate.
type SectionRepo struct {
	db    *sql.DB
	table string
	mu    sync.Mutex
}

// NewSectionRepo constructs a SectionRepo for the given table.  It
// panics on an unknown table name to catch wiring mistakes at startup.
func NewSectionRepo(db *sql.DB, table string) *SectionRepo {
	if _, ok := defaultSubtitles[table]; !ok {
		panic("unknown section table: " + table)
	}
	return &SectionRepo{db: db, table: table}
}

func scanSection(row interface{ Scan(...any) error }) (*model.SectionConfig, error) {
	var s model.SectionConfig
	if err := row.Scan(&s.ID, &s.Subtitle, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

// GetActiveOrCreate returns the active subtitle row, inserting the
// default subtitle first if none exists yet.
func (r *SectionRepo) GetActiveOrCreate(ctx context.Context) (*model.SectionConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	q := "SELECT id, subtitle, is_active, created_at, updated_at FROM " + r.table + " WHERE is_active = 1 LIMIT 1"
	s, err := scanSection(r.db.QueryRowContext(ctx, q))
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	res, err := r.db.ExecContext(ctx,
		"INSERT INTO "+r.table+" (subtitle, is_active) VALUES (?, 1)", defaultSubtitles[r.table])
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, uint64(id))
}

// GetByID fetches one subtitle row or ErrNotFound.
func (r *SectionRepo) GetByID(ctx context.Context, id uint64) (*model.SectionConfig, error) {
	q := "SELECT id, subtitle, is_active, created_at, updated_at FROM " + r.table + " WHERE id = ?"
	s, err := scanSection(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

// Update writes the subtitle and active flag of the given row.
func (r *SectionRepo) Update(ctx context.Context, s *model.SectionConfig) error {
	q := "UPDATE " + r.table + " SET subtitle = ?, is_active = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?"
	_, err := r.db.ExecContext(ctx, q, s.Subtitle, s.IsActive, s.ID)
	return err
}
