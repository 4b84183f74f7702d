package repository

import (
	"context"

	"github.com/jhasmany-fernandez/portfolio-backend/internal/model"
)

// Store interfaces are the contracts handlers depend on.  The MySQL
// implementations live in this package; an in-memory implementation
// under repository/memory backs the handler tests.

// HomeSectionStore persists hero section variants.
type HomeSectionStore interface {
	Create(ctx context.Context, s *model.HomeSection) error
	List(ctx context.Context) ([]*model.HomeSection, error)
	GetByID(ctx context.Context, id uint64) (*model.HomeSection, error)
	// GetActive returns the row with is_active set, or ErrNotFound.
	GetActive(ctx context.Context) (*model.HomeSection, error)
	Update(ctx context.Context, s *model.HomeSection) error
	// SetActive deactivates every section and activates the given one in a
	// single transaction, so the at-most-one-active invariant holds even
	// under concurrent calls or a crash between the two writes.
	SetActive(ctx context.Context, id uint64) (*model.HomeSection, error)
	Delete(ctx context.Context, id uint64) error
}

// SkillStore persists skills.
type SkillStore interface {
	Create(ctx context.Context, s *model.Skill) error
	// List returns skills ordered by sort_order ascending then creation
	// time descending.  A non-nil published narrows by is_published.
	List(ctx context.Context, published *bool) ([]*model.Skill, error)
	GetByID(ctx context.Context, id uint64) (*model.Skill, error)
	Update(ctx context.Context, s *model.Skill) error
	UpdateOrder(ctx context.Context, id uint64, order int) (*model.Skill, error)
	TogglePublished(ctx context.Context, id uint64) (*model.Skill, error)
	Delete(ctx context.Context, id uint64) error
}

// ServiceStore persists service cards.
type ServiceStore interface {
	Create(ctx context.Context, s *model.Service) error
	List(ctx context.Context, published *bool) ([]*model.Service, error)
	GetByID(ctx context.Context, id uint64) (*model.Service, error)
	Update(ctx context.Context, s *model.Service) error
	UpdateOrder(ctx context.Context, id uint64, order int) (*model.Service, error)
	TogglePublished(ctx context.Context, id uint64) (*model.Service, error)
	Delete(ctx context.Context, id uint64) error
}

// TestimonialStore persists testimonials.
type TestimonialStore interface {
	Create(ctx context.Context, t *model.Testimonial) error
	// List returns testimonials newest first; there is no order field.
	List(ctx context.Context, published *bool) ([]*model.Testimonial, error)
	GetByID(ctx context.Context, id uint64) (*model.Testimonial, error)
	Update(ctx context.Context, t *model.Testimonial) error
	TogglePublished(ctx context.Context, id uint64) (*model.Testimonial, error)
	Delete(ctx context.Context, id uint64) error
}

// FooterStore persists the singleton footer configuration.
type FooterStore interface {
	// GetActiveOrCreate returns the active row, inserting the default
	// content first if none exists.  The check-then-insert is serialized
	// so concurrent first calls cannot create duplicate defaults.
	GetActiveOrCreate(ctx context.Context) (*model.Footer, error)
	GetByID(ctx context.Context, id uint64) (*model.Footer, error)
	Update(ctx context.Context, f *model.Footer) error
}

// SectionStore persists one singleton section subtitle table.
type SectionStore interface {
	GetActiveOrCreate(ctx context.Context) (*model.SectionConfig, error)
	GetByID(ctx context.Context, id uint64) (*model.SectionConfig, error)
	Update(ctx context.Context, s *model.SectionConfig) error
}

// UserStore persists admin accounts.
type UserStore interface {
	Create(ctx context.Context, email, name, password, role string, cost int) (uint64, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id uint64) (*model.User, error)
}
