// Package memory holds in-memory implementations of the repository
// store interfaces.  They back handler tests without a database and
// mirror the MySQL semantics: ordering, merge updates, the
// at-most-one-active invariant and default-row bootstrapping.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jhasmany-fernandez/portfolio-backend/internal/model"
	"github.com/jhasmany-fernandez/portfolio-backend/internal/repository"
	"github.com/jhasmany-fernandez/portfolio-backend/internal/utils"
)

// HomeSectionStore is an in-memory repository.HomeSectionStore.
type HomeSectionStore struct {
	mu   sync.Mutex
	seq  uint64
	rows map[uint64]*model.HomeSection
}

func NewHomeSectionStore() *HomeSectionStore {
	return &HomeSectionStore{rows: map[uint64]*model.HomeSection{}}
}

func (s *HomeSectionStore) Create(ctx context.Context, h *model.HomeSection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	h.ID = s.seq
	h.CreatedAt = time.Now().UTC()
	h.UpdatedAt = h.CreatedAt
	if h.Roles == nil {
		h.Roles = []string{}
	}
	cp := *h
	s.rows[h.ID] = &cp
	return nil
}

func (s *HomeSectionStore) List(ctx context.Context) ([]*model.HomeSection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []*model.HomeSection{}
	for _, r := range s.rows {
		cp := *r
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *HomeSectionStore) GetByID(ctx context.Context, id uint64) (*model.HomeSection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (s *HomeSectionStore) GetActive(ctx context.Context) (*model.HomeSection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.rows {
		if r.IsActive {
			cp := *r
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *HomeSectionStore) Update(ctx context.Context, h *model.HomeSection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rows[h.ID]
	if !ok {
		return repository.ErrNotFound
	}
	cp := *h
	cp.CreatedAt = r.CreatedAt
	cp.UpdatedAt = time.Now().UTC()
	s.rows[h.ID] = &cp
	return nil
}

func (s *HomeSectionStore) SetActive(ctx context.Context, id uint64) (*model.HomeSection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	target, ok := s.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	for _, r := range s.rows {
		r.IsActive = false
	}
	target.IsActive = true
	target.UpdatedAt = time.Now().UTC()
	cp := *target
	return &cp, nil
}

func (s *HomeSectionStore) Delete(ctx context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.rows, id)
	return nil
}

// SkillStore is an in-memory repository.SkillStore.
type SkillStore struct {
	mu   sync.Mutex
	seq  uint64
	rows map[uint64]*model.Skill
}

func NewSkillStore() *SkillStore {
	return &SkillStore{rows: map[uint64]*model.Skill{}}
}

func (s *SkillStore) Create(ctx context.Context, sk *model.Skill) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	sk.ID = s.seq
	sk.CreatedAt = time.Now().UTC()
	sk.UpdatedAt = sk.CreatedAt
	cp := *sk
	s.rows[sk.ID] = &cp
	return nil
}

func (s *SkillStore) List(ctx context.Context, published *bool) ([]*model.Skill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []*model.Skill{}
	for _, r := range s.rows {
		if published != nil && r.IsPublished != *published {
			continue
		}
		cp := *r
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *SkillStore) GetByID(ctx context.Context, id uint64) (*model.Skill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (s *SkillStore) Update(ctx context.Context, sk *model.Skill) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rows[sk.ID]
	if !ok {
		return repository.ErrNotFound
	}
	cp := *sk
	cp.CreatedAt = r.CreatedAt
	cp.UpdatedAt = time.Now().UTC()
	s.rows[sk.ID] = &cp
	return nil
}

func (s *SkillStore) UpdateOrder(ctx context.Context, id uint64, order int) (*model.Skill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	r.SortOrder = order
	r.UpdatedAt = time.Now().UTC()
	cp := *r
	return &cp, nil
}

func (s *SkillStore) TogglePublished(ctx context.Context, id uint64) (*model.Skill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	r.IsPublished = !r.IsPublished
	r.UpdatedAt = time.Now().UTC()
	cp := *r
	return &cp, nil
}

func (s *SkillStore) Delete(ctx context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.rows, id)
	return nil
}

// ServiceStore is an in-memory repository.ServiceStore.
type ServiceStore struct {
	mu   sync.Mutex
	seq  uint64
	rows map[uint64]*model.Service
}

func NewServiceStore() *ServiceStore {
	return &ServiceStore{rows: map[uint64]*model.Service{}}
}

func (s *ServiceStore) Create(ctx context.Context, sv *model.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	sv.ID = s.seq
	sv.CreatedAt = time.Now().UTC()
	sv.UpdatedAt = sv.CreatedAt
	if sv.Technologies == nil {
		sv.Technologies = []string{}
	}
	cp := *sv
	s.rows[sv.ID] = &cp
	return nil
}

func (s *ServiceStore) List(ctx context.Context, published *bool) ([]*model.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []*model.Service{}
	for _, r := range s.rows {
		if published != nil && r.IsPublished != *published {
			continue
		}
		cp := *r
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *ServiceStore) GetByID(ctx context.Context, id uint64) (*model.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (s *ServiceStore) Update(ctx context.Context, sv *model.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rows[sv.ID]
	if !ok {
		return repository.ErrNotFound
	}
	cp := *sv
	cp.CreatedAt = r.CreatedAt
	cp.UpdatedAt = time.Now().UTC()
	s.rows[sv.ID] = &cp
	return nil
}

func (s *ServiceStore) UpdateOrder(ctx context.Context, id uint64, order int) (*model.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	r.SortOrder = order
	r.UpdatedAt = time.Now().UTC()
	cp := *r
	return &cp, nil
}

func (s *ServiceStore) TogglePublished(ctx context.Context, id uint64) (*model.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	r.IsPublished = !r.IsPublished
	r.UpdatedAt = time.Now().UTC()
	cp := *r
	return &cp, nil
}

func (s *ServiceStore) Delete(ctx context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.rows, id)
	return nil
}

// TestimonialStore is an in-memory repository.TestimonialStore.
type TestimonialStore struct {
	mu   sync.Mutex
	seq  uint64
	rows map[uint64]*model.Testimonial
}

func NewTestimonialStore() *TestimonialStore {
	return &TestimonialStore{rows: map[uint64]*model.Testimonial{}}
}

func (s *TestimonialStore) Create(ctx context.Context, t *model.Testimonial) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	t.ID = s.seq
	t.CreatedAt = time.Now().UTC()
	t.UpdatedAt = t.CreatedAt
	cp := *t
	s.rows[t.ID] = &cp
	return nil
}

func (s *TestimonialStore) List(ctx context.Context, published *bool) ([]*model.Testimonial, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []*model.Testimonial{}
	for _, r := range s.rows {
		if published != nil && r.IsPublished != *published {
			continue
		}
		cp := *r
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *TestimonialStore) GetByID(ctx context.Context, id uint64) (*model.Testimonial, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (s *TestimonialStore) Update(ctx context.Context, t *model.Testimonial) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rows[t.ID]
	if !ok {
		return repository.ErrNotFound
	}
	cp := *t
	cp.CreatedAt = r.CreatedAt
	cp.UpdatedAt = time.Now().UTC()
	s.rows[t.ID] = &cp
	return nil
}

func (s *TestimonialStore) TogglePublished(ctx context.Context, id uint64) (*model.Testimonial, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	r.IsPublished = !r.IsPublished
	r.UpdatedAt = time.Now().UTC()
	cp := *r
	return &cp, nil
}

func (s *TestimonialStore) Delete(ctx context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.rows, id)
	return nil
}

// FooterStore is an in-memory repository.FooterStore seeded with the
// same default content as the MySQL implementation.
type FooterStore struct {
	mu   sync.Mutex
	seq  uint64
	rows map[uint64]*model.Footer
	dflt model.Footer
}

func NewFooterStore(dflt model.Footer) *FooterStore {
	return &FooterStore{rows: map[uint64]*model.Footer{}, dflt: dflt}
}

func (s *FooterStore) GetActiveOrCreate(ctx context.Context) (*model.Footer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.rows {
		if r.IsActive {
			cp := *r
			return &cp, nil
		}
	}
	s.seq++
	f := s.dflt
	f.ID = s.seq
	f.IsActive = true
	f.CreatedAt = time.Now().UTC()
	f.UpdatedAt = f.CreatedAt
	s.rows[f.ID] = &f
	cp := f
	return &cp, nil
}

func (s *FooterStore) GetByID(ctx context.Context, id uint64) (*model.Footer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (s *FooterStore) Update(ctx context.Context, f *model.Footer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rows[f.ID]
	if !ok {
		return repository.ErrNotFound
	}
	cp := *f
	cp.CreatedAt = r.CreatedAt
	cp.UpdatedAt = time.Now().UTC()
	s.rows[f.ID] = &cp
	return nil
}

// SectionStore is an in-memory repository.SectionStore.
type SectionStore struct {
	mu       sync.Mutex
	seq      uint64
	rows     map[uint64]*model.SectionConfig
	subtitle string
}

func NewSectionStore(defaultSubtitle string) *SectionStore {
	return &SectionStore{rows: map[uint64]*model.SectionConfig{}, subtitle: defaultSubtitle}
}

func (s *SectionStore) GetActiveOrCreate(ctx context.Context) (*model.SectionConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.rows {
		if r.IsActive {
			cp := *r
			return &cp, nil
		}
	}
	s.seq++
	sec := model.SectionConfig{
		ID:        s.seq,
		Subtitle:  s.subtitle,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
	sec.UpdatedAt = sec.CreatedAt
	s.rows[sec.ID] = &sec
	cp := sec
	return &cp, nil
}

func (s *SectionStore) GetByID(ctx context.Context, id uint64) (*model.SectionConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (s *SectionStore) Update(ctx context.Context, sec *model.SectionConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rows[sec.ID]
	if !ok {
		return repository.ErrNotFound
	}
	cp := *sec
	cp.CreatedAt = r.CreatedAt
	cp.UpdatedAt = time.Now().UTC()
	s.rows[sec.ID] = &cp
	return nil
}

// UserStore is an in-memory repository.UserStore.
type UserStore struct {
	mu   sync.Mutex
	seq  uint64
	rows map[uint64]*model.User
}

func NewUserStore() *UserStore {
	return &UserStore{rows: map[uint64]*model.User{}}
}

func (s *UserStore) Create(ctx context.Context, email, name, password, role string, cost int) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	email = strings.ToLower(strings.TrimSpace(email))
	for _, r := range s.rows {
		if r.Email == email {
			return 0, repository.ErrEmailExists
		}
	}
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	s.seq++
	now := time.Now().UTC()
	s.rows[s.seq] = &model.User{
		ID: s.seq, Email: email, Name: name, PasswordHash: hash,
		Role: role, IsActive: true, CreatedAt: now, UpdatedAt: now,
	}
	return s.seq, nil
}

func (s *UserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	email = strings.ToLower(strings.TrimSpace(email))
	for _, r := range s.rows {
		if r.Email == email {
			cp := *r
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *UserStore) GetByID(ctx context.Context, id uint64) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *r
	return &cp, nil
}
