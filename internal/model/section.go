package model

import "time"

// SectionConfig is the singleton subtitle row for a public page section.
// The services and testimonials sections each keep their own table
// (`services_section`, `testimonials_section`) with this identical shape;
// one repository serves both, parameterized by table name.
type SectionConfig struct {
	ID        uint64    `json:"id"`        // <table>.id
	Subtitle  string    `json:"subtitle"`  // <table>.subtitle
	IsActive  bool      `json:"isActive"`  // <table>.is_active
	CreatedAt time.Time `json:"createdAt"` // <table>.created_at
	UpdatedAt time.Time `json:"updatedAt"` // <table>.updated_at
}
