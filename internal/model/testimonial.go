package model

import "time"

// Testimonial is a client quote.  Testimonials have no manual ordering;
// the public carousel shows them newest first.  Stars is clamped to the
// 1..5 range at the HTTP layer.
type Testimonial struct {
	ID          uint64    `json:"id"`          // testimonials.id
	Name        string    `json:"name"`        // testimonials.name
	Title       string    `json:"title"`       // testimonials.title (optional, e.g. "CTO at Acme")
	Feedback    string    `json:"feedback"`    // testimonials.feedback
	Image       string    `json:"image"`       // testimonials.image
	Stars       int       `json:"stars"`       // testimonials.stars (1..5)
	IsPublished bool      `json:"isPublished"` // testimonials.is_published
	CreatedAt   time.Time `json:"createdAt"`   // testimonials.created_at
	UpdatedAt   time.Time `json:"updatedAt"`   // testimonials.updated_at
}
