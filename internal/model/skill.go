package model

import "time"

// Skill is a single technology shown in the skills grid.  SortOrder is a
// plain integer used for manual display ordering; values need not be
// unique or contiguous.  Unpublished skills stay visible in the admin
// dashboard but are hidden from the public page.
type Skill struct {
	ID          uint64    `json:"id"`          // skills.id
	Name        string    `json:"name"`        // skills.name
	Icon        string    `json:"icon"`        // skills.icon (emoji or icon key)
	ImageURL    string    `json:"imageUrl"`    // skills.image_url
	SortOrder   int       `json:"order"`       // skills.sort_order
	IsPublished bool      `json:"isPublished"` // skills.is_published
	AuthorID    uint64    `json:"authorId"`    // skills.author_id
	CreatedAt   time.Time `json:"createdAt"`   // skills.created_at
	UpdatedAt   time.Time `json:"updatedAt"`   // skills.updated_at
}
