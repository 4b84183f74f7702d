package model

import "time"

// HomeSection is the hero block shown at the top of the public site.
// Several variants may exist in the `home_sections` table but at most
// one row carries is_active = 1 at any time; that row is the one the
// public page renders.
//
// Fields:
//  ID          – primary key identifier.
//  Greeting    – short greeting line ("Hi, I'm ...").
//  Roles       – ordered list of role strings cycled by the hero animation.
//  Description – paragraph below the greeting.
//  ImageURL    – optional portrait image path under /uploads.
//  IsActive    – whether this variant is the one publicly displayed.
//  AuthorID    – user that owns the section (0 when unowned).
//  CreatedAt   – creation timestamp.
//  UpdatedAt   – last update timestamp.
type HomeSection struct {
	ID          uint64    `json:"id"`          // home_sections.id
	Greeting    string    `json:"greeting"`    // home_sections.greeting
	Roles       []string  `json:"roles"`       // home_sections.roles (comma separated in DB)
	Description string    `json:"description"` // home_sections.description
	ImageURL    string    `json:"imageUrl"`    // home_sections.image_url
	IsActive    bool      `json:"isActive"`    // home_sections.is_active
	AuthorID    uint64    `json:"authorId"`    // home_sections.author_id
	CreatedAt   time.Time `json:"createdAt"`   // home_sections.created_at
	UpdatedAt   time.Time `json:"updatedAt"`   // home_sections.updated_at
}
