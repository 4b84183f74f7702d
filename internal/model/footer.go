package model

import "time"

// Footer holds the site-wide footer configuration.  The table is
// singleton-style: the repository returns the row flagged active and
// creates one with default content on first access if the table is
// empty.
type Footer struct {
	ID            uint64    `json:"id"`            // footer.id
	CompanyName   string    `json:"companyName"`   // footer.company_name
	Description   string    `json:"description"`   // footer.description
	Email         string    `json:"email"`         // footer.email
	Phone         string    `json:"phone"`         // footer.phone
	LocationLine1 string    `json:"locationLine1"` // footer.location_line1
	LocationLine2 string    `json:"locationLine2"` // footer.location_line2
	IsActive      bool      `json:"isActive"`      // footer.is_active
	CreatedAt     time.Time `json:"createdAt"`     // footer.created_at
	UpdatedAt     time.Time `json:"updatedAt"`     // footer.updated_at
}
