package model

import "time"

// Service is an offering card on the public site.  Beyond the usual
// publish gate, each optional detail (demo link, github link, clients
// served, projects completed, ratings) has its own show flag so the
// admin can hide individual fields without unpublishing the card.
type Service struct {
	ID                uint64   `json:"id"`                // services.id
	Title             string   `json:"title"`             // services.title
	ShortDescription  string   `json:"shortDescription"`  // services.short_description
	Icon              string   `json:"icon"`              // services.icon
	ImageURL          string   `json:"imageUrl"`          // services.image_url
	Technologies      []string `json:"technologies"`      // services.technologies (comma separated in DB)
	ExperienceLevel   string   `json:"experienceLevel"`   // services.experience_level
	DemoURL           string   `json:"demoUrl"`           // services.demo_url
	GithubURL         string   `json:"githubUrl"`         // services.github_url
	ClientsServed     string   `json:"clientsServed"`     // services.clients_served
	ProjectsCompleted string   `json:"projectsCompleted"` // services.projects_completed
	Ratings           string   `json:"ratings"`           // services.ratings

	ShowDemoInPortfolio              bool `json:"showDemoInPortfolio"`              // services.show_demo
	ShowGithubInPortfolio            bool `json:"showGithubInPortfolio"`            // services.show_github
	ShowClientsServedInPortfolio     bool `json:"showClientsServedInPortfolio"`     // services.show_clients_served
	ShowProjectsCompletedInPortfolio bool `json:"showProjectsCompletedInPortfolio"` // services.show_projects_completed
	ShowRatingsInPortfolio           bool `json:"showRatingsInPortfolio"`           // services.show_ratings

	SortOrder   int       `json:"order"`       // services.sort_order
	IsPublished bool      `json:"isPublished"` // services.is_published
	AuthorID    uint64    `json:"authorId"`    // services.author_id
	CreatedAt   time.Time `json:"createdAt"`   // services.created_at
	UpdatedAt   time.Time `json:"updatedAt"`   // services.updated_at
}
