package model

// Patch types carry partial updates decoded from PATCH bodies.  Nil
// pointer means "field absent, keep stored value".  Apply merges the
// provided fields onto an entity in place, mirroring on the wire what
// the admin forms send: only the edited fields.

// HomeSectionPatch is the partial update shape for a home section.
type HomeSectionPatch struct {
	Greeting    *string   `json:"greeting"`
	Roles       *[]string `json:"roles"`
	Description *string   `json:"description"`
	ImageURL    *string   `json:"imageUrl"`
	IsActive    *bool     `json:"isActive"`
}

func (p *HomeSectionPatch) Apply(s *HomeSection) {
	if p.Greeting != nil {
		s.Greeting = *p.Greeting
	}
	if p.Roles != nil {
		s.Roles = *p.Roles
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.ImageURL != nil {
		s.ImageURL = *p.ImageURL
	}
	if p.IsActive != nil {
		s.IsActive = *p.IsActive
	}
}

// SkillPatch is the partial update shape for a skill.
type SkillPatch struct {
	Name        *string `json:"name"`
	Icon        *string `json:"icon"`
	ImageURL    *string `json:"imageUrl"`
	SortOrder   *int    `json:"order"`
	IsPublished *bool   `json:"isPublished"`
}

func (p *SkillPatch) Apply(s *Skill) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Icon != nil {
		s.Icon = *p.Icon
	}
	if p.ImageURL != nil {
		s.ImageURL = *p.ImageURL
	}
	if p.SortOrder != nil {
		s.SortOrder = *p.SortOrder
	}
	if p.IsPublished != nil {
		s.IsPublished = *p.IsPublished
	}
}

// ServicePatch is the partial update shape for a service.
type ServicePatch struct {
	Title             *string   `json:"title"`
	ShortDescription  *string   `json:"shortDescription"`
	Icon              *string   `json:"icon"`
	ImageURL          *string   `json:"imageUrl"`
	Technologies      *[]string `json:"technologies"`
	ExperienceLevel   *string   `json:"experienceLevel"`
	DemoURL           *string   `json:"demoUrl"`
	GithubURL         *string   `json:"githubUrl"`
	ClientsServed     *string   `json:"clientsServed"`
	ProjectsCompleted *string   `json:"projectsCompleted"`
	Ratings           *string   `json:"ratings"`

	ShowDemoInPortfolio              *bool `json:"showDemoInPortfolio"`
	ShowGithubInPortfolio            *bool `json:"showGithubInPortfolio"`
	ShowClientsServedInPortfolio     *bool `json:"showClientsServedInPortfolio"`
	ShowProjectsCompletedInPortfolio *bool `json:"showProjectsCompletedInPortfolio"`
	ShowRatingsInPortfolio           *bool `json:"showRatingsInPortfolio"`

	SortOrder   *int  `json:"order"`
	IsPublished *bool `json:"isPublished"`
}

func (p *ServicePatch) Apply(s *Service) {
	if p.Title != nil {
		s.Title = *p.Title
	}
	if p.ShortDescription != nil {
		s.ShortDescription = *p.ShortDescription
	}
	if p.Icon != nil {
		s.Icon = *p.Icon
	}
	if p.ImageURL != nil {
		s.ImageURL = *p.ImageURL
	}
	if p.Technologies != nil {
		s.Technologies = *p.Technologies
	}
	if p.ExperienceLevel != nil {
		s.ExperienceLevel = *p.ExperienceLevel
	}
	if p.DemoURL != nil {
		s.DemoURL = *p.DemoURL
	}
	if p.GithubURL != nil {
		s.GithubURL = *p.GithubURL
	}
	if p.ClientsServed != nil {
		s.ClientsServed = *p.ClientsServed
	}
	if p.ProjectsCompleted != nil {
		s.ProjectsCompleted = *p.ProjectsCompleted
	}
	if p.Ratings != nil {
		s.Ratings = *p.Ratings
	}
	if p.ShowDemoInPortfolio != nil {
		s.ShowDemoInPortfolio = *p.ShowDemoInPortfolio
	}
	if p.ShowGithubInPortfolio != nil {
		s.ShowGithubInPortfolio = *p.ShowGithubInPortfolio
	}
	if p.ShowClientsServedInPortfolio != nil {
		s.ShowClientsServedInPortfolio = *p.ShowClientsServedInPortfolio
	}
	if p.ShowProjectsCompletedInPortfolio != nil {
		s.ShowProjectsCompletedInPortfolio = *p.ShowProjectsCompletedInPortfolio
	}
	if p.ShowRatingsInPortfolio != nil {
		s.ShowRatingsInPortfolio = *p.ShowRatingsInPortfolio
	}
	if p.SortOrder != nil {
		s.SortOrder = *p.SortOrder
	}
	if p.IsPublished != nil {
		s.IsPublished = *p.IsPublished
	}
}

// TestimonialPatch is the partial update shape for a testimonial.
type TestimonialPatch struct {
	Name        *string `json:"name"`
	Title       *string `json:"title"`
	Feedback    *string `json:"feedback"`
	Image       *string `json:"image"`
	Stars       *int    `json:"stars"`
	IsPublished *bool   `json:"isPublished"`
}

func (p *TestimonialPatch) Apply(t *Testimonial) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Feedback != nil {
		t.Feedback = *p.Feedback
	}
	if p.Image != nil {
		t.Image = *p.Image
	}
	if p.Stars != nil {
		t.Stars = *p.Stars
	}
	if p.IsPublished != nil {
		t.IsPublished = *p.IsPublished
	}
}

// FooterPatch is the partial update shape for the footer configuration.
type FooterPatch struct {
	CompanyName   *string `json:"companyName"`
	Description   *string `json:"description"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	LocationLine1 *string `json:"locationLine1"`
	LocationLine2 *string `json:"locationLine2"`
	IsActive      *bool   `json:"isActive"`
}

func (p *FooterPatch) Apply(f *Footer) {
	if p.CompanyName != nil {
		f.CompanyName = *p.CompanyName
	}
	if p.Description != nil {
		f.Description = *p.Description
	}
	if p.Email != nil {
		f.Email = *p.Email
	}
	if p.Phone != nil {
		f.Phone = *p.Phone
	}
	if p.LocationLine1 != nil {
		f.LocationLine1 = *p.LocationLine1
	}
	if p.LocationLine2 != nil {
		f.LocationLine2 = *p.LocationLine2
	}
	if p.IsActive != nil {
		f.IsActive = *p.IsActive
	}
}

// SectionConfigPatch is the partial update shape for a section subtitle row.
type SectionConfigPatch struct {
	Subtitle *string `json:"subtitle"`
	IsActive *bool   `json:"isActive"`
}

func (p *SectionConfigPatch) Apply(s *SectionConfig) {
	if p.Subtitle != nil {
		s.Subtitle = *p.Subtitle
	}
	if p.IsActive != nil {
		s.IsActive = *p.IsActive
	}
}
