package web

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jhasmany-fernandez/portfolio-backend/internal/model"
)

// indexData feeds the public page template.
type indexData struct {
	Home                *model.HomeSection
	Skills              []*model.Skill
	Services            []*model.Service
	Testimonials        []*model.Testimonial
	Footer              *model.Footer
	ServicesSection     *model.SectionConfig
	TestimonialsSection *model.SectionConfig
	PollSeconds         int
}

// Index renders the public portfolio page.  Data is always fetched
// fresh; only published content is shown.  Individual fetch failures
// degrade to an empty section instead of failing the whole page.
func (s *Server) Index(c echo.Context) error {
	ctx := c.Request().Context()
	data := indexData{PollSeconds: s.Cfg.PollSeconds}

	data.Home, _ = s.API.ActiveHome(ctx)
	data.Skills, _ = s.API.Skills(ctx, true)
	data.Services, _ = s.API.Services(ctx, true)
	data.Testimonials, _ = s.API.Testimonials(ctx, true)
	data.Footer, _ = s.API.Footer(ctx)
	data.ServicesSection, _ = s.API.ServicesSection(ctx)
	data.TestimonialsSection, _ = s.API.TestimonialsSection(ctx)

	return c.Render(http.StatusOK, "index.html", data)
}

// Dashboard reads go through the tag cache; mutations proxied through
// /api drop the relevant tag, so a freshly saved change shows up on the
// next page load.

func (s *Server) DashboardHome(c echo.Context) error {
	ctx := c.Request().Context()
	v, err := s.Cache.Get(TagHome, func() (any, error) {
		return s.API.HomeSections(ctx)
	})
	if err != nil {
		return c.Render(http.StatusBadGateway, "error.html", err.Error())
	}
	return c.Render(http.StatusOK, "dashboard_home.html", v.([]*model.HomeSection))
}

func (s *Server) DashboardSkills(c echo.Context) error {
	ctx := c.Request().Context()
	v, err := s.Cache.Get(TagSkills, func() (any, error) {
		return s.API.Skills(ctx, false)
	})
	if err != nil {
		return c.Render(http.StatusBadGateway, "error.html", err.Error())
	}
	return c.Render(http.StatusOK, "dashboard_skills.html", v.([]*model.Skill))
}

func (s *Server) DashboardServices(c echo.Context) error {
	ctx := c.Request().Context()
	type pageData struct {
		Items   []*model.Service
		Section *model.SectionConfig
	}
	items, err := s.Cache.Get(TagServices, func() (any, error) {
		return s.API.Services(ctx, false)
	})
	if err != nil {
		return c.Render(http.StatusBadGateway, "error.html", err.Error())
	}
	section, err := s.Cache.Get(TagServicesSection, func() (any, error) {
		return s.API.ServicesSection(ctx)
	})
	if err != nil {
		return c.Render(http.StatusBadGateway, "error.html", err.Error())
	}
	return c.Render(http.StatusOK, "dashboard_services.html", pageData{
		Items:   items.([]*model.Service),
		Section: section.(*model.SectionConfig),
	})
}

func (s *Server) DashboardTestimonials(c echo.Context) error {
	ctx := c.Request().Context()
	type pageData struct {
		Items   []*model.Testimonial
		Section *model.SectionConfig
	}
	items, err := s.Cache.Get(TagTestimonials, func() (any, error) {
		return s.API.Testimonials(ctx, false)
	})
	if err != nil {
		return c.Render(http.StatusBadGateway, "error.html", err.Error())
	}
	section, err := s.Cache.Get(TagTestimonialsSection, func() (any, error) {
		return s.API.TestimonialsSection(ctx)
	})
	if err != nil {
		return c.Render(http.StatusBadGateway, "error.html", err.Error())
	}
	return c.Render(http.StatusOK, "dashboard_testimonials.html", pageData{
		Items:   items.([]*model.Testimonial),
		Section: section.(*model.SectionConfig),
	})
}

func (s *Server) DashboardFooter(c echo.Context) error {
	ctx := c.Request().Context()
	v, err := s.Cache.Get(TagFooter, func() (any, error) {
		return s.API.Footer(ctx)
	})
	if err != nil {
		return c.Render(http.StatusBadGateway, "error.html", err.Error())
	}
	return c.Render(http.StatusOK, "dashboard_footer.html", v.(*model.Footer))
}
