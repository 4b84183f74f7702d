package web

import (
	"embed"
	"html/template"
	"io"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jhasmany-fernandez/portfolio-backend/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

// Server bundles everything the frontend needs: the API client, the tag
// cache over dashboard reads and the parsed templates.
type Server struct {
	Cfg   config.WebConfig
	API   *Client
	Cache *TagCache
	tmpl  *template.Template
}

func NewServer(cfg config.WebConfig) (*Server, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Server{
		Cfg:   cfg,
		API:   NewClient(cfg.APIBaseURL),
		Cache: NewTagCache(time.Duration(cfg.CacheTTLSec) * time.Second),
		tmpl:  tmpl,
	}, nil
}

// Render implements echo.Renderer.
func (s *Server) Render(w io.Writer, name string, data any, c echo.Context) error {
	return s.tmpl.ExecuteTemplate(w, name, data)
}

// Register wires every frontend route onto the Echo instance.
func (s *Server) Register(e *echo.Echo) {
	e.Renderer = s

	e.GET("/", s.Index)

	e.GET("/dashboard", func(c echo.Context) error {
		return c.Redirect(302, "/dashboard/home")
	})
	e.GET("/dashboard/home", s.DashboardHome)
	e.GET("/dashboard/skills", s.DashboardSkills)
	e.GET("/dashboard/services", s.DashboardServices)
	e.GET("/dashboard/testimonials", s.DashboardTestimonials)
	e.GET("/dashboard/footer", s.DashboardFooter)

	e.Any("/api/*", s.Proxy)
}
