package web

import (
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// tagForPath maps an /api request path to the cache tag it affects.
// Unknown paths (auth, upload) carry no tag.
func tagForPath(path string) string {
	p := strings.TrimPrefix(path, "/api/")
	seg := p
	if i := strings.IndexByte(p, '/'); i >= 0 {
		seg = p[:i]
	}
	switch seg {
	case "home":
		return TagHome
	case "skills":
		return TagSkills
	case "services":
		return TagServices
	case "testimonials":
		return TagTestimonials
	case "footer":
		return TagFooter
	case "services-section":
		return TagServicesSection
	case "testimonials-section":
		return TagTestimonialsSection
	}
	return ""
}

// Proxy forwards /api/* requests to the content API.  Successful
// mutations invalidate the entity's cache tag so the next server
// render refetches.
func (s *Server) Proxy(c echo.Context) error {
	req := c.Request()

	target := s.API.Base + req.URL.Path
	if req.URL.RawQuery != "" {
		target += "?" + req.URL.RawQuery
	}
	out, err := http.NewRequestWithContext(req.Context(), req.Method, target, req.Body)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "bad upstream request"})
	}
	for _, h := range []string{"Content-Type", "Authorization", "Cache-Control"} {
		if v := req.Header.Get(h); v != "" {
			out.Header.Set(h, v)
		}
	}

	resp, err := s.API.HTTP.Do(out)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "content api unreachable"})
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "upstream read failed"})
	}

	if req.Method != http.MethodGet && req.Method != http.MethodHead &&
		resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if tag := tagForPath(req.URL.Path); tag != "" {
			s.Cache.Invalidate(tag)
		}
	}

	ct := resp.Header.Get("Content-Type")
	if ct == "" {
		ct = echo.MIMEApplicationJSON
	}
	return c.Blob(resp.StatusCode, ct, body)
}
