// Package web serves the public portfolio page and the admin dashboard.
// Pages are rendered server side from data fetched over the content API;
// browser-side JS only re-polls public sections.
package web

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jhasmany-fernandez/portfolio-backend/internal/model"
)

// Client is a thin typed wrapper over the content API.
type Client struct {
	Base string // e.g. http://localhost:3001
	HTTP *http.Client
}

func NewClient(base string) *Client {
	return &Client{Base: base, HTTP: &http.Client{Timeout: 10 * time.Second}}
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Base+path, nil)
	if err != nil {
		return err
	}
	// Skip the API-side response cache; renders want current data.
	req.Header.Set("Cache-Control", "no-store")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("GET %s: status %d: %s", path, resp.StatusCode, body)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// ActiveHome returns the active hero section, or nil when none is set.
func (c *Client) ActiveHome(ctx context.Context) (*model.HomeSection, error) {
	var wrap struct {
		HomeSection *model.HomeSection `json:"homeSection"`
	}
	if err := c.getJSON(ctx, "/api/home/active", &wrap); err != nil {
		return nil, err
	}
	return wrap.HomeSection, nil
}

func (c *Client) HomeSections(ctx context.Context) ([]*model.HomeSection, error) {
	var items []*model.HomeSection
	err := c.getJSON(ctx, "/api/home", &items)
	return items, err
}

func (c *Client) Skills(ctx context.Context, publishedOnly bool) ([]*model.Skill, error) {
	path := "/api/skills"
	if publishedOnly {
		path += "?published=true"
	}
	var items []*model.Skill
	err := c.getJSON(ctx, path, &items)
	return items, err
}

func (c *Client) Services(ctx context.Context, publishedOnly bool) ([]*model.Service, error) {
	path := "/api/services"
	if publishedOnly {
		path += "?published=true"
	}
	var items []*model.Service
	err := c.getJSON(ctx, path, &items)
	return items, err
}

func (c *Client) Testimonials(ctx context.Context, publishedOnly bool) ([]*model.Testimonial, error) {
	path := "/api/testimonials"
	if publishedOnly {
		path += "?published=true"
	}
	var items []*model.Testimonial
	err := c.getJSON(ctx, path, &items)
	return items, err
}

func (c *Client) Footer(ctx context.Context) (*model.Footer, error) {
	var f model.Footer
	if err := c.getJSON(ctx, "/api/footer/active", &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (c *Client) ServicesSection(ctx context.Context) (*model.SectionConfig, error) {
	var s model.SectionConfig
	if err := c.getJSON(ctx, "/api/services-section/active", &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) TestimonialsSection(ctx context.Context) (*model.SectionConfig, error) {
	var s model.SectionConfig
	if err := c.getJSON(ctx, "/api/testimonials-section/active", &s); err != nil {
		return nil, err
	}
	return &s, nil
}
