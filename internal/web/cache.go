package web

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache tags, one per content area.  Dashboard reads go through the tag
// cache; a successful mutation proxied for an entity drops its tag so
// the next render refetches.
const (
	TagHome                = "home"
	TagSkills              = "skills"
	TagServices            = "services"
	TagTestimonials        = "testimonials"
	TagFooter              = "footer"
	TagServicesSection     = "services-section"
	TagTestimonialsSection = "testimonials-section"
)

// TagCache is a small read-through cache keyed by content tag.
type TagCache struct {
	c *gocache.Cache
}

func NewTagCache(ttl time.Duration) *TagCache {
	return &TagCache{c: gocache.New(ttl, 2*ttl)}
}

// Get returns the cached value for a tag, fetching and storing it on a
// miss.  Fetch errors are not cached.
func (t *TagCache) Get(tag string, fetch func() (any, error)) (any, error) {
	if v, found := t.c.Get(tag); found {
		return v, nil
	}
	v, err := fetch()
	if err != nil {
		return nil, err
	}
	t.c.Set(tag, v, gocache.DefaultExpiration)
	return v, nil
}

// Invalidate drops one tag.
func (t *TagCache) Invalidate(tag string) {
	t.c.Delete(tag)
}

// InvalidateAll drops every tag.
func (t *TagCache) InvalidateAll() {
	t.c.Flush()
}
