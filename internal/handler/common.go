package handler // handler defines http handlers

import (
	"context"
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/jhasmany-fernandez/portfolio-backend/internal/config"
	"github.com/jhasmany-fernandez/portfolio-backend/internal/middleware"
	"github.com/jhasmany-fernandez/portfolio-backend/internal/queue"
	"github.com/jhasmany-fernandez/portfolio-backend/internal/repository"
	"github.com/jhasmany-fernandez/portfolio-backend/internal/storage"
)

// PublishFunc publishes a content-changed event.  A nil func disables
// publishing, which tests rely on.
type PublishFunc func(ctx context.Context, ev queue.ContentChangedEvent) error

// ContentHandler bundles the stores used by the content endpoints plus
// the side-channel collaborators: the upload store for image cleanup,
// the Redis client for response-cache invalidation and the event
// publisher.
type ContentHandler struct {
	Home                repository.HomeSectionStore
	Skills              repository.SkillStore
	Services            repository.ServiceStore
	Testimonials        repository.TestimonialStore
	Footer              repository.FooterStore
	ServicesSection     repository.SectionStore
	TestimonialsSection repository.SectionStore

	Uploads         *storage.Uploads
	Redis           *redis.Client
	CacheCfg        config.CacheConfig
	Publish         PublishFunc
	DefaultAuthorID uint64
}

// getUserID extracts the user_id stored by the JWT middleware and
// converts it to uint64.
func getUserID(c echo.Context) (uint64, error) {
	v := c.Get("user_id")
	switch t := v.(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}

// authorID returns the authenticated principal's id, or the configured
// default author when the request carries none.  Content routes run
// unguarded by default, so most creates fall back to the default.
func (h *ContentHandler) authorID(c echo.Context) uint64 {
	if id, err := getUserID(c); err == nil && id != 0 {
		return id
	}
	return h.DefaultAuthorID
}

// parseID parses the :id path parameter.
func parseID(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}

// parsePublished maps the optional ?published=true|false query to a
// tri-state filter.  Any other value means no filter, as the original
// API behaves.
func parsePublished(c echo.Context) *bool {
	switch c.QueryParam("published") {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	}
	return nil
}

// contentChanged runs the post-mutation side effects: drop the cached
// public responses so the next read is fresh, and publish the event to
// the broker.  Both are fire-and-forget; neither can fail the request.
func (h *ContentHandler) contentChanged(entity string, id uint64, action string) {
	if h.Redis != nil {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			middleware.InvalidateCache(ctx, h.Redis, h.CacheCfg.Prefix)
		}()
	}
	if h.Publish != nil {
		ev := queue.ContentChangedEvent{
			Entity:    entity,
			ID:        id,
			Action:    action,
			ChangedAt: time.Now().UTC().Format(time.RFC3339),
		}
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := h.Publish(ctx, ev); err != nil {
				log.Printf("content event publish failed: %v", err)
			}
		}()
	}
}
