package router // router wires HTTP routes onto the Echo instance

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/jhasmany-fernandez/portfolio-backend/internal/config"
	"github.com/jhasmany-fernandez/portfolio-backend/internal/handler"
	"github.com/jhasmany-fernandez/portfolio-backend/internal/middleware"
)

// RegisterRoutes registers routes that carry no middleware at all.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the auth endpoints.  Register and login are
// open; /api/auth/me sits behind the JWT middleware.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/api/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.GET("/me", a.Me, middleware.JWTAuth(jwtSecret))
}

// RegisterContent registers the content API under /api plus the static
// /uploads file server.
//
// Public GET routes run behind the Redis response cache; a nil Redis
// client turns the cache middleware into a pass-through.  Mutations run
// unguarded by default so the dashboard works without a login flow;
// cfg.AuthRequired switches them behind JWT plus the admin role.
// OptionalJWTAuth still parses tokens on unguarded routes so creates
// attribute content to the caller when one is present.
func RegisterContent(e *echo.Echo, h *handler.ContentHandler, cfg config.Config, rdb *redis.Client) {
	cache := middleware.NewRedisCache(h.CacheCfg, rdb)

	guard := []echo.MiddlewareFunc{middleware.OptionalJWTAuth(cfg.JWTSecret)}
	if cfg.AuthRequired {
		guard = []echo.MiddlewareFunc{
			middleware.JWTAuth(cfg.JWTSecret),
			middleware.RequireRole("admin"),
		}
	}

	api := e.Group("/api")

	home := api.Group("/home")
	home.GET("", h.ListHome, cache)
	home.GET("/active", h.GetActiveHome, cache)
	home.GET("/:id", h.GetHome, cache)
	home.POST("", h.CreateHome, guard...)
	home.PATCH("/:id", h.UpdateHome, guard...)
	home.PATCH("/:id/set-active", h.SetActiveHome, guard...)
	home.DELETE("/:id", h.DeleteHome, guard...)

	skills := api.Group("/skills")
	skills.GET("", h.ListSkills, cache)
	skills.GET("/:id", h.GetSkill, cache)
	skills.POST("", h.CreateSkill, guard...)
	skills.PATCH("/:id", h.UpdateSkill, guard...)
	skills.PATCH("/:id/order", h.UpdateSkillOrder, guard...)
	skills.PATCH("/:id/toggle-published", h.ToggleSkillPublished, guard...)
	skills.DELETE("/:id", h.DeleteSkill, guard...)

	services := api.Group("/services")
	services.GET("", h.ListServices, cache)
	services.GET("/:id", h.GetService, cache)
	services.POST("", h.CreateService, guard...)
	services.PATCH("/:id", h.UpdateService, guard...)
	services.PATCH("/:id/order", h.UpdateServiceOrder, guard...)
	services.PATCH("/:id/toggle-published", h.ToggleServicePublished, guard...)
	services.DELETE("/:id", h.DeleteService, guard...)

	testimonials := api.Group("/testimonials")
	testimonials.GET("", h.ListTestimonials, cache)
	testimonials.GET("/:id", h.GetTestimonial, cache)
	testimonials.POST("", h.CreateTestimonial, guard...)
	testimonials.PATCH("/:id", h.UpdateTestimonial, guard...)
	testimonials.PATCH("/:id/toggle-published", h.ToggleTestimonialPublished, guard...)
	testimonials.DELETE("/:id", h.DeleteTestimonial, guard...)

	api.GET("/footer/active", h.GetActiveFooter, cache)
	api.PATCH("/footer/:id", h.UpdateFooter, guard...)
	api.GET("/services-section/active", h.GetActiveServicesSection, cache)
	api.PATCH("/services-section/:id", h.UpdateServicesSection, guard...)
	api.GET("/testimonials-section/active", h.GetActiveTestimonialsSection, cache)
	api.PATCH("/testimonials-section/:id", h.UpdateTestimonialsSection, guard...)

	api.POST("/upload/image", h.UploadImage, guard...)
	if h.Uploads != nil {
		e.Static("/uploads", h.Uploads.Dir())
	}
}
