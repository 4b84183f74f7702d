package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jhasmany-fernandez/portfolio-backend/internal/model"
	"github.com/jhasmany-fernandez/portfolio-backend/internal/queue"
	"github.com/jhasmany-fernandez/portfolio-backend/internal/repository"
)

type createTestimonialReq struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Feedback    string `json:"feedback"`
	Image       string `json:"image"`
	Stars       int    `json:"stars"`
	IsPublished *bool  `json:"isPublished"`
}

// CreateTestimonial adds a client quote.  Stars must be 1..5.
func (h *ContentHandler) CreateTestimonial(c echo.Context) error {
	var req createTestimonialReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Feedback = strings.TrimSpace(req.Feedback)
	if req.Name == "" || req.Feedback == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name/feedback required"})
	}
	if req.Stars < 1 || req.Stars > 5 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "stars must be between 1 and 5"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	t := &model.Testimonial{
		Name:        req.Name,
		Title:       req.Title,
		Feedback:    req.Feedback,
		Image:       req.Image,
		Stars:       req.Stars,
		IsPublished: boolOr(req.IsPublished, true),
	}
	if err := h.Testimonials.Create(ctx, t); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create testimonial failed"})
	}
	h.contentChanged("testimonial", t.ID, queue.ActionCreated)
	return c.JSON(http.StatusCreated, t)
}

// ListTestimonials returns testimonials newest first, optionally
// narrowed with ?published=true|false.
func (h *ContentHandler) ListTestimonials(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Testimonials.List(ctx, parsePublished(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list testimonials failed"})
	}
	return c.JSON(http.StatusOK, items)
}

// GetTestimonial returns one testimonial by id.
func (h *ContentHandler) GetTestimonial(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	t, err := h.Testimonials.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "testimonial not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "get testimonial failed"})
	}
	return c.JSON(http.StatusOK, t)
}

// UpdateTestimonial merges the provided fields.  A stars value outside
// 1..5 is rejected before anything is written.
func (h *ContentHandler) UpdateTestimonial(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var patch model.TestimonialPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if patch.Stars != nil && (*patch.Stars < 1 || *patch.Stars > 5) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "stars must be between 1 and 5"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	t, err := h.Testimonials.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "testimonial not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "get testimonial failed"})
	}
	patch.Apply(t)
	if err := h.Testimonials.Update(ctx, t); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update testimonial failed"})
	}
	h.contentChanged("testimonial", t.ID, queue.ActionUpdated)
	return c.JSON(http.StatusOK, t)
}

// ToggleTestimonialPublished flips the publish flag.
func (h *ContentHandler) ToggleTestimonialPublished(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	t, err := h.Testimonials.TogglePublished(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "testimonial not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "toggle published failed"})
	}
	h.contentChanged("testimonial", t.ID, queue.ActionToggled)
	return c.JSON(http.StatusOK, t)
}

// DeleteTestimonial removes a testimonial.
func (h *ContentHandler) DeleteTestimonial(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Testimonials.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "testimonial not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete testimonial failed"})
	}
	h.contentChanged("testimonial", id, queue.ActionDeleted)
	return c.JSON(http.StatusOK, echo.Map{"message": "testimonial deleted"})
}
