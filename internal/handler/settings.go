package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jhasmany-fernandez/portfolio-backend/internal/model"
	"github.com/jhasmany-fernandez/portfolio-backend/internal/queue"
	"github.com/jhasmany-fernandez/portfolio-backend/internal/repository"
)

// Singleton configuration endpoints: footer plus the two section
// subtitle tables.  GET /active materializes the default row on first
// access; PATCH /:id edits whichever row the dashboard holds.

// GetActiveFooter returns the footer configuration, creating the
// default row when the table is empty.
func (h *ContentHandler) GetActiveFooter(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	f, err := h.Footer.GetActiveOrCreate(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "get footer failed"})
	}
	return c.JSON(http.StatusOK, f)
}

// UpdateFooter merges the provided fields onto the footer row.
func (h *ContentHandler) UpdateFooter(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var patch model.FooterPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	f, err := h.Footer.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "footer not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "get footer failed"})
	}
	patch.Apply(f)
	if err := h.Footer.Update(ctx, f); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update footer failed"})
	}
	h.contentChanged("footer", f.ID, queue.ActionUpdated)
	return c.JSON(http.StatusOK, f)
}

func (h *ContentHandler) getActiveSection(c echo.Context, store repository.SectionStore, entity string) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	s, err := store.GetActiveOrCreate(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "get " + entity + " failed"})
	}
	return c.JSON(http.StatusOK, s)
}

func (h *ContentHandler) updateSection(c echo.Context, store repository.SectionStore, entity string) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var patch model.SectionConfigPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	s, err := store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": entity + " not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "get " + entity + " failed"})
	}
	patch.Apply(s)
	if err := store.Update(ctx, s); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update " + entity + " failed"})
	}
	h.contentChanged(entity, s.ID, queue.ActionUpdated)
	return c.JSON(http.StatusOK, s)
}

// GetActiveServicesSection returns the services section subtitle row.
func (h *ContentHandler) GetActiveServicesSection(c echo.Context) error {
	return h.getActiveSection(c, h.ServicesSection, "services-section")
}

// UpdateServicesSection edits the services section subtitle row.
func (h *ContentHandler) UpdateServicesSection(c echo.Context) error {
	return h.updateSection(c, h.ServicesSection, "services-section")
}

// GetActiveTestimonialsSection returns the testimonials section subtitle row.
func (h *ContentHandler) GetActiveTestimonialsSection(c echo.Context) error {
	return h.getActiveSection(c, h.TestimonialsSection, "testimonials-section")
}

// UpdateTestimonialsSection edits the testimonials section subtitle row.
func (h *ContentHandler) UpdateTestimonialsSection(c echo.Context) error {
	return h.updateSection(c, h.TestimonialsSection, "testimonials-section")
}
