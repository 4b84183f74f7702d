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

type createHomeReq struct {
	Greeting    string   `json:"greeting"`
	Roles       []string `json:"roles"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
	IsActive    bool     `json:"isActive"`
}

// CreateHome creates a new hero section variant.
func (h *ContentHandler) CreateHome(c echo.Context) error {
	var req createHomeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Greeting = strings.TrimSpace(req.Greeting)
	if req.Greeting == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "greeting required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	s := &model.HomeSection{
		Greeting:    req.Greeting,
		Roles:       req.Roles,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		IsActive:    req.IsActive,
		AuthorID:    h.authorID(c),
	}
	if err := h.Home.Create(ctx, s); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create home section failed"})
	}
	h.contentChanged("home-section", s.ID, queue.ActionCreated)
	return c.JSON(http.StatusCreated, s)
}

// ListHome returns every hero section variant, active first.
func (h *ContentHandler) ListHome(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Home.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list home sections failed"})
	}
	return c.JSON(http.StatusOK, items)
}

// GetActiveHome returns the publicly displayed hero section.  When no
// variant is active the body is {"homeSection": null} rather than 404,
// so the public page can render the missing state.
func (h *ContentHandler) GetActiveHome(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	s, err := h.Home.GetActive(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusOK, echo.Map{"homeSection": nil})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "get active home section failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"homeSection": s})
}

// GetHome returns one hero section by id.
func (h *ContentHandler) GetHome(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	s, err := h.Home.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "home section not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "get home section failed"})
	}
	return c.JSON(http.StatusOK, s)
}

// UpdateHome merges the provided fields onto an existing section.
func (h *ContentHandler) UpdateHome(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var patch model.HomeSectionPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	s, err := h.Home.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "home section not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "get home section failed"})
	}
	patch.Apply(s)
	if err := h.Home.Update(ctx, s); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update home section failed"})
	}
	h.contentChanged("home-section", s.ID, queue.ActionUpdated)
	return c.JSON(http.StatusOK, s)
}

// SetActiveHome makes the given variant the single active one.
func (h *ContentHandler) SetActiveHome(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	s, err := h.Home.SetActive(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "home section not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "set active failed"})
	}
	h.contentChanged("home-section", s.ID, queue.ActionActivated)
	return c.JSON(http.StatusOK, s)
}

// DeleteHome removes a hero section variant.
func (h *ContentHandler) DeleteHome(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Home.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "home section not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete home section failed"})
	}
	h.contentChanged("home-section", id, queue.ActionDeleted)
	return c.JSON(http.StatusOK, echo.Map{"message": "home section deleted"})
}
