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

type createSkillReq struct {
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	ImageURL    string `json:"imageUrl"`
	SortOrder   int    `json:"order"`
	IsPublished *bool  `json:"isPublished"`
}

type orderReq struct {
	Order int `json:"order"`
}

// CreateSkill adds a skill to the grid.  New skills are published
// unless the body says otherwise.
func (h *ContentHandler) CreateSkill(c echo.Context) error {
	var req createSkillReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
	}
	published := true
	if req.IsPublished != nil {
		published = *req.IsPublished
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	s := &model.Skill{
		Name:        req.Name,
		Icon:        req.Icon,
		ImageURL:    req.ImageURL,
		SortOrder:   req.SortOrder,
		IsPublished: published,
		AuthorID:    h.authorID(c),
	}
	if err := h.Skills.Create(ctx, s); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create skill failed"})
	}
	h.contentChanged("skill", s.ID, queue.ActionCreated)
	return c.JSON(http.StatusCreated, s)
}

// ListSkills returns skills in display order, optionally narrowed with
// ?published=true|false.
func (h *ContentHandler) ListSkills(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Skills.List(ctx, parsePublished(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list skills failed"})
	}
	return c.JSON(http.StatusOK, items)
}

// GetSkill returns one skill by id.
func (h *ContentHandler) GetSkill(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	s, err := h.Skills.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "skill not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "get skill failed"})
	}
	return c.JSON(http.StatusOK, s)
}

// UpdateSkill merges the provided fields.  When the update replaces a
// non-empty image with a different one, the previous file is removed
// from the uploads dir best-effort.
func (h *ContentHandler) UpdateSkill(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var patch model.SkillPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	s, err := h.Skills.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "skill not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "get skill failed"})
	}

	oldImage := s.ImageURL
	patch.Apply(s)
	if err := h.Skills.Update(ctx, s); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update skill failed"})
	}
	if h.Uploads != nil && patch.ImageURL != nil && oldImage != "" && oldImage != s.ImageURL {
		h.Uploads.Remove(oldImage)
	}
	h.contentChanged("skill", s.ID, queue.ActionUpdated)
	return c.JSON(http.StatusOK, s)
}

// UpdateSkillOrder sets the display order value.  Order values need not
// be unique; ties fall back to creation time.
func (h *ContentHandler) UpdateSkillOrder(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req orderReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	s, err := h.Skills.UpdateOrder(ctx, id, req.Order)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "skill not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update order failed"})
	}
	h.contentChanged("skill", s.ID, queue.ActionReordered)
	return c.JSON(http.StatusOK, s)
}

// ToggleSkillPublished flips the publish flag.
func (h *ContentHandler) ToggleSkillPublished(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	s, err := h.Skills.TogglePublished(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "skill not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "toggle published failed"})
	}
	h.contentChanged("skill", s.ID, queue.ActionToggled)
	return c.JSON(http.StatusOK, s)
}

// DeleteSkill removes a skill and its uploaded image.
func (h *ContentHandler) DeleteSkill(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	s, err := h.Skills.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "skill not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "get skill failed"})
	}
	if err := h.Skills.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "skill not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete skill failed"})
	}
	if h.Uploads != nil && s.ImageURL != "" {
		h.Uploads.Remove(s.ImageURL)
	}
	h.contentChanged("skill", id, queue.ActionDeleted)
	return c.JSON(http.StatusOK, echo.Map{"message": "skill deleted"})
}
