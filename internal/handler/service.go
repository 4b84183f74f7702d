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

type createServiceReq struct {
	Title             string   `json:"title"`
	ShortDescription  string   `json:"shortDescription"`
	Icon              string   `json:"icon"`
	ImageURL          string   `json:"imageUrl"`
	Technologies      []string `json:"technologies"`
	ExperienceLevel   string   `json:"experienceLevel"`
	DemoURL           string   `json:"demoUrl"`
	GithubURL         string   `json:"githubUrl"`
	ClientsServed     string   `json:"clientsServed"`
	ProjectsCompleted string   `json:"projectsCompleted"`
	Ratings           string   `json:"ratings"`

	ShowDemoInPortfolio              *bool `json:"showDemoInPortfolio"`
	ShowGithubInPortfolio            *bool `json:"showGithubInPortfolio"`
	ShowClientsServedInPortfolio     *bool `json:"showClientsServedInPortfolio"`
	ShowProjectsCompletedInPortfolio *bool `json:"showProjectsCompletedInPortfolio"`
	ShowRatingsInPortfolio           *bool `json:"showRatingsInPortfolio"`

	SortOrder   int   `json:"order"`
	IsPublished *bool `json:"isPublished"`
}

func boolOr(p *bool, def bool) bool {
	if p != nil {
		return *p
	}
	return def
}

// CreateService adds a service card.  Show flags default to true so a
// freshly created card displays every provided detail.
func (h *ContentHandler) CreateService(c echo.Context) error {
	var req createServiceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	s := &model.Service{
		Title:             req.Title,
		ShortDescription:  req.ShortDescription,
		Icon:              req.Icon,
		ImageURL:          req.ImageURL,
		Technologies:      req.Technologies,
		ExperienceLevel:   req.ExperienceLevel,
		DemoURL:           req.DemoURL,
		GithubURL:         req.GithubURL,
		ClientsServed:     req.ClientsServed,
		ProjectsCompleted: req.ProjectsCompleted,
		Ratings:           req.Ratings,

		ShowDemoInPortfolio:              boolOr(req.ShowDemoInPortfolio, true),
		ShowGithubInPortfolio:            boolOr(req.ShowGithubInPortfolio, true),
		ShowClientsServedInPortfolio:     boolOr(req.ShowClientsServedInPortfolio, true),
		ShowProjectsCompletedInPortfolio: boolOr(req.ShowProjectsCompletedInPortfolio, true),
		ShowRatingsInPortfolio:           boolOr(req.ShowRatingsInPortfolio, true),

		SortOrder:   req.SortOrder,
		IsPublished: boolOr(req.IsPublished, true),
		AuthorID:    h.authorID(c),
	}
	if err := h.Services.Create(ctx, s); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create service failed"})
	}
	h.contentChanged("service", s.ID, queue.ActionCreated)
	return c.JSON(http.StatusCreated, s)
}

// ListServices returns services in display order, optionally narrowed
// with ?published=true|false.
func (h *ContentHandler) ListServices(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Services.List(ctx, parsePublished(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list services failed"})
	}
	return c.JSON(http.StatusOK, items)
}

// GetService returns one service card by id.
func (h *ContentHandler) GetService(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	s, err := h.Services.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "service not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "get service failed"})
	}
	return c.JSON(http.StatusOK, s)
}

// UpdateService merges the provided fields.
func (h *ContentHandler) UpdateService(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var patch model.ServicePatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	s, err := h.Services.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "service not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "get service failed"})
	}
	patch.Apply(s)
	if err := h.Services.Update(ctx, s); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update service failed"})
	}
	h.contentChanged("service", s.ID, queue.ActionUpdated)
	return c.JSON(http.StatusOK, s)
}

// UpdateServiceOrder sets the display order value.
func (h *ContentHandler) UpdateServiceOrder(c echo.Context) error {
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

	s, err := h.Services.UpdateOrder(ctx, id, req.Order)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "service not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update order failed"})
	}
	h.contentChanged("service", s.ID, queue.ActionReordered)
	return c.JSON(http.StatusOK, s)
}

// ToggleServicePublished flips the publish flag.
func (h *ContentHandler) ToggleServicePublished(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	s, err := h.Services.TogglePublished(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "service not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "toggle published failed"})
	}
	h.contentChanged("service", s.ID, queue.ActionToggled)
	return c.JSON(http.StatusOK, s)
}

// DeleteService removes a service card.
func (h *ContentHandler) DeleteService(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Services.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "service not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete service failed"})
	}
	h.contentChanged("service", id, queue.ActionDeleted)
	return c.JSON(http.StatusOK, echo.Map{"message": "service deleted"})
}
