package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/smalab/social-analyzer/backend/internal/repositories"
)

// ExperimentHandler handles HTTP requests for the experiment read side
type ExperimentHandler struct {
	experimentRepository repositories.ExperimentRepository
}

// NewExperimentHandler creates a new ExperimentHandler
func NewExperimentHandler(experimentRepo repositories.ExperimentRepository) *ExperimentHandler {
	return &ExperimentHandler{experimentRepository: experimentRepo}
}

// RegisterExperimentRoutes registers experiment query routes
func (h *ExperimentHandler) RegisterExperimentRoutes(g *echo.Group) {
	g.GET("/experiments/by-posts", h.FindExperimentsByPosts)
	g.GET("/experiments/:project_name", h.GetExperimentDetails)
}

// GetExperimentDetails returns the full experiment view of one project:
// associated posts with their results and per-field completion statistics.
// A missing project is 404; an existing project with no posts or fields
// returns empty lists.
func (h *ExperimentHandler) GetExperimentDetails(c echo.Context) error {
	details, err := h.experimentRepository.GetExperimentDetails(c.Param("project_name"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, details)
}

// FindExperimentsByPosts returns the experiment details of every project
// referencing any of the comma-separated post ids in the query string
func (h *ExperimentHandler) FindExperimentsByPosts(c echo.Context) error {
	raw := c.QueryParam("post_ids")
	if raw == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "post_ids query parameter is required")
	}

	parts := strings.Split(raw, ",")
	ids := make([]uint, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32)
		if err != nil || id == 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "post_ids must be positive integers")
		}
		ids = append(ids, uint(id))
	}

	details, err := h.experimentRepository.FindExperimentsByPosts(ids)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, details)
}
