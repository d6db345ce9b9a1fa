package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/smalab/social-analyzer/backend/internal/models"
	"github.com/smalab/social-analyzer/backend/internal/repositories"
)

// PlatformHandler handles HTTP requests related to social media platforms
type PlatformHandler struct {
	platformRepository repositories.PlatformRepository
}

// NewPlatformHandler creates a new PlatformHandler
func NewPlatformHandler(platformRepo repositories.PlatformRepository) *PlatformHandler {
	return &PlatformHandler{platformRepository: platformRepo}
}

// RegisterPlatformRoutes registers platform-related routes
func (h *PlatformHandler) RegisterPlatformRoutes(g *echo.Group) {
	g.POST("/platforms", h.CreatePlatform)
	g.GET("/platforms", h.ListPlatforms)
}

// CreatePlatform handles registering a new social media platform
func (h *PlatformHandler) CreatePlatform(c echo.Context) error {
	var req models.CreatePlatformRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := c.Validate(&req); err != nil {
		return err
	}

	platform := models.SocialMediaPlatform{Name: req.Name}
	if err := h.platformRepository.CreatePlatform(&platform); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, platform)
}

// ListPlatforms returns all registered platforms
func (h *PlatformHandler) ListPlatforms(c echo.Context) error {
	platforms, err := h.platformRepository.GetPlatforms()
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, platforms)
}
