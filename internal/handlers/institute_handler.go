package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/smalab/social-analyzer/backend/internal/models"
	"github.com/smalab/social-analyzer/backend/internal/repositories"
)

// InstituteHandler handles HTTP requests related to institutes
type InstituteHandler struct {
	instituteRepository repositories.InstituteRepository
}

// NewInstituteHandler creates a new InstituteHandler
func NewInstituteHandler(instituteRepo repositories.InstituteRepository) *InstituteHandler {
	return &InstituteHandler{instituteRepository: instituteRepo}
}

// RegisterInstituteRoutes registers institute-related routes
func (h *InstituteHandler) RegisterInstituteRoutes(g *echo.Group) {
	g.POST("/institutes", h.CreateInstitute)
	g.GET("/institutes", h.ListInstitutes)
}

// CreateInstitute handles creating a new institute
func (h *InstituteHandler) CreateInstitute(c echo.Context) error {
	var req models.CreateInstituteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := c.Validate(&req); err != nil {
		return err
	}

	institute := models.Institute{Name: req.Name}
	if err := h.instituteRepository.CreateInstitute(&institute); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, institute)
}

// ListInstitutes returns all institutes
func (h *InstituteHandler) ListInstitutes(c echo.Context) error {
	institutes, err := h.instituteRepository.GetInstitutes()
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, institutes)
}
