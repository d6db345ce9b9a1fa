package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/smalab/social-analyzer/backend/internal/models"
	"github.com/smalab/social-analyzer/backend/internal/repositories"
)

// ManagerHandler handles HTTP requests related to project managers
type ManagerHandler struct {
	managerRepository repositories.ManagerRepository
}

// NewManagerHandler creates a new ManagerHandler
func NewManagerHandler(managerRepo repositories.ManagerRepository) *ManagerHandler {
	return &ManagerHandler{managerRepository: managerRepo}
}

// RegisterManagerRoutes registers manager-related routes
func (h *ManagerHandler) RegisterManagerRoutes(g *echo.Group) {
	g.POST("/managers", h.CreateManager)
	g.GET("/managers", h.ListManagers)
}

// CreateManager handles creating a new project manager
func (h *ManagerHandler) CreateManager(c echo.Context) error {
	var req models.CreateManagerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	manager := models.Manager{
		ManagerID: req.ManagerID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	if err := h.managerRepository.CreateManager(&manager); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, manager)
}

// ListManagers returns all managers
func (h *ManagerHandler) ListManagers(c echo.Context) error {
	managers, err := h.managerRepository.GetManagers()
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, managers)
}
