package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/smalab/social-analyzer/backend/internal/models"
	"github.com/smalab/social-analyzer/backend/internal/repositories"
)

// ProjectHandler handles HTTP requests related to projects, their fields,
// post associations and analysis results
type ProjectHandler struct {
	projectRepository repositories.ProjectRepository
	resultRepository  repositories.ResultRepository
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(projectRepo repositories.ProjectRepository, resultRepo repositories.ResultRepository) *ProjectHandler {
	return &ProjectHandler{
		projectRepository: projectRepo,
		resultRepository:  resultRepo,
	}
}

// RegisterProjectRoutes registers project-related routes
func (h *ProjectHandler) RegisterProjectRoutes(g *echo.Group) {
	g.POST("/projects", h.CreateProject)
	g.GET("/projects", h.ListProjects)
	g.POST("/projects/:project_name/fields", h.AddFields)
	g.POST("/projects/:project_name/posts", h.AssociatePosts)
	g.POST("/projects/:project_name/results", h.UpsertResult)
}

// CreateProject handles creating a project with its institute and manager
func (h *ProjectHandler) CreateProject(c echo.Context) error {
	var req models.CreateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid start_date, expected YYYY-MM-DD")
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid end_date, expected YYYY-MM-DD")
	}
	if endDate.Before(startDate) {
		return echo.NewHTTPError(http.StatusBadRequest, "end date cannot be before start date")
	}

	created, err := h.projectRepository.CreateProject(models.NewProject{
		Name:             req.Name,
		StartDate:        startDate,
		EndDate:          endDate,
		Description:      req.Description,
		InstituteName:    req.InstituteName,
		ManagerID:        req.ManagerID,
		ManagerFirstName: req.ManagerFirstName,
		ManagerLastName:  req.ManagerLastName,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

// ListProjects returns all projects
func (h *ProjectHandler) ListProjects(c echo.Context) error {
	projects, err := h.projectRepository.GetProjects()
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, projects)
}

// AddFields handles adding analysis fields to a project
func (h *ProjectHandler) AddFields(c echo.Context) error {
	projectName := c.Param("project_name")
	if len(projectName) > 100 {
		return echo.NewHTTPError(http.StatusBadRequest, "project name exceeds maximum length of 100 characters")
	}

	var req models.AddFieldsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(req.Fields))
	for _, f := range req.Fields {
		if _, ok := seen[f.FieldName]; ok {
			return echo.NewHTTPError(http.StatusBadRequest,
				fmt.Sprintf("duplicate field name %q in request", f.FieldName))
		}
		seen[f.FieldName] = struct{}{}
	}

	counts, err := h.projectRepository.AddFields(projectName, req.Fields)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, counts)
}

// AssociatePosts handles linking posts into a project's analysis scope
func (h *ProjectHandler) AssociatePosts(c echo.Context) error {
	projectName := c.Param("project_name")
	if len(projectName) > 100 {
		return echo.NewHTTPError(http.StatusBadRequest, "project name exceeds maximum length of 100 characters")
	}

	var req models.AssociatePostsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	counts, err := h.projectRepository.AssociatePosts(projectName, req.PostIDs)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, counts)
}

// UpsertResult handles recording an analysis result for a post within a project
func (h *ProjectHandler) UpsertResult(c echo.Context) error {
	projectName := c.Param("project_name")
	if len(projectName) > 100 {
		return echo.NewHTTPError(http.StatusBadRequest, "project name exceeds maximum length of 100 characters")
	}

	var req models.UpsertResultRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result := models.AnalysisResult{
		ProjectName: projectName,
		PostID:      req.PostID,
		FieldName:   req.FieldName,
		Value:       req.Value,
	}
	if err := h.resultRepository.UpsertResult(&result); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, result)
}
