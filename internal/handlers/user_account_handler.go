package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/smalab/social-analyzer/backend/internal/models"
	"github.com/smalab/social-analyzer/backend/internal/repositories"
)

// UserAccountHandler handles HTTP requests related to user accounts
type UserAccountHandler struct {
	userAccountRepository repositories.UserAccountRepository
}

// NewUserAccountHandler creates a new UserAccountHandler
func NewUserAccountHandler(userAccountRepo repositories.UserAccountRepository) *UserAccountHandler {
	return &UserAccountHandler{userAccountRepository: userAccountRepo}
}

// RegisterUserAccountRoutes registers user account routes
func (h *UserAccountHandler) RegisterUserAccountRoutes(g *echo.Group) {
	g.POST("/users", h.CreateUserAccount)
	g.GET("/users", h.ListUserAccounts)
}

// CreateUserAccount handles creating a new user account on a platform
func (h *UserAccountHandler) CreateUserAccount(c echo.Context) error {
	var req models.CreateUserAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	account := models.UserAccount{
		SocialMediaName:  req.SocialMediaName,
		Username:         req.Username,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		CountryBirth:     req.CountryBirth,
		CountryResidence: req.CountryResidence,
		Age:              req.Age,
		Gender:           req.Gender,
		Verified:         req.Verified != nil && *req.Verified,
	}
	if err := h.userAccountRepository.CreateUserAccount(&account); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, account)
}

// ListUserAccounts returns the accounts of the platform named in the query.
// Without a platform filter the endpoint returns an empty list; the data
// entry UI only asks for users once a platform is picked.
func (h *UserAccountHandler) ListUserAccounts(c echo.Context) error {
	platform := c.QueryParam("platform")
	if platform == "" {
		return c.JSON(http.StatusOK, []models.UserAccount{})
	}

	accounts, err := h.userAccountRepository.GetUserAccountsByPlatform(platform)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, accounts)
}
