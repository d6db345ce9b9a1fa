package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/smalab/social-analyzer/backend/internal/models"
	"github.com/smalab/social-analyzer/backend/internal/repositories"
)

// PostHandler handles HTTP requests related to posts and reposts
type PostHandler struct {
	postRepository repositories.PostRepository
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository) *PostHandler {
	return &PostHandler{postRepository: postRepo}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.GET("/posts/query", h.QueryPosts)
	g.POST("/reposts", h.CreateRepost)
}

// CreatePost handles creating a new post
func (h *PostHandler) CreatePost(c echo.Context) error {
	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post := models.Post{
		SocialMediaName: req.SocialMediaName,
		Username:        req.Username,
		Content:         req.Content,
		City:            req.City,
		State:           req.State,
		Country:         req.Country,
		HasMultimedia:   req.HasMultimedia != nil && *req.HasMultimedia,
	}
	if req.PostTime != nil {
		post.PostTime = *req.PostTime
	}
	if req.Likes != nil {
		post.Likes = uint(*req.Likes)
	}
	if req.Dislikes != nil {
		post.Dislikes = uint(*req.Dislikes)
	}

	if err := h.postRepository.CreatePost(&post); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, post)
}

// CreateRepost handles duplicating an existing post as a repost
func (h *PostHandler) CreateRepost(c echo.Context) error {
	var req models.CreateRepostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	repost, err := h.postRepository.CreateRepost(req.OriginalPostID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, repost)
}

// QueryPosts handles the filtered post search. All criteria are optional
// and combine with AND; no matches is an empty list, not an error.
func (h *PostHandler) QueryPosts(c echo.Context) error {
	criteria := models.PostSearchCriteria{
		SocialMedia: c.QueryParam("social_media"),
		Username:    c.QueryParam("username"),
		FirstName:   c.QueryParam("first_name"),
		LastName:    c.QueryParam("last_name"),
	}

	if raw := c.QueryParam("start_date"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid start_date, expected YYYY-MM-DD")
		}
		criteria.StartDate = &t
	}
	if raw := c.QueryParam("end_date"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid end_date, expected YYYY-MM-DD")
		}
		// make the end of the range inclusive of the whole day
		t = t.Add(24*time.Hour - time.Nanosecond)
		criteria.EndDate = &t
	}

	results, err := h.postRepository.SearchPosts(criteria)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, results)
}
