package models

import "time"

// Post is a social media post authored by a user account
type Post struct {
	PostID          uint      `json:"post_id" gorm:"primaryKey;autoIncrement"`
	SocialMediaName string    `json:"social_media_name" gorm:"size:50;index:idx_posts_account"`
	Username        string    `json:"username" gorm:"size:40;index:idx_posts_account"`
	Content         string    `json:"content" gorm:"type:text"`
	PostTime        time.Time `json:"post_time"`
	City            *string   `json:"city,omitempty" gorm:"size:50"`
	State           *string   `json:"state,omitempty" gorm:"size:50"`
	Country         *string   `json:"country,omitempty" gorm:"size:50"`
	Likes           uint      `json:"likes" gorm:"default:0"`
	Dislikes        uint      `json:"dislikes" gorm:"default:0"`
	HasMultimedia   bool      `json:"has_multimedia"`
}

// CreatePostRequest defines the request body for creating a new post.
// PostTime is optional; the server assigns the current time when absent.
type CreatePostRequest struct {
	SocialMediaName string     `json:"social_media_name" validate:"required,max=50"`
	Username        string     `json:"username" validate:"required,max=40"`
	Content         string     `json:"content" validate:"required"`
	PostTime        *time.Time `json:"post_time,omitempty"`
	City            *string    `json:"city,omitempty" validate:"omitempty,max=50"`
	State           *string    `json:"state,omitempty" validate:"omitempty,max=50"`
	Country         *string    `json:"country,omitempty" validate:"omitempty,max=50"`
	Likes           *int       `json:"likes,omitempty" validate:"omitempty,gte=0"`
	Dislikes        *int       `json:"dislikes,omitempty" validate:"omitempty,gte=0"`
	HasMultimedia   *bool      `json:"has_multimedia,omitempty"`
}

// PostSearchCriteria carries the optional filters for the post query endpoint.
// Zero-valued criteria impose no filter; supplied criteria combine with AND.
type PostSearchCriteria struct {
	SocialMedia string
	StartDate   *time.Time
	EndDate     *time.Time
	Username    string
	FirstName   string
	LastName    string
}

// PostSearchResult is a matching post together with the projects it belongs to
type PostSearchResult struct {
	Post
	AssociatedProjects []string `json:"associated_projects"`
}
