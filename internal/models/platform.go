package models

// SocialMediaPlatform is a platform that posts originate from (Twitter, Facebook, ...)
type SocialMediaPlatform struct {
	Name string `json:"name" gorm:"primaryKey;size:50"`
}

// CreatePlatformRequest defines the request body for registering a new platform
type CreatePlatformRequest struct {
	Name string `json:"name" validate:"required,max=50"`
}
