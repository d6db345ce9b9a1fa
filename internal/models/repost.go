package models

// Repost links an original post to the new post that duplicates it
type Repost struct {
	OriginalPostID uint `json:"original_post_id" gorm:"primaryKey;autoIncrement:false"`
	RepostPostID   uint `json:"repost_post_id" gorm:"primaryKey;autoIncrement:false"`
}

// CreateRepostRequest defines the request body for reposting an existing post
type CreateRepostRequest struct {
	OriginalPostID uint `json:"original_post_id" validate:"required,gt=0"`
}
