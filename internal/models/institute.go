package models

// Institute is a research institute that runs projects
type Institute struct {
	Name string `json:"name" gorm:"primaryKey;size:100"`
}

// CreateInstituteRequest defines the request body for creating an institute
type CreateInstituteRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}
