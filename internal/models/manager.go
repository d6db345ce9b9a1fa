package models

// Manager is a project manager responsible for one or more projects
type Manager struct {
	ManagerID string `json:"manager_id" gorm:"primaryKey;size:50"`
	FirstName string `json:"first_name" gorm:"size:50"`
	LastName  string `json:"last_name" gorm:"size:50"`
}

// CreateManagerRequest defines the request body for creating a manager
type CreateManagerRequest struct {
	ManagerID string `json:"manager_id" validate:"required,max=50"`
	FirstName string `json:"first_name" validate:"required,max=50"`
	LastName  string `json:"last_name" validate:"required,max=50"`
}
