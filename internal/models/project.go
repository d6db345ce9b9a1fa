package models

import "time"

// Project is a research campaign scoping a set of posts, fields and results
type Project struct {
	Name          string    `json:"name" gorm:"primaryKey;size:100"`
	StartDate     time.Time `json:"start_date" gorm:"type:date"`
	EndDate       time.Time `json:"end_date" gorm:"type:date"`
	Description   *string   `json:"description,omitempty" gorm:"type:text"`
	InstituteName string    `json:"institute_name" gorm:"size:100"`
	ManagerID     string    `json:"manager_id" gorm:"size:50"`
}

// ProjectField is an analysis dimension defined per project (e.g. "sentiment")
type ProjectField struct {
	ProjectName string  `json:"project_name" gorm:"primaryKey;size:100"`
	FieldName   string  `json:"field_name" gorm:"primaryKey;size:100"`
	Description *string `json:"description,omitempty" gorm:"type:text"`
}

// ProjectPost brings a post into a project's analysis scope
type ProjectPost struct {
	ProjectName string `json:"project_name" gorm:"primaryKey;size:100"`
	PostID      uint   `json:"post_id" gorm:"primaryKey;autoIncrement:false"`
}

// AnalysisResult records the value of one field for one post within one project.
// A result can only exist when both the field and the post association exist.
type AnalysisResult struct {
	ProjectName string `json:"project_name" gorm:"primaryKey;size:100"`
	PostID      uint   `json:"post_id" gorm:"primaryKey;autoIncrement:false"`
	FieldName   string `json:"field_name" gorm:"primaryKey;size:100"`
	Value       string `json:"value" gorm:"type:text"`
}

// CreateProjectRequest defines the request body for creating a project.
// The manager is resolved by explicit manager_id when supplied, otherwise by
// exact (first_name, last_name) match, created with a generated id if absent.
type CreateProjectRequest struct {
	Name             string  `json:"name" validate:"required,max=100"`
	StartDate        string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate          string  `json:"end_date" validate:"required,datetime=2006-01-02"`
	Description      *string `json:"description,omitempty"`
	InstituteName    string  `json:"institute_name" validate:"required,max=100"`
	ManagerID        string  `json:"manager_id,omitempty" validate:"omitempty,max=50"`
	ManagerFirstName string  `json:"manager_first_name" validate:"required,max=50"`
	ManagerLastName  string  `json:"manager_last_name" validate:"required,max=50"`
}

// NewProject carries the already-validated parameters of a project creation
type NewProject struct {
	Name             string
	StartDate        time.Time
	EndDate          time.Time
	Description      *string
	InstituteName    string
	ManagerID        string
	ManagerFirstName string
	ManagerLastName  string
}

// CreatedProject is the outcome of a project creation, including the
// institute and manager rows the transaction resolved or created
type CreatedProject struct {
	Project   Project   `json:"project"`
	Institute Institute `json:"institute"`
	Manager   Manager   `json:"manager"`
}

// FieldInput is one analysis field in an add-fields request
type FieldInput struct {
	FieldName   string  `json:"field_name" validate:"required,max=100"`
	Description *string `json:"description,omitempty"`
}

// AddFieldsRequest defines the request body for adding fields to a project
type AddFieldsRequest struct {
	Fields []FieldInput `json:"fields" validate:"required,min=1,dive"`
}

// FieldCounts reports how many fields a bulk insert actually created.
// Fields that already existed are skipped, not errors.
type FieldCounts struct {
	Created int64 `json:"created"`
	Skipped int64 `json:"skipped"`
}

// AssociatePostsRequest defines the request body for associating posts
type AssociatePostsRequest struct {
	PostIDs []uint `json:"post_ids" validate:"required,min=1,dive,gt=0"`
}

// AssociationCounts reports newly created associations against the request size
type AssociationCounts struct {
	Requested int   `json:"requested"`
	Created   int64 `json:"created"`
}

// UpsertResultRequest defines the request body for recording an analysis result
type UpsertResultRequest struct {
	PostID    uint   `json:"post_id" validate:"required,gt=0"`
	FieldName string `json:"field_name" validate:"required,max=100"`
	Value     string `json:"value" validate:"required"`
}
