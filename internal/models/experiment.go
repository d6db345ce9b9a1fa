package models

import "time"

// ExperimentProject is the project header of an experiment detail response
type ExperimentProject struct {
	ProjectName      string    `json:"project_name"`
	StartDate        time.Time `json:"start_date"`
	EndDate          time.Time `json:"end_date"`
	Description      *string   `json:"description,omitempty"`
	InstituteName    string    `json:"institute_name"`
	ManagerID        string    `json:"manager_id"`
	ManagerFirstName string    `json:"manager_first_name"`
	ManagerLastName  string    `json:"manager_last_name"`
}

// PostResult is one recorded (field, value) pair for a post
type PostResult struct {
	FieldName string `json:"field_name"`
	Value     string `json:"value"`
}

// PostWithResults is a project post with all results recorded against it.
// A post with no results carries an empty Results list, never nil.
type PostWithResults struct {
	PostID          uint         `json:"post_id"`
	SocialMediaName string       `json:"social_media_name"`
	Username        string       `json:"username"`
	Content         string       `json:"content"`
	PostTime        time.Time    `json:"post_time"`
	Results         []PostResult `json:"results"`
}

// FieldStatistic reports, for one field, what fraction of the project's
// posts have a recorded value. CompletionPercentage is rounded to two
// decimal places and is 0 when the project has no posts.
type FieldStatistic struct {
	FieldName               string  `json:"field_name"`
	TotalProjectPosts       int     `json:"total_project_posts"`
	PostsWithResultForField int     `json:"posts_with_result_for_field"`
	CompletionPercentage    float64 `json:"completion_percentage"`
}

// ExperimentDetails is the full read model for one project: header, posts
// grouped with their results, and per-field completion statistics
type ExperimentDetails struct {
	Project    ExperimentProject `json:"project"`
	Posts      []PostWithResults `json:"posts"`
	Statistics []FieldStatistic  `json:"statistics"`
}
