package models

// UserAccount is a user identity on one platform, keyed by (platform, username).
// The same username on two platforms is two distinct accounts.
type UserAccount struct {
	SocialMediaName  string  `json:"social_media_name" gorm:"primaryKey;size:50"`
	Username         string  `json:"username" gorm:"primaryKey;size:40"`
	FirstName        *string `json:"first_name,omitempty" gorm:"size:50"`
	LastName         *string `json:"last_name,omitempty" gorm:"size:50"`
	CountryBirth     *string `json:"country_birth,omitempty" gorm:"size:50"`
	CountryResidence *string `json:"country_residence,omitempty" gorm:"size:50"`
	Age              *int    `json:"age,omitempty"`
	Gender           *string `json:"gender,omitempty" gorm:"size:20"`
	Verified         bool    `json:"verified"`
}

// CreateUserAccountRequest defines the request body for creating a user account
type CreateUserAccountRequest struct {
	SocialMediaName  string  `json:"social_media_name" validate:"required,max=50"`
	Username         string  `json:"username" validate:"required,max=40"`
	FirstName        *string `json:"first_name,omitempty" validate:"omitempty,max=50"`
	LastName         *string `json:"last_name,omitempty" validate:"omitempty,max=50"`
	CountryBirth     *string `json:"country_birth,omitempty" validate:"omitempty,max=50"`
	CountryResidence *string `json:"country_residence,omitempty" validate:"omitempty,max=50"`
	Age              *int    `json:"age,omitempty" validate:"omitempty,gt=0,lte=150"`
	Gender           *string `json:"gender,omitempty" validate:"omitempty,max=20"`
	Verified         *bool   `json:"verified,omitempty"`
}
