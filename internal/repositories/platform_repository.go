package repositories

import (
	"errors"

	"github.com/smalab/social-analyzer/backend/internal/apperrors"
	"github.com/smalab/social-analyzer/backend/internal/models"
	"gorm.io/gorm"
)

// PlatformRepository defines the interface for platform data operations
type PlatformRepository interface {
	CreatePlatform(platform *models.SocialMediaPlatform) error
	GetPlatforms() ([]models.SocialMediaPlatform, error)
}

// PostgresPlatformRepository implements PlatformRepository for PostgreSQL
type PostgresPlatformRepository struct {
	db *gorm.DB
}

// NewPostgresPlatformRepository creates a new PostgresPlatformRepository
func NewPostgresPlatformRepository(db *gorm.DB) *PostgresPlatformRepository {
	return &PostgresPlatformRepository{db: db}
}

// CreatePlatform inserts a new platform, rejecting duplicate names
func (r *PostgresPlatformRepository) CreatePlatform(platform *models.SocialMediaPlatform) error {
	if err := r.db.Create(platform).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Conflictf("social media platform %q already exists", platform.Name)
		}
		return apperrors.Storage(err)
	}
	return nil
}

// GetPlatforms retrieves all platforms ordered by name
func (r *PostgresPlatformRepository) GetPlatforms() ([]models.SocialMediaPlatform, error) {
	var platforms []models.SocialMediaPlatform
	if err := r.db.Order("name").Find(&platforms).Error; err != nil {
		return nil, apperrors.Storage(err)
	}
	return platforms, nil
}
