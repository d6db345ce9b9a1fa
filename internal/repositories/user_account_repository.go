package repositories

import (
	"errors"

	"github.com/smalab/social-analyzer/backend/internal/apperrors"
	"github.com/smalab/social-analyzer/backend/internal/models"
	"gorm.io/gorm"
)

// UserAccountRepository defines the interface for user account data operations
type UserAccountRepository interface {
	CreateUserAccount(account *models.UserAccount) error
	GetUserAccountsByPlatform(platform string) ([]models.UserAccount, error)
}

// PostgresUserAccountRepository implements UserAccountRepository for PostgreSQL
type PostgresUserAccountRepository struct {
	db *gorm.DB
}

// NewPostgresUserAccountRepository creates a new PostgresUserAccountRepository
func NewPostgresUserAccountRepository(db *gorm.DB) *PostgresUserAccountRepository {
	return &PostgresUserAccountRepository{db: db}
}

// CreateUserAccount inserts a new user account. The referenced platform must
// already exist; a duplicate (platform, username) pair is a conflict.
func (r *PostgresUserAccountRepository) CreateUserAccount(account *models.UserAccount) error {
	var platform models.SocialMediaPlatform
	if err := r.db.First(&platform, "name = ?", account.SocialMediaName).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.Validationf("social media platform %q does not exist", account.SocialMediaName)
		}
		return apperrors.Storage(err)
	}

	if err := r.db.Create(account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Conflictf("user account %q already exists on platform %q",
				account.Username, account.SocialMediaName)
		}
		return apperrors.Storage(err)
	}
	return nil
}

// GetUserAccountsByPlatform retrieves the accounts of one platform ordered by username
func (r *PostgresUserAccountRepository) GetUserAccountsByPlatform(platform string) ([]models.UserAccount, error) {
	var accounts []models.UserAccount
	if err := r.db.Where("social_media_name = ?", platform).Order("username").Find(&accounts).Error; err != nil {
		return nil, apperrors.Storage(err)
	}
	return accounts, nil
}
