package repositories

import (
	"errors"

	"github.com/smalab/social-analyzer/backend/internal/apperrors"
	"github.com/smalab/social-analyzer/backend/internal/models"
	"gorm.io/gorm"
)

// ManagerRepository defines the interface for manager data operations
type ManagerRepository interface {
	CreateManager(manager *models.Manager) error
	GetManagers() ([]models.Manager, error)
}

// PostgresManagerRepository implements ManagerRepository for PostgreSQL
type PostgresManagerRepository struct {
	db *gorm.DB
}

// NewPostgresManagerRepository creates a new PostgresManagerRepository
func NewPostgresManagerRepository(db *gorm.DB) *PostgresManagerRepository {
	return &PostgresManagerRepository{db: db}
}

// CreateManager inserts a new manager, rejecting duplicate manager ids
func (r *PostgresManagerRepository) CreateManager(manager *models.Manager) error {
	if err := r.db.Create(manager).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Conflictf("manager with ID %q already exists", manager.ManagerID)
		}
		return apperrors.Storage(err)
	}
	return nil
}

// GetManagers retrieves all managers ordered by last then first name
func (r *PostgresManagerRepository) GetManagers() ([]models.Manager, error) {
	var managers []models.Manager
	if err := r.db.Order("last_name, first_name").Find(&managers).Error; err != nil {
		return nil, apperrors.Storage(err)
	}
	return managers, nil
}
