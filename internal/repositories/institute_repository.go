package repositories

import (
	"errors"

	"github.com/smalab/social-analyzer/backend/internal/apperrors"
	"github.com/smalab/social-analyzer/backend/internal/models"
	"gorm.io/gorm"
)

// InstituteRepository defines the interface for institute data operations
type InstituteRepository interface {
	CreateInstitute(institute *models.Institute) error
	GetInstitutes() ([]models.Institute, error)
}

// PostgresInstituteRepository implements InstituteRepository for PostgreSQL
type PostgresInstituteRepository struct {
	db *gorm.DB
}

// NewPostgresInstituteRepository creates a new PostgresInstituteRepository
func NewPostgresInstituteRepository(db *gorm.DB) *PostgresInstituteRepository {
	return &PostgresInstituteRepository{db: db}
}

// CreateInstitute inserts a new institute, rejecting duplicate names
func (r *PostgresInstituteRepository) CreateInstitute(institute *models.Institute) error {
	if err := r.db.Create(institute).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Conflictf("institute %q already exists", institute.Name)
		}
		return apperrors.Storage(err)
	}
	return nil
}

// GetInstitutes retrieves all institutes ordered by name
func (r *PostgresInstituteRepository) GetInstitutes() ([]models.Institute, error) {
	var institutes []models.Institute
	if err := r.db.Order("name").Find(&institutes).Error; err != nil {
		return nil, apperrors.Storage(err)
	}
	return institutes, nil
}
