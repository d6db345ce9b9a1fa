package repositories

import (
	"errors"

	"github.com/smalab/social-analyzer/backend/internal/apperrors"
	"github.com/smalab/social-analyzer/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ResultRepository defines the interface for analysis result operations
type ResultRepository interface {
	UpsertResult(result *models.AnalysisResult) error
}

// PostgresResultRepository implements ResultRepository for PostgreSQL
type PostgresResultRepository struct {
	db *gorm.DB
}

// NewPostgresResultRepository creates a new PostgresResultRepository
func NewPostgresResultRepository(db *gorm.DB) *PostgresResultRepository {
	return &PostgresResultRepository{db: db}
}

// UpsertResult records a value for one field on one post within one project.
// Both the field definition and the post association must already exist; the
// error identifies which precondition failed. Repeating the call for the
// same (project, post, field) key overwrites the value in place, relying on
// the compound primary key for the insert-or-update.
func (r *PostgresResultRepository) UpsertResult(result *models.AnalysisResult) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var field models.ProjectField
		err := tx.First(&field, "project_name = ? AND field_name = ?",
			result.ProjectName, result.FieldName).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				if perr := requireProject(tx, result.ProjectName); perr != nil {
					return perr
				}
				return apperrors.NotFoundf("field %q is not defined for project %q",
					result.FieldName, result.ProjectName)
			}
			return apperrors.Storage(err)
		}

		var link models.ProjectPost
		err = tx.First(&link, "project_name = ? AND post_id = ?",
			result.ProjectName, result.PostID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				var post models.Post
				if perr := tx.First(&post, result.PostID).Error; perr != nil {
					if errors.Is(perr, gorm.ErrRecordNotFound) {
						return apperrors.NotFoundf("post with ID %d not found", result.PostID)
					}
					return apperrors.Storage(perr)
				}
				return apperrors.Validationf("post %d is not associated with project %q",
					result.PostID, result.ProjectName)
			}
			return apperrors.Storage(err)
		}

		err = tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "project_name"}, {Name: "post_id"}, {Name: "field_name"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).Create(result).Error
		if err != nil {
			return apperrors.Storage(err)
		}
		return nil
	})
}
