package repositories

import (
	"errors"

	"github.com/google/uuid"
	"github.com/smalab/social-analyzer/backend/internal/apperrors"
	"github.com/smalab/social-analyzer/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProjectRepository defines the interface for project data operations
type ProjectRepository interface {
	CreateProject(p models.NewProject) (*models.CreatedProject, error)
	AddFields(projectName string, fields []models.FieldInput) (*models.FieldCounts, error)
	AssociatePosts(projectName string, postIDs []uint) (*models.AssociationCounts, error)
	GetProjects() ([]models.Project, error)
}

// PostgresProjectRepository implements ProjectRepository for PostgreSQL
type PostgresProjectRepository struct {
	db *gorm.DB
}

// NewPostgresProjectRepository creates a new PostgresProjectRepository
func NewPostgresProjectRepository(db *gorm.DB) *PostgresProjectRepository {
	return &PostgresProjectRepository{db: db}
}

// requireProject fails with a not-found error unless the named project exists
func requireProject(tx *gorm.DB, name string) error {
	var project models.Project
	if err := tx.First(&project, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFoundf("project %q not found", name)
		}
		return apperrors.Storage(err)
	}
	return nil
}

// CreateProject creates a project together with its institute and manager in
// one transaction. The institute is reused when one with the same name
// exists. The manager is reused on an exact (first, last) name match; an
// explicitly supplied manager id must be new, otherwise the call conflicts.
func (r *PostgresProjectRepository) CreateProject(p models.NewProject) (*models.CreatedProject, error) {
	var created *models.CreatedProject
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Project
		err := tx.First(&existing, "name = ?", p.Name).Error
		if err == nil {
			return apperrors.Conflictf("project %q already exists", p.Name)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.Storage(err)
		}

		institute := models.Institute{Name: p.InstituteName}
		if err := tx.FirstOrCreate(&institute, models.Institute{Name: p.InstituteName}).Error; err != nil {
			return apperrors.Storage(err)
		}

		manager, err := resolveManager(tx, p)
		if err != nil {
			return err
		}

		project := models.Project{
			Name:          p.Name,
			StartDate:     p.StartDate,
			EndDate:       p.EndDate,
			Description:   p.Description,
			InstituteName: institute.Name,
			ManagerID:     manager.ManagerID,
		}
		if err := tx.Create(&project).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.Conflictf("project %q already exists", p.Name)
			}
			return apperrors.Storage(err)
		}

		created = &models.CreatedProject{Project: project, Institute: institute, Manager: *manager}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func resolveManager(tx *gorm.DB, p models.NewProject) (*models.Manager, error) {
	if p.ManagerID != "" {
		var existing models.Manager
		err := tx.First(&existing, "manager_id = ?", p.ManagerID).Error
		if err == nil {
			return nil, apperrors.Conflictf("manager with ID %q already exists", p.ManagerID)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Storage(err)
		}
		manager := models.Manager{
			ManagerID: p.ManagerID,
			FirstName: p.ManagerFirstName,
			LastName:  p.ManagerLastName,
		}
		if err := tx.Create(&manager).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, apperrors.Conflictf("manager with ID %q already exists", p.ManagerID)
			}
			return nil, apperrors.Storage(err)
		}
		return &manager, nil
	}

	var manager models.Manager
	err := tx.First(&manager, "first_name = ? AND last_name = ?",
		p.ManagerFirstName, p.ManagerLastName).Error
	if err == nil {
		return &manager, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Storage(err)
	}
	manager = models.Manager{
		ManagerID: uuid.NewString(),
		FirstName: p.ManagerFirstName,
		LastName:  p.ManagerLastName,
	}
	if err := tx.Create(&manager).Error; err != nil {
		return nil, apperrors.Storage(err)
	}
	return &manager, nil
}

// AddFields bulk-inserts analysis fields for a project. Fields already
// defined on the project are skipped; the counts report what actually
// landed, taken from the rows the store affected.
func (r *PostgresProjectRepository) AddFields(projectName string, fields []models.FieldInput) (*models.FieldCounts, error) {
	var counts *models.FieldCounts
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := requireProject(tx, projectName); err != nil {
			return err
		}

		rows := make([]models.ProjectField, 0, len(fields))
		for _, f := range fields {
			rows = append(rows, models.ProjectField{
				ProjectName: projectName,
				FieldName:   f.FieldName,
				Description: f.Description,
			})
		}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows)
		if res.Error != nil {
			return apperrors.Storage(res.Error)
		}
		counts = &models.FieldCounts{
			Created: res.RowsAffected,
			Skipped: int64(len(rows)) - res.RowsAffected,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return counts, nil
}

// AssociatePosts links posts into a project's analysis scope. The whole call
// fails if any id does not resolve to a post; existing associations are
// skipped rather than duplicated.
func (r *PostgresProjectRepository) AssociatePosts(projectName string, postIDs []uint) (*models.AssociationCounts, error) {
	var counts *models.AssociationCounts
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := requireProject(tx, projectName); err != nil {
			return err
		}

		unique := make([]uint, 0, len(postIDs))
		seen := make(map[uint]struct{}, len(postIDs))
		for _, id := range postIDs {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			unique = append(unique, id)
		}

		var count int64
		if err := tx.Model(&models.Post{}).Where("post_id IN ?", unique).Count(&count).Error; err != nil {
			return apperrors.Storage(err)
		}
		if count != int64(len(unique)) {
			return apperrors.Validationf("one or more post ids do not exist")
		}

		rows := make([]models.ProjectPost, 0, len(unique))
		for _, id := range unique {
			rows = append(rows, models.ProjectPost{ProjectName: projectName, PostID: id})
		}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows)
		if res.Error != nil {
			return apperrors.Storage(res.Error)
		}
		counts = &models.AssociationCounts{Requested: len(postIDs), Created: res.RowsAffected}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return counts, nil
}

// GetProjects retrieves all projects ordered by name
func (r *PostgresProjectRepository) GetProjects() ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.Order("name").Find(&projects).Error; err != nil {
		return nil, apperrors.Storage(err)
	}
	return projects, nil
}
