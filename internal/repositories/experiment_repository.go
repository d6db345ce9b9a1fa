package repositories

import (
	"errors"
	"math"

	"github.com/smalab/social-analyzer/backend/internal/apperrors"
	"github.com/smalab/social-analyzer/backend/internal/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// ExperimentRepository defines the interface for the experiment read side
type ExperimentRepository interface {
	GetExperimentDetails(projectName string) (*models.ExperimentDetails, error)
	FindExperimentsByPosts(postIDs []uint) ([]models.ExperimentDetails, error)
}

// PostgresExperimentRepository implements ExperimentRepository for PostgreSQL
type PostgresExperimentRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewPostgresExperimentRepository creates a new PostgresExperimentRepository
func NewPostgresExperimentRepository(db *gorm.DB, logger *zap.Logger) *PostgresExperimentRepository {
	return &PostgresExperimentRepository{db: db, logger: logger}
}

// GetExperimentDetails assembles the full read model for one project: the
// project header, every associated post grouped with its recorded results,
// and per-field completion statistics. A project with no posts or fields is
// a valid, empty experiment; only a missing project is not found.
func (r *PostgresExperimentRepository) GetExperimentDetails(projectName string) (*models.ExperimentDetails, error) {
	var project models.Project
	if err := r.db.First(&project, "name = ?", projectName).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("project %q not found", projectName)
		}
		return nil, apperrors.Storage(err)
	}

	// Manager row may be absent on legacy data; the header degrades to
	// the bare id in that case.
	var manager models.Manager
	if err := r.db.First(&manager, "manager_id = ?", project.ManagerID).Error; err != nil &&
		!errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Storage(err)
	}

	var posts []models.Post
	err := r.db.
		Joins("JOIN project_posts ON project_posts.post_id = posts.post_id").
		Where("project_posts.project_name = ?", projectName).
		Order("posts.post_id").
		Find(&posts).Error
	if err != nil {
		return nil, apperrors.Storage(err)
	}

	var results []models.AnalysisResult
	err = r.db.Where("project_name = ?", projectName).
		Order("post_id, field_name").
		Find(&results).Error
	if err != nil {
		return nil, apperrors.Storage(err)
	}

	var fields []models.ProjectField
	err = r.db.Where("project_name = ?", projectName).
		Order("field_name").
		Find(&fields).Error
	if err != nil {
		return nil, apperrors.Storage(err)
	}

	// Collapse the one-to-many post/result relation into one entry per
	// post. The compound primary key guarantees at most one result per
	// (post, field), so a plain count per field is already distinct.
	resultsByPost := make(map[uint][]models.PostResult)
	postCountByField := make(map[string]int)
	for _, res := range results {
		resultsByPost[res.PostID] = append(resultsByPost[res.PostID],
			models.PostResult{FieldName: res.FieldName, Value: res.Value})
		postCountByField[res.FieldName]++
	}

	postsOut := make([]models.PostWithResults, 0, len(posts))
	for _, p := range posts {
		rs := resultsByPost[p.PostID]
		if rs == nil {
			rs = []models.PostResult{}
		}
		postsOut = append(postsOut, models.PostWithResults{
			PostID:          p.PostID,
			SocialMediaName: p.SocialMediaName,
			Username:        p.Username,
			Content:         p.Content,
			PostTime:        p.PostTime,
			Results:         rs,
		})
	}

	total := len(posts)
	stats := make([]models.FieldStatistic, 0, len(fields))
	for _, f := range fields {
		withResult := postCountByField[f.FieldName]
		percentage := 0.0
		if total > 0 {
			percentage = math.Round(float64(withResult)/float64(total)*100*100) / 100
		}
		stats = append(stats, models.FieldStatistic{
			FieldName:               f.FieldName,
			TotalProjectPosts:       total,
			PostsWithResultForField: withResult,
			CompletionPercentage:    percentage,
		})
	}

	return &models.ExperimentDetails{
		Project: models.ExperimentProject{
			ProjectName:      project.Name,
			StartDate:        project.StartDate,
			EndDate:          project.EndDate,
			Description:      project.Description,
			InstituteName:    project.InstituteName,
			ManagerID:        project.ManagerID,
			ManagerFirstName: manager.FirstName,
			ManagerLastName:  manager.LastName,
		},
		Posts:      postsOut,
		Statistics: stats,
	}, nil
}

// FindExperimentsByPosts returns the details of every distinct project that
// references at least one of the given posts. Detail fetches run
// concurrently; a project whose fetch fails is logged and skipped, never
// failing the batch. No referencing project yields an empty list.
func (r *PostgresExperimentRepository) FindExperimentsByPosts(postIDs []uint) ([]models.ExperimentDetails, error) {
	var names []string
	err := r.db.Model(&models.ProjectPost{}).
		Where("post_id IN ?", postIDs).
		Distinct().
		Order("project_name").
		Pluck("project_name", &names).Error
	if err != nil {
		return nil, apperrors.Storage(err)
	}

	details := make([]*models.ExperimentDetails, len(names))
	var g errgroup.Group
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			d, err := r.GetExperimentDetails(name)
			if err != nil {
				r.logger.Warn("skipping project in batch experiment lookup",
					zap.String("project", name), zap.Error(err))
				return nil
			}
			details[i] = d
			return nil
		})
	}
	_ = g.Wait()

	out := make([]models.ExperimentDetails, 0, len(names))
	for _, d := range details {
		if d != nil {
			out = append(out, *d)
		}
	}
	return out, nil
}
