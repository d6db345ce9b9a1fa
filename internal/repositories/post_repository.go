package repositories

import (
	"errors"
	"time"

	"github.com/smalab/social-analyzer/backend/internal/apperrors"
	"github.com/smalab/social-analyzer/backend/internal/models"
	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(post *models.Post) error
	GetPostByID(id uint) (*models.Post, error)
	CreateRepost(originalPostID uint) (*models.Post, error)
	SearchPosts(criteria models.PostSearchCriteria) ([]models.PostSearchResult, error)
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

// CreatePost inserts a new post. The (platform, username) pair must resolve
// to an existing user account. A zero PostTime gets the current time.
func (r *PostgresPostRepository) CreatePost(post *models.Post) error {
	var account models.UserAccount
	err := r.db.First(&account, "social_media_name = ? AND username = ?",
		post.SocialMediaName, post.Username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.Validationf("user account %q on platform %q does not exist",
				post.Username, post.SocialMediaName)
		}
		return apperrors.Storage(err)
	}

	if post.PostTime.IsZero() {
		post.PostTime = time.Now()
	}
	if err := r.db.Create(post).Error; err != nil {
		return apperrors.Storage(err)
	}
	return nil
}

// GetPostByID retrieves a post by its id
func (r *PostgresPostRepository) GetPostByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("post with ID %d not found", id)
		}
		return nil, apperrors.Storage(err)
	}
	return &post, nil
}

// CreateRepost duplicates an existing post and links the copy to its
// original. The copy keeps the author, content and location, starts with
// zero likes/dislikes and gets a fresh post time. Both inserts happen in
// one transaction.
func (r *PostgresPostRepository) CreateRepost(originalPostID uint) (*models.Post, error) {
	var repost *models.Post
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var original models.Post
		if err := tx.First(&original, originalPostID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFoundf("original post with ID %d not found", originalPostID)
			}
			return apperrors.Storage(err)
		}

		duplicate := models.Post{
			SocialMediaName: original.SocialMediaName,
			Username:        original.Username,
			Content:         original.Content,
			PostTime:        time.Now(),
			City:            original.City,
			State:           original.State,
			Country:         original.Country,
			HasMultimedia:   original.HasMultimedia,
		}
		if err := tx.Create(&duplicate).Error; err != nil {
			return apperrors.Storage(err)
		}

		link := models.Repost{OriginalPostID: original.PostID, RepostPostID: duplicate.PostID}
		if err := tx.Create(&link).Error; err != nil {
			return apperrors.Storage(err)
		}

		repost = &duplicate
		return nil
	})
	if err != nil {
		return nil, err
	}
	return repost, nil
}

// SearchPosts finds posts matching the supplied criteria (AND semantics,
// absent criteria filter nothing) and annotates each match with the names
// of the projects it is associated with.
func (r *PostgresPostRepository) SearchPosts(criteria models.PostSearchCriteria) ([]models.PostSearchResult, error) {
	q := r.db.Model(&models.Post{})
	if criteria.SocialMedia != "" {
		q = q.Where("posts.social_media_name = ?", criteria.SocialMedia)
	}
	if criteria.Username != "" {
		q = q.Where("posts.username = ?", criteria.Username)
	}
	if criteria.StartDate != nil {
		q = q.Where("posts.post_time >= ?", *criteria.StartDate)
	}
	if criteria.EndDate != nil {
		q = q.Where("posts.post_time <= ?", *criteria.EndDate)
	}
	if criteria.FirstName != "" || criteria.LastName != "" {
		q = q.Joins("JOIN user_accounts ON user_accounts.social_media_name = posts.social_media_name AND user_accounts.username = posts.username")
		if criteria.FirstName != "" {
			q = q.Where("user_accounts.first_name = ?", criteria.FirstName)
		}
		if criteria.LastName != "" {
			q = q.Where("user_accounts.last_name = ?", criteria.LastName)
		}
	}

	var posts []models.Post
	if err := q.Order("posts.post_id").Find(&posts).Error; err != nil {
		return nil, apperrors.Storage(err)
	}

	results := make([]models.PostSearchResult, 0, len(posts))
	if len(posts) == 0 {
		return results, nil
	}

	ids := make([]uint, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.PostID)
	}
	var links []models.ProjectPost
	if err := r.db.Where("post_id IN ?", ids).Order("project_name").Find(&links).Error; err != nil {
		return nil, apperrors.Storage(err)
	}
	projectsByPost := make(map[uint][]string, len(posts))
	for _, l := range links {
		projectsByPost[l.PostID] = append(projectsByPost[l.PostID], l.ProjectName)
	}

	for _, p := range posts {
		projects := projectsByPost[p.PostID]
		if projects == nil {
			projects = []string{}
		}
		results = append(results, models.PostSearchResult{Post: p, AssociatedProjects: projects})
	}
	return results, nil
}
