package repositories

import (
	"testing"

	"github.com/smalab/social-analyzer/backend/internal/apperrors"
	"github.com/smalab/social-analyzer/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertResultIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresResultRepository(db)
	seedProject(t, db, "P1")
	seedField(t, db, "P1", "sentiment")
	seedAccount(t, db, "Twitter", "alice")
	postID := seedPost(t, db, "Twitter", "alice", "hello")
	seedAssociation(t, db, "P1", postID)

	require.NoError(t, repo.UpsertResult(&models.AnalysisResult{
		ProjectName: "P1", PostID: postID, FieldName: "sentiment", Value: "positive",
	}))
	require.NoError(t, repo.UpsertResult(&models.AnalysisResult{
		ProjectName: "P1", PostID: postID, FieldName: "sentiment", Value: "negative",
	}))

	var rows []models.AnalysisResult
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, "negative", rows[0].Value)
}

func TestUpsertResultFieldNotDefined(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresResultRepository(db)
	seedProject(t, db, "P1")
	seedAccount(t, db, "Twitter", "alice")
	postID := seedPost(t, db, "Twitter", "alice", "hello")
	seedAssociation(t, db, "P1", postID)

	err := repo.UpsertResult(&models.AnalysisResult{
		ProjectName: "P1", PostID: postID, FieldName: "sentiment", Value: "positive",
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
	assert.Contains(t, err.Error(), "not defined for project")

	var total int64
	require.NoError(t, db.Model(&models.AnalysisResult{}).Count(&total).Error)
	assert.EqualValues(t, 0, total)
}

func TestUpsertResultPostNotAssociated(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresResultRepository(db)
	seedProject(t, db, "P1")
	seedField(t, db, "P1", "sentiment")
	seedAccount(t, db, "Twitter", "alice")
	postID := seedPost(t, db, "Twitter", "alice", "hello")

	err := repo.UpsertResult(&models.AnalysisResult{
		ProjectName: "P1", PostID: postID, FieldName: "sentiment", Value: "positive",
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	assert.Contains(t, err.Error(), "not associated with project")
}

func TestUpsertResultUnknownPost(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresResultRepository(db)
	seedProject(t, db, "P1")
	seedField(t, db, "P1", "sentiment")

	err := repo.UpsertResult(&models.AnalysisResult{
		ProjectName: "P1", PostID: 42, FieldName: "sentiment", Value: "positive",
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
	assert.Contains(t, err.Error(), "post with ID 42 not found")
}

func TestUpsertResultUnknownProject(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresResultRepository(db)

	err := repo.UpsertResult(&models.AnalysisResult{
		ProjectName: "NoSuchProject", PostID: 1, FieldName: "sentiment", Value: "positive",
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
	assert.Contains(t, err.Error(), `project "NoSuchProject" not found`)
}
