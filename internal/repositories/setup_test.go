package repositories

import (
	"testing"
	"time"

	"github.com/smalab/social-analyzer/backend/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database with the full schema. A
// single connection keeps every query on the same in-memory instance.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.SocialMediaPlatform{},
		&models.UserAccount{},
		&models.Post{},
		&models.Repost{},
		&models.Institute{},
		&models.Manager{},
		&models.Project{},
		&models.ProjectField{},
		&models.ProjectPost{},
		&models.AnalysisResult{},
	))
	return db
}

func seedAccount(t *testing.T, db *gorm.DB, platform, username string) {
	t.Helper()
	require.NoError(t, db.FirstOrCreate(&models.SocialMediaPlatform{Name: platform},
		models.SocialMediaPlatform{Name: platform}).Error)
	require.NoError(t, db.Create(&models.UserAccount{
		SocialMediaName: platform,
		Username:        username,
	}).Error)
}

func seedPost(t *testing.T, db *gorm.DB, platform, username, content string) uint {
	t.Helper()
	post := models.Post{
		SocialMediaName: platform,
		Username:        username,
		Content:         content,
		PostTime:        time.Now(),
	}
	require.NoError(t, db.Create(&post).Error)
	return post.PostID
}

func seedProject(t *testing.T, db *gorm.DB, name string) {
	t.Helper()
	require.NoError(t, db.Create(&models.Project{
		Name:          name,
		StartDate:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		InstituteName: "MIT",
		ManagerID:     "mgr-1",
	}).Error)
}

func seedField(t *testing.T, db *gorm.DB, project, field string) {
	t.Helper()
	require.NoError(t, db.Create(&models.ProjectField{
		ProjectName: project,
		FieldName:   field,
	}).Error)
}

func seedAssociation(t *testing.T, db *gorm.DB, project string, postID uint) {
	t.Helper()
	require.NoError(t, db.Create(&models.ProjectPost{
		ProjectName: project,
		PostID:      postID,
	}).Error)
}
