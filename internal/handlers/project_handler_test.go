package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/smalab/social-analyzer/backend/internal/models"
	"github.com/smalab/social-analyzer/backend/internal/repositories"
	"github.com/smalab/social-analyzer/backend/validators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type testEnv struct {
	echo              *echo.Echo
	db                *gorm.DB
	projectHandler    *ProjectHandler
	experimentHandler *ExperimentHandler
}

func newTestEnv(t *testing.T) *testEnv {
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

	e := echo.New()
	e.Validator = validators.NewValidator()

	projectRepo := repositories.NewPostgresProjectRepository(db)
	resultRepo := repositories.NewPostgresResultRepository(db)
	experimentRepo := repositories.NewPostgresExperimentRepository(db, zap.NewNop())

	return &testEnv{
		echo:              e,
		db:                db,
		projectHandler:    NewProjectHandler(projectRepo, resultRepo),
		experimentHandler: NewExperimentHandler(experimentRepo),
	}
}

func (env *testEnv) jsonContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return env.echo.NewContext(req, rec), rec
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	return he.Code
}

const validProjectBody = `{
	"name": "P1",
	"start_date": "2024-01-01",
	"end_date": "2024-06-01",
	"institute_name": "MIT",
	"manager_first_name": "Jane",
	"manager_last_name": "Doe"
}`

func TestCreateProjectHandlerSuccess(t *testing.T) {
	env := newTestEnv(t)

	c, rec := env.jsonContext(http.MethodPost, "/api/v1/projects", validProjectBody)
	require.NoError(t, env.projectHandler.CreateProject(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var created models.CreatedProject
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "P1", created.Project.Name)
	assert.Equal(t, "MIT", created.Institute.Name)
	assert.NotEmpty(t, created.Manager.ManagerID)
}

func TestCreateProjectHandlerBadDateOrder(t *testing.T) {
	env := newTestEnv(t)

	body := strings.Replace(validProjectBody, `"end_date": "2024-06-01"`, `"end_date": "2023-06-01"`, 1)
	c, _ := env.jsonContext(http.MethodPost, "/api/v1/projects", body)
	err := env.projectHandler.CreateProject(c)
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))

	var count int64
	require.NoError(t, env.db.Model(&models.Project{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestCreateProjectHandlerMissingFields(t *testing.T) {
	env := newTestEnv(t)

	c, _ := env.jsonContext(http.MethodPost, "/api/v1/projects", `{"name": "P1"}`)
	err := env.projectHandler.CreateProject(c)
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
}

func TestCreateProjectHandlerDuplicateConflict(t *testing.T) {
	env := newTestEnv(t)

	c, _ := env.jsonContext(http.MethodPost, "/api/v1/projects", validProjectBody)
	require.NoError(t, env.projectHandler.CreateProject(c))

	c, _ = env.jsonContext(http.MethodPost, "/api/v1/projects", validProjectBody)
	err := env.projectHandler.CreateProject(c)
	assert.Equal(t, http.StatusConflict, statusOf(t, err))
}

func TestAddFieldsHandlerUnknownProject(t *testing.T) {
	env := newTestEnv(t)

	c, _ := env.jsonContext(http.MethodPost, "/api/v1/projects/Nope/fields",
		`{"fields": [{"field_name": "sentiment"}]}`)
	c.SetParamNames("project_name")
	c.SetParamValues("Nope")
	err := env.projectHandler.AddFields(c)
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
}

func TestAddFieldsHandlerDuplicateInRequest(t *testing.T) {
	env := newTestEnv(t)

	c, _ := env.jsonContext(http.MethodPost, "/api/v1/projects", validProjectBody)
	require.NoError(t, env.projectHandler.CreateProject(c))

	c, _ = env.jsonContext(http.MethodPost, "/api/v1/projects/P1/fields",
		`{"fields": [{"field_name": "sentiment"}, {"field_name": "sentiment"}]}`)
	c.SetParamNames("project_name")
	c.SetParamValues("P1")
	err := env.projectHandler.AddFields(c)
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
}

func TestUpsertResultHandlerFieldNotDefined(t *testing.T) {
	env := newTestEnv(t)

	c, _ := env.jsonContext(http.MethodPost, "/api/v1/projects", validProjectBody)
	require.NoError(t, env.projectHandler.CreateProject(c))

	c, _ = env.jsonContext(http.MethodPost, "/api/v1/projects/P1/results",
		`{"post_id": 1, "field_name": "sentiment", "value": "positive"}`)
	c.SetParamNames("project_name")
	c.SetParamValues("P1")
	err := env.projectHandler.UpsertResult(c)
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
}

func TestGetExperimentDetailsHandlerNotFoundVsEmpty(t *testing.T) {
	env := newTestEnv(t)

	c, _ := env.jsonContext(http.MethodGet, "/api/v1/experiments/Nope", "")
	c.SetParamNames("project_name")
	c.SetParamValues("Nope")
	err := env.experimentHandler.GetExperimentDetails(c)
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))

	c, _ = env.jsonContext(http.MethodPost, "/api/v1/projects", validProjectBody)
	require.NoError(t, env.projectHandler.CreateProject(c))

	c, rec := env.jsonContext(http.MethodGet, "/api/v1/experiments/P1", "")
	c.SetParamNames("project_name")
	c.SetParamValues("P1")
	require.NoError(t, env.experimentHandler.GetExperimentDetails(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var details models.ExperimentDetails
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &details))
	assert.Equal(t, "P1", details.Project.ProjectName)
	assert.Empty(t, details.Posts)
	assert.Empty(t, details.Statistics)
}

func TestFindExperimentsByPostsHandlerBadIDs(t *testing.T) {
	env := newTestEnv(t)

	c, _ := env.jsonContext(http.MethodGet, "/api/v1/experiments/by-posts", "")
	err := env.experimentHandler.FindExperimentsByPosts(c)
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))

	c, _ = env.jsonContext(http.MethodGet, "/api/v1/experiments/by-posts?post_ids=1,abc", "")
	err = env.experimentHandler.FindExperimentsByPosts(c)
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
}
