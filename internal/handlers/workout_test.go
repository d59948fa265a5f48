package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/liftlog-dev/liftlog/db"
	"github.com/liftlog-dev/liftlog/internal/auth"
	"github.com/liftlog-dev/liftlog/internal/handlers"
	"github.com/liftlog-dev/liftlog/internal/models"
	"github.com/liftlog-dev/liftlog/internal/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestServer(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	t.Setenv("JWT_SECRET", "test-secret")
	require.NoError(t, auth.InitJWTSecret())

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_loc=auto", t.Name())

	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, gormDB.AutoMigrate(
		&models.User{},
		&models.ExerciseCategory{},
		&models.Exercise{},
		&models.WorkoutTemplate{},
		&models.TemplateExercise{},
		&models.Workout{},
		&models.WorkoutExercise{},
		&models.Set{},
	))

	db.DB = gormDB

	return router.NewRouter()
}

func doRequest(r *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetWorkouts_RequiresToken(t *testing.T) {
	r := setupTestServer(t)

	w := doRequest(r, http.MethodGet, "/api/workouts?date=2026-01-06", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetWorkouts_UnknownSubjectGetsEmptyList(t *testing.T) {
	r := setupTestServer(t)

	token, err := auth.GenerateJWT("never-provisioned", "ghost@example.com")
	require.NoError(t, err)

	w := doRequest(r, http.MethodGet, "/api/workouts?date=2026-01-06", token)
	require.Equal(t, http.StatusOK, w.Code)

	var resp handlers.DashboardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2026-01-06", resp.SelectedDate)
	assert.Equal(t, "6th Jan 2026", resp.FormattedDate)
	assert.Empty(t, resp.Workouts)
}

func TestGetWorkouts_MalformedDateFailsClosed(t *testing.T) {
	r := setupTestServer(t)

	token, err := auth.GenerateJWT("subject-42", "lifter@example.com")
	require.NoError(t, err)

	w := doRequest(r, http.MethodGet, "/api/workouts?date=06-01-2026", token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetWorkouts_Scenario(t *testing.T) {
	r := setupTestServer(t)

	user := models.User{
		ExternalID:   "subject-42",
		Email:        "lifter@example.com",
		Name:         "Lifter",
		PasswordHash: "hash",
	}
	require.NoError(t, db.DB.Create(&user).Error)

	bench := models.Exercise{Name: "Bench Press"}
	require.NoError(t, db.DB.Create(&bench).Error)

	workout := models.Workout{
		UserID: user.ID,
		Date:   time.Date(2026, time.January, 6, 8, 30, 0, 0, time.Local),
	}
	require.NoError(t, db.DB.Create(&workout).Error)

	we := models.WorkoutExercise{WorkoutID: workout.ID, ExerciseID: bench.ID, OrderIndex: 0}
	require.NoError(t, db.DB.Create(&we).Error)

	for i, set := range []struct {
		reps   int
		weight float64
	}{{8, 80}, {8, 80}, {6, 85}} {
		require.NoError(t, db.DB.Create(&models.Set{
			WorkoutExerciseID: we.ID,
			SetNumber:         i + 1,
			Reps:              set.reps,
			Weight:            set.weight,
		}).Error)
	}

	token, err := auth.GenerateJWT(user.ExternalID, user.Email)
	require.NoError(t, err)

	w := doRequest(r, http.MethodGet, "/api/workouts?date=2026-01-06", token)
	require.Equal(t, http.StatusOK, w.Code)

	var resp handlers.DashboardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Workouts, 1)

	summary := resp.Workouts[0]
	assert.Equal(t, "08:30 AM", summary.CompletedAt)
	require.Len(t, summary.Exercises, 1)
	assert.Equal(t, "Bench Press", summary.Exercises[0].ExerciseName)
	assert.Equal(t, 3, summary.Exercises[0].TotalSets)
	assert.Equal(t, "6-8", summary.Exercises[0].Reps)
	assert.Equal(t, "80-85kg", summary.Exercises[0].Weight)
}

func TestGetWorkout_NotOwnedIsNotFound(t *testing.T) {
	r := setupTestServer(t)

	owner := models.User{ExternalID: "owner", Email: "owner@example.com", PasswordHash: "hash"}
	require.NoError(t, db.DB.Create(&owner).Error)

	other := models.User{ExternalID: "other", Email: "other@example.com", PasswordHash: "hash"}
	require.NoError(t, db.DB.Create(&other).Error)

	workout := models.Workout{UserID: owner.ID, Date: time.Now()}
	require.NoError(t, db.DB.Create(&workout).Error)

	token, err := auth.GenerateJWT(other.ExternalID, other.Email)
	require.NoError(t, err)

	w := doRequest(r, http.MethodGet, fmt.Sprintf("/api/workouts/%d", workout.ID), token)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Same status and body for a workout that does not exist at all.
	w2 := doRequest(r, http.MethodGet, fmt.Sprintf("/api/workouts/%d", workout.ID+1000), token)
	assert.Equal(t, http.StatusNotFound, w2.Code)
	assert.Equal(t, w.Body.String(), w2.Body.String())
}

func TestGetWorkoutCount_UnknownSubjectGetsZero(t *testing.T) {
	r := setupTestServer(t)

	token, err := auth.GenerateJWT("never-provisioned", "ghost@example.com")
	require.NoError(t, err)

	w := doRequest(r, http.MethodGet, "/api/workouts/count?start=2026-01-01&end=2026-01-31", token)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Count int64 `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Zero(t, resp.Count)
}

func TestGetWorkoutCount_MissingBounds(t *testing.T) {
	r := setupTestServer(t)

	token, err := auth.GenerateJWT("subject-42", "lifter@example.com")
	require.NoError(t, err)

	w := doRequest(r, http.MethodGet, "/api/workouts/count?start=2026-01-01", token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
