package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/liftlog-dev/liftlog/db"
	"github.com/liftlog-dev/liftlog/internal/dateutil"
	"github.com/liftlog-dev/liftlog/internal/identity"
	"github.com/liftlog-dev/liftlog/internal/models"
	"github.com/liftlog-dev/liftlog/internal/utils"
	"github.com/liftlog-dev/liftlog/internal/workouts"
)

type CreateSetRequest struct {
	SetNumber int     `json:"set_number" binding:"required,min=1"`
	Reps      int     `json:"reps" binding:"min=0"`
	Weight    float64 `json:"weight" binding:"min=0"`
	IsWarmup  bool    `json:"is_warmup"`
	RPE       *int    `json:"rpe" binding:"omitempty,min=1,max=10"`
	Notes     string  `json:"notes"`
}

type CreateWorkoutExerciseRequest struct {
	ExerciseID uint               `json:"exercise_id" binding:"required"`
	OrderIndex int                `json:"order_index" binding:"min=0"`
	Notes      string             `json:"notes"`
	Sets       []CreateSetRequest `json:"sets"`
}

type CreateWorkoutRequest struct {
	Name            *string                        `json:"name"`
	Date            time.Time                      `json:"date" binding:"required"`
	TemplateID      *uint                          `json:"template_id"`
	DurationSeconds *int                           `json:"duration_seconds" binding:"omitempty,min=0"`
	Notes           string                         `json:"notes"`
	Exercises       []CreateWorkoutExerciseRequest `json:"exercises"`
}

// DashboardResponse is the view payload for a selected date: the echoed
// date, its display form, and the day's workout summaries.
type DashboardResponse struct {
	SelectedDate  string                    `json:"selected_date"`
	FormattedDate string                    `json:"formatted_date"`
	Workouts      []workouts.WorkoutSummary `json:"workouts"`
}

type SetDetail struct {
	ID        uint    `json:"id"`
	SetNumber int     `json:"set_number"`
	Reps      int     `json:"reps"`
	Weight    float64 `json:"weight"`
	IsWarmup  bool    `json:"is_warmup"`
	RPE       *int    `json:"rpe,omitempty"`
	Notes     string  `json:"notes,omitempty"`
}

type ExerciseRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type WorkoutExerciseDetail struct {
	ID         uint        `json:"id"`
	OrderIndex int         `json:"order_index"`
	Exercise   ExerciseRef `json:"exercise"`
	Notes      string      `json:"notes,omitempty"`
	Sets       []SetDetail `json:"sets"`
}

type WorkoutDetail struct {
	ID              uint                    `json:"id"`
	Name            *string                 `json:"name"`
	Date            time.Time               `json:"date"`
	DurationSeconds *int                    `json:"duration_seconds"`
	Notes           string                  `json:"notes,omitempty"`
	Exercises       []WorkoutExerciseDetail `json:"exercises"`
}

// GetWorkouts serves the dashboard: all of the current user's workouts
// on the selected date, summarized for display. A valid token whose
// subject was never provisioned yields an empty list, not an error.
func GetWorkouts(ctx *gin.Context) {
	subject, err := utils.GetCurrentSubject(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	date, err := dateutil.ParseDateParam(ctx.Query("date"))

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response := DashboardResponse{
		SelectedDate:  date.Format(dateutil.DateParamLayout),
		FormattedDate: dateutil.FormatDateWithOrdinal(date),
		Workouts:      []workouts.WorkoutSummary{},
	}

	user, err := identity.NewResolver(db.DB).Resolve(ctx.Request.Context(), subject)

	if err != nil {
		log.Printf("Failed to resolve user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if user == nil {
		ctx.JSON(http.StatusOK, response)
		return
	}

	userWorkouts, err := workouts.NewService(db.DB).GetWorkoutsForDate(ctx.Request.Context(), user.ID, date)

	if err != nil {
		log.Printf("Failed to retrieve workouts: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve workouts"})
		return
	}

	for _, workout := range userWorkouts {
		response.Workouts = append(response.Workouts, workouts.Summarize(workout))
	}

	ctx.JSON(http.StatusOK, response)
}

// GetWorkout returns one workout with its full nested shape. A workout
// that does not exist and one owned by another user are both a 404.
func GetWorkout(ctx *gin.Context) {
	subject, err := utils.GetCurrentSubject(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	workoutID, err := utils.GetWorkoutID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := identity.NewResolver(db.DB).Resolve(ctx.Request.Context(), subject)

	if err != nil {
		log.Printf("Failed to resolve user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if user == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Workout not found"})
		return
	}

	workout, err := workouts.NewService(db.DB).GetWorkoutByID(ctx.Request.Context(), user.ID, workoutID)

	if err != nil {
		log.Printf("Failed to retrieve workout: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve workout"})
		return
	}

	if workout == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Workout not found"})
		return
	}

	ctx.JSON(http.StatusOK, buildWorkoutDetail(workout))
}

// GetWorkoutCount counts workouts between caller-supplied inclusive
// bounds. No day snapping is applied to the bounds.
func GetWorkoutCount(ctx *gin.Context) {
	subject, err := utils.GetCurrentSubject(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	startStr := ctx.Query("start")
	endStr := ctx.Query("end")

	if startStr == "" || endStr == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "start and end dates are required"})
		return
	}

	start, err := dateutil.ParseDateParam(startStr)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	end, err := dateutil.ParseDateParam(endStr)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := identity.NewResolver(db.DB).Resolve(ctx.Request.Context(), subject)

	if err != nil {
		log.Printf("Failed to resolve user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if user == nil {
		ctx.JSON(http.StatusOK, gin.H{"count": 0})
		return
	}

	count, err := workouts.NewService(db.DB).GetWorkoutCount(ctx.Request.Context(), user.ID, start, end)

	if err != nil {
		log.Printf("Failed to count workouts: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count workouts"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"count": count})
}

// CreateWorkout logs a new session for the current user.
func CreateWorkout(ctx *gin.Context) {
	subject, err := utils.GetCurrentSubject(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req CreateWorkoutRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := identity.NewResolver(db.DB).Resolve(ctx.Request.Context(), subject)

	if err != nil {
		log.Printf("Failed to resolve user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if user == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	input := workouts.NewWorkout{
		Name:            req.Name,
		Date:            req.Date,
		TemplateID:      req.TemplateID,
		DurationSeconds: req.DurationSeconds,
		Notes:           req.Notes,
	}

	for _, we := range req.Exercises {
		exercise := workouts.NewWorkoutExercise{
			ExerciseID: we.ExerciseID,
			OrderIndex: we.OrderIndex,
			Notes:      we.Notes,
		}

		for _, set := range we.Sets {
			exercise.Sets = append(exercise.Sets, workouts.NewSet{
				SetNumber: set.SetNumber,
				Reps:      set.Reps,
				Weight:    set.Weight,
				IsWarmup:  set.IsWarmup,
				RPE:       set.RPE,
				Notes:     set.Notes,
			})
		}

		input.Exercises = append(input.Exercises, exercise)
	}

	workout, err := workouts.NewService(db.DB).CreateWorkout(ctx.Request.Context(), user.ID, input)

	if errors.Is(err, workouts.ErrExerciseNotAllowed) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err != nil {
		log.Printf("Failed to create workout: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create workout"})
		return
	}

	ctx.JSON(http.StatusCreated, buildWorkoutDetail(workout))
}

// DeleteWorkout removes one of the current user's workouts.
func DeleteWorkout(ctx *gin.Context) {
	subject, err := utils.GetCurrentSubject(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	workoutID, err := utils.GetWorkoutID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := identity.NewResolver(db.DB).Resolve(ctx.Request.Context(), subject)

	if err != nil {
		log.Printf("Failed to resolve user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if user == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Workout not found"})
		return
	}

	deleted, err := workouts.NewService(db.DB).DeleteWorkout(ctx.Request.Context(), user.ID, workoutID)

	if err != nil {
		log.Printf("Failed to delete workout: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete workout"})
		return
	}

	if !deleted {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Workout not found"})
		return
	}

	ctx.Status(http.StatusNoContent)
}

func buildWorkoutDetail(workout *models.Workout) WorkoutDetail {
	detail := WorkoutDetail{
		ID:              workout.ID,
		Name:            workout.Name,
		Date:            workout.Date,
		DurationSeconds: workout.DurationSeconds,
		Notes:           workout.Notes,
		Exercises:       make([]WorkoutExerciseDetail, 0, len(workout.WorkoutExercises)),
	}

	for _, we := range workout.WorkoutExercises {
		exerciseDetail := WorkoutExerciseDetail{
			ID:         we.ID,
			OrderIndex: we.OrderIndex,
			Exercise: ExerciseRef{
				ID:   we.Exercise.ID,
				Name: we.Exercise.Name,
			},
			Notes: we.Notes,
			Sets:  make([]SetDetail, 0, len(we.Sets)),
		}

		for _, set := range we.Sets {
			exerciseDetail.Sets = append(exerciseDetail.Sets, SetDetail{
				ID:        set.ID,
				SetNumber: set.SetNumber,
				Reps:      set.Reps,
				Weight:    set.Weight,
				IsWarmup:  set.IsWarmup,
				RPE:       set.RPE,
				Notes:     set.Notes,
			})
		}

		detail.Exercises = append(detail.Exercises, exerciseDetail)
	}

	return detail
}
