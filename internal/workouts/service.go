package workouts

import (
	"context"
	"errors"
	"time"

	"github.com/liftlog-dev/liftlog/internal/dateutil"
	"github.com/liftlog-dev/liftlog/internal/models"
	"gorm.io/gorm"
)

// ErrExerciseNotAllowed is returned when a workout references an
// exercise that is neither predefined nor owned by the requesting user.
var ErrExerciseNotAllowed = errors.New("exercise not found or not accessible")

// Service answers per-user workout queries. Every query it issues
// carries the owner filter in the same predicate as the rest of the
// WHERE clause; ownership is never checked after the fact in
// application code.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// withDetails preloads the nested exercise/set structure in display
// order: exercises ascending by order index, sets ascending by set
// number. Ties fall back to insertion order to keep results stable.
func withDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("WorkoutExercises", func(db *gorm.DB) *gorm.DB {
			return db.Order("workout_exercises.order_index ASC, workout_exercises.id ASC")
		}).
		Preload("WorkoutExercises.Exercise").
		Preload("WorkoutExercises.Sets", func(db *gorm.DB) *gorm.DB {
			return db.Order("sets.set_number ASC, sets.id ASC")
		})
}

// GetWorkoutsForDate returns all workouts owned by userID on the
// calendar day containing date, most recent first. The day runs from
// local midnight to 23:59:59.999 in the date's own location, not UTC.
func (s *Service) GetWorkoutsForDate(ctx context.Context, userID uint, date time.Time) ([]models.Workout, error) {
	start, end := dateutil.DayBounds(date)

	var workouts []models.Workout

	err := withDetails(s.db.WithContext(ctx)).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, start, end).
		Order("date DESC").
		Find(&workouts).Error

	if err != nil {
		return nil, err
	}

	return workouts, nil
}

// GetWorkoutByID returns the workout only if it is owned by userID.
// A workout that does not exist and a workout owned by someone else
// both come back as (nil, nil) so callers cannot tell them apart.
func (s *Service) GetWorkoutByID(ctx context.Context, userID, workoutID uint) (*models.Workout, error) {
	var workout models.Workout

	err := withDetails(s.db.WithContext(ctx)).
		Where("id = ? AND user_id = ?", workoutID, userID).
		First(&workout).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &workout, nil
}

// GetWorkoutCount counts workouts owned by userID with dates inside
// [start, end]. Bounds are taken as given, with no day snapping.
func (s *Service) GetWorkoutCount(ctx context.Context, userID uint, start, end time.Time) (int64, error) {
	var count int64

	err := s.db.WithContext(ctx).
		Model(&models.Workout{}).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, start, end).
		Count(&count).Error

	if err != nil {
		return 0, err
	}

	return count, nil
}

type NewSet struct {
	SetNumber int
	Reps      int
	Weight    float64
	IsWarmup  bool
	RPE       *int
	Notes     string
}

type NewWorkoutExercise struct {
	ExerciseID uint
	OrderIndex int
	Notes      string
	Sets       []NewSet
}

type NewWorkout struct {
	Name            *string
	Date            time.Time
	TemplateID      *uint
	DurationSeconds *int
	Notes           string
	Exercises       []NewWorkoutExercise
}

// CreateWorkout logs a session for userID. Referenced exercises must be
// predefined or owned by the user; anything else aborts the whole
// transaction with ErrExerciseNotAllowed.
func (s *Service) CreateWorkout(ctx context.Context, userID uint, input NewWorkout) (*models.Workout, error) {
	exerciseIDs := make([]uint, 0, len(input.Exercises))
	for _, we := range input.Exercises {
		exerciseIDs = append(exerciseIDs, we.ExerciseID)
	}

	workout := models.Workout{
		UserID:          userID,
		TemplateID:      input.TemplateID,
		Name:            input.Name,
		Date:            input.Date,
		DurationSeconds: input.DurationSeconds,
		Notes:           input.Notes,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(exerciseIDs) > 0 {
			var visible int64

			if err := tx.Model(&models.Exercise{}).
				Where("id IN ? AND (user_id IS NULL OR user_id = ?)", exerciseIDs, userID).
				Count(&visible).Error; err != nil {
				return err
			}

			if visible != int64(len(uniqueIDs(exerciseIDs))) {
				return ErrExerciseNotAllowed
			}
		}

		if err := tx.Create(&workout).Error; err != nil {
			return err
		}

		for _, we := range input.Exercises {
			workoutExercise := models.WorkoutExercise{
				WorkoutID:  workout.ID,
				ExerciseID: we.ExerciseID,
				OrderIndex: we.OrderIndex,
				Notes:      we.Notes,
			}

			if err := tx.Create(&workoutExercise).Error; err != nil {
				return err
			}

			for _, set := range we.Sets {
				if err := tx.Create(&models.Set{
					WorkoutExerciseID: workoutExercise.ID,
					SetNumber:         set.SetNumber,
					Reps:              set.Reps,
					Weight:            set.Weight,
					IsWarmup:          set.IsWarmup,
					RPE:               set.RPE,
					Notes:             set.Notes,
				}).Error; err != nil {
					return err
				}
			}
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return s.GetWorkoutByID(ctx, userID, workout.ID)
}

// DeleteWorkout removes the workout if it is owned by userID and
// reports whether anything was deleted.
func (s *Service) DeleteWorkout(ctx context.Context, userID, workoutID uint) (bool, error) {
	var workout models.Workout

	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", workoutID, userID).
		First(&workout).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	if err := s.db.WithContext(ctx).Delete(&workout).Error; err != nil {
		return false, err
	}

	return true, nil
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	unique := make([]uint, 0, len(ids))

	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	return unique
}
