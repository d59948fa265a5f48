package workouts

import (
	"fmt"
	"strconv"

	"github.com/liftlog-dev/liftlog/internal/models"
)

const (
	// WeightUnit is a fixed display convention; the schema stores no
	// per-exercise unit. Known limitation.
	WeightUnit = "kg"

	// EmptyValue is shown when an exercise has no sets to aggregate.
	EmptyValue = "—"

	untitledWorkout = "Untitled Workout"
)

type ExerciseSummary struct {
	ID           uint   `json:"id"`
	ExerciseID   uint   `json:"exercise_id"`
	ExerciseName string `json:"exercise_name"`
	TotalSets    int    `json:"total_sets"`
	Reps         string `json:"reps"`
	Weight       string `json:"weight"`
	Notes        string `json:"notes,omitempty"`
}

type WorkoutSummary struct {
	ID          uint              `json:"id"`
	Name        string            `json:"name"`
	CompletedAt string            `json:"completed_at"`
	Duration    string            `json:"duration,omitempty"`
	Notes       string            `json:"notes,omitempty"`
	Exercises   []ExerciseSummary `json:"exercises"`
}

// Summarize derives the display values for one workout: per-exercise
// set counts, rep and weight ranges, plus completion time and duration.
func Summarize(workout models.Workout) WorkoutSummary {
	summary := WorkoutSummary{
		ID:          workout.ID,
		Name:        untitledWorkout,
		CompletedAt: workout.Date.Format("03:04 PM"),
		Notes:       workout.Notes,
		Exercises:   make([]ExerciseSummary, 0, len(workout.WorkoutExercises)),
	}

	if workout.Name != nil && *workout.Name != "" {
		summary.Name = *workout.Name
	}

	if workout.DurationSeconds != nil {
		summary.Duration = fmt.Sprintf("%d min", *workout.DurationSeconds/60)
	}

	for _, we := range workout.WorkoutExercises {
		summary.Exercises = append(summary.Exercises, summarizeExercise(we))
	}

	return summary
}

func summarizeExercise(we models.WorkoutExercise) ExerciseSummary {
	summary := ExerciseSummary{
		ID:           we.ID,
		ExerciseID:   we.ExerciseID,
		ExerciseName: we.Exercise.Name,
		TotalSets:    len(we.Sets),
		Notes:        we.Notes,
	}

	// Min/max over an empty collection is undefined; show a placeholder
	// instead of propagating a bogus number into the view.
	if len(we.Sets) == 0 {
		summary.Reps = EmptyValue
		summary.Weight = EmptyValue
		return summary
	}

	minReps, maxReps := we.Sets[0].Reps, we.Sets[0].Reps
	minWeight, maxWeight := we.Sets[0].Weight, we.Sets[0].Weight

	for _, set := range we.Sets[1:] {
		if set.Reps < minReps {
			minReps = set.Reps
		}
		if set.Reps > maxReps {
			maxReps = set.Reps
		}
		if set.Weight < minWeight {
			minWeight = set.Weight
		}
		if set.Weight > maxWeight {
			maxWeight = set.Weight
		}
	}

	summary.Reps = formatIntRange(minReps, maxReps)
	summary.Weight = formatWeightRange(minWeight, maxWeight)

	return summary
}

func formatIntRange(min, max int) string {
	if min == max {
		return strconv.Itoa(min)
	}
	return fmt.Sprintf("%d-%d", min, max)
}

func formatWeightRange(min, max float64) string {
	if min == max {
		return formatWeight(min) + WeightUnit
	}
	return formatWeight(min) + "-" + formatWeight(max) + WeightUnit
}

// formatWeight renders a weight without trailing zeros, so 80.00 shows
// as "80" and 82.50 as "82.5".
func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}
