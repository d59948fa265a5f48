package db

import (
	"log"

	"github.com/liftlog-dev/liftlog/internal/models"
	"gorm.io/gorm"
)

type seedExercise struct {
	name        string
	description string
	category    string
}

var seedCategories = []models.ExerciseCategory{
	{Name: "Strength", Type: models.CategoryTypeType, Description: "Resistance training exercises"},
	{Name: "Cardio", Type: models.CategoryTypeType, Description: "Cardiovascular exercises"},
	{Name: "Flexibility", Type: models.CategoryTypeType, Description: "Stretching and mobility exercises"},
	{Name: "Chest", Type: models.CategoryTypeMuscleGroup, Description: "Pectoral muscles"},
	{Name: "Back", Type: models.CategoryTypeMuscleGroup, Description: "Latissimus dorsi, trapezius, rhomboids"},
	{Name: "Legs", Type: models.CategoryTypeMuscleGroup, Description: "Quadriceps, hamstrings, calves"},
	{Name: "Shoulders", Type: models.CategoryTypeMuscleGroup, Description: "Deltoids"},
	{Name: "Arms", Type: models.CategoryTypeMuscleGroup, Description: "Biceps, triceps, forearms"},
	{Name: "Core", Type: models.CategoryTypeMuscleGroup, Description: "Abdominals, obliques"},
	{Name: "Full Body", Type: models.CategoryTypeMuscleGroup, Description: "Multiple muscle groups"},
}

var seedExercises = []seedExercise{
	{"Bench Press", "Classic barbell chest exercise", "Chest"},
	{"Incline Dumbbell Press", "Upper chest focused pressing movement", "Chest"},
	{"Push-ups", "Bodyweight chest exercise", "Chest"},
	{"Deadlift", "Compound full-body pulling exercise", "Back"},
	{"Pull-ups", "Bodyweight back exercise", "Back"},
	{"Barbell Row", "Horizontal pulling exercise for back thickness", "Back"},
	{"Squat", "Fundamental lower body exercise", "Legs"},
	{"Romanian Deadlift", "Hamstring and glute focused hinge movement", "Legs"},
	{"Leg Press", "Machine-based quad exercise", "Legs"},
	{"Overhead Press", "Vertical pressing movement for shoulders", "Shoulders"},
	{"Lateral Raise", "Isolation exercise for side delts", "Shoulders"},
	{"Barbell Curl", "Classic biceps exercise", "Arms"},
	{"Tricep Pushdown", "Cable isolation exercise for triceps", "Arms"},
	{"Plank", "Isometric core exercise", "Core"},
	{"Hanging Leg Raise", "Lower ab focused core exercise", "Core"},
	{"Burpees", "Full body conditioning exercise", "Full Body"},
}

// SeedDatabase populates the system-wide exercise categories and
// predefined exercises. It is a no-op once categories exist, so it is
// safe to run on every startup.
func SeedDatabase() error {
	var count int64

	if err := DB.Model(&models.ExerciseCategory{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	return DB.Transaction(func(tx *gorm.DB) error {
		categories := make(map[string]uint, len(seedCategories))

		for i := range seedCategories {
			category := seedCategories[i]
			if err := tx.Create(&category).Error; err != nil {
				return err
			}
			categories[category.Name] = category.ID
		}

		for _, seed := range seedExercises {
			categoryID, ok := categories[seed.category]
			if !ok {
				continue
			}

			// UserID stays nil: these are system-wide exercises.
			exercise := models.Exercise{
				Name:        seed.name,
				Description: seed.description,
				CategoryID:  &categoryID,
			}

			if err := tx.Create(&exercise).Error; err != nil {
				return err
			}
		}

		log.Printf("Seeded %d categories and %d exercises", len(seedCategories), len(seedExercises))
		return nil
	})
}
