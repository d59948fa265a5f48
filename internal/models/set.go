package models

import "gorm.io/gorm"

type Set struct {
	gorm.Model

	WorkoutExerciseID uint `gorm:"not null;index"`

	// Set number (1, 2, 3, etc.)
	SetNumber int `gorm:"not null"`

	Reps   int     `gorm:"not null"`
	Weight float64 `gorm:"type:decimal(10,2);not null"`

	// Track if this was a warmup set
	IsWarmup bool `gorm:"default:false"`

	// Rate of perceived exertion (1-10, optional)
	RPE *int

	Notes string

	// Relationships
	WorkoutExercise WorkoutExercise `gorm:"foreignKey:WorkoutExerciseID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
