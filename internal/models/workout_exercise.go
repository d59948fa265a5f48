package models

import "gorm.io/gorm"

type WorkoutExercise struct {
	gorm.Model

	WorkoutID  uint `gorm:"not null;index"`
	ExerciseID uint `gorm:"not null;index"`

	// Order of exercise in workout
	OrderIndex int `gorm:"not null"`

	// Exercise-level notes
	Notes string

	// Relationships
	Workout  Workout  `gorm:"foreignKey:WorkoutID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Exercise Exercise `gorm:"foreignKey:ExerciseID;constraint:OnUpdate:Cascade,OnDelete:RESTRICT"`
	Sets     []Set    `gorm:"foreignKey:WorkoutExerciseID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
