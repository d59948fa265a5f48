package models

import "gorm.io/gorm"

type TemplateExercise struct {
	gorm.Model

	TemplateID uint `gorm:"not null;index"`
	ExerciseID uint `gorm:"not null;index"`

	// Order of exercise in template
	OrderIndex int `gorm:"not null"`

	// Suggested defaults (optional)
	SuggestedSets   *int
	SuggestedReps   *int
	SuggestedWeight *float64 `gorm:"type:decimal(10,2)"`

	Notes string

	// Relationships
	Template WorkoutTemplate `gorm:"foreignKey:TemplateID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Exercise Exercise        `gorm:"foreignKey:ExerciseID;constraint:OnUpdate:Cascade,OnDelete:RESTRICT"`
}
