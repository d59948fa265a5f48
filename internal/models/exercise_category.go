package models

import "gorm.io/gorm"

const (
	CategoryTypeType        = "type"         // strength, cardio, flexibility
	CategoryTypeMuscleGroup = "muscle_group" // chest, back, legs, etc.
)

type ExerciseCategory struct {
	gorm.Model

	Name        string `gorm:"not null;uniqueIndex:idx_category_name_type"`
	Type        string `gorm:"not null;uniqueIndex:idx_category_name_type"` // "type" or "muscle_group"
	Description string

	// Relationships
	Exercises []Exercise `gorm:"foreignKey:CategoryID;constraint:OnUpdate:Cascade,OnDelete:RESTRICT"`
}
