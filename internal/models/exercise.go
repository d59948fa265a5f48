package models

import "gorm.io/gorm"

type Exercise struct {
	gorm.Model

	Name        string `gorm:"not null"`
	Description string

	// NULL = predefined (system-wide), NOT NULL = custom (user-created)
	UserID     *uint `gorm:"index"`
	CategoryID *uint `gorm:"index"`

	Instructions string
	VideoURL     string

	// Relationships
	User             *User             `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Category         *ExerciseCategory `gorm:"foreignKey:CategoryID;constraint:OnUpdate:Cascade,OnDelete:RESTRICT"`
	WorkoutExercises []WorkoutExercise `gorm:"foreignKey:ExerciseID;constraint:OnUpdate:Cascade,OnDelete:RESTRICT"`
}
