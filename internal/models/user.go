package models

import "gorm.io/gorm"

type User struct {
	gorm.Model

	ExternalID   string `gorm:"uniqueIndex;not null"` // Opaque subject ID from the identity provider
	Email        string `gorm:"uniqueIndex;not null"`
	Name         string
	PasswordHash string `gorm:"not null"`

	// Relationships
	Exercises        []Exercise        `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Workouts         []Workout         `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	WorkoutTemplates []WorkoutTemplate `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
