package models

import (
	"time"

	"gorm.io/gorm"
)

type Workout struct {
	gorm.Model

	UserID uint `gorm:"not null;index:idx_workouts_user_date"`

	// Optional: link to template if created from one
	TemplateID *uint `gorm:"index"`

	Name *string
	Date time.Time `gorm:"not null;index:idx_workouts_user_date"`

	// Duration in seconds (optional)
	DurationSeconds *int

	Notes string

	// Relationships
	User             User              `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Template         *WorkoutTemplate  `gorm:"foreignKey:TemplateID;constraint:OnUpdate:Cascade,OnDelete:SET NULL"`
	WorkoutExercises []WorkoutExercise `gorm:"foreignKey:WorkoutID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
