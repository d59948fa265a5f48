package models

import "gorm.io/gorm"

type WorkoutTemplate struct {
	gorm.Model

	UserID      uint   `gorm:"not null;index"`
	Name        string `gorm:"not null"`
	Description string
	IsFavorite  bool `gorm:"default:false"`

	// Relationships
	User              User               `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	TemplateExercises []TemplateExercise `gorm:"foreignKey:TemplateID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
