package model

import (
	"time"

	"gorm.io/gorm"
)

// Group is a cohort of students, used for targeted quiz distribution.
type Group struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Name      string         `json:"name" gorm:"size:150;not null;uniqueIndex"`
	Level     string         `json:"level" gorm:"size:50"`
	Students  []Student      `json:"students,omitempty" gorm:"foreignKey:GroupID"`
	Quizzes   []Quiz         `json:"quizzes,omitempty" gorm:"many2many:assignments;"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
