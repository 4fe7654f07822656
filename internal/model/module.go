package model

import (
	"time"

	"gorm.io/gorm"
)

type Module struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Name        string         `json:"name" gorm:"size:150;not null;uniqueIndex"`
	Description string         `json:"description,omitempty"`
	Quizzes     []Quiz         `json:"quizzes,omitempty" gorm:"foreignKey:ModuleID"`
	Groups      []Group        `json:"groups,omitempty" gorm:"many2many:enrollments;"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
