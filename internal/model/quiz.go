package model

import (
	"time"

	"gorm.io/gorm"
)

type Quiz struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	Title          string         `json:"title" gorm:"size:255;not null"`
	Description    string         `json:"description,omitempty"`
	Duration       int            `json:"duration" gorm:"not null"` // minutes
	StartDate      *time.Time     `json:"start_date,omitempty"`
	EndDate        *time.Time     `json:"end_date,omitempty"`
	ShowCorrection bool           `json:"show_correction" gorm:"default:false"`
	MaxAttempts    int            `json:"max_attempts" gorm:"default:1"`
	Active         bool           `json:"active" gorm:"default:true"`
	Code           string         `json:"code" gorm:"size:20;not null;uniqueIndex"` // join code, immutable
	ProfessorID    uint           `json:"professor_id" gorm:"not null;index"`
	Professor      *Professor     `json:"professor,omitempty" gorm:"foreignKey:ProfessorID"`
	ModuleID       uint           `json:"module_id" gorm:"not null;index"`
	Module         *Module        `json:"module,omitempty" gorm:"foreignKey:ModuleID"`
	Questions      []Question     `json:"questions,omitempty" gorm:"foreignKey:QuizID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Attempts       []Attempt      `json:"attempts,omitempty" gorm:"foreignKey:QuizID"`
	Groups         []Group        `json:"groups,omitempty" gorm:"many2many:assignments;"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
