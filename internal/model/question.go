package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	QuestionType3Choice = "3-choice"
	QuestionType4Choice = "4-choice"
)

type Question struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	QuizID    uint           `json:"quiz_id" gorm:"not null;index"`
	Text      string         `json:"text" gorm:"type:text;not null"`
	Type      string         `json:"type" gorm:"not null"` // "3-choice", "4-choice"
	Points    float64        `json:"points" gorm:"not null;default:1"`
	Choices   []Choice       `json:"choices,omitempty" gorm:"foreignKey:QuestionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
