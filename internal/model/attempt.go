package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	AttemptInProgress = "in_progress"
	AttemptCompleted  = "completed"
	AttemptAbandoned  = "abandoned"
)

// Attempt is one student's timed pass through one quiz. ScoreTotal is
// snapshotted from the quiz's question points when the attempt starts and
// never recomputed afterwards.
type Attempt struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	StudentID   uint           `json:"student_id" gorm:"not null;index"`
	Student     *Student       `json:"student,omitempty" gorm:"foreignKey:StudentID"`
	QuizID      uint           `json:"quiz_id" gorm:"not null;index"`
	Quiz        *Quiz          `json:"quiz,omitempty" gorm:"foreignKey:QuizID"`
	Status      string         `json:"status" gorm:"default:'in_progress'"` // in_progress, completed, abandoned
	StartedAt   time.Time      `json:"started_at"`
	EndedAt     *time.Time     `json:"ended_at,omitempty"`
	ScoreObtenu float64        `json:"score_obtenu" gorm:"default:0"`
	ScoreTotal  float64        `json:"score_total" gorm:"not null"`
	Responses   []Response     `json:"responses,omitempty" gorm:"foreignKey:AttemptID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
