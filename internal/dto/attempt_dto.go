package dto

import (
	"time"

	"github.com/quizdeck/quizdeck/internal/model"
)

type StartAttemptRequest struct {
	QuizID    uint  `json:"quiz_id" binding:"required"`
	StudentID *uint `json:"student_id"`
}

type UpdateAttemptRequest struct {
	Status      *string  `json:"status" binding:"omitempty,oneof=in_progress completed abandoned"`
	ScoreObtenu *float64 `json:"score_obtenu" binding:"omitempty,gte=0"`
}

type SubmitResponseRequest struct {
	AttemptID  uint `json:"attempt_id" binding:"required"`
	QuestionID uint `json:"question_id" binding:"required"`
	ChoiceID   uint `json:"choice_id" binding:"required"`
}

type BulkSubmitResponsesRequest struct {
	Responses []SubmitResponseRequest `json:"responses" binding:"required,min=1,dive"`
}

type UpdateResponseRequest struct {
	ChoiceID uint `json:"choice_id" binding:"required"`
}

// AttemptListFilter captures the supported query filters for listing attempts.
type AttemptListFilter struct {
	StudentID *uint
	QuizID    *uint
	Status    *string
	Page      int
	PerPage   int
}

// ResponseListFilter captures the supported query filters for listing responses.
type ResponseListFilter struct {
	AttemptID  *uint
	QuestionID *uint
	EstCorrect *bool
	Page       int
	PerPage    int
}

// AttemptResponse is an attempt plus its derived score percentage.
type AttemptResponse struct {
	ID          uint             `json:"id"`
	StudentID   uint             `json:"student_id"`
	Student     *model.Student   `json:"student,omitempty"`
	QuizID      uint             `json:"quiz_id"`
	Quiz        *model.Quiz      `json:"quiz,omitempty"`
	Status      string           `json:"status"`
	StartedAt   time.Time        `json:"started_at"`
	EndedAt     *time.Time       `json:"ended_at,omitempty"`
	ScoreObtenu float64          `json:"score_obtenu"`
	ScoreTotal  float64          `json:"score_total"`
	Responses   []model.Response `json:"responses,omitempty"`
	Score       float64          `json:"score"` // percentage, 2 decimals
	CreatedAt   time.Time        `json:"created_at"`
}

// AttemptStatistics summarizes the responses recorded for one attempt.
type AttemptStatistics struct {
	AttemptID      uint             `json:"attempt_id"`
	Responses      []model.Response `json:"responses"`
	CorrectAnswers int              `json:"correct_answers"`
	TotalQuestions int              `json:"total_questions"`
	Accuracy       float64          `json:"accuracy"`
}
