package dto

import "time"

// ChoiceInQuestionRequest is used when choices are created inline with a question.
type ChoiceInQuestionRequest struct {
	Text       string `json:"text" binding:"required"`
	EstCorrect bool   `json:"est_correct"`
}

// QuestionInQuizRequest is used when questions are created inline with a quiz.
type QuestionInQuizRequest struct {
	Text    string                    `json:"text" binding:"required"`
	Type    string                    `json:"type" binding:"required,oneof=3-choice 4-choice"`
	Points  float64                   `json:"points" binding:"gte=0"`
	Choices []ChoiceInQuestionRequest `json:"choices" binding:"omitempty,dive"`
}

type CreateQuizRequest struct {
	ModuleID       uint                    `json:"module_id" binding:"required"`
	Title          string                  `json:"title" binding:"required,max=255"`
	Description    string                  `json:"description"`
	Duration       int                     `json:"duration" binding:"required,min=1"`
	StartDate      *time.Time              `json:"start_date"`
	EndDate        *time.Time              `json:"end_date"`
	ShowCorrection *bool                   `json:"show_correction"`
	MaxAttempts    *int                    `json:"max_attempts" binding:"omitempty,min=1"`
	Active         *bool                   `json:"active"`
	Questions      []QuestionInQuizRequest `json:"questions" binding:"omitempty,dive"`
}

type UpdateQuizRequest struct {
	ModuleID       *uint      `json:"module_id"`
	Title          *string    `json:"title" binding:"omitempty,max=255"`
	Description    *string    `json:"description"`
	Duration       *int       `json:"duration" binding:"omitempty,min=1"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	ShowCorrection *bool      `json:"show_correction"`
	MaxAttempts    *int       `json:"max_attempts" binding:"omitempty,min=1"`
	Active         *bool      `json:"active"`
}

// QuizListFilter captures the supported query filters for listing quizzes.
type QuizListFilter struct {
	ModuleID    *uint
	ProfessorID *uint
	Active      *bool
	Page        int
	PerPage     int
}

// QuizStatistics summarizes completed attempts for one quiz.
type QuizStatistics struct {
	QuizID            uint     `json:"quiz_id"`
	TotalQuestions    int64    `json:"total_questions"`
	TotalAttempts     int      `json:"total_attempts"`
	Completed         int      `json:"completed"`
	InProgress        int      `json:"in_progress"`
	Abandoned         int      `json:"abandoned"`
	AverageScore      *float64 `json:"average_score,omitempty"`
	AveragePercentage *float64 `json:"average_percentage,omitempty"`
}
