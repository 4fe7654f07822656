package model

import "time"

// Response records a student's chosen answer for one question within one
// attempt. EstCorrect is copied from the choice at submission time; editing
// the choice later must not change it. The (attempt, question) pair is unique,
// and responses are hard-deleted so removing one frees the slot for a
// resubmission.
type Response struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	AttemptID  uint      `json:"attempt_id" gorm:"not null;uniqueIndex:idx_attempt_question"`
	Attempt    *Attempt  `json:"attempt,omitempty" gorm:"foreignKey:AttemptID"`
	QuestionID uint      `json:"question_id" gorm:"not null;uniqueIndex:idx_attempt_question"`
	Question   *Question `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	ChoiceID   uint      `json:"choice_id" gorm:"not null;index"`
	Choice     *Choice   `json:"choice,omitempty" gorm:"foreignKey:ChoiceID"`
	EstCorrect bool      `json:"est_correct"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
