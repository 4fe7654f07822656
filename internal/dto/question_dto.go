package dto

type CreateQuestionRequest struct {
	QuizID uint    `json:"quiz_id" binding:"required"`
	Text   string  `json:"text" binding:"required"`
	Type   string  `json:"type" binding:"required,oneof=3-choice 4-choice"`
	Points float64 `json:"points" binding:"gte=0"`
}

type UpdateQuestionRequest struct {
	Text   *string  `json:"text"`
	Type   *string  `json:"type" binding:"omitempty,oneof=3-choice 4-choice"`
	Points *float64 `json:"points" binding:"omitempty,gte=0"`
}

type BulkCreateQuestionsRequest struct {
	QuizID    uint                    `json:"quiz_id" binding:"required"`
	Questions []QuestionInQuizRequest `json:"questions" binding:"required,min=1,dive"`
}

type CreateChoiceRequest struct {
	QuestionID uint   `json:"question_id" binding:"required"`
	Text       string `json:"text" binding:"required"`
	EstCorrect bool   `json:"est_correct"`
}

type UpdateChoiceRequest struct {
	Text       *string `json:"text"`
	EstCorrect *bool   `json:"est_correct"`
}

type BulkCreateChoicesRequest struct {
	QuestionID uint                      `json:"question_id" binding:"required"`
	Choices    []ChoiceInQuestionRequest `json:"choices" binding:"required,min=1,dive"`
}
