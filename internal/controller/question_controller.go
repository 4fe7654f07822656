package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quizdeck/quizdeck/internal/dto"
	"github.com/quizdeck/quizdeck/internal/service"
)

type QuestionController struct {
	questionSvc service.QuestionService
}

func NewQuestionController(questionSvc service.QuestionService) *QuestionController {
	return &QuestionController{questionSvc: questionSvc}
}

// List godoc
// @Summary List all questions
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse
// @Router /admin/questions [get]
func (ctrl *QuestionController) List(c *gin.Context) {
	questions, err := ctrl.questionSvc.List()
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, questions, "Questions retrieved successfully")
}

// Create godoc
// @Summary Add a question to a quiz
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param question body dto.CreateQuestionRequest true "Question data"
// @Success 201 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse "Quiz not found"
// @Router /questions [post]
func (ctrl *QuestionController) Create(c *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	question, err := ctrl.questionSvc.Create(req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, question, "Question created successfully")
}

// BulkCreate godoc
// @Summary Add several questions to a quiz at once
// @Description All questions and their inline choices are created in a single transaction
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param questions body dto.BulkCreateQuestionsRequest true "Questions to create"
// @Success 201 {object} dto.APIResponse
// @Router /questions/bulk [post]
func (ctrl *QuestionController) BulkCreate(c *gin.Context) {
	var req dto.BulkCreateQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	questions, err := ctrl.questionSvc.BulkCreate(req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, questions, "Questions created successfully")
}

// Get godoc
// @Summary Get a question with its choices
// @Tags questions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse "Question not found"
// @Router /questions/{id} [get]
func (ctrl *QuestionController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	question, err := ctrl.questionSvc.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, question, "Question retrieved successfully")
}

// GetByQuiz godoc
// @Summary List a quiz's questions
// @Tags questions
// @Produce json
// @Security BearerAuth
// @Param quizId path int true "Quiz ID"
// @Success 200 {object} dto.APIResponse
// @Router /questions/quiz/{quizId} [get]
func (ctrl *QuestionController) GetByQuiz(c *gin.Context) {
	quizID, ok := parseID(c, "quizId")
	if !ok {
		return
	}
	questions, err := ctrl.questionSvc.GetByQuiz(quizID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, questions, "Questions retrieved successfully")
}

// Update godoc
// @Summary Update a question
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Param question body dto.UpdateQuestionRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse
// @Router /questions/{id} [put]
func (ctrl *QuestionController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	question, err := ctrl.questionSvc.Update(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, question, "Question updated successfully")
}

// Delete godoc
// @Summary Delete a question and its choices
// @Tags questions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Success 200 {object} dto.APIResponse
// @Router /questions/{id} [delete]
func (ctrl *QuestionController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.questionSvc.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, nil, "Question deleted successfully")
}
