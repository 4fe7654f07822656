package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quizdeck/quizdeck/internal/dto"
	"github.com/quizdeck/quizdeck/internal/middleware"
	"github.com/quizdeck/quizdeck/internal/service"
)

type AttemptController struct {
	attemptSvc service.AttemptService
}

func NewAttemptController(attemptSvc service.AttemptService) *AttemptController {
	return &AttemptController{attemptSvc: attemptSvc}
}

// List godoc
// @Summary List attempts
// @Tags attempts
// @Produce json
// @Security BearerAuth
// @Param student_id query int false "Filter by student"
// @Param quiz_id query int false "Filter by quiz"
// @Param status query string false "Filter by status" Enums(in_progress, completed, abandoned)
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Success 200 {object} dto.APIResponse
// @Router /attempts [get]
func (ctrl *AttemptController) List(c *gin.Context) {
	page, perPage := pagination(c, 15)
	filter := dto.AttemptListFilter{
		StudentID: queryUint(c, "student_id"),
		QuizID:    queryUint(c, "quiz_id"),
		Status:    queryString(c, "status"),
		Page:      page,
		PerPage:   perPage,
	}

	result, err := ctrl.attemptSvc.List(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, result, "Attempts retrieved successfully")
}

// Start godoc
// @Summary Start an attempt
// @Description Opens an in_progress attempt on the quiz. The student is the caller's profile unless an explicit student_id is supplied.
// @Tags attempts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param attempt body dto.StartAttemptRequest true "Attempt data"
// @Success 201 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse "Quiz or student not found"
// @Failure 422 {object} dto.APIResponse "No student identity resolvable"
// @Router /attempts [post]
func (ctrl *AttemptController) Start(c *gin.Context) {
	var req dto.StartAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	attempt, err := ctrl.attemptSvc.Start(middleware.CurrentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, attempt, "Attempt started successfully")
}

// Get godoc
// @Summary Get an attempt with its responses
// @Tags attempts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Attempt ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse "Attempt not found"
// @Router /attempts/{id} [get]
func (ctrl *AttemptController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	attempt, err := ctrl.attemptSvc.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, attempt, "Attempt retrieved successfully")
}

// Update godoc
// @Summary Update an attempt's status or score
// @Description Completed attempts are frozen and reject further updates
// @Tags attempts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Attempt ID"
// @Param attempt body dto.UpdateAttemptRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse "Attempt already completed"
// @Router /attempts/{id} [put]
func (ctrl *AttemptController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	attempt, err := ctrl.attemptSvc.Update(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, attempt, "Attempt updated successfully")
}

// Finish godoc
// @Summary Finish an attempt and compute its score
// @Description Sums the points of correctly answered questions, marks the attempt completed and stamps the end time
// @Tags attempts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Attempt ID"
// @Success 200 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse "Attempt already finished"
// @Router /attempts/{id}/finish [post]
func (ctrl *AttemptController) Finish(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	attempt, err := ctrl.attemptSvc.Finish(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, attempt, "Attempt finished successfully")
}

// Delete godoc
// @Summary Delete an attempt and its responses
// @Tags attempts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Attempt ID"
// @Success 200 {object} dto.APIResponse
// @Router /attempts/{id} [delete]
func (ctrl *AttemptController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.attemptSvc.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, nil, "Attempt deleted successfully")
}

// ByStudent godoc
// @Summary List a student's attempts
// @Tags attempts
// @Produce json
// @Security BearerAuth
// @Param studentId path int true "Student ID"
// @Success 200 {object} dto.APIResponse
// @Router /attempts/student/{studentId} [get]
func (ctrl *AttemptController) ByStudent(c *gin.Context) {
	studentID, ok := parseID(c, "studentId")
	if !ok {
		return
	}
	attempts, err := ctrl.attemptSvc.ByStudent(studentID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, attempts, "Attempts retrieved successfully")
}

// ByQuiz godoc
// @Summary List a quiz's attempts
// @Tags attempts
// @Produce json
// @Security BearerAuth
// @Param quizId path int true "Quiz ID"
// @Success 200 {object} dto.APIResponse
// @Router /attempts/quiz/{quizId} [get]
func (ctrl *AttemptController) ByQuiz(c *gin.Context) {
	quizID, ok := parseID(c, "quizId")
	if !ok {
		return
	}
	attempts, err := ctrl.attemptSvc.ByQuiz(quizID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, attempts, "Attempts retrieved successfully")
}
