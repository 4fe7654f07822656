package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quizdeck/quizdeck/internal/dto"
	"github.com/quizdeck/quizdeck/internal/middleware"
	"github.com/quizdeck/quizdeck/internal/service"
)

type QuizController struct {
	quizSvc service.QuizService
}

func NewQuizController(quizSvc service.QuizService) *QuizController {
	return &QuizController{quizSvc: quizSvc}
}

// List godoc
// @Summary List quizzes
// @Description Paginated quiz list, filterable by module, professor and active flag
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Param module_id query int false "Filter by module"
// @Param professor_id query int false "Filter by professor"
// @Param active query bool false "Filter by active flag"
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Success 200 {object} dto.APIResponse
// @Router /quizzes [get]
func (ctrl *QuizController) List(c *gin.Context) {
	page, perPage := pagination(c, 15)
	filter := dto.QuizListFilter{
		ModuleID:    queryUint(c, "module_id"),
		ProfessorID: queryUint(c, "professor_id"),
		Active:      queryBool(c, "active"),
		Page:        page,
		PerPage:     perPage,
	}

	result, err := ctrl.quizSvc.List(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, result, "Quizzes retrieved successfully")
}

// Create godoc
// @Summary Create a quiz
// @Description Creates a quiz owned by the authenticated professor, optionally with inline questions and choices, in one transaction
// @Tags quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param quiz body dto.CreateQuizRequest true "Quiz data"
// @Success 201 {object} dto.APIResponse
// @Failure 403 {object} dto.APIResponse "Caller is not a professor"
// @Router /quizzes [post]
func (ctrl *QuizController) Create(c *gin.Context) {
	var req dto.CreateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	quiz, err := ctrl.quizSvc.Create(middleware.CurrentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, quiz, "Quiz created successfully")
}

// Get godoc
// @Summary Get a quiz with its questions and choices
// @Tags quizzes
// @Produce json
// @Param id path int true "Quiz ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse "Quiz not found"
// @Router /quizzes/{id} [get]
func (ctrl *QuizController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	quiz, err := ctrl.quizSvc.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, quiz, "Quiz retrieved successfully")
}

// GetByCode godoc
// @Summary Look up a quiz by its join code
// @Description Public endpoint used by students joining a quiz before logging in
// @Tags quizzes
// @Produce json
// @Param code path string true "Join code"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse "Quiz not found"
// @Router /quizzes/code/{code} [get]
func (ctrl *QuizController) GetByCode(c *gin.Context) {
	quiz, err := ctrl.quizSvc.GetByCode(c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, quiz, "Quiz retrieved successfully")
}

// ByGroup godoc
// @Summary List the quizzes assigned to a group
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Param groupId path int true "Group ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse "Group not found"
// @Router /quizzes/group/{groupId} [get]
func (ctrl *QuizController) ByGroup(c *gin.Context) {
	groupID, ok := parseID(c, "groupId")
	if !ok {
		return
	}
	quizzes, err := ctrl.quizSvc.GetByGroup(groupID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, quizzes, "Quizzes retrieved successfully")
}

// Update godoc
// @Summary Update a quiz
// @Description Professors may only edit their own quizzes; the join code is immutable
// @Tags quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz ID"
// @Param quiz body dto.UpdateQuizRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.APIResponse "Not the owner"
// @Router /quizzes/{id} [put]
func (ctrl *QuizController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	quiz, err := ctrl.quizSvc.Update(middleware.CurrentUserID(c), middleware.CurrentRole(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, quiz, "Quiz updated successfully")
}

// Delete godoc
// @Summary Delete a quiz and everything under it
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz ID"
// @Success 200 {object} dto.APIResponse
// @Router /quizzes/{id} [delete]
func (ctrl *QuizController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.quizSvc.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, nil, "Quiz deleted successfully")
}

// Statistics godoc
// @Summary Per-quiz attempt statistics
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz ID"
// @Success 200 {object} dto.APIResponse
// @Router /quizzes/{id}/statistics [get]
func (ctrl *QuizController) Statistics(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	stats, err := ctrl.quizSvc.Statistics(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, stats, "Quiz statistics retrieved successfully")
}
