package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quizdeck/quizdeck/internal/dto"
	"github.com/quizdeck/quizdeck/internal/service"
)

type ResponseController struct {
	responseSvc service.ResponseService
	attemptSvc  service.AttemptService
}

func NewResponseController(responseSvc service.ResponseService, attemptSvc service.AttemptService) *ResponseController {
	return &ResponseController{responseSvc: responseSvc, attemptSvc: attemptSvc}
}

// List godoc
// @Summary List responses
// @Tags responses
// @Produce json
// @Security BearerAuth
// @Param attempt_id query int false "Filter by attempt"
// @Param question_id query int false "Filter by question"
// @Param est_correct query bool false "Filter by correctness"
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Success 200 {object} dto.APIResponse
// @Router /responses [get]
func (ctrl *ResponseController) List(c *gin.Context) {
	page, perPage := pagination(c, 15)
	filter := dto.ResponseListFilter{
		AttemptID:  queryUint(c, "attempt_id"),
		QuestionID: queryUint(c, "question_id"),
		EstCorrect: queryBool(c, "est_correct"),
		Page:       page,
		PerPage:    perPage,
	}

	result, err := ctrl.responseSvc.List(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, result, "Responses retrieved successfully")
}

// Submit godoc
// @Summary Record a response in an attempt
// @Description Stores the chosen choice with a frozen copy of its correctness. One response per question per attempt.
// @Tags responses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param response body dto.SubmitResponseRequest true "Response data"
// @Success 201 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse "Question already answered in this attempt"
// @Failure 422 {object} dto.APIResponse "Choice does not belong to the question"
// @Router /responses [post]
func (ctrl *ResponseController) Submit(c *gin.Context) {
	var req dto.SubmitResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	response, err := ctrl.attemptSvc.RecordResponse(req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, response, "Response recorded successfully")
}

// BulkSubmit godoc
// @Summary Record several responses at once
// @Description All responses are validated first and written in a single transaction
// @Tags responses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param responses body dto.BulkSubmitResponsesRequest true "Responses to record"
// @Success 201 {object} dto.APIResponse
// @Router /responses/bulk [post]
func (ctrl *ResponseController) BulkSubmit(c *gin.Context) {
	var req dto.BulkSubmitResponsesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	responses, err := ctrl.attemptSvc.BulkRecordResponses(req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, responses, "Responses recorded successfully")
}

// Get godoc
// @Summary Get a response
// @Tags responses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Response ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse "Response not found"
// @Router /responses/{id} [get]
func (ctrl *ResponseController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	response, err := ctrl.responseSvc.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, response, "Response retrieved successfully")
}

// Update godoc
// @Summary Change the choice of a response
// @Description The new choice must belong to the same question; correctness is re-copied from it
// @Tags responses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Response ID"
// @Param response body dto.UpdateResponseRequest true "New choice"
// @Success 200 {object} dto.APIResponse
// @Router /responses/{id} [put]
func (ctrl *ResponseController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	response, err := ctrl.responseSvc.Update(id, req.ChoiceID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, response, "Response updated successfully")
}

// Delete godoc
// @Summary Delete a response
// @Tags responses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Response ID"
// @Success 200 {object} dto.APIResponse
// @Router /responses/{id} [delete]
func (ctrl *ResponseController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.responseSvc.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, nil, "Response deleted successfully")
}

// ByAttempt godoc
// @Summary List an attempt's responses with an accuracy summary
// @Tags responses
// @Produce json
// @Security BearerAuth
// @Param attemptId path int true "Attempt ID"
// @Success 200 {object} dto.APIResponse
// @Router /responses/attempt/{attemptId} [get]
func (ctrl *ResponseController) ByAttempt(c *gin.Context) {
	attemptID, ok := parseID(c, "attemptId")
	if !ok {
		return
	}
	stats, err := ctrl.responseSvc.ByAttempt(attemptID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, stats, "Responses retrieved successfully")
}
