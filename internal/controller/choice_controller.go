package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quizdeck/quizdeck/internal/dto"
	"github.com/quizdeck/quizdeck/internal/service"
)

type ChoiceController struct {
	choiceSvc service.ChoiceService
}

func NewChoiceController(choiceSvc service.ChoiceService) *ChoiceController {
	return &ChoiceController{choiceSvc: choiceSvc}
}

// List godoc
// @Summary List all choices
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse
// @Router /admin/choices [get]
func (ctrl *ChoiceController) List(c *gin.Context) {
	choices, err := ctrl.choiceSvc.List()
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, choices, "Choices retrieved successfully")
}

// Create godoc
// @Summary Add a choice to a question
// @Tags choices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param choice body dto.CreateChoiceRequest true "Choice data"
// @Success 201 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse "Question not found"
// @Router /choices [post]
func (ctrl *ChoiceController) Create(c *gin.Context) {
	var req dto.CreateChoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	choice, err := ctrl.choiceSvc.Create(req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, choice, "Choice created successfully")
}

// BulkCreate godoc
// @Summary Add several choices to a question at once
// @Tags choices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param choices body dto.BulkCreateChoicesRequest true "Choices to create"
// @Success 201 {object} dto.APIResponse
// @Router /choices/bulk [post]
func (ctrl *ChoiceController) BulkCreate(c *gin.Context) {
	var req dto.BulkCreateChoicesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	choices, err := ctrl.choiceSvc.BulkCreate(req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, choices, "Choices created successfully")
}

// Get godoc
// @Summary Get a choice
// @Tags choices
// @Produce json
// @Security BearerAuth
// @Param id path int true "Choice ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse "Choice not found"
// @Router /choices/{id} [get]
func (ctrl *ChoiceController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	choice, err := ctrl.choiceSvc.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, choice, "Choice retrieved successfully")
}

// GetByQuestion godoc
// @Summary List a question's choices
// @Tags choices
// @Produce json
// @Security BearerAuth
// @Param questionId path int true "Question ID"
// @Success 200 {object} dto.APIResponse
// @Router /choices/question/{questionId} [get]
func (ctrl *ChoiceController) GetByQuestion(c *gin.Context) {
	questionID, ok := parseID(c, "questionId")
	if !ok {
		return
	}
	choices, err := ctrl.choiceSvc.GetByQuestion(questionID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, choices, "Choices retrieved successfully")
}

// Update godoc
// @Summary Update a choice
// @Tags choices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Choice ID"
// @Param choice body dto.UpdateChoiceRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse
// @Router /choices/{id} [put]
func (ctrl *ChoiceController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateChoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	choice, err := ctrl.choiceSvc.Update(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, choice, "Choice updated successfully")
}

// Delete godoc
// @Summary Delete a choice
// @Tags choices
// @Produce json
// @Security BearerAuth
// @Param id path int true "Choice ID"
// @Success 200 {object} dto.APIResponse
// @Router /choices/{id} [delete]
func (ctrl *ChoiceController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.choiceSvc.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, nil, "Choice deleted successfully")
}
