package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quizdeck/quizdeck/internal/dto"
	"github.com/quizdeck/quizdeck/internal/service"
)

type AdminController struct {
	adminSvc service.AdminService
}

func NewAdminController(adminSvc service.AdminService) *AdminController {
	return &AdminController{adminSvc: adminSvc}
}

// Stats godoc
// @Summary Platform-wide entity counts
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse
// @Router /admin/stats [get]
func (ctrl *AdminController) Stats(c *gin.Context) {
	stats, err := ctrl.adminSvc.Stats()
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, stats, "Statistics retrieved successfully")
}

// ListStudents godoc
// @Summary List all students
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse
// @Router /admin/students [get]
func (ctrl *AdminController) ListStudents(c *gin.Context) {
	students, err := ctrl.adminSvc.ListStudents()
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, students, "Students retrieved successfully")
}

// CreateStudent godoc
// @Summary Create a student with its user account
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param student body dto.CreateStudentRequest true "Student data"
// @Success 201 {object} dto.APIResponse
// @Router /admin/students [post]
func (ctrl *AdminController) CreateStudent(c *gin.Context) {
	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	student, err := ctrl.adminSvc.CreateStudent(req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, student, "Student created successfully")
}

// UpdateStudent godoc
// @Summary Update a student
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param student body dto.UpdateStudentRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse
// @Router /admin/students/{id} [put]
func (ctrl *AdminController) UpdateStudent(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	student, err := ctrl.adminSvc.UpdateStudent(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, student, "Student updated successfully")
}

// DeleteStudent godoc
// @Summary Delete a student and its user account
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse
// @Router /admin/students/{id} [delete]
func (ctrl *AdminController) DeleteStudent(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.adminSvc.DeleteStudent(id); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, nil, "Student deleted successfully")
}

// ListProfessors godoc
// @Summary List all professors
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse
// @Router /admin/professors [get]
func (ctrl *AdminController) ListProfessors(c *gin.Context) {
	professors, err := ctrl.adminSvc.ListProfessors()
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, professors, "Professors retrieved successfully")
}

// CreateProfessor godoc
// @Summary Create a professor with its user account
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param professor body dto.CreateProfessorRequest true "Professor data"
// @Success 201 {object} dto.APIResponse
// @Router /admin/professors [post]
func (ctrl *AdminController) CreateProfessor(c *gin.Context) {
	var req dto.CreateProfessorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	professor, err := ctrl.adminSvc.CreateProfessor(req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, professor, "Professor created successfully")
}

// UpdateProfessor godoc
// @Summary Update a professor
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Professor ID"
// @Param professor body dto.UpdateProfessorRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse
// @Router /admin/professors/{id} [put]
func (ctrl *AdminController) UpdateProfessor(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateProfessorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	professor, err := ctrl.adminSvc.UpdateProfessor(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, professor, "Professor updated successfully")
}

// DeleteProfessor godoc
// @Summary Delete a professor and its user account
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Professor ID"
// @Success 200 {object} dto.APIResponse
// @Router /admin/professors/{id} [delete]
func (ctrl *AdminController) DeleteProfessor(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.adminSvc.DeleteProfessor(id); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, nil, "Professor deleted successfully")
}

// ListSpecialities godoc
// @Summary List the distinct professor specialities
// @Tags public
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /specializations [get]
func (ctrl *AdminController) ListSpecialities(c *gin.Context) {
	specialities, err := ctrl.adminSvc.ListSpecialities()
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, specialities, "Specialities retrieved successfully")
}

// ListModules godoc
// @Summary List all modules
// @Tags public
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /modules [get]
func (ctrl *AdminController) ListModules(c *gin.Context) {
	modules, err := ctrl.adminSvc.ListModules()
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, modules, "Modules retrieved successfully")
}

// CreateModule godoc
// @Summary Create a module
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param module body dto.CreateModuleRequest true "Module data"
// @Success 201 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse "Module name already taken"
// @Router /admin/modules [post]
func (ctrl *AdminController) CreateModule(c *gin.Context) {
	var req dto.CreateModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	module, err := ctrl.adminSvc.CreateModule(req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, module, "Module created successfully")
}

// UpdateModule godoc
// @Summary Update a module
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Module ID"
// @Param module body dto.UpdateModuleRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse
// @Router /admin/modules/{id} [put]
func (ctrl *AdminController) UpdateModule(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	module, err := ctrl.adminSvc.UpdateModule(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, module, "Module updated successfully")
}

// DeleteModule godoc
// @Summary Delete a module
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Module ID"
// @Success 200 {object} dto.APIResponse
// @Router /admin/modules/{id} [delete]
func (ctrl *AdminController) DeleteModule(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.adminSvc.DeleteModule(id); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, nil, "Module deleted successfully")
}

// ListGroups godoc
// @Summary List all groups
// @Tags public
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /groups [get]
func (ctrl *AdminController) ListGroups(c *gin.Context) {
	groups, err := ctrl.adminSvc.ListGroups()
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, groups, "Groups retrieved successfully")
}

// DeleteGroup godoc
// @Summary Delete a group
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Success 200 {object} dto.APIResponse
// @Router /admin/groups/{id} [delete]
func (ctrl *AdminController) DeleteGroup(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.adminSvc.DeleteGroup(id); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, nil, "Group deleted successfully")
}
