package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/myclassprogress/internal/models"
	"github.com/noah-isme/myclassprogress/internal/service"
	appErrors "github.com/noah-isme/myclassprogress/pkg/errors"
	"github.com/noah-isme/myclassprogress/pkg/response"
)

// StudentHandler exposes student endpoints.
type StudentHandler struct {
	students  *service.StudentService
	dashboard *service.DashboardService
}

// NewStudentHandler constructs StudentHandler.
func NewStudentHandler(students *service.StudentService, dashboard *service.DashboardService) *StudentHandler {
	return &StudentHandler{students: students, dashboard: dashboard}
}

// List godoc
// @Summary List active students
// @Tags Students
// @Produce json
// @Param kelas query string false "Filter by class"
// @Success 200 {object} response.Envelope
// @Router /students [get]
func (h *StudentHandler) List(c *gin.Context) {
	students := h.students.List(c.Query("kelas"))
	response.List(c, students, len(students))
}

// Get godoc
// @Summary Get student detail
// @Tags Students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /students/{id} [get]
func (h *StudentHandler) Get(c *gin.Context) {
	student, err := h.students.Get(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, student)
}

// Create godoc
// @Summary Register a student
// @Tags Students
// @Accept json
// @Produce json
// @Param payload body models.NewStudent true "Student payload"
// @Success 201 {object} response.Envelope
// @Router /students [post]
func (h *StudentHandler) Create(c *gin.Context) {
	var req models.NewStudent
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	student, err := h.students.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, student)
}

// Update godoc
// @Summary Patch a student
// @Tags Students
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param payload body models.StudentPatch true "Fields to change"
// @Success 200 {object} response.Envelope
// @Router /students/{id} [patch]
func (h *StudentHandler) Update(c *gin.Context) {
	var patch models.StudentPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	student, err := h.students.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, student)
}

// Delete godoc
// @Summary Deactivate student
// @Tags Students
// @Param id path string true "Student ID"
// @Success 204
// @Router /students/{id} [delete]
func (h *StudentHandler) Delete(c *gin.Context) {
	if err := h.students.Deactivate(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Tasks godoc
// @Summary Task rows of a student
// @Tags Students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /students/{id}/tasks [get]
func (h *StudentHandler) Tasks(c *gin.Context) {
	tasks, err := h.students.Tasks(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, tasks, len(tasks))
}

// Grades godoc
// @Summary Grades of a student
// @Tags Students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /students/{id}/grades [get]
func (h *StudentHandler) Grades(c *gin.Context) {
	grades, err := h.students.Grades(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, grades, len(grades))
}

// Statistics godoc
// @Summary Progress statistics of a student
// @Tags Students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /students/{id}/statistics [get]
func (h *StudentHandler) Statistics(c *gin.Context) {
	stats, err := h.students.Statistics(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, stats)
}

// Dashboard godoc
// @Summary Student landing view
// @Tags Students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /students/{id}/dashboard [get]
func (h *StudentHandler) Dashboard(c *gin.Context) {
	dash, err := h.dashboard.Student(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dash)
}
