package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/myclassprogress/internal/models"
	"github.com/noah-isme/myclassprogress/internal/service"
	appErrors "github.com/noah-isme/myclassprogress/pkg/errors"
	"github.com/noah-isme/myclassprogress/pkg/response"
)

// GradeHandler exposes grade endpoints.
type GradeHandler struct {
	grades *service.GradeService
}

// NewGradeHandler constructs GradeHandler.
func NewGradeHandler(grades *service.GradeService) *GradeHandler {
	return &GradeHandler{grades: grades}
}

// List godoc
// @Summary List grades
// @Tags Grades
// @Produce json
// @Param siswaId query string false "Student ID"
// @Param guruId query string false "Teacher ID"
// @Param tugasId query string false "Task ID"
// @Success 200 {object} response.Envelope
// @Router /grades [get]
func (h *GradeHandler) List(c *gin.Context) {
	var filter service.GradeFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid query"))
		return
	}
	grades := h.grades.List(filter)
	response.List(c, grades, len(grades))
}

// Lookup godoc
// @Summary Grade of one student for one task
// @Tags Grades
// @Produce json
// @Param siswaId query string true "Student ID"
// @Param tugasId query string true "Task ID"
// @Success 200 {object} response.Envelope
// @Router /grades/lookup [get]
func (h *GradeHandler) Lookup(c *gin.Context) {
	grade, err := h.grades.Lookup(c.Query("siswaId"), c.Query("tugasId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, grade)
}

// Record godoc
// @Summary Record a grade; a second grade for the same student and task overwrites the first
// @Tags Grades
// @Accept json
// @Produce json
// @Param payload body models.GradeInput true "Grade payload"
// @Success 200 {object} response.Envelope "overwritten"
// @Success 201 {object} response.Envelope "created"
// @Router /grades [post]
func (h *GradeHandler) Record(c *gin.Context) {
	var req models.GradeInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	grade, created, err := h.grades.Record(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if created {
		response.Created(c, grade)
		return
	}
	response.OK(c, grade)
}

// Update godoc
// @Summary Patch a grade
// @Tags Grades
// @Accept json
// @Produce json
// @Param id path string true "Grade ID"
// @Param payload body models.GradePatch true "Fields to change"
// @Success 200 {object} response.Envelope
// @Router /grades/{id} [patch]
func (h *GradeHandler) Update(c *gin.Context) {
	var patch models.GradePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	grade, err := h.grades.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, grade)
}
