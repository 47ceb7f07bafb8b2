package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/myclassprogress/internal/service"
	"github.com/noah-isme/myclassprogress/pkg/response"
)

// ClassHandler exposes per-class views. The :class parameter is the class
// label, e.g. "12 IPA 1" (URL encoded).
type ClassHandler struct {
	classes *service.ClassService
	reports *service.ReportService
}

// NewClassHandler constructs ClassHandler.
func NewClassHandler(classes *service.ClassService, reports *service.ReportService) *ClassHandler {
	return &ClassHandler{classes: classes, reports: reports}
}

// List godoc
// @Summary Classes with active students
// @Tags Classes
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /classes [get]
func (h *ClassHandler) List(c *gin.Context) {
	classes := h.classes.List()
	response.List(c, classes, len(classes))
}

// Students godoc
// @Summary Active students of a class
// @Tags Classes
// @Produce json
// @Param class path string true "Class label"
// @Success 200 {object} response.Envelope
// @Router /classes/{class}/students [get]
func (h *ClassHandler) Students(c *gin.Context) {
	students := h.classes.Students(c.Param("class"))
	response.List(c, students, len(students))
}

// Tasks godoc
// @Summary Task rows of the class's current students
// @Tags Classes
// @Produce json
// @Param class path string true "Class label"
// @Success 200 {object} response.Envelope
// @Router /classes/{class}/tasks [get]
func (h *ClassHandler) Tasks(c *gin.Context) {
	tasks := h.classes.Tasks(c.Param("class"))
	response.List(c, tasks, len(tasks))
}

// Statistics godoc
// @Summary Grade statistics of a class
// @Tags Classes
// @Produce json
// @Param class path string true "Class label"
// @Success 200 {object} response.Envelope
// @Router /classes/{class}/statistics [get]
func (h *ClassHandler) Statistics(c *gin.Context) {
	response.OK(c, h.classes.Statistics(c.Param("class")))
}

// Ranking godoc
// @Summary Class members ordered by average grade
// @Tags Classes
// @Produce json
// @Param class path string true "Class label"
// @Success 200 {object} response.Envelope
// @Router /classes/{class}/ranking [get]
func (h *ClassHandler) Ranking(c *gin.Context) {
	ranking := h.classes.Ranking(c.Param("class"))
	response.List(c, ranking, len(ranking))
}

// Report godoc
// @Summary Download the class ranking report
// @Tags Classes
// @Produce text/csv,application/pdf,application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param class path string true "Class label"
// @Param format query string false "csv (default), pdf or xlsx"
// @Success 200 {file} file
// @Router /classes/{class}/report [get]
func (h *ClassHandler) Report(c *gin.Context) {
	file, err := h.reports.ClassReport(c.Request.Context(), c.Param("class"), c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.File(c, file.Filename, file.ContentType, file.Payload)
}
