package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/myclassprogress/internal/middleware"
	"github.com/noah-isme/myclassprogress/internal/models"
	"github.com/noah-isme/myclassprogress/internal/service"
	appErrors "github.com/noah-isme/myclassprogress/pkg/errors"
	"github.com/noah-isme/myclassprogress/pkg/response"
)

// TaskHandler exposes task endpoints.
type TaskHandler struct {
	tasks *service.TaskService
}

// NewTaskHandler constructs TaskHandler.
func NewTaskHandler(tasks *service.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// List godoc
// @Summary List task rows
// @Tags Tasks
// @Produce json
// @Param siswaId query string false "Student ID"
// @Param guruId query string false "Teacher ID"
// @Param kelas query string false "Class (joined through the student's current class)"
// @Param status query string false "belum or selesai"
// @Success 200 {object} response.Envelope
// @Router /tasks [get]
func (h *TaskHandler) List(c *gin.Context) {
	var filter service.TaskFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid query"))
		return
	}
	tasks := h.tasks.List(filter)
	response.List(c, tasks, len(tasks))
}

// Get godoc
// @Summary Get a task row
// @Tags Tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} response.Envelope
// @Router /tasks/{id} [get]
func (h *TaskHandler) Get(c *gin.Context) {
	task, err := h.tasks.Get(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, task)
}

// Create godoc
// @Summary Give a task to one student
// @Tags Tasks
// @Accept json
// @Produce json
// @Param payload body models.NewTask true "Task payload"
// @Success 201 {object} response.Envelope
// @Router /tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	var req models.NewTask
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	task, err := h.tasks.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, task)
}

// Assign godoc
// @Summary Give a task to every active student of a class
// @Tags Tasks
// @Accept json
// @Produce json
// @Param payload body models.ClassAssignment true "Assignment payload"
// @Success 201 {object} response.Envelope
// @Router /tasks/assign [post]
func (h *TaskHandler) Assign(c *gin.Context) {
	var req models.ClassAssignment
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	tasks, err := h.tasks.Assign(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, tasks, map[string]interface{}{"total": len(tasks)})
}

// Update godoc
// @Summary Patch a task row
// @Tags Tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param payload body models.TaskPatch true "Fields to change"
// @Success 200 {object} response.Envelope
// @Router /tasks/{id} [patch]
func (h *TaskHandler) Update(c *gin.Context) {
	var patch models.TaskPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	task, err := h.tasks.Update(c.Request.Context(), middleware.CurrentUser(c), c.Param("id"), patch)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, task)
}
