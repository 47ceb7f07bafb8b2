package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/myclassprogress/internal/models"
	"github.com/noah-isme/myclassprogress/internal/validation"
	appErrors "github.com/noah-isme/myclassprogress/pkg/errors"
)

type taskStore interface {
	AllTasks() []models.Task
	TaskByID(id string) *models.Task
	TasksByStudent(studentID string) []models.Task
	TasksByTeacher(teacherID string) []models.Task
	TasksByClass(className string) []models.Task
	StudentByID(id string) *models.Student
	TeacherByID(id string) *models.Teacher
	StudentsByClass(className string) []models.Student
	AddTask(ctx context.Context, in models.NewTask) models.Task
	AssignTaskToClass(ctx context.Context, a models.ClassAssignment) []models.Task
	UpdateTask(ctx context.Context, id string, patch models.TaskPatch) *models.Task
}

// TaskFilter narrows task listings; the first non-empty field wins in the
// order student, teacher, class.
type TaskFilter struct {
	StudentID string `form:"siswaId"`
	TeacherID string `form:"guruId"`
	Class     string `form:"kelas"`
	Status    string `form:"status"`
}

// TaskService handles task assignment use-cases.
type TaskService struct {
	store     taskStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTaskService constructs the task service.
func NewTaskService(store taskStore, validate *validator.Validate, logger *zap.Logger) *TaskService {
	if validate == nil {
		validate = validation.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TaskService{store: store, validator: validate, logger: logger}
}

// List returns task rows matching the filter.
func (s *TaskService) List(filter TaskFilter) []models.Task {
	var tasks []models.Task
	switch {
	case filter.StudentID != "":
		tasks = s.store.TasksByStudent(filter.StudentID)
	case filter.TeacherID != "":
		tasks = s.store.TasksByTeacher(filter.TeacherID)
	case filter.Class != "":
		tasks = s.store.TasksByClass(filter.Class)
	default:
		tasks = s.store.AllTasks()
	}
	if filter.Status == "" {
		return tasks
	}
	filtered := make([]models.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.Status == filter.Status {
			filtered = append(filtered, task)
		}
	}
	return filtered
}

// Get returns one task row.
func (s *TaskService) Get(id string) (*models.Task, error) {
	task := s.store.TaskByID(id)
	if task == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "task not found")
	}
	return task, nil
}

// Create adds a single task row for one student.
func (s *TaskService) Create(ctx context.Context, req models.NewTask) (*models.Task, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid task payload")
	}
	if s.store.StudentByID(req.StudentID) == nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "student not found")
	}
	if s.store.TeacherByID(req.TeacherID) == nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "teacher not found")
	}
	task := s.store.AddTask(ctx, req)
	return &task, nil
}

// Assign hands a task to every active student of a class, one row each.
func (s *TaskService) Assign(ctx context.Context, req models.ClassAssignment) ([]models.Task, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid assignment payload")
	}
	if s.store.TeacherByID(req.TeacherID) == nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "teacher not found")
	}
	if len(s.store.StudentsByClass(req.Class)) == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "class has no active students")
	}
	tasks := s.store.AssignTaskToClass(ctx, req)
	s.logger.Info("task assigned to class",
		zap.String("class", req.Class),
		zap.String("teacher_id", req.TeacherID),
		zap.Int("rows", len(tasks)),
	)
	return tasks, nil
}

// Update merges the patch into a task row. A student actor may only change
// the status of their own rows; a nil actor is treated as a teacher.
func (s *TaskService) Update(ctx context.Context, actor *models.SessionUser, id string, patch models.TaskPatch) (*models.Task, error) {
	if err := s.validator.Struct(patch); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid task payload")
	}
	if actor != nil && actor.Role() == models.RoleStudent {
		current := s.store.TaskByID(id)
		if current == nil {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "task not found")
		}
		if current.StudentID != actor.ID() {
			return nil, appErrors.Clone(appErrors.ErrForbidden, "task belongs to another student")
		}
		if !patch.StatusOnly() {
			return nil, appErrors.Clone(appErrors.ErrForbidden, "students may only change the task status")
		}
	}
	task := s.store.UpdateTask(ctx, id, patch)
	if task == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "task not found")
	}
	return task, nil
}
