package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/myclassprogress/internal/models"
	"github.com/noah-isme/myclassprogress/internal/validation"
	appErrors "github.com/noah-isme/myclassprogress/pkg/errors"
)

type teacherStore interface {
	AllTeachers() []models.Teacher
	TeacherByID(id string) *models.Teacher
	AddTeacher(ctx context.Context, in models.NewTeacher) models.Teacher
	UpdateTeacher(ctx context.Context, id string, patch models.TeacherPatch) *models.Teacher
	DeactivateTeacher(ctx context.Context, id string) *models.Teacher
	TasksByTeacher(teacherID string) []models.Task
	GradesByTeacher(teacherID string) []models.Grade
}

// TeacherService handles teacher use-cases.
type TeacherService struct {
	store     teacherStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTeacherService constructs the teacher service.
func NewTeacherService(store teacherStore, validate *validator.Validate, logger *zap.Logger) *TeacherService {
	if validate == nil {
		validate = validation.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TeacherService{store: store, validator: validate, logger: logger}
}

// List returns active teachers without passwords.
func (s *TeacherService) List() []models.Teacher {
	teachers := s.store.AllTeachers()
	for i := range teachers {
		teachers[i] = teachers[i].Redacted()
	}
	return teachers
}

// Get returns an active teacher.
func (s *TeacherService) Get(id string) (*models.Teacher, error) {
	teacher := s.store.TeacherByID(id)
	if teacher == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
	}
	redacted := teacher.Redacted()
	return &redacted, nil
}

// Create registers a new teacher.
func (s *TeacherService) Create(ctx context.Context, req models.NewTeacher) (*models.Teacher, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid teacher payload")
	}
	teacher := s.store.AddTeacher(ctx, req)
	s.logger.Info("teacher registered", zap.String("teacher_id", teacher.ID))
	redacted := teacher.Redacted()
	return &redacted, nil
}

// Update merges the patch into an existing teacher.
func (s *TeacherService) Update(ctx context.Context, id string, patch models.TeacherPatch) (*models.Teacher, error) {
	if err := s.validator.Struct(patch); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid teacher payload")
	}
	teacher := s.store.UpdateTeacher(ctx, id, patch)
	if teacher == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
	}
	redacted := teacher.Redacted()
	return &redacted, nil
}

// Deactivate marks the teacher inactive.
func (s *TeacherService) Deactivate(ctx context.Context, id string) error {
	if s.store.TeacherByID(id) == nil {
		return appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
	}
	s.store.DeactivateTeacher(ctx, id)
	s.logger.Info("teacher deactivated", zap.String("teacher_id", id))
	return nil
}

// Tasks lists the task rows created by a teacher.
func (s *TeacherService) Tasks(id string) ([]models.Task, error) {
	if s.store.TeacherByID(id) == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
	}
	return s.store.TasksByTeacher(id), nil
}

// Grades lists the grades a teacher recorded.
func (s *TeacherService) Grades(id string) ([]models.Grade, error) {
	if s.store.TeacherByID(id) == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
	}
	return s.store.GradesByTeacher(id), nil
}
