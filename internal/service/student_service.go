package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/myclassprogress/internal/models"
	"github.com/noah-isme/myclassprogress/internal/validation"
	appErrors "github.com/noah-isme/myclassprogress/pkg/errors"
)

type studentStore interface {
	AllStudents() []models.Student
	StudentByID(id string) *models.Student
	StudentsByClass(className string) []models.Student
	AddStudent(ctx context.Context, in models.NewStudent) models.Student
	UpdateStudent(ctx context.Context, id string, patch models.StudentPatch) *models.Student
	DeactivateStudent(ctx context.Context, id string) *models.Student
	TasksByStudent(studentID string) []models.Task
	GradesByStudent(studentID string) []models.Grade
	StudentStatistics(studentID string) models.StudentStatistics
}

// StudentService handles student use-cases.
type StudentService struct {
	store     studentStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(store studentStore, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = validation.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{store: store, validator: validate, logger: logger}
}

// List returns active students, optionally limited to one class. Passwords are stripped.
func (s *StudentService) List(className string) []models.Student {
	var students []models.Student
	if className != "" {
		students = s.store.StudentsByClass(className)
	} else {
		students = s.store.AllStudents()
	}
	for i := range students {
		students[i] = students[i].Redacted()
	}
	return students
}

// Get returns an active student.
func (s *StudentService) Get(id string) (*models.Student, error) {
	student := s.store.StudentByID(id)
	if student == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	redacted := student.Redacted()
	return &redacted, nil
}

// Create registers a new student.
func (s *StudentService) Create(ctx context.Context, req models.NewStudent) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student payload")
	}
	student := s.store.AddStudent(ctx, req)
	s.logger.Info("student registered", zap.String("student_id", student.ID), zap.String("class", student.Class))
	redacted := student.Redacted()
	return &redacted, nil
}

// Update merges the patch into an existing student, including inactive ones.
func (s *StudentService) Update(ctx context.Context, id string, patch models.StudentPatch) (*models.Student, error) {
	if err := s.validator.Struct(patch); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student payload")
	}
	student := s.store.UpdateStudent(ctx, id, patch)
	if student == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	redacted := student.Redacted()
	return &redacted, nil
}

// Deactivate marks the student inactive.
func (s *StudentService) Deactivate(ctx context.Context, id string) error {
	if s.store.StudentByID(id) == nil {
		return appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	s.store.DeactivateStudent(ctx, id)
	s.logger.Info("student deactivated", zap.String("student_id", id))
	return nil
}

// Tasks lists the task rows of an active student.
func (s *StudentService) Tasks(id string) ([]models.Task, error) {
	if s.store.StudentByID(id) == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	return s.store.TasksByStudent(id), nil
}

// Grades lists the grades of an active student.
func (s *StudentService) Grades(id string) ([]models.Grade, error) {
	if s.store.StudentByID(id) == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	return s.store.GradesByStudent(id), nil
}

// Statistics summarises an active student's progress.
func (s *StudentService) Statistics(id string) (*models.StudentStatistics, error) {
	if s.store.StudentByID(id) == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	stats := s.store.StudentStatistics(id)
	return &stats, nil
}
