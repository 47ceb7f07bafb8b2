package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/myclassprogress/internal/models"
	"github.com/noah-isme/myclassprogress/internal/validation"
	appErrors "github.com/noah-isme/myclassprogress/pkg/errors"
)

type gradeStore interface {
	AllGrades() []models.Grade
	GradeByID(id string) *models.Grade
	GradesByStudent(studentID string) []models.Grade
	GradesByTeacher(teacherID string) []models.Grade
	GradesByTask(taskID string) []models.Grade
	GradeByStudentAndTask(studentID, taskID string) *models.Grade
	StudentByID(id string) *models.Student
	TeacherByID(id string) *models.Teacher
	TaskByID(id string) *models.Task
	AddGrade(ctx context.Context, in models.GradeInput) models.Grade
	UpdateGrade(ctx context.Context, id string, patch models.GradePatch) *models.Grade
}

// GradeFilter narrows grade listings; the first non-empty field wins.
type GradeFilter struct {
	StudentID string `form:"siswaId"`
	TeacherID string `form:"guruId"`
	TaskID    string `form:"tugasId"`
}

// GradeService handles grade entry. Scores are validated here because the
// store accepts whatever it is given.
type GradeService struct {
	store     gradeStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewGradeService constructs the grade service.
func NewGradeService(store gradeStore, validate *validator.Validate, logger *zap.Logger) *GradeService {
	if validate == nil {
		validate = validation.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GradeService{store: store, validator: validate, logger: logger}
}

// List returns grades matching the filter.
func (s *GradeService) List(filter GradeFilter) []models.Grade {
	switch {
	case filter.StudentID != "":
		return s.store.GradesByStudent(filter.StudentID)
	case filter.TeacherID != "":
		return s.store.GradesByTeacher(filter.TeacherID)
	case filter.TaskID != "":
		return s.store.GradesByTask(filter.TaskID)
	}
	return s.store.AllGrades()
}

// Lookup returns the grade for a (student, task) pair.
func (s *GradeService) Lookup(studentID, taskID string) (*models.Grade, error) {
	if studentID == "" || taskID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "siswaId and tugasId are required")
	}
	grade := s.store.GradeByStudentAndTask(studentID, taskID)
	if grade == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "grade not found")
	}
	return grade, nil
}

// Record upserts the grade for a (student, task) pair. created is false when
// an earlier grade for the pair was overwritten.
func (s *GradeService) Record(ctx context.Context, req models.GradeInput) (grade *models.Grade, created bool, err error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid grade payload")
	}
	if s.store.StudentByID(req.StudentID) == nil {
		return nil, false, appErrors.Clone(appErrors.ErrValidation, "student not found")
	}
	if s.store.TaskByID(req.TaskID) == nil {
		return nil, false, appErrors.Clone(appErrors.ErrValidation, "task not found")
	}
	if s.store.TeacherByID(req.TeacherID) == nil {
		return nil, false, appErrors.Clone(appErrors.ErrValidation, "teacher not found")
	}

	previous := s.store.GradeByStudentAndTask(req.StudentID, req.TaskID)
	saved := s.store.AddGrade(ctx, req)
	if previous != nil {
		s.logger.Info("grade overwritten",
			zap.String("grade_id", saved.ID),
			zap.Float64("previous", previous.Score),
			zap.Float64("score", saved.Score),
		)
	}
	return &saved, previous == nil, nil
}

// Update merges the patch into a grade.
func (s *GradeService) Update(ctx context.Context, id string, patch models.GradePatch) (*models.Grade, error) {
	if err := s.validator.Struct(patch); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid grade payload")
	}
	grade := s.store.UpdateGrade(ctx, id, patch)
	if grade == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "grade not found")
	}
	return grade, nil
}
