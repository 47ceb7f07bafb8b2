package service

import (
	"sort"

	"go.uber.org/zap"

	"github.com/noah-isme/myclassprogress/internal/models"
	appErrors "github.com/noah-isme/myclassprogress/pkg/errors"
)

type dashboardStore interface {
	TeacherDashboard(teacherID string) *models.TeacherDashboard
	TeacherReport(teacherID string) *models.TeacherReport
	StudentByID(id string) *models.Student
	StudentStatistics(studentID string) models.StudentStatistics
	TasksByStudent(studentID string) []models.Task
	GradesByStudent(studentID string) []models.Grade
}

// StudentDashboard is the landing view of a student.
type StudentDashboard struct {
	Student    models.Student           `json:"siswa"`
	Statistics models.StudentStatistics `json:"statistics"`
	Pending    []models.Task            `json:"pendingTasks"`
	Recent     []models.Grade           `json:"recentGrades"`
}

const studentRecentGrades = 5

// DashboardService builds the landing views.
type DashboardService struct {
	store  dashboardStore
	logger *zap.Logger
}

// NewDashboardService constructs the dashboard service.
func NewDashboardService(store dashboardStore, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{store: store, logger: logger}
}

// Teacher returns the dashboard of an active teacher.
func (s *DashboardService) Teacher(teacherID string) (*models.TeacherDashboard, error) {
	dash := s.store.TeacherDashboard(teacherID)
	if dash == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
	}
	return dash, nil
}

// TeacherReport returns the grade summary of an active teacher.
func (s *DashboardService) TeacherReport(teacherID string) (*models.TeacherReport, error) {
	report := s.store.TeacherReport(teacherID)
	if report == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
	}
	return report, nil
}

// Student returns the dashboard of an active student: statistics, pending
// tasks and the latest grades by grading date.
func (s *DashboardService) Student(studentID string) (*StudentDashboard, error) {
	student := s.store.StudentByID(studentID)
	if student == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}

	pending := []models.Task{}
	for _, task := range s.store.TasksByStudent(studentID) {
		if !task.Done() {
			pending = append(pending, task)
		}
	}

	grades := s.store.GradesByStudent(studentID)
	sortGradesByDateDesc(grades)
	if len(grades) > studentRecentGrades {
		grades = grades[:studentRecentGrades]
	}

	return &StudentDashboard{
		Student:    student.Redacted(),
		Statistics: s.store.StudentStatistics(studentID),
		Pending:    pending,
		Recent:     grades,
	}, nil
}

// ISO dates compare lexically.
func sortGradesByDateDesc(grades []models.Grade) {
	sort.SliceStable(grades, func(i, j int) bool {
		return grades[i].Date > grades[j].Date
	})
}
