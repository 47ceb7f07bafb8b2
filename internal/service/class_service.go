package service

import (
	"github.com/noah-isme/myclassprogress/internal/models"
)

type classStore interface {
	Classes() []string
	StudentsByClass(className string) []models.Student
	TasksByClass(className string) []models.Task
	ClassStatistics(className string) models.ClassStatistics
	ClassRanking(className string) []models.RankedStudent
}

// ClassService exposes per-class views. Classes are plain labels on student
// records, so an unknown class simply yields empty results.
type ClassService struct {
	store classStore
}

// NewClassService constructs the class service.
func NewClassService(store classStore) *ClassService {
	return &ClassService{store: store}
}

// List returns the classes that currently have active students.
func (s *ClassService) List() []string {
	return s.store.Classes()
}

// Students lists the active members of a class.
func (s *ClassService) Students(className string) []models.Student {
	students := s.store.StudentsByClass(className)
	for i := range students {
		students[i] = students[i].Redacted()
	}
	return students
}

// Tasks lists task rows of students currently in the class.
func (s *ClassService) Tasks(className string) []models.Task {
	return s.store.TasksByClass(className)
}

// Statistics aggregates the class grades.
func (s *ClassService) Statistics(className string) models.ClassStatistics {
	return s.store.ClassStatistics(className)
}

// Ranking orders class members by average grade.
func (s *ClassService) Ranking(className string) []models.RankedStudent {
	return s.store.ClassRanking(className)
}
