package store

import (
	"context"

	"github.com/noah-isme/myclassprogress/internal/models"
)

// Export snapshots every collection and the settings. The session is not included.
func (s *Store) Export() models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return models.Snapshot{
		Students:   filterStudents(s.students, func(models.Student) bool { return true }),
		Teachers:   cloneTeachers(s.teachers),
		Tasks:      filterTasks(s.tasks, func(models.Task) bool { return true }),
		Grades:     filterGrades(s.grades, func(models.Grade) bool { return true }),
		Settings:   s.settings.Clone(),
		ExportDate: s.now(),
		Version:    models.SnapshotVersion,
	}
}

// Import replaces every collection present in payload and persists. Absent
// fields leave the stored data alone; an empty array clears a collection.
func (s *Store) Import(ctx context.Context, payload models.ImportPayload) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if payload.Students != nil {
		s.students = filterStudents(payload.Students, func(models.Student) bool { return true })
	}
	if payload.Teachers != nil {
		s.teachers = cloneTeachers(payload.Teachers)
	}
	if payload.Tasks != nil {
		s.tasks = filterTasks(payload.Tasks, func(models.Task) bool { return true })
	}
	if payload.Grades != nil {
		s.grades = filterGrades(payload.Grades, func(models.Grade) bool { return true })
	}
	if payload.Settings != nil {
		s.settings = payload.Settings.Clone()
	}
	_ = s.persist(ctx)
}

func cloneTeachers(items []models.Teacher) []models.Teacher {
	out := make([]models.Teacher, 0, len(items))
	for _, t := range items {
		out = append(out, t.Clone())
	}
	return out
}
