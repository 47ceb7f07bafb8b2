package store

import "github.com/noah-isme/myclassprogress/internal/models"

// Queries take the read lock and hand out copies; callers never see store memory.

// AllStudents lists active students in insertion order.
func (s *Store) AllStudents() []models.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filterStudents(s.students, func(st models.Student) bool { return st.Active() })
}

// StudentByID returns the active student with id, or nil.
func (s *Store) StudentByID(id string) *models.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if st := s.activeStudent(id); st != nil {
		c := st.Clone()
		return &c
	}
	return nil
}

// StudentsByClass lists active students whose current class is className.
func (s *Store) StudentsByClass(className string) []models.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filterStudents(s.students, func(st models.Student) bool {
		return st.Active() && st.Class == className
	})
}

// Classes lists the distinct classes of active students in first-seen order.
func (s *Store) Classes() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := make(map[string]bool)
	classes := []string{}
	for _, st := range s.students {
		if st.Active() && !seen[st.Class] {
			seen[st.Class] = true
			classes = append(classes, st.Class)
		}
	}
	return classes
}

// AllTeachers lists active teachers.
func (s *Store) AllTeachers() []models.Teacher {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Teacher{}
	for _, t := range s.teachers {
		if t.Active() {
			out = append(out, t.Clone())
		}
	}
	return out
}

// TeacherByID returns the active teacher with id, or nil.
func (s *Store) TeacherByID(id string) *models.Teacher {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if t := s.activeTeacher(id); t != nil {
		c := t.Clone()
		return &c
	}
	return nil
}

// AllTasks lists every task row.
func (s *Store) AllTasks() []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filterTasks(s.tasks, func(models.Task) bool { return true })
}

// TaskByID returns the task row with id, or nil.
func (s *Store) TaskByID(id string) *models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.taskIndex(id); i >= 0 {
		c := s.tasks[i].Clone()
		return &c
	}
	return nil
}

// TasksByStudent lists the rows assigned to studentID.
func (s *Store) TasksByStudent(studentID string) []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filterTasks(s.tasks, func(t models.Task) bool { return t.StudentID == studentID })
}

// TasksByTeacher lists the rows created by teacherID.
func (s *Store) TasksByTeacher(teacherID string) []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filterTasks(s.tasks, func(t models.Task) bool { return t.TeacherID == teacherID })
}

// TasksByClass lists rows whose student is active and currently in className.
// The task's own kelas copy is ignored, so moving a student moves their tasks.
func (s *Store) TasksByClass(className string) []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filterTasks(s.tasks, func(t models.Task) bool {
		st := s.activeStudent(t.StudentID)
		return st != nil && st.Class == className
	})
}

// AllGrades lists every grade.
func (s *Store) AllGrades() []models.Grade {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filterGrades(s.grades, func(models.Grade) bool { return true })
}

// GradeByID returns the grade with id, or nil.
func (s *Store) GradeByID(id string) *models.Grade {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.gradeIndex(id); i >= 0 {
		g := s.grades[i]
		return &g
	}
	return nil
}

// GradesByStudent lists the grades of studentID.
func (s *Store) GradesByStudent(studentID string) []models.Grade {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filterGrades(s.grades, func(g models.Grade) bool { return g.StudentID == studentID })
}

// GradesByTeacher lists the grades recorded by teacherID.
func (s *Store) GradesByTeacher(teacherID string) []models.Grade {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filterGrades(s.grades, func(g models.Grade) bool { return g.TeacherID == teacherID })
}

// GradesByTask lists the grades given for taskID.
func (s *Store) GradesByTask(taskID string) []models.Grade {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filterGrades(s.grades, func(g models.Grade) bool { return g.TaskID == taskID })
}

// GradeByStudentAndTask returns the single grade for the pair, or nil.
func (s *Store) GradeByStudentAndTask(studentID, taskID string) *models.Grade {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.gradePairIndex(studentID, taskID); i >= 0 {
		g := s.grades[i]
		return &g
	}
	return nil
}

// Settings returns the school settings.
func (s *Store) Settings() models.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.Clone()
}

// CurrentUser returns the logged in account snapshot, or nil.
func (s *Store) CurrentUser() *models.SessionUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentUser.Clone()
}

func (s *Store) activeStudent(id string) *models.Student {
	for i := range s.students {
		if s.students[i].ID == id && s.students[i].Active() {
			return &s.students[i]
		}
	}
	return nil
}

func (s *Store) activeTeacher(id string) *models.Teacher {
	for i := range s.teachers {
		if s.teachers[i].ID == id && s.teachers[i].Active() {
			return &s.teachers[i]
		}
	}
	return nil
}

// studentIndex ignores the active flag so updates can reactivate a record.
func (s *Store) studentIndex(id string) int {
	for i := range s.students {
		if s.students[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) teacherIndex(id string) int {
	for i := range s.teachers {
		if s.teachers[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) taskIndex(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) gradeIndex(id string) int {
	for i := range s.grades {
		if s.grades[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) gradePairIndex(studentID, taskID string) int {
	for i := range s.grades {
		if s.grades[i].StudentID == studentID && s.grades[i].TaskID == taskID {
			return i
		}
	}
	return -1
}

func filterStudents(items []models.Student, keep func(models.Student) bool) []models.Student {
	out := []models.Student{}
	for _, item := range items {
		if keep(item) {
			out = append(out, item.Clone())
		}
	}
	return out
}

func filterTasks(items []models.Task, keep func(models.Task) bool) []models.Task {
	out := []models.Task{}
	for _, item := range items {
		if keep(item) {
			out = append(out, item.Clone())
		}
	}
	return out
}

func filterGrades(items []models.Grade, keep func(models.Grade) bool) []models.Grade {
	out := []models.Grade{}
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
