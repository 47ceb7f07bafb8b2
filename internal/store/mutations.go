package store

import (
	"context"

	"github.com/noah-isme/myclassprogress/internal/models"
)

// Mutations never validate their input; callers do. Each one persists the
// full state before returning, even when the save fails.

// AddStudent registers a student with a fresh id.
func (s *Store) AddStudent(ctx context.Context, in models.NewStudent) models.Student {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := models.Student{
		ID:        s.newID(PrefixStudent),
		Name:      in.Name,
		Email:     in.Email,
		Password:  in.Password,
		Class:     in.Class,
		Phone:     in.Phone,
		BirthDate: in.BirthDate,
		Address:   in.Address,
		Role:      models.RoleStudent,
		IsActive:  models.Bool(true),
		CreatedAt: s.now(),
	}
	s.students = append(s.students, st)
	_ = s.persist(ctx)
	return st.Clone()
}

// UpdateStudent merges patch over the student with id, active or not.
func (s *Store) UpdateStudent(ctx context.Context, id string, patch models.StudentPatch) *models.Student {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.studentIndex(id)
	if i < 0 {
		return nil
	}
	patch.Apply(&s.students[i])
	s.students[i].UpdatedAt = s.now()
	_ = s.persist(ctx)
	c := s.students[i].Clone()
	return &c
}

// DeactivateStudent hides the student from queries. The record stays stored.
func (s *Store) DeactivateStudent(ctx context.Context, id string) *models.Student {
	return s.UpdateStudent(ctx, id, models.StudentPatch{IsActive: models.Bool(false)})
}

// AddTeacher registers a teacher with a fresh id.
func (s *Store) AddTeacher(ctx context.Context, in models.NewTeacher) models.Teacher {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := models.Teacher{
		ID:        s.newID(PrefixTeacher),
		Name:      in.Name,
		Email:     in.Email,
		Password:  in.Password,
		Subject:   in.Subject,
		Phone:     in.Phone,
		Role:      models.RoleTeacher,
		IsActive:  models.Bool(true),
		Classes:   append([]string{}, in.Classes...),
		CreatedAt: s.now(),
	}
	s.teachers = append(s.teachers, t)
	_ = s.persist(ctx)
	return t.Clone()
}

// UpdateTeacher merges patch over the teacher with id.
func (s *Store) UpdateTeacher(ctx context.Context, id string, patch models.TeacherPatch) *models.Teacher {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.teacherIndex(id)
	if i < 0 {
		return nil
	}
	patch.Apply(&s.teachers[i])
	s.teachers[i].UpdatedAt = s.now()
	_ = s.persist(ctx)
	c := s.teachers[i].Clone()
	return &c
}

// DeactivateTeacher hides the teacher from queries.
func (s *Store) DeactivateTeacher(ctx context.Context, id string) *models.Teacher {
	return s.UpdateTeacher(ctx, id, models.TeacherPatch{IsActive: models.Bool(false)})
}

// AddTask appends one task row. Status defaults to "belum", the given date to
// today and the class to the student's current class.
func (s *Store) AddTask(ctx context.Context, in models.NewTask) models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.buildTask(in)
	s.tasks = append(s.tasks, t)
	_ = s.persist(ctx)
	return t.Clone()
}

// AssignTaskToClass creates one task row per active student of the class and
// returns the rows. An empty class yields no rows.
func (s *Store) AssignTaskToClass(ctx context.Context, a models.ClassAssignment) []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := []models.Task{}
	for _, st := range s.students {
		if !st.Active() || st.Class != a.Class {
			continue
		}
		t := s.buildTask(models.NewTask{
			Title:       a.Title,
			Description: a.Description,
			Subject:     a.Subject,
			TeacherID:   a.TeacherID,
			GivenDate:   a.GivenDate,
			DueDate:     a.DueDate,
			StudentID:   st.ID,
			Class:       a.Class,
			Priority:    a.Priority,
		})
		s.tasks = append(s.tasks, t)
		created = append(created, t.Clone())
	}
	if len(created) > 0 {
		_ = s.persist(ctx)
	}
	return created
}

func (s *Store) buildTask(in models.NewTask) models.Task {
	t := models.Task{
		ID:          s.newID(PrefixTask),
		Title:       in.Title,
		Description: in.Description,
		Subject:     in.Subject,
		TeacherID:   in.TeacherID,
		GivenDate:   in.GivenDate,
		DueDate:     in.DueDate,
		Status:      in.Status,
		StudentID:   in.StudentID,
		Class:       in.Class,
		Priority:    in.Priority,
		Attachments: append([]string{}, in.Attachments...),
		CreatedAt:   s.now(),
	}
	if t.Status == "" {
		t.Status = models.TaskPending
	}
	if t.GivenDate == "" {
		t.GivenDate = s.today()
	}
	if t.Class == "" {
		if st := s.activeStudent(t.StudentID); st != nil {
			t.Class = st.Class
		}
	}
	return t
}

// UpdateTask merges patch over the task with id.
func (s *Store) UpdateTask(ctx context.Context, id string, patch models.TaskPatch) *models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.taskIndex(id)
	if i < 0 {
		return nil
	}
	patch.Apply(&s.tasks[i])
	s.tasks[i].UpdatedAt = s.now()
	_ = s.persist(ctx)
	c := s.tasks[i].Clone()
	return &c
}

// AddGrade records the score for a (student, task) pair. A second call for
// the same pair merges the input over the first grade in place, keeping its
// id, createdAt and any of subject, date or note the input leaves nil.
// Semester and academic year default to the current settings.
func (s *Store) AddGrade(ctx context.Context, in models.GradeInput) models.Grade {
	s.mu.Lock()
	defer s.mu.Unlock()

	semester := s.settings.Semester
	if in.Semester != nil {
		semester = *in.Semester
	}
	year := s.settings.AcademicYear
	if in.AcademicYear != nil {
		year = *in.AcademicYear
	}

	now := s.now()
	var g models.Grade
	i := s.gradePairIndex(in.StudentID, in.TaskID)
	if i >= 0 {
		g = s.grades[i]
		g.UpdatedAt = now
	} else {
		g = models.Grade{ID: s.newID(PrefixGrade), Date: s.today(), CreatedAt: now}
	}

	g.StudentID = in.StudentID
	g.TaskID = in.TaskID
	g.Score = in.Score
	g.TeacherID = in.TeacherID
	g.Semester = semester
	g.AcademicYear = year
	mergeString(&g.Subject, in.Subject)
	mergeString(&g.Date, in.Date)
	mergeString(&g.Note, in.Note)
	if g.Subject == "" {
		if t := s.taskIndex(in.TaskID); t >= 0 {
			g.Subject = s.tasks[t].Subject
		}
	}

	if i >= 0 {
		s.grades[i] = g
	} else {
		s.grades = append(s.grades, g)
	}
	_ = s.persist(ctx)
	return g
}

func mergeString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// UpdateGrade merges patch over the grade with id.
func (s *Store) UpdateGrade(ctx context.Context, id string, patch models.GradePatch) *models.Grade {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.gradeIndex(id)
	if i < 0 {
		return nil
	}
	patch.Apply(&s.grades[i])
	s.grades[i].UpdatedAt = s.now()
	_ = s.persist(ctx)
	g := s.grades[i]
	return &g
}

// UpdateSettings merges patch over the settings.
func (s *Store) UpdateSettings(ctx context.Context, patch models.SettingsPatch) models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	patch.Apply(&s.settings)
	s.settings.UpdatedAt = s.now()
	_ = s.persist(ctx)
	return s.settings.Clone()
}
