package store

import (
	"math"
	"sort"

	"github.com/noah-isme/myclassprogress/internal/models"
)

const (
	dashboardRecentLimit  = 5
	dashboardUngradedSize = 5
	dashboardTopLimit     = 5
	reportTopLimit        = 3
)

// StudentStatistics summarises the tasks and grades of studentID. The
// distribution is empty when the student has no grades.
func (s *Store) StudentStatistics(studentID string) models.StudentStatistics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := models.StudentStatistics{GradeDistribution: models.Distribution{}}
	for _, t := range s.tasks {
		if t.StudentID != studentID {
			continue
		}
		stats.TotalTasks++
		if t.Done() {
			stats.CompletedTasks++
		} else {
			stats.PendingTasks++
		}
	}

	var scores []float64
	for _, g := range s.grades {
		if g.StudentID == studentID {
			scores = append(scores, g.Score)
		}
	}
	if len(scores) == 0 {
		return stats
	}
	stats.AverageGrade = RoundOne(mean(scores))
	stats.HighestGrade, stats.LowestGrade = bounds(scores)
	stats.GradeDistribution = models.NewDistribution(scores)
	return stats
}

// ClassStatistics aggregates the grades of every active student currently in
// className. Grades follow the student, so a class change moves history too.
func (s *Store) ClassStatistics(className string) models.ClassStatistics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := models.ClassStatistics{Class: className, GradeDistribution: models.Distribution{}}
	for _, st := range s.students {
		if st.Active() && st.Class == className {
			stats.TotalStudents++
		}
	}

	var scores []float64
	for _, g := range s.grades {
		if st := s.activeStudent(g.StudentID); st != nil && st.Class == className {
			scores = append(scores, g.Score)
		}
	}
	if len(scores) == 0 {
		return stats
	}
	stats.TotalGrades = len(scores)
	stats.AverageGrade = RoundOne(mean(scores))
	stats.HighestGrade, stats.LowestGrade = bounds(scores)
	stats.GradeDistribution = models.NewDistribution(scores)
	return stats
}

// ClassRanking orders the active students of className by the mean of all
// their grades. Students without grades rank last with an average of 0.
func (s *Store) ClassRanking(className string) []models.RankedStudent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ranking := []models.RankedStudent{}
	raw := []float64{}
	for _, st := range s.students {
		if !st.Active() || st.Class != className {
			continue
		}
		var scores []float64
		for _, g := range s.grades {
			if g.StudentID == st.ID {
				scores = append(scores, g.Score)
			}
		}
		avg := mean(scores)
		ranking = append(ranking, rankedStudent(st, avg, len(scores)))
		raw = append(raw, avg)
	}
	sortRanking(ranking, raw)
	return ranking
}

// TopStudentsByTeacher ranks students by the mean of the grades teacherID
// recorded for them. Inactive students still rank; unknown ids are skipped.
func (s *Store) TopStudentsByTeacher(teacherID string, limit int) []models.RankedStudent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.topStudents(teacherID, limit)
}

func (s *Store) topStudents(teacherID string, limit int) []models.RankedStudent {
	type tally struct {
		total float64
		count int
	}
	order := []string{}
	tallies := map[string]*tally{}
	for _, g := range s.grades {
		if g.TeacherID != teacherID {
			continue
		}
		t, ok := tallies[g.StudentID]
		if !ok {
			t = &tally{}
			tallies[g.StudentID] = t
			order = append(order, g.StudentID)
		}
		t.total += g.Score
		t.count++
	}

	ranking := []models.RankedStudent{}
	raw := []float64{}
	for _, id := range order {
		i := s.studentIndex(id)
		if i < 0 {
			continue
		}
		t := tallies[id]
		avg := t.total / float64(t.count)
		ranking = append(ranking, rankedStudent(s.students[i], avg, t.count))
		raw = append(raw, avg)
	}
	sortRanking(ranking, raw)
	if limit > 0 && len(ranking) > limit {
		ranking = ranking[:limit]
	}
	return ranking
}

// TeacherDashboard builds the landing view of an active teacher, or nil.
func (s *Store) TeacherDashboard(teacherID string) *models.TeacherDashboard {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.activeTeacher(teacherID) == nil {
		return nil
	}

	graded := make(map[string]bool, len(s.grades))
	for _, g := range s.grades {
		graded[g.TaskID] = true
	}

	dash := &models.TeacherDashboard{
		TeacherID:     teacherID,
		RecentTasks:   []models.TaskProgress{},
		UngradedTasks: []models.Task{},
	}
	var own []models.Task
	for _, t := range s.tasks {
		if t.TeacherID != teacherID {
			continue
		}
		own = append(own, t)
		if !graded[t.ID] {
			dash.TasksToGrade++
			if len(dash.UngradedTasks) < dashboardUngradedSize {
				dash.UngradedTasks = append(dash.UngradedTasks, t.Clone())
			}
		}
	}
	dash.TasksGiven = len(own)

	for _, st := range s.students {
		if st.Active() {
			dash.TotalStudents++
		}
	}

	dash.RecentTasks = recentProgress(own, dashboardRecentLimit)
	dash.TopStudents = s.topStudents(teacherID, dashboardTopLimit)
	return dash
}

// TeacherReport aggregates every grade recorded by an active teacher, or nil.
func (s *Store) TeacherReport(teacherID string) *models.TeacherReport {
	s.mu.RLock()
	defer s.mu.RUnlock()

	teacher := s.activeTeacher(teacherID)
	if teacher == nil {
		return nil
	}

	report := &models.TeacherReport{TeacherID: teacherID, Subject: teacher.Subject}
	for _, t := range s.tasks {
		if t.TeacherID == teacherID {
			report.TasksGiven++
		}
	}
	var scores []float64
	for _, g := range s.grades {
		if g.TeacherID == teacherID {
			scores = append(scores, g.Score)
		}
	}
	report.GradesEntered = len(scores)
	if len(scores) > 0 {
		report.Average = RoundOne(mean(scores))
		report.Highest, report.Lowest = bounds(scores)
	}
	report.TopStudents = s.topStudents(teacherID, reportTopLimit)
	return report
}

// recentProgress groups fanned-out rows back into assignments and returns the
// newest ones by given date with their completion ratio.
func recentProgress(tasks []models.Task, limit int) []models.TaskProgress {
	type assignment struct {
		title, subject, given, due, class string
	}
	index := map[assignment]int{}
	groups := []models.TaskProgress{}
	for _, t := range tasks {
		key := assignment{t.Title, t.Subject, t.GivenDate, t.DueDate, t.Class}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, models.TaskProgress{Task: t.Clone()})
		}
		groups[i].Total++
		if t.Done() {
			groups[i].Completed++
		}
	}
	for i := range groups {
		groups[i].Percent = int(math.Round(float64(groups[i].Completed) / float64(groups[i].Total) * 100))
	}
	// ISO dates sort lexically.
	sort.SliceStable(groups, func(a, b int) bool {
		return groups[a].Task.GivenDate > groups[b].Task.GivenDate
	})
	if len(groups) > limit {
		groups = groups[:limit]
	}
	return groups
}

func rankedStudent(st models.Student, avg float64, count int) models.RankedStudent {
	return models.RankedStudent{
		StudentID:  st.ID,
		Name:       st.Name,
		Class:      st.Class,
		Average:    RoundOne(avg),
		GradeCount: count,
		Predicate:  models.Predicate(avg),
	}
}

// sortRanking orders by the unrounded averages and assigns 1-based ranks.
func sortRanking(ranking []models.RankedStudent, raw []float64) {
	idx := make([]int, len(ranking))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return raw[idx[a]] > raw[idx[b]] })
	sorted := make([]models.RankedStudent, len(ranking))
	for pos, i := range idx {
		sorted[pos] = ranking[i]
		sorted[pos].Rank = pos + 1
	}
	copy(ranking, sorted)
}

// RoundOne rounds to one decimal place, halves away from zero.
func RoundOne(v float64) float64 {
	return math.Round(v*10) / 10
}

func mean(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	var sum float64
	for _, v := range scores {
		sum += v
	}
	return sum / float64(len(scores))
}

func bounds(scores []float64) (highest, lowest float64) {
	highest, lowest = scores[0], scores[0]
	for _, v := range scores[1:] {
		highest = math.Max(highest, v)
		lowest = math.Min(lowest, v)
	}
	return highest, lowest
}
