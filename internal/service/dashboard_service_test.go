package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/myclassprogress/pkg/errors"
)

func TestDashboardServiceTeacher(t *testing.T) {
	svc := NewDashboardService(newDemoStore(t), nil)

	dash, err := svc.Teacher("G001")
	require.NoError(t, err)
	assert.Equal(t, 4, dash.TasksGiven)
	assert.Equal(t, 5, dash.TotalStudents)
	assert.Equal(t, 1, dash.TasksToGrade)
	require.Len(t, dash.UngradedTasks, 1)
	assert.Equal(t, "T006", dash.UngradedTasks[0].ID)

	require.Len(t, dash.RecentTasks, 2)
	assert.Equal(t, "2024-01-15", dash.RecentTasks[0].Task.GivenDate)
	assert.Equal(t, 2, dash.RecentTasks[0].Total)
	assert.Equal(t, 1, dash.RecentTasks[0].Completed)
	assert.Equal(t, 50, dash.RecentTasks[0].Percent)

	require.Len(t, dash.TopStudents, 3)
	assert.Equal(t, "S001", dash.TopStudents[0].StudentID)
	assert.Equal(t, 88.5, dash.TopStudents[0].Average)

	_, err = svc.Teacher("G999")
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}

func TestDashboardServiceTeacherReport(t *testing.T) {
	svc := NewDashboardService(newDemoStore(t), nil)

	report, err := svc.TeacherReport("G001")
	require.NoError(t, err)
	assert.Equal(t, "Matematika", report.Subject)
	assert.Equal(t, 4, report.TasksGiven)
	assert.Equal(t, 4, report.GradesEntered)
	assert.Equal(t, 80.0, report.Average)
	assert.Equal(t, 92.0, report.Highest)
	assert.Equal(t, 65.0, report.Lowest)
	assert.Len(t, report.TopStudents, 3)

	_, err = svc.TeacherReport("G999")
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}

func TestDashboardServiceStudent(t *testing.T) {
	svc := NewDashboardService(newDemoStore(t), nil)

	dash, err := svc.Student("S001")
	require.NoError(t, err)
	assert.Empty(t, dash.Student.Password)
	assert.Equal(t, 88.3, dash.Statistics.AverageGrade)

	require.Len(t, dash.Pending, 2)
	assert.Equal(t, "T001", dash.Pending[0].ID)
	assert.Equal(t, "T003", dash.Pending[1].ID)

	require.Len(t, dash.Recent, 3)
	assert.Equal(t, "N001", dash.Recent[0].ID)
	assert.Equal(t, "N003", dash.Recent[2].ID)

	_, err = svc.Student("S999")
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}
