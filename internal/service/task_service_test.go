package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/myclassprogress/internal/models"
	appErrors "github.com/noah-isme/myclassprogress/pkg/errors"
)

func TestTaskServiceList(t *testing.T) {
	svc := NewTaskService(newDemoStore(t), nil, nil)

	assert.Len(t, svc.List(TaskFilter{}), 6)
	assert.Len(t, svc.List(TaskFilter{StudentID: "S002"}), 2)
	assert.Len(t, svc.List(TaskFilter{TeacherID: "G002"}), 1)
	assert.Len(t, svc.List(TaskFilter{Class: "12 IPA 1"}), 6)
	assert.Empty(t, svc.List(TaskFilter{Class: "12 IPS 2"}))

	done := svc.List(TaskFilter{StudentID: "S001", Status: models.TaskDone})
	require.Len(t, done, 2)
	for _, task := range done {
		assert.True(t, task.Done())
	}
}

func TestTaskServiceCreate(t *testing.T) {
	ctx := context.Background()
	svc := NewTaskService(newDemoStore(t), nil, nil)

	task, err := svc.Create(ctx, models.NewTask{
		Title:     "Latihan Fisika",
		Subject:   "Fisika",
		TeacherID: "G002",
		DueDate:   "2024-02-10",
		StudentID: "S004",
	})
	require.NoError(t, err)
	assert.Equal(t, models.TaskPending, task.Status)
	assert.Equal(t, "2024-02-01", task.GivenDate)
	assert.Equal(t, "12 IPA 2", task.Class)

	base := models.NewTask{Title: "x", Subject: "Fisika", TeacherID: "G002", DueDate: "2024-02-10", StudentID: "S004"}

	unknownStudent := base
	unknownStudent.StudentID = "S999"
	_, err = svc.Create(ctx, unknownStudent)
	assert.ErrorIs(t, err, appErrors.ErrValidation)

	unknownTeacher := base
	unknownTeacher.TeacherID = "G999"
	_, err = svc.Create(ctx, unknownTeacher)
	assert.ErrorIs(t, err, appErrors.ErrValidation)

	badStatus := base
	badStatus.Status = "late"
	_, err = svc.Create(ctx, badStatus)
	assert.ErrorIs(t, err, appErrors.ErrValidation)
}

func TestTaskServiceAssignFansOut(t *testing.T) {
	ctx := context.Background()
	svc := NewTaskService(newDemoStore(t), nil, nil)

	rows, err := svc.Assign(ctx, models.ClassAssignment{
		Title:     "Ulangan Harian",
		Subject:   "Matematika",
		TeacherID: "G001",
		DueDate:   "2024-02-08",
		Class:     "12 IPA 1",
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "S001", rows[0].StudentID)
	assert.Equal(t, "S002", rows[1].StudentID)
	assert.NotEqual(t, rows[0].ID, rows[1].ID)
	assert.Len(t, svc.List(TaskFilter{Class: "12 IPA 1"}), 8)

	_, err = svc.Assign(ctx, models.ClassAssignment{Title: "x", Subject: "x", TeacherID: "G001", DueDate: "2024-02-08", Class: "13 Nowhere"})
	assert.ErrorIs(t, err, appErrors.ErrValidation)

	_, err = svc.Assign(ctx, models.ClassAssignment{Title: "x", Subject: "x", TeacherID: "G999", DueDate: "2024-02-08", Class: "12 IPA 1"})
	assert.ErrorIs(t, err, appErrors.ErrValidation)
}

func TestTaskServiceUpdate(t *testing.T) {
	ctx := context.Background()
	svc := NewTaskService(newDemoStore(t), nil, nil)

	task, err := svc.Update(ctx, nil, "T001", models.TaskPatch{Status: strPtr(models.TaskDone)})
	require.NoError(t, err)
	assert.True(t, task.Done())
	assert.NotEmpty(t, task.UpdatedAt)

	_, err = svc.Update(ctx, nil, "T001", models.TaskPatch{Status: strPtr("later")})
	assert.ErrorIs(t, err, appErrors.ErrValidation)

	_, err = svc.Update(ctx, nil, "T999", models.TaskPatch{Status: strPtr(models.TaskDone)})
	assert.ErrorIs(t, err, appErrors.ErrNotFound)

	_, err = svc.Get("T999")
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}

func TestTaskServiceUpdateAsStudent(t *testing.T) {
	ctx := context.Background()
	st := newDemoStore(t)
	svc := NewTaskService(st, nil, nil)
	andi := models.StudentSession(*st.StudentByID("S001"))

	task, err := svc.Update(ctx, andi, "T001", models.TaskPatch{Status: strPtr(models.TaskDone)})
	require.NoError(t, err)
	assert.True(t, task.Done())

	_, err = svc.Update(ctx, andi, "T006", models.TaskPatch{Status: strPtr(models.TaskDone)})
	assert.ErrorIs(t, err, appErrors.ErrForbidden)
	assert.False(t, st.TaskByID("T006").Done())

	_, err = svc.Update(ctx, andi, "T002", models.TaskPatch{Title: strPtr("renamed"), Status: strPtr(models.TaskDone)})
	assert.ErrorIs(t, err, appErrors.ErrForbidden)
	assert.NotEqual(t, "renamed", st.TaskByID("T002").Title)

	_, err = svc.Update(ctx, andi, "T999", models.TaskPatch{Status: strPtr(models.TaskDone)})
	assert.ErrorIs(t, err, appErrors.ErrNotFound)

	santi := models.TeacherSession(*st.TeacherByID("G001"))
	task, err = svc.Update(ctx, santi, "T006", models.TaskPatch{Title: strPtr("Revisi")})
	require.NoError(t, err)
	assert.Equal(t, "Revisi", task.Title)
}
