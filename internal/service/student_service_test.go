package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/myclassprogress/internal/models"
	appErrors "github.com/noah-isme/myclassprogress/pkg/errors"
)

func TestStudentServiceList(t *testing.T) {
	svc := NewStudentService(newDemoStore(t), nil, nil)

	all := svc.List("")
	require.Len(t, all, 5)
	for _, s := range all {
		assert.Empty(t, s.Password)
	}

	ipa := svc.List("12 IPA 1")
	require.Len(t, ipa, 2)
	assert.Equal(t, "S001", ipa[0].ID)
	assert.Equal(t, "S002", ipa[1].ID)

	assert.Empty(t, svc.List("13 Unknown"))
}

func TestStudentServiceCreate(t *testing.T) {
	ctx := context.Background()
	st := newDemoStore(t)
	svc := NewStudentService(st, nil, nil)

	created, err := svc.Create(ctx, models.NewStudent{
		Name:     "Tono",
		Email:    "tono@school.com",
		Password: "secret",
		Class:    "12 IPA 1",
		Phone:    "081234567890",
	})
	require.NoError(t, err)
	assert.Equal(t, "S-test-001", created.ID)
	assert.Equal(t, models.RoleStudent, created.Role)
	assert.True(t, created.Active())
	assert.Empty(t, created.Password)
	assert.Equal(t, "secret", st.StudentByID(created.ID).Password)

	_, err = svc.Create(ctx, models.NewStudent{Name: "Bad", Email: "bad", Password: "x", Class: "12 IPA 1"})
	assert.ErrorIs(t, err, appErrors.ErrValidation)

	_, err = svc.Create(ctx, models.NewStudent{Name: "Bad", Email: "bad@school.com", Password: "x", Class: "12 IPA 1", Phone: "123"})
	assert.ErrorIs(t, err, appErrors.ErrValidation)
}

func TestStudentServiceUpdateAndDeactivate(t *testing.T) {
	ctx := context.Background()
	st := newDemoStore(t)
	svc := NewStudentService(st, nil, nil)

	updated, err := svc.Update(ctx, "S003", models.StudentPatch{Class: strPtr("12 IPA 1")})
	require.NoError(t, err)
	assert.Equal(t, "12 IPA 1", updated.Class)
	assert.Equal(t, "Budi Santoso", updated.Name)

	_, err = svc.Update(ctx, "S999", models.StudentPatch{Name: strPtr("x")})
	assert.ErrorIs(t, err, appErrors.ErrNotFound)

	_, err = svc.Update(ctx, "S003", models.StudentPatch{Email: strPtr("nope")})
	assert.ErrorIs(t, err, appErrors.ErrValidation)

	require.NoError(t, svc.Deactivate(ctx, "S003"))
	_, err = svc.Get("S003")
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
	assert.ErrorIs(t, svc.Deactivate(ctx, "S003"), appErrors.ErrNotFound)

	// inactive records can be reactivated through a patch
	reactivated, err := svc.Update(ctx, "S003", models.StudentPatch{IsActive: models.Bool(true)})
	require.NoError(t, err)
	assert.True(t, reactivated.Active())
}

func TestStudentServiceProgress(t *testing.T) {
	svc := NewStudentService(newDemoStore(t), nil, nil)

	tasks, err := svc.Tasks("S001")
	require.NoError(t, err)
	assert.Len(t, tasks, 4)

	grades, err := svc.Grades("S001")
	require.NoError(t, err)
	assert.Len(t, grades, 3)

	stats, err := svc.Statistics("S001")
	require.NoError(t, err)
	assert.Equal(t, 88.3, stats.AverageGrade)
	assert.Equal(t, 2, stats.CompletedTasks)
	assert.Equal(t, 2, stats.PendingTasks)
	assert.Equal(t, 92.0, stats.HighestGrade)
	assert.Equal(t, 85.0, stats.LowestGrade)

	_, err = svc.Tasks("S999")
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
	_, err = svc.Grades("S999")
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
	_, err = svc.Statistics("S999")
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}
