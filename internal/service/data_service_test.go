package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/myclassprogress/internal/models"
	"github.com/noah-isme/myclassprogress/internal/repository"
	"github.com/noah-isme/myclassprogress/internal/store"
	appErrors "github.com/noah-isme/myclassprogress/pkg/errors"
)

func TestDataServiceExportImport(t *testing.T) {
	ctx := context.Background()
	source := NewDataService(newDemoStore(t), nil, nil)
	snapshot := source.Export()
	assert.Equal(t, models.SnapshotVersion, snapshot.Version)
	assert.Len(t, snapshot.Students, 5)

	target := newDemoStore(t)
	svc := NewDataService(target, nil, nil)
	target.AddGrade(ctx, models.GradeInput{StudentID: "S004", TaskID: "T003", Score: 60, TeacherID: "G002"})
	require.Len(t, target.AllGrades(), 6)

	require.NoError(t, svc.Import(ctx, models.ImportPayload{Grades: snapshot.Grades}))
	assert.Len(t, target.AllGrades(), 5)
	assert.Len(t, target.AllStudents(), 5)

	bad := []models.Grade{{ID: "N100", StudentID: "S001", TaskID: "T001", Score: 120}}
	assert.ErrorIs(t, svc.Import(ctx, models.ImportPayload{Grades: bad}), appErrors.ErrValidation)
	assert.Len(t, target.AllGrades(), 5)
}

func TestDataServiceReset(t *testing.T) {
	ctx := context.Background()
	st := newDemoStore(t)
	svc := NewDataService(st, nil, nil)

	st.Import(ctx, models.ImportPayload{Tasks: []models.Task{}})
	require.Empty(t, st.AllTasks())

	assert.ErrorIs(t, svc.ConfirmReset(ctx, ResetConfirmRequest{}), appErrors.ErrValidation)

	ticket, err := svc.RequestReset()
	require.NoError(t, err)
	assert.True(t, ticket.ExpiresAt.After(testNow))

	assert.ErrorIs(t, svc.ConfirmReset(ctx, ResetConfirmRequest{Token: "forged"}), appErrors.ErrInvalidResetToken)
	require.NoError(t, svc.ConfirmReset(ctx, ResetConfirmRequest{Token: ticket.Token}))
	assert.Len(t, st.AllTasks(), 6)
	assert.ErrorIs(t, svc.ConfirmReset(ctx, ResetConfirmRequest{Token: ticket.Token}), appErrors.ErrInvalidResetToken)
}

func TestDataServiceSettings(t *testing.T) {
	ctx := context.Background()
	svc := NewDataService(newDemoStore(t), nil, nil)

	assert.Equal(t, "SMA Negeri 1 Jakarta", svc.Settings().SchoolName)

	semester := 2
	updated, err := svc.UpdateSettings(ctx, models.SettingsPatch{Semester: &semester, AcademicYear: strPtr("2025/2026")})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Semester)
	assert.Equal(t, "2025/2026", updated.AcademicYear)
	assert.Equal(t, "2024-02-01T08:00:00.000Z", updated.UpdatedAt)

	invalid := 3
	_, err = svc.UpdateSettings(ctx, models.SettingsPatch{Semester: &invalid})
	assert.ErrorIs(t, err, appErrors.ErrValidation)
}

func TestDataServiceSaveReportsFailure(t *testing.T) {
	ctx := context.Background()
	backend := repository.NewMemoryBackend(64)
	var hooked []error
	st := store.New(ctx, backend, nil,
		store.WithClock(func() time.Time { return testNow }),
		store.WithPersistErrorHandler(func(_ context.Context, err error) { hooked = append(hooked, err) }),
	)
	svc := NewDataService(st, nil, nil)

	// the demo data never fits, but memory still holds it
	assert.Len(t, st.AllStudents(), 5)
	require.NotEmpty(t, hooked)

	err := svc.Save(ctx)
	assert.ErrorIs(t, err, appErrors.ErrPersistence)
	assert.ErrorIs(t, err, appErrors.ErrQuotaExceeded)

	backend.SetCapacity(0)
	assert.NoError(t, svc.Save(ctx))
}
