package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/myclassprogress/internal/models"
	appErrors "github.com/noah-isme/myclassprogress/pkg/errors"
)

func TestAuthServiceLoginStudent(t *testing.T) {
	st := newDemoStore(t)
	svc := NewAuthService(st, nil, nil)

	user, err := svc.Login(context.Background(), LoginRequest{Email: "andi@school.com", Password: "password123", Role: models.RoleStudent})
	require.NoError(t, err)
	assert.Equal(t, "S001", user.ID())
	assert.Empty(t, user.Student.Password)

	current, err := svc.Current()
	require.NoError(t, err)
	assert.Equal(t, "S001", current.ID())
	// the session kept by the store still holds the full record
	assert.Equal(t, "password123", st.CurrentUser().Student.Password)
}

func TestAuthServiceLoginTeacher(t *testing.T) {
	svc := NewAuthService(newDemoStore(t), nil, nil)

	user, err := svc.Login(context.Background(), LoginRequest{Email: "santi@school.com", Password: "password123", Role: models.RoleTeacher})
	require.NoError(t, err)
	assert.Equal(t, models.RoleTeacher, user.Role())
	assert.Equal(t, "Bu Santi, M.Pd", user.Name())
}

func TestAuthServiceLoginRejections(t *testing.T) {
	ctx := context.Background()
	st := newDemoStore(t)
	svc := NewAuthService(st, nil, nil)

	_, err := svc.Login(ctx, LoginRequest{Email: "andi@school.com", Password: "wrong", Role: models.RoleStudent})
	assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials)

	// right credentials, wrong role
	_, err = svc.Login(ctx, LoginRequest{Email: "andi@school.com", Password: "password123", Role: models.RoleTeacher})
	assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials)

	st.DeactivateStudent(ctx, "S002")
	_, err = svc.Login(ctx, LoginRequest{Email: "sari@school.com", Password: "password123", Role: models.RoleStudent})
	assert.ErrorIs(t, err, appErrors.ErrInactiveAccount)

	_, err = svc.Login(ctx, LoginRequest{Email: "not-an-email", Password: "x", Role: models.RoleStudent})
	assert.ErrorIs(t, err, appErrors.ErrValidation)

	_, err = svc.Login(ctx, LoginRequest{Email: "andi@school.com", Password: "password123", Role: "admin"})
	assert.ErrorIs(t, err, appErrors.ErrValidation)

	assert.Nil(t, st.CurrentUser())
}

func TestAuthServiceLogout(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(newDemoStore(t), nil, nil)

	_, err := svc.Login(ctx, LoginRequest{Email: "andi@school.com", Password: "password123", Role: models.RoleStudent})
	require.NoError(t, err)

	svc.Logout(ctx)
	svc.Logout(ctx)

	_, err = svc.Current()
	assert.ErrorIs(t, err, appErrors.ErrUnauthorized)
}
