package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/myclassprogress/internal/models"
	"github.com/noah-isme/myclassprogress/internal/validation"
	appErrors "github.com/noah-isme/myclassprogress/pkg/errors"
)

type sessionStore interface {
	Login(ctx context.Context, email, password, role string) (*models.SessionUser, error)
	Logout(ctx context.Context)
	CurrentUser() *models.SessionUser
}

// LoginRequest is the login form payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email_loose"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=siswa guru"`
}

// AuthService manages the single process-wide session.
type AuthService struct {
	store     sessionStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAuthService constructs the auth service.
func NewAuthService(store sessionStore, validate *validator.Validate, logger *zap.Logger) *AuthService {
	if validate == nil {
		validate = validation.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{store: store, validator: validate, logger: logger}
}

// Login checks the credentials and makes the account the current session.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*models.SessionUser, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid login payload")
	}
	user, err := s.store.Login(ctx, req.Email, req.Password, req.Role)
	if err != nil {
		s.logger.Warn("login rejected", zap.String("email", req.Email), zap.String("role", req.Role), zap.Error(err))
		if errors.Is(err, appErrors.ErrInactiveAccount) {
			return nil, appErrors.ErrInactiveAccount
		}
		return nil, appErrors.ErrInvalidCredentials
	}
	s.logger.Info("user logged in", zap.String("user_id", user.ID()), zap.String("role", user.Role()))
	return user.Redacted(), nil
}

// Logout clears the session. Logging out twice is not an error.
func (s *AuthService) Logout(ctx context.Context) {
	if user := s.store.CurrentUser(); user != nil {
		s.logger.Info("user logged out", zap.String("user_id", user.ID()))
	}
	s.store.Logout(ctx)
}

// Current returns the logged in account or ErrUnauthorized.
func (s *AuthService) Current() (*models.SessionUser, error) {
	user := s.store.CurrentUser()
	if user == nil {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "not logged in")
	}
	return user.Redacted(), nil
}
