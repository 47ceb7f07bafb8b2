package store

import (
	"context"

	"github.com/noah-isme/myclassprogress/internal/models"
	appErrors "github.com/noah-isme/myclassprogress/pkg/errors"
)

// SetCurrentUser stores a snapshot of user as the session.
func (s *Store) SetCurrentUser(ctx context.Context, user *models.SessionUser) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentUser = user.Clone()
	_ = s.persist(ctx)
}

// ClearCurrentUser ends the session.
func (s *Store) ClearCurrentUser(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentUser = nil
	_ = s.persist(ctx)
}

// Authenticate finds the account of role whose email and password match
// exactly. Passwords are stored and compared in plain text.
func (s *Store) Authenticate(email, password, role string) (*models.SessionUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticate(email, password, role)
}

func (s *Store) authenticate(email, password, role string) (*models.SessionUser, error) {
	switch role {
	case models.RoleStudent:
		for _, st := range s.students {
			if st.Email == email && st.Password == password {
				if !st.Active() {
					return nil, appErrors.ErrInactiveAccount
				}
				return models.StudentSession(st), nil
			}
		}
	case models.RoleTeacher:
		for _, t := range s.teachers {
			if t.Email == email && t.Password == password {
				if !t.Active() {
					return nil, appErrors.ErrInactiveAccount
				}
				return models.TeacherSession(t), nil
			}
		}
	}
	return nil, appErrors.ErrInvalidCredentials
}

// Login authenticates and stores the account as the current session.
func (s *Store) Login(ctx context.Context, email, password, role string) (*models.SessionUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.authenticate(email, password, role)
	if err != nil {
		return nil, err
	}
	s.currentUser = user
	_ = s.persist(ctx)
	return user.Clone(), nil
}

// Logout clears the session.
func (s *Store) Logout(ctx context.Context) {
	s.ClearCurrentUser(ctx)
}
