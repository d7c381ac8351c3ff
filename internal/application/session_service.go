// Package application holds the use-case services: session lifecycle,
// project/task operations, per-user access filtering, and team management.
package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/talawarsneha/project-management-app/internal/domain/apperr"
	"github.com/talawarsneha/project-management-app/internal/domain/entity"
	"github.com/talawarsneha/project-management-app/internal/domain/repository"
	"github.com/talawarsneha/project-management-app/pkg/helpers"
)

// SessionService authenticates users against the stored credential
// collection and owns the persisted active session.
type SessionService struct {
	Users    repository.UserRepository
	Sessions repository.SessionStore
	Logger   *logrus.Logger
}

func NewSessionService(users repository.UserRepository, sessions repository.SessionStore, logger *logrus.Logger) *SessionService {
	return &SessionService{Users: users, Sessions: sessions, Logger: logger}
}

// Login verifies the credentials and persists the matched user (password
// hash stripped) as the active session. A failed attempt clears any stale
// persisted session so a previous login cannot linger past a rejection.
func (s *SessionService) Login(ctx context.Context, email, password string) (*entity.User, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil || u == nil || !helpers.CompareHashAndPassword(u.Password, password) {
		if clearErr := s.Sessions.Clear(ctx); clearErr != nil && s.Logger != nil {
			s.Logger.WithError(clearErr).Warn("failed to clear session after rejected login")
		}
		return nil, apperr.Authentication("invalid email or password")
	}

	sanitized := u.Sanitized()
	if err := s.Sessions.Save(ctx, entity.Session{User: sanitized}); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"email": sanitized.Email, "role": sanitized.Role}).Info("login successful")
	}
	return &sanitized, nil
}

// Logout clears the persisted session. It always succeeds from the
// caller's point of view; a store failure is logged and swallowed.
func (s *SessionService) Logout(ctx context.Context) {
	if err := s.Sessions.Clear(ctx); err != nil && s.Logger != nil {
		s.Logger.WithError(err).Warn("failed to clear session on logout")
	}
}

// Restore reads any persisted session at startup. It never returns an
// error: a missing, malformed, or unreadable session means anonymous.
func (s *SessionService) Restore(ctx context.Context) (*entity.User, bool) {
	sess, ok, err := s.Sessions.Load(ctx)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Warn("failed to restore session, starting anonymous")
		}
		return nil, false
	}
	if !ok {
		return nil, false
	}
	u := sess.User.Sanitized()
	return &u, true
}

// Current returns the active session's user, or an authentication error
// when no session is persisted.
func (s *SessionService) Current(ctx context.Context) (*entity.User, error) {
	u, ok := s.Restore(ctx)
	if !ok {
		return nil, apperr.Authentication("no active session")
	}
	return u, nil
}
