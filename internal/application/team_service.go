package application

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/talawarsneha/project-management-app/internal/domain/apperr"
	"github.com/talawarsneha/project-management-app/internal/domain/entity"
	"github.com/talawarsneha/project-management-app/internal/domain/repository"
	"github.com/talawarsneha/project-management-app/pkg/helpers"
)

// TeamService manages the member accounts a manager can hand tasks to.
type TeamService struct {
	Users  repository.UserRepository
	Logger *logrus.Logger
}

func NewTeamService(users repository.UserRepository, logger *logrus.Logger) *TeamService {
	return &TeamService{Users: users, Logger: logger}
}

type AddMemberInput struct {
	Email    string
	Password string
	Name     string
}

// ListMembers returns the member-role accounts, passwords stripped.
func (s *TeamService) ListMembers(ctx context.Context) ([]entity.User, error) {
	users, err := s.Users.List(ctx)
	if err != nil {
		return nil, err
	}
	members := []entity.User{}
	for _, u := range users {
		if u.Role == entity.RoleMember {
			members = append(members, u.Sanitized())
		}
	}
	return members, nil
}

// AddMember creates a member account with a bcrypt-hashed password and a
// lowercased email. Duplicate emails are rejected by the repository.
func (s *TeamService) AddMember(ctx context.Context, in AddMemberInput) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || strings.TrimSpace(in.Password) == "" {
		return nil, apperr.Validation("email and password are required")
	}
	if !emailPattern.MatchString(email) {
		return nil, apperr.Validation("please enter a valid email address")
	}
	if len(in.Password) < 6 {
		return nil, apperr.Validation("password must be at least 6 characters long")
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, apperr.Storage("failed to hash password", err)
	}
	created, err := s.Users.Create(ctx, entity.User{
		Email:    email,
		Name:     strings.TrimSpace(in.Name),
		Role:     entity.RoleMember,
		Password: hash,
	})
	if err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithField("email", created.Email).Info("team member added")
	}
	out := created.Sanitized()
	return &out, nil
}

func (s *TeamService) RemoveMember(ctx context.Context, id string) error {
	return s.Users.Delete(ctx, id)
}
