// Package seed installs the demo accounts and sample project the mobile
// app shipped with, so a fresh install has something to log into.
package seed

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/talawarsneha/project-management-app/internal/domain/codec"
	"github.com/talawarsneha/project-management-app/internal/domain/entity"
	"github.com/talawarsneha/project-management-app/internal/domain/repository"
	"github.com/talawarsneha/project-management-app/internal/infrastructure/kvstore"
	"github.com/talawarsneha/project-management-app/pkg/helpers"
)

// Demo credentials, printed by cmd/seed for convenience.
const (
	ManagerEmail    = "manager@example.com"
	ManagerPassword = "manager123"
	MemberEmail     = "member@example.com"
	MemberPassword  = "member123"
)

// Run seeds users when the users collection is absent and the sample
// project when the one-time marker is unset. Passwords are stored as
// bcrypt hashes. Run is idempotent across restarts.
func Run(ctx context.Context, store repository.RecordStore, c *codec.Codec, keys kvstore.Keys, logger *logrus.Logger) error {
	users := kvstore.NewUserRepository(store, c, keys, logger)
	projects := kvstore.NewProjectRepository(store, c, keys, logger)

	if _, ok, err := store.Get(ctx, keys.Users()); err != nil {
		return err
	} else if !ok {
		demo := []struct {
			id, email, name, role, password string
		}{
			{"manager1", ManagerEmail, "Project Manager", entity.RoleManager, ManagerPassword},
			{"member1", MemberEmail, "Team Member", entity.RoleMember, MemberPassword},
		}
		for _, d := range demo {
			hash, err := helpers.HashPassword(d.password)
			if err != nil {
				return err
			}
			if _, err := users.Create(ctx, entity.User{
				ID:       d.id,
				Email:    d.email,
				Name:     d.name,
				Role:     d.role,
				Password: hash,
			}); err != nil {
				return err
			}
		}
		if logger != nil {
			logger.Info("seeded demo users")
		}
	}

	if _, ok, err := store.Get(ctx, keys.SeedMark()); err != nil {
		return err
	} else if ok {
		return nil
	}

	_, err := projects.Create(ctx, entity.Project{
		ID:          "1",
		Name:        "Website Redesign",
		Description: "Redesign the company website with modern UI/UX",
		Members: []entity.ProjectMember{
			{UserID: "manager1", Email: ManagerEmail, Role: entity.RoleManager},
			{UserID: "member1", Email: MemberEmail, Role: entity.RoleMember},
		},
		Tasks: []entity.Task{
			{
				ID:          "101",
				Title:       "Create wireframes",
				Description: "Design wireframes for all main pages",
				AssignedTo:  MemberEmail,
				CreatedBy:   ManagerEmail,
				Status:      entity.StatusInProgress,
				Priority:    entity.PriorityHigh,
				DueDate:     "2023-06-15",
				CreatedAt:   "2023-05-01T10:00:00Z",
				Comments:    []entity.TaskComment{},
			},
		},
		CreatedAt: "2023-05-01T09:00:00Z",
	})
	if err != nil {
		return err
	}
	if err := store.Set(ctx, keys.SeedMark(), "true"); err != nil {
		return err
	}
	if logger != nil {
		logger.Info("seeded sample project")
	}
	return nil
}
