// Package repository declares the persistence interfaces the application
// layer depends on. Implementations live under internal/infrastructure.
package repository

import (
	"context"

	"github.com/talawarsneha/project-management-app/internal/domain/entity"
)

// RecordStore is the device-local persistence boundary: string keys to
// opaque string blobs. Get reports ok=false for a missing key; callers
// must treat that as absence of data, not as an error.
type RecordStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// ProjectRepository owns CRUD and consistency of the projects+tasks
// collection. Every mutation rewrites the whole serialized collection.
type ProjectRepository interface {
	List(ctx context.Context) ([]entity.Project, error)
	GetByID(ctx context.Context, projectID string) (*entity.Project, error)
	Create(ctx context.Context, p entity.Project) (*entity.Project, error)
	AppendTask(ctx context.Context, projectID string, t entity.Task) (*entity.Task, error)
	UpdateTaskStatus(ctx context.Context, projectID, taskID, status string) (*entity.Task, error)
}

// UserRepository owns the user collection stored under its own key.
type UserRepository interface {
	List(ctx context.Context) ([]entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Create(ctx context.Context, u entity.User) (*entity.User, error)
	Delete(ctx context.Context, id string) error
}

// SessionStore persists the single active session under a reserved key.
type SessionStore interface {
	Load(ctx context.Context) (entity.Session, bool, error)
	Save(ctx context.Context, s entity.Session) error
	Clear(ctx context.Context) error
}
