package kvstore

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/talawarsneha/project-management-app/internal/domain/apperr"
	"github.com/talawarsneha/project-management-app/internal/domain/codec"
	"github.com/talawarsneha/project-management-app/internal/domain/entity"
	"github.com/talawarsneha/project-management-app/internal/domain/repository"
)

type ProjectRepository struct {
	store  repository.RecordStore
	codec  *codec.Codec
	keys   Keys
	logger *logrus.Logger

	// serializes read-modify-write cycles on the projects key
	mu sync.Mutex
}

func NewProjectRepository(store repository.RecordStore, c *codec.Codec, keys Keys, logger *logrus.Logger) *ProjectRepository {
	return &ProjectRepository{store: store, codec: c, keys: keys, logger: logger}
}

// load swallows read failures: a store error on the read path downgrades
// to the empty collection, favoring availability over strict signaling.
func (r *ProjectRepository) load(ctx context.Context) []entity.Project {
	raw, ok, err := r.store.Get(ctx, r.keys.Projects())
	if err != nil {
		if r.logger != nil {
			r.logger.WithError(err).WithField("key", r.keys.Projects()).Warn("projects read failed, treating as empty")
		}
		return []entity.Project{}
	}
	if !ok {
		return []entity.Project{}
	}
	return r.codec.DecodeProjects(raw)
}

func (r *ProjectRepository) persist(ctx context.Context, projects []entity.Project) error {
	raw, err := r.codec.EncodeProjects(projects)
	if err != nil {
		return apperr.Storage("failed to encode projects", err)
	}
	if err := r.store.Set(ctx, r.keys.Projects(), raw); err != nil {
		return apperr.Storage("failed to save projects", err)
	}
	return nil
}

func (r *ProjectRepository) List(ctx context.Context) ([]entity.Project, error) {
	return r.load(ctx), nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, projectID string) (*entity.Project, error) {
	for _, p := range r.load(ctx) {
		if p.ID == projectID {
			return &p, nil
		}
	}
	return nil, apperr.NotFound("project not found")
}

// Create appends p to the collection and rewrites it. An empty ID or
// CreatedAt is assigned here; callers that seed fixed data pass both.
func (r *ProjectRepository) Create(ctx context.Context, p entity.Project) (*entity.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	projects := r.load(ctx)
	if p.ID == "" {
		p.ID = timestampID(func(id string) bool {
			for _, existing := range projects {
				if existing.ID == id {
					return true
				}
			}
			return false
		})
	}
	if p.CreatedAt == "" {
		p.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	if p.Tasks == nil {
		p.Tasks = []entity.Task{}
	}

	projects = append(projects, p)
	if err := r.persist(ctx, projects); err != nil {
		return nil, err
	}
	return &p, nil
}

// AppendTask adds t to the embedded task list of the target project and
// rewrites the whole collection. The stored blob is untouched when the
// project id does not resolve.
func (r *ProjectRepository) AppendTask(ctx context.Context, projectID string, t entity.Task) (*entity.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	projects := r.load(ctx)
	idx := -1
	for i, p := range projects {
		if p.ID == projectID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, apperr.NotFound("project not found")
	}

	if t.ID == "" {
		t.ID = timestampID(func(id string) bool {
			return projects[idx].FindTask(id) != -1
		})
	}
	if t.Status == "" {
		t.Status = entity.StatusToDo
	}
	if t.CreatedAt == "" {
		t.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	if t.Comments == nil {
		t.Comments = []entity.TaskComment{}
	}

	if projects[idx].Tasks == nil {
		projects[idx].Tasks = []entity.Task{}
	}
	projects[idx].Tasks = append(projects[idx].Tasks, t)

	if err := r.persist(ctx, projects); err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateTaskStatus replaces the status of one embedded task. Setting the
// same status twice persists an identical blob.
func (r *ProjectRepository) UpdateTaskStatus(ctx context.Context, projectID, taskID, status string) (*entity.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	projects := r.load(ctx)
	for i, p := range projects {
		if p.ID != projectID {
			continue
		}
		ti := p.FindTask(taskID)
		if ti == -1 {
			return nil, apperr.NotFound("task not found")
		}
		projects[i].Tasks[ti].Status = status
		if err := r.persist(ctx, projects); err != nil {
			return nil, err
		}
		updated := projects[i].Tasks[ti]
		return &updated, nil
	}
	return nil, apperr.NotFound("project not found")
}
