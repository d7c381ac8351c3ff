package kvstore

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/talawarsneha/project-management-app/internal/domain/apperr"
	"github.com/talawarsneha/project-management-app/internal/domain/codec"
	"github.com/talawarsneha/project-management-app/internal/domain/entity"
	"github.com/talawarsneha/project-management-app/internal/domain/repository"
)

type UserRepository struct {
	store  repository.RecordStore
	codec  *codec.Codec
	keys   Keys
	logger *logrus.Logger

	mu sync.Mutex
}

func NewUserRepository(store repository.RecordStore, c *codec.Codec, keys Keys, logger *logrus.Logger) *UserRepository {
	return &UserRepository{store: store, codec: c, keys: keys, logger: logger}
}

func (r *UserRepository) load(ctx context.Context) []entity.User {
	raw, ok, err := r.store.Get(ctx, r.keys.Users())
	if err != nil {
		if r.logger != nil {
			r.logger.WithError(err).WithField("key", r.keys.Users()).Warn("users read failed, treating as empty")
		}
		return []entity.User{}
	}
	if !ok {
		return []entity.User{}
	}
	return r.codec.DecodeUsers(raw)
}

func (r *UserRepository) persist(ctx context.Context, users []entity.User) error {
	raw, err := r.codec.EncodeUsers(users)
	if err != nil {
		return apperr.Storage("failed to encode users", err)
	}
	if err := r.store.Set(ctx, r.keys.Users(), raw); err != nil {
		return apperr.Storage("failed to save users", err)
	}
	return nil
}

func (r *UserRepository) List(ctx context.Context) ([]entity.User, error) {
	return r.load(ctx), nil
}

// GetByEmail matches case-insensitively; the stored convention is
// lowercase but older records are not guaranteed to follow it.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range r.load(ctx) {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, apperr.NotFound("user not found")
}

func (r *UserRepository) Create(ctx context.Context, u entity.User) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := r.load(ctx)
	for _, existing := range users {
		if strings.EqualFold(existing.Email, u.Email) {
			return nil, apperr.Validation("a user with this email already exists")
		}
	}
	if u.ID == "" {
		u.ID = timestampID(func(id string) bool {
			for _, existing := range users {
				if existing.ID == id {
					return true
				}
			}
			return false
		})
	}
	if u.CreatedAt == "" {
		u.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}

	users = append(users, u)
	if err := r.persist(ctx, users); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := r.load(ctx)
	kept := users[:0]
	found := false
	for _, u := range users {
		if u.ID == id {
			found = true
			continue
		}
		kept = append(kept, u)
	}
	if !found {
		return apperr.NotFound("user not found")
	}
	return r.persist(ctx, kept)
}
