package kvstore

import (
	"context"

	"github.com/talawarsneha/project-management-app/internal/domain/apperr"
	"github.com/talawarsneha/project-management-app/internal/domain/codec"
	"github.com/talawarsneha/project-management-app/internal/domain/entity"
	"github.com/talawarsneha/project-management-app/internal/domain/repository"
)

// SessionStore persists the single active session under its reserved key.
type SessionStore struct {
	store repository.RecordStore
	codec *codec.Codec
	keys  Keys
}

func NewSessionStore(store repository.RecordStore, c *codec.Codec, keys Keys) *SessionStore {
	return &SessionStore{store: store, codec: c, keys: keys}
}

// Load reports ok=false for a missing or malformed session; the error is
// only non-nil when the store itself failed.
func (s *SessionStore) Load(ctx context.Context) (entity.Session, bool, error) {
	raw, ok, err := s.store.Get(ctx, s.keys.Session())
	if err != nil {
		return entity.Session{}, false, apperr.Storage("failed to read session", err)
	}
	if !ok {
		return entity.Session{}, false, nil
	}
	sess, ok := s.codec.DecodeSession(raw)
	return sess, ok, nil
}

func (s *SessionStore) Save(ctx context.Context, sess entity.Session) error {
	raw, err := s.codec.EncodeSession(sess)
	if err != nil {
		return apperr.Storage("failed to encode session", err)
	}
	if err := s.store.Set(ctx, s.keys.Session(), raw); err != nil {
		return apperr.Storage("failed to save session", err)
	}
	return nil
}

func (s *SessionStore) Clear(ctx context.Context) error {
	if err := s.store.Remove(ctx, s.keys.Session()); err != nil {
		return apperr.Storage("failed to clear session", err)
	}
	return nil
}
