// Package codec (de)serializes the domain collections to and from the
// string blobs held by the record store.
//
// Decoding is deliberately forgiving: a blob that is missing, truncated,
// or not a JSON array yields the empty collection and a warning, never an
// error. Availability wins over strict signaling on the read path.
package codec

import (
	"encoding/json"

	"github.com/sirupsen/logrus"

	"github.com/talawarsneha/project-management-app/internal/domain/entity"
)

// Absent is the sentinel some storage backends hand back for a key that
// was written with an undefined value. It is treated as no data.
const Absent = "undefined"

type Codec struct {
	Logger *logrus.Logger
}

func New(logger *logrus.Logger) *Codec {
	return &Codec{Logger: logger}
}

// DecodeProjects parses raw into the ordered projects collection.
// Empty input, the absence sentinel, malformed JSON, and non-array JSON
// all decode to an empty slice.
func (c *Codec) DecodeProjects(raw string) []entity.Project {
	if raw == "" || raw == Absent {
		return []entity.Project{}
	}
	var projects []entity.Project
	if err := json.Unmarshal([]byte(raw), &projects); err != nil {
		c.warn("projects blob is not a valid project array", err)
		return []entity.Project{}
	}
	if projects == nil {
		// raw was the JSON literal "null"
		return []entity.Project{}
	}
	return projects
}

// EncodeProjects serializes the collection preserving insertion order.
func (c *Codec) EncodeProjects(projects []entity.Project) (string, error) {
	if projects == nil {
		projects = []entity.Project{}
	}
	b, err := json.Marshal(projects)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeUsers behaves like DecodeProjects for the users collection.
func (c *Codec) DecodeUsers(raw string) []entity.User {
	if raw == "" || raw == Absent {
		return []entity.User{}
	}
	var users []entity.User
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		c.warn("users blob is not a valid user array", err)
		return []entity.User{}
	}
	if users == nil {
		return []entity.User{}
	}
	return users
}

func (c *Codec) EncodeUsers(users []entity.User) (string, error) {
	if users == nil {
		users = []entity.User{}
	}
	b, err := json.Marshal(users)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeSession parses a persisted session. A malformed or empty blob
// reports ok=false so startup falls back to anonymous.
func (c *Codec) DecodeSession(raw string) (entity.Session, bool) {
	if raw == "" || raw == Absent {
		return entity.Session{}, false
	}
	var s entity.Session
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		c.warn("session blob is malformed, treating as anonymous", err)
		return entity.Session{}, false
	}
	if s.User.Email == "" {
		c.warn("session blob has no user email, treating as anonymous", nil)
		return entity.Session{}, false
	}
	return s, true
}

func (c *Codec) EncodeSession(s entity.Session) (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (c *Codec) warn(msg string, err error) {
	if c.Logger == nil {
		return
	}
	entry := logrus.NewEntry(c.Logger)
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Warn(msg)
}
