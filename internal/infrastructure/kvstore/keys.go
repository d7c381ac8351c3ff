// Package kvstore implements the domain repositories on top of the
// RecordStore. Each collection lives under one key as a single serialized
// blob; every mutation reloads, edits in memory, and rewrites the whole
// blob. A per-repository mutex serializes overlapping mutations issued in
// the same process; the underlying store itself remains last-write-wins.
package kvstore

// Reserved record store keys, optionally namespaced so several app
// instances can share one Redis database.
const (
	keyProjects = "projects"
	keyUsers    = "users"
	keySession  = "user"
	keySeedMark = "hasInitialData"
)

type Keys struct {
	prefix string
}

func NewKeys(namespace string) Keys {
	if namespace == "" {
		return Keys{}
	}
	return Keys{prefix: namespace + ":"}
}

func (k Keys) Projects() string { return k.prefix + keyProjects }
func (k Keys) Users() string    { return k.prefix + keyUsers }
func (k Keys) Session() string  { return k.prefix + keySession }
func (k Keys) SeedMark() string { return k.prefix + keySeedMark }
