package entity

const (
	RoleManager = "manager"
	RoleMember  = "member"
)

// User is the aggregate root for the account domain.
// Password holds a bcrypt hash, never the plain text.
//
// Timestamps are kept as the RFC3339 strings they are stored with so the
// codec writes back exactly what it was given.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name,omitempty"`
	Role      string `json:"role"`
	Password  string `json:"password,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// Sanitized returns a copy safe to persist as the active session or to
// return to clients: the password hash is stripped.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}
