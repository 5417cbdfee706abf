package domain

import "time"

// Role gates access to the mutating user endpoints.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User is the persisted account record. Password always holds the bcrypt
// hash, never the plaintext. ID is assigned by the store on first save and is
// immutable afterwards, as is CreatedAt.
type User struct {
	ID        int64
	Username  string
	Password  string
	Role      Role
	CreatedAt time.Time
}
