package ports

import (
	"context"

	"github.com/usermgmt/user-service/internal/core/domain"
)

// CreateUserInput carries the data needed to create a new account.
type CreateUserInput struct {
	Username string
	Password string // plaintext; the service hashes it before persisting
	Role     domain.Role
}

// EditUserInput is the full-shape overwrite applied on update. It always
// carries all three fields; there is no sparse patch.
type EditUserInput struct {
	Username string
	Password string
	Role     domain.Role
}

// UserResult is the outward-facing projection of a user. It intentionally
// exposes only the identifier and username.
type UserResult struct {
	ID       int64
	Username string
}

// UserPage is one page of user projections with total-count metadata.
type UserPage struct {
	Items      []UserResult
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// Principal is the authentication-facing projection of a user: the stored
// hash for the login flow's own comparison and exactly one granted authority
// derived from the role.
type Principal struct {
	Username     string
	PasswordHash string
	Authorities  []string
}

// UserService defines the account lifecycle use cases plus the lookup
// contract consumed by the login flow.
type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*UserResult, error)
	GetByID(ctx context.Context, id int64) (*UserResult, error)
	List(ctx context.Context, filter ListFilter) (*UserPage, error)
	Update(ctx context.Context, id int64, input EditUserInput) (*UserResult, error)
	Delete(ctx context.Context, id int64) error
	// LoadByUsername fails with domain.ErrCredentialsLookup on an unknown
	// username. It never compares passwords.
	LoadByUsername(ctx context.Context, username string) (*Principal, error)
}
