package ports

import "context"

// AuthService validates presented credentials against stored accounts.
type AuthService interface {
	// Login fails with domain.ErrCredentialsLookup for an unknown username
	// and domain.ErrInvalidPassword for a failed comparison.
	Login(ctx context.Context, username, password string) (*Principal, error)
}
