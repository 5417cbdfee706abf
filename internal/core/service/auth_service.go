package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/usermgmt/user-service/internal/core/domain"
	"github.com/usermgmt/user-service/internal/core/ports"
)

// AuthService validates credentials against stored accounts. It owns the
// password comparison; the user service only supplies the principal.
type AuthService struct {
	users  ports.UserService
	logger zerolog.Logger
}

func NewAuthService(users ports.UserService, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, logger: logger}
}

// Login resolves the principal for username and compares the presented
// password against its stored hash.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.Principal, error) {
	principal, err := s.users.LoadByUsername(ctx, username)
	if err != nil {
		s.logger.Debug().Str("username", username).Msg("credentials lookup failed")
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(principal.PasswordHash), []byte(password)) != nil {
		s.logger.Debug().Str("username", username).Msg("password mismatch")
		return nil, domain.InvalidPassword()
	}

	return principal, nil
}
