package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/usermgmt/user-service/internal/core/domain"
	"github.com/usermgmt/user-service/internal/core/ports"
)

const maxPageLimit = 100

// UserService implements the account lifecycle over a UserRepository.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// Create persists a new account. The username must not already be taken; the
// plaintext password is replaced with its bcrypt hash before the single write.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*ports.UserResult, error) {
	if _, err := s.repo.FindByUsername(ctx, input.Username); err == nil {
		return nil, domain.UsernameAlreadyExists(input.Username)
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := toUser(input)
	user.Password = string(hash)
	user.CreatedAt = time.Now().UTC()

	created, err := s.repo.Save(ctx, user)
	if err != nil {
		s.logger.Error().Err(err).Str("username", input.Username).Msg("failed to create user")
		return nil, err
	}

	s.logger.Info().Int64("user_id", created.ID).Str("username", created.Username).Msg("user created")

	return toUserResult(created), nil
}

// GetByID returns the read projection of a single user.
func (s *UserService) GetByID(ctx context.Context, id int64) (*ports.UserResult, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.UserNotFoundByID(id)
		}
		return nil, err
	}
	return toUserResult(user), nil
}

// List returns one page of read projections in store order. An empty store
// yields an empty page, not an error.
func (s *UserService) List(ctx context.Context, filter ports.ListFilter) (*ports.UserPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
	if filter.Limit > maxPageLimit {
		filter.Limit = maxPageLimit
	}

	users, total, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]ports.UserResult, len(users))
	for i, u := range users {
		items[i] = *toUserResult(u)
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))

	return &ports.UserPage{
		Items:      items,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
	}, nil
}

// Update overwrites username, password and role from the edit input and
// persists the result. The password is re-hashed on every update, even when
// the client echoes the previous plaintext; the edit shape always carries a
// plaintext password. The identifier and creation timestamp never change.
func (s *UserService) Update(ctx context.Context, id int64, input ports.EditUserInput) (*ports.UserResult, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.UserNotFoundByID(id)
		}
		return nil, err
	}

	overwriteUser(input, user)

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.Password = string(hash)

	updated, err := s.repo.Save(ctx, user)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", id).Msg("failed to update user")
		return nil, err
	}

	s.logger.Info().Int64("user_id", updated.ID).Str("username", updated.Username).Msg("user updated")

	return toUserResult(updated), nil
}

// Delete removes the user unconditionally once it is known to exist.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.UserNotFoundByID(id)
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		s.logger.Error().Err(err).Int64("user_id", id).Msg("failed to delete user")
		return err
	}

	s.logger.Info().Int64("user_id", id).Msg("user deleted")

	return nil
}

// LoadByUsername resolves the principal consumed by the login flow: the
// stored hash plus a single authority equal to the role. Password comparison
// is the caller's responsibility.
func (s *UserService) LoadByUsername(ctx context.Context, username string) (*ports.Principal, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.CredentialsLookupFailed(username)
		}
		return nil, err
	}

	return &ports.Principal{
		Username:     user.Username,
		PasswordHash: user.Password,
		Authorities:  []string{string(user.Role)},
	}, nil
}
