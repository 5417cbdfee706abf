package service

import (
	"github.com/usermgmt/user-service/internal/core/domain"
	"github.com/usermgmt/user-service/internal/core/ports"
)

// Mapping between the persisted entity and the three wire-facing shapes.
// These are structural transforms only; they never fail.

// toUser builds a new entity from create input. The identifier and creation
// timestamp are left zero for the service to fill, and the password still
// holds the plaintext until the service hashes it.
func toUser(input ports.CreateUserInput) *domain.User {
	return &domain.User{
		Username: input.Username,
		Password: input.Password,
		Role:     input.Role,
	}
}

// toUserResult projects an entity onto the read shape: identifier and
// username only.
func toUserResult(user *domain.User) *ports.UserResult {
	return &ports.UserResult{
		ID:       user.ID,
		Username: user.Username,
	}
}

// overwriteUser copies every edit field onto the target in place. The edit
// shape always carries all three fields, so username, password and role are
// overwritten unconditionally; ID and CreatedAt are untouched.
func overwriteUser(input ports.EditUserInput, user *domain.User) {
	user.Username = input.Username
	user.Password = input.Password
	user.Role = input.Role
}
