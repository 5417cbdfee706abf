package ports

import (
	"context"

	"github.com/usermgmt/user-service/internal/core/domain"
)

// ListFilter carries the query parameters for listing users.
type ListFilter struct {
	Page  int    // 1-based
	Limit int    // max rows per page (capped at 100 by the service)
	Sort  string // "field,asc" or "field,desc"; empty = store order by id
}

// UserRepository defines persistence operations for user accounts.
// Single-row operations are atomic; no transaction spans multiple calls.
type UserRepository interface {
	// FindByID returns domain.ErrUserNotFound when no user has that id.
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// FindByUsername returns domain.ErrUserNotFound when no user has that username.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// FindAll returns a page of users in store order and the total count.
	FindAll(ctx context.Context, filter ListFilter) ([]*domain.User, int64, error)
	// Save inserts when user.ID is zero (assigning the identifier) and
	// replaces the existing row otherwise. All fields are echoed back.
	Save(ctx context.Context, user *domain.User) (*domain.User, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	DeleteByID(ctx context.Context, id int64) error
}
