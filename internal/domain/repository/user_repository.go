package repository

import (
	"context"
	"errors"

	"github.com/yogaprasetya/akun-api/internal/domain/entity"
)

var (
	// ErrNotFound is returned when a lookup matches no user.
	ErrNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when a create hits the unique email constraint.
	ErrEmailTaken = errors.New("email already registered")
)

// UserRepository defines the interface for user-related database operations.
// Lookups are exact-match; usernames are not normalized.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
	Delete(ctx context.Context, id int64) error
}
