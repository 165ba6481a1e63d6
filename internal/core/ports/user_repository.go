package ports

import (
	"context"

	"github.com/attendly/attendance-system/internal/core/domain"
)

// UserRepository defines the persistence interface for user accounts.
//
// Uniqueness of email is enforced by the storage layer itself (unique
// index); Create surfaces a violation as *domain.DuplicateKeyError. Any
// pre-insert existence check callers perform is a fast path, not the source
// of truth.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByID resolves a user by its identifier with the password hash
	// excluded from the result. Returns domain.ErrInvalidID for malformed
	// identifiers and domain.ErrUserNotFound when no document matches.
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context, page, limit int) ([]domain.User, int64, error)
}
