// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/and161185/notekeeper/internal/model"
)

// UserRepository provides access to registered users.
type UserRepository interface {
	// Create inserts a new user and fills its ID and CreatedAt.
	// Returns errs.ErrAlreadyExists when the email is taken.
	Create(ctx context.Context, u *model.User) error
	// GetByEmail loads a user by exact email. Returns errs.ErrNotFound if absent.
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}
