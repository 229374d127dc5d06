// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"identity/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete implementation.
//
// Uniqueness of email and biometric key is ultimately enforced by the storage
// engine's unique indexes; Create and UpdateBiometricKey surface a violation
// as the matching domain conflict error.
type UserRepository interface {
	// FindByID retrieves a single user by their storage-assigned ID.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address (exact match).
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByBiometricKey retrieves the single user holding the given biometric key.
	FindByBiometricKey(ctx context.Context, key string) (*entity.User, error)

	// Create persists a new user and fills in the generated ID and timestamps.
	Create(ctx context.Context, user *entity.User) error

	// UpdateBiometricKey binds a biometric key to the user identified by userID
	// and returns the updated record. Returns ErrUserNotFound when the id does
	// not resolve to a record.
	UpdateBiometricKey(ctx context.Context, userID int64, key string) (*entity.User, error)
}
