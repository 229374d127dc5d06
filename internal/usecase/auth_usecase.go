// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"identity/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email    string
	Password string
}

// LoginInput defines the data required for a password login.
type LoginInput struct {
	Email    string
	Password string
}

// BiometricLoginInput defines the data required for a biometric login.
type BiometricLoginInput struct {
	BiometricKey string
}

// SetBiometricKeyInput defines the data required to bind a biometric key to an account.
type SetBiometricKeyInput struct {
	UserID       int64
	BiometricKey string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user record. The record includes
// the password hash; callers of the API receive the stored row as-is.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the issued bearer token after a successful login.
type LoginOutput struct {
	AccessToken string
}

// SetBiometricKeyOutput returns the updated user record after binding.
type SetBiometricKeyOutput struct {
	User *entity.User
}

// AuthUsecase defines the interface for the identity operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	BiometricLogin(ctx context.Context, input *BiometricLoginInput) (*LoginOutput, error)
	SetBiometricKey(ctx context.Context, input *SetBiometricKeyInput) (*SetBiometricKeyOutput, error)
}
