// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// User is the durable identity record. The storage layer assigns the ID on
// creation; Email and a non-nil BiometricKey are unique across all users.
type User struct {
	ID           int64     // Storage-assigned identifier, immutable after creation.
	Email        string    // Login identifier, matched exactly as an opaque string.
	PasswordHash string    // bcrypt digest of the password, set once at registration.
	BiometricKey *string   // Optional secondary credential, nil until bound.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this record.
}

// HasBiometricKey reports whether a biometric credential is bound to the account.
func (u *User) HasBiometricKey() bool {
	return u.BiometricKey != nil && *u.BiometricKey != ""
}
