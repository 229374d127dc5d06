// Package model contains the GORM persistence models mirroring the database schema.
package model

import (
	"time"
)

// UserModel mirrors the 'users' table. The unique indexes on email and
// biometric_key are the authoritative enforcement of the uniqueness
// invariants; service-level pre-checks only produce cleaner errors.
type UserModel struct {
	ID           int64   `gorm:"primaryKey;autoIncrement"`
	Email        string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string  `gorm:"type:varchar(255);not null;column:password_hash"`
	BiometricKey *string `gorm:"type:varchar(255);uniqueIndex"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
