package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the structured payload embedded in an access token.
type Claims struct {
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating access tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// IssueAccessToken creates a signed, self-contained bearer token carrying
	// the user's id and email. Issuance is a pure function of claims, current
	// time and the signing secret.
	IssueAccessToken(userID int64, email string) (string, error)

	// ValidateToken checks signature and expiry and returns the parsed claims.
	// The core operations never call this; it serves the downstream
	// authorization layer (auth middleware).
	ValidateToken(tokenString string) (*Claims, error)

	// AccessTokenDuration returns the configured validity window.
	AccessTokenDuration() time.Duration
}
