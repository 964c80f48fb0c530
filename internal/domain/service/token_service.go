package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for access tokens.
// The subject carries the user's email address.
type Claims struct {
	jwt.RegisteredClaims
}

// Email returns the token subject.
func (c *Claims) Email() string {
	return c.Subject
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a new access token whose subject is the given email.
	GenerateToken(email string) (string, error)

	// GenerateTokenWithTTL creates an access token with an explicit lifetime,
	// overriding the configured duration.
	GenerateTokenWithTTL(email string, ttl time.Duration) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)

	// GetAccessTokenDuration returns the configured duration for access tokens.
	GetAccessTokenDuration() time.Duration
}
