// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"hearth/config"
	domainerrors "hearth/internal/domain/errors"
	"hearth/internal/domain/service"
)

const (
	defaultMinPasswordLength = 8
	defaultMaxPasswordLength = 72 // bcrypt truncates beyond 72 bytes
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost     int
	strength *config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}
	return &bcryptHasher{
		cost:     cost,
		strength: cfg.PasswordStrength,
	}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidateStrength checks the plaintext password against the configured policy.
func (h *bcryptHasher) ValidateStrength(password string) error {
	minLength := defaultMinPasswordLength
	maxLength := defaultMaxPasswordLength
	if h.strength != nil {
		if h.strength.MinLength > 0 {
			minLength = h.strength.MinLength
		}
		if h.strength.MaxLength > 0 && h.strength.MaxLength < maxLength {
			maxLength = h.strength.MaxLength
		}
	}

	if len(password) < minLength {
		return domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("password must be at least %d characters", minLength))
	}
	if len(password) > maxLength {
		return domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("password must be at most %d characters", maxLength))
	}
	if h.strength == nil {
		return nil
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsNumber(r):
			hasNumber = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	var missing []string
	if h.strength.RequireUppercase && !hasUpper {
		missing = append(missing, "an uppercase letter")
	}
	if h.strength.RequireLowercase && !hasLower {
		missing = append(missing, "a lowercase letter")
	}
	if h.strength.RequireNumbers && !hasNumber {
		missing = append(missing, "a number")
	}
	if h.strength.RequireSpecial && !hasSpecial {
		missing = append(missing, "a special character")
	}
	if len(missing) > 0 {
		return domainerrors.ErrValidationFailed.WithDetails(
			"password must contain " + strings.Join(missing, ", "))
	}
	return nil
}
