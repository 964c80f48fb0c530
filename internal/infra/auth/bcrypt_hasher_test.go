package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"hearth/config"
	domainerrors "hearth/internal/domain/errors"
)

func testHasher(strength *config.PasswordStrengthConfig) *bcryptHasher {
	cfg := &config.Config{
		Auth:             &config.AuthConfig{BcryptCost: bcrypt.MinCost},
		PasswordStrength: strength,
	}
	return NewBcryptHasher(cfg).(*bcryptHasher)
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := testHasher(nil)

	password := "StrongPass123!"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("wrong-password", hash))
}

func TestBcryptHasher_CheckInvalidHash(t *testing.T) {
	hasher := testHasher(nil)

	assert.False(t, hasher.Check("any-password", "not-a-bcrypt-hash"))
	assert.False(t, hasher.Check("any-password", ""))
}

func TestBcryptHasher_ValidateStrength_Defaults(t *testing.T) {
	hasher := testHasher(nil)

	assert.NoError(t, hasher.ValidateStrength("longenough"))

	err := hasher.ValidateStrength("short")
	assert.Error(t, err)

	var appErr domainerrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestBcryptHasher_ValidateStrength_Policy(t *testing.T) {
	hasher := testHasher(&config.PasswordStrengthConfig{
		MinLength:        8,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireNumbers:   true,
		RequireSpecial:   true,
	})

	weakPasswords := []string{
		"Aa1!",        // too short
		"PASSWORD12!", // no lowercase
		"password12!", // no uppercase
		"Passwords!!", // no numbers
		"Password123", // no special characters
	}
	for _, weak := range weakPasswords {
		assert.Error(t, hasher.ValidateStrength(weak), "expected %q to fail", weak)
	}

	assert.NoError(t, hasher.ValidateStrength("Password123!"))
}

func TestBcryptHasher_ValidateStrength_MaxLength(t *testing.T) {
	hasher := testHasher(&config.PasswordStrengthConfig{MinLength: 8, MaxLength: 16})

	assert.NoError(t, hasher.ValidateStrength("exactly16chars!!"))
	assert.Error(t, hasher.ValidateStrength("seventeen-chars!!"))
}
