package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hearth/config"
	domainerrors "hearth/internal/domain/errors"
)

func testJWTConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:    "test_secret_key_very_long_for_testing",
			Issuer:    "hearth-api",
			Audience:  "hearth-clients",
			AccessTTL: time.Hour,
		},
	}
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig())
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	token, err := jwtService.GenerateToken("alice@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, "alice@example.com", claims.Email())
	assert.Equal(t, "hearth-api", claims.Issuer)
}

func TestJWTService_MissingSecret(t *testing.T) {
	cfg := testJWTConfig()
	cfg.JWT.Secret = ""

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig())
	assert.NoError(t, err)

	for _, garbage := range []string{"", "not-a-token", "a.b.c"} {
		_, err := jwtService.ValidateToken(garbage)
		assert.ErrorIs(t, err, domainerrors.ErrTokenMalformed)
	}
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuing, err := NewJWTService(testJWTConfig())
	assert.NoError(t, err)

	otherCfg := testJWTConfig()
	otherCfg.JWT.Secret = "a_completely_different_secret_key"
	validating, err := NewJWTService(otherCfg)
	assert.NoError(t, err)

	token, err := issuing.GenerateToken("alice@example.com")
	assert.NoError(t, err)

	_, err = validating.ValidateToken(token)
	assert.ErrorIs(t, err, domainerrors.ErrTokenMalformed)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig())
	assert.NoError(t, err)

	token, err := jwtService.GenerateTokenWithTTL("alice@example.com", -time.Minute)
	assert.NoError(t, err)

	_, err = jwtService.ValidateToken(token)
	assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
}

func TestJWTService_WrongIssuer(t *testing.T) {
	issuingCfg := testJWTConfig()
	issuingCfg.JWT.Issuer = "someone-else"
	issuing, err := NewJWTService(issuingCfg)
	assert.NoError(t, err)

	validating, err := NewJWTService(testJWTConfig())
	assert.NoError(t, err)

	token, err := issuing.GenerateToken("alice@example.com")
	assert.NoError(t, err)

	_, err = validating.ValidateToken(token)
	assert.ErrorIs(t, err, domainerrors.ErrTokenMalformed)
}

func TestJWTService_ForeignAudienceAccepted(t *testing.T) {
	issuingCfg := testJWTConfig()
	issuingCfg.JWT.Audience = "another-frontend"
	issuing, err := NewJWTService(issuingCfg)
	assert.NoError(t, err)

	validating, err := NewJWTService(testJWTConfig())
	assert.NoError(t, err)

	token, err := issuing.GenerateToken("alice@example.com")
	assert.NoError(t, err)

	// Audience is stamped but not verified.
	claims, err := validating.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Email())
}

func TestJWTService_AccessTokenDuration(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig())
	assert.NoError(t, err)
	assert.Equal(t, time.Hour, jwtService.GetAccessTokenDuration())
}
