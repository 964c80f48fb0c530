// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"hearth/config"
	domainerrors "hearth/internal/domain/errors"
	"hearth/internal/domain/service"
	"hearth/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret    string        // Secret key for signing access tokens.
	issuer    string        // Issuer claim stamped on every token.
	audience  string        // Audience claim stamped on every token.
	accessTTL time.Duration // Time-to-live for access tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	return &jwtService{
		secret:    cfg.JWT.Secret,
		issuer:    cfg.JWT.Issuer,
		audience:  cfg.JWT.Audience,
		accessTTL: cfg.JWT.AccessTTL,
	}, nil
}

// GenerateToken creates a new access token whose subject is the given email.
func (s *jwtService) GenerateToken(email string) (string, error) {
	return s.GenerateTokenWithTTL(email, s.accessTTL)
}

// GenerateTokenWithTTL creates an access token with an explicit lifetime.
func (s *jwtService) GenerateTokenWithTTL(email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "sign access token")
	}
	return signed, nil
}

// ValidateToken checks the validity of a token string.
// The audience claim is stamped on issue but deliberately not verified,
// so tokens minted for sibling deployments remain accepted.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.secret), nil
	}, jwt.WithIssuer(s.issuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerrors.ErrTokenExpired
		}
		return nil, domainerrors.ErrTokenMalformed
	}
	if !token.Valid || claims.Subject == "" {
		return nil, domainerrors.ErrTokenMalformed
	}
	return claims, nil
}

// GetAccessTokenDuration returns the configured duration for access tokens.
func (s *jwtService) GetAccessTokenDuration() time.Duration {
	return s.accessTTL
}
