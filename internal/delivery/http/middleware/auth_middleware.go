// Package middleware contains HTTP middleware specific to the API server.
package middleware

import (
	"strings"

	deliverycontext "hearth/internal/delivery/context"
	"hearth/internal/delivery/http/response"
	"hearth/internal/domain/entity"
	domainerrors "hearth/internal/domain/errors"
	"hearth/internal/domain/service"
	"hearth/internal/usecase"

	"github.com/labstack/echo/v4"
)

// KeyUser is the echo.Context key carrying the authenticated user.
const KeyUser = "user"

// AuthMiddleware validates bearer tokens and resolves them to user identities.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	users    usecase.UserUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, users usecase.UserUsecase) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, users: users}
}

// Authenticate validates the access token and loads the subject's account.
// A token whose subject no longer exists is treated as invalid, not as a
// server error.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := m.resolveUser(c)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		setIdentity(c, user)

		return next(c)
	}
}

// RequireActive rejects disabled accounts with a 400, distinct from the 401
// an invalid credential produces. It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireActive(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := GetUser(c)
		if user == nil {
			return response.HandleAppError(c, domainerrors.ErrMissingCredentials)
		}

		if !user.IsActive {
			return response.HandleAppError(c, domainerrors.ErrUserInactive)
		}

		return next(c)
	}
}

// OptionalAuthenticate resolves an identity when a valid token is present and
// continues anonymously otherwise. Invalid tokens are swallowed, never 401s.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := m.resolveUser(c)
		if err == nil {
			setIdentity(c, user)
		}

		return next(c)
	}
}

// RequireRole checks the authenticated user's system role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := GetUser(c)
			if user == nil || user.Role != requiredRole {
				return response.HandleAppError(c, domainerrors.ErrPermissionDenied)
			}

			return next(c)
		}
	}
}

func (m *AuthMiddleware) resolveUser(c echo.Context) (*entity.User, error) {
	tokenString, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
	if !ok {
		return nil, domainerrors.ErrMissingCredentials
	}

	claims, err := m.tokenSvc.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := m.users.GetByEmail(c.Request().Context(), claims.Email())
	if err != nil {
		// A valid signature over a vanished subject is still a bad credential.
		return nil, domainerrors.ErrInvalidCredentials
	}

	return user, nil
}

// bearerToken extracts the token from an Authorization header.
// The scheme match is case-insensitive; any other scheme counts as absent.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)

	return token, token != ""
}

// setIdentity stores the user on both the echo context and the request context
// so handlers and use cases read the same identity.
func setIdentity(c echo.Context, user *entity.User) {
	c.Set(KeyUser, user)
	ctx := deliverycontext.WithIdentity(c.Request().Context(), user)
	c.SetRequest(c.Request().WithContext(ctx))
}

// GetUser returns the authenticated user from the echo context, or nil.
func GetUser(c echo.Context) *entity.User {
	if user, ok := c.Get(KeyUser).(*entity.User); ok {
		return user
	}

	return nil
}
