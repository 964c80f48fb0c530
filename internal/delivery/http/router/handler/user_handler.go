// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"hearth/internal/delivery/http/response"
	"hearth/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for account and profile handlers.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// RegisterRequest represents the request body for registering an account.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	FullName string `json:"full_name" validate:"required"`
}

// LoginRequest represents the request body for logging in.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateMeRequest represents the request body for partial profile updates.
// Absent fields are left untouched.
type UpdateMeRequest struct {
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	FullName *string `json:"full_name,omitempty"`
	Password *string `json:"password,omitempty"`
}

// Register handles the account registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid registration input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	user, err := h.userUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toUserResponse(user))
}

// Login handles the login request and issues an access token.
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.userUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &LoginResponse{
		AccessToken: output.AccessToken,
		TokenType:   output.TokenType,
		User:        toUserResponse(output.User),
	})
}

// GetMe returns the authenticated user's own profile.
func (h *UserHandler) GetMe(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(actor))
}

// UpdateMe applies partial updates to the authenticated user's profile.
func (h *UserHandler) UpdateMe(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateMeRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid profile input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	user, err := h.userUC.UpdateMe(c.Request().Context(), actor, &usecase.UpdateMeInput{
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// ListUsers returns accounts with offset pagination. Admin only.
func (h *UserHandler) ListUsers(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	offset, err := queryInt(c, "offset", 0)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid offset parameter")
	}

	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid limit parameter")
	}

	users, err := h.userUC.ListUsers(c.Request().Context(), actor, offset, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponses(users))
}

// GetUser returns one account by id. Admins may read anyone, members only themselves.
func (h *UserHandler) GetUser(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.userUC.GetUser(c.Request().Context(), actor, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// DeleteUser removes an account. The last admin in the system cannot be removed.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.userUC.DeleteUser(c.Request().Context(), actor, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "User deleted successfully"})
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// queryInt parses an optional integer query parameter.
func queryInt(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}

	return strconv.Atoi(raw)
}
