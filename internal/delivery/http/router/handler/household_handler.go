package handler

import (
	"log/slog"
	"net/http"

	"hearth/internal/delivery/http/response"
	"hearth/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HouseholdHandlerParams holds dependencies for HouseholdHandler, injected by Fx.
type HouseholdHandlerParams struct {
	fx.In

	HouseholdUC usecase.HouseholdUsecase
	Logger      *slog.Logger
}

// HouseholdHandler holds dependencies for household and invitation handlers.
type HouseholdHandler struct {
	householdUC usecase.HouseholdUsecase
	logger      *slog.Logger
}

// NewHouseholdHandler is the constructor for HouseholdHandler.
func NewHouseholdHandler(params HouseholdHandlerParams) *HouseholdHandler {
	return &HouseholdHandler{
		householdUC: params.HouseholdUC,
		logger:      params.Logger,
	}
}

// CreateHouseholdRequest represents the request body for creating a household.
type CreateHouseholdRequest struct {
	Name string `json:"name" validate:"required"`
}

// InviteMemberRequest represents the request body for inviting a member.
type InviteMemberRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// AcceptInvitationRequest represents the request body for redeeming an invitation.
type AcceptInvitationRequest struct {
	Token string `json:"token" validate:"required"`
}

// CreateHousehold creates a household with the caller as its admin member.
func (h *HouseholdHandler) CreateHousehold(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateHouseholdRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid household input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	household, err := h.householdUC.CreateHousehold(c.Request().Context(), actor, &usecase.CreateHouseholdInput{
		Name: req.Name,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toHouseholdResponse(household))
}

// GetMyHousehold returns the caller's household with members preloaded.
func (h *HouseholdHandler) GetMyHousehold(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	household, err := h.householdUC.GetMyHousehold(c.Request().Context(), actor)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toHouseholdResponse(household))
}

// InviteMember issues a pending invitation for an email address. Household admin only.
func (h *HouseholdHandler) InviteMember(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req InviteMemberRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid invitation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.householdUC.InviteMember(c.Request().Context(), actor, &usecase.InviteMemberInput{
		Email: req.Email,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toInvitationResponse(output.Invitation, output.InvitationURL))
}

// ListInvitations returns all invitations of the caller's household. Household admin only.
func (h *HouseholdHandler) ListInvitations(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	invitations, err := h.householdUC.ListInvitations(c.Request().Context(), actor)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]*InvitationResponse, 0, len(invitations))
	for _, inv := range invitations {
		out = append(out, toInvitationResponse(inv, ""))
	}

	return response.Success(c, http.StatusOK, out)
}

// AcceptInvitation redeems a pending invitation token for the caller.
func (h *HouseholdHandler) AcceptInvitation(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	// The token arrives in the body for API clients and as a query
	// parameter when the QR code URL is followed directly.
	var req AcceptInvitationRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid invitation input")
	}

	if req.Token == "" {
		req.Token = c.QueryParam("token")
	}

	if req.Token == "" {
		return response.BadRequest(c, "VALIDATION_ERROR", "Invitation token is required")
	}

	household, err := h.householdUC.AcceptInvitation(c.Request().Context(), actor, req.Token)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toHouseholdResponse(household))
}

// RevokeInvitation withdraws a pending invitation. Household admin only.
func (h *HouseholdHandler) RevokeInvitation(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.householdUC.RevokeInvitation(c.Request().Context(), actor, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Invitation revoked successfully"})
}

// InvitationQR renders a pending invitation's acceptance URL as a PNG QR code.
// Household admin only.
func (h *HouseholdHandler) InvitationQR(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.householdUC.InvitationQR(c.Request().Context(), actor, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
