package handler

import (
	"strconv"
	"time"

	deliverycontext "hearth/internal/delivery/context"
	"hearth/internal/domain/entity"
	domainerrors "hearth/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// requireActor returns the authenticated user placed on the request context
// by the auth middleware.
func requireActor(c echo.Context) (*entity.User, error) {
	actor := deliverycontext.GetIdentity(c.Request().Context())
	if actor == nil {
		return nil, domainerrors.ErrMissingCredentials
	}

	return actor, nil
}

// parseIDParam parses a uuid path parameter.
func parseIDParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + name + " parameter")
	}

	return id, nil
}

// queryIntPtr parses an optional integer query parameter, nil when absent.
func queryIntPtr(c echo.Context, name string) (*int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}

	return &v, nil
}

// queryTimePtr parses an optional timestamp query parameter, nil when absent.
// Both RFC 3339 timestamps and bare dates are accepted.
func queryTimePtr(c echo.Context, name string) (*time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		t, err = time.Parse(time.DateOnly, raw)
		if err != nil {
			return nil, err
		}
	}

	return &t, nil
}

// UserResponse is the public view of a user account.
// The password hash never leaves the service.
type UserResponse struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	FullName    string     `json:"full_name"`
	IsActive    bool       `json:"is_active"`
	Role        string     `json:"role"`
	HouseholdID *uuid.UUID `json:"household_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func toUserResponse(u *entity.User) *UserResponse {
	return &UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		FullName:    u.FullName,
		IsActive:    u.IsActive,
		Role:        string(u.Role),
		HouseholdID: u.HouseholdID,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func toUserResponses(users []*entity.User) []*UserResponse {
	out := make([]*UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}

	return out
}

// LoginResponse carries the issued access token.
type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	TokenType   string        `json:"token_type"`
	User        *UserResponse `json:"user"`
}

// MemberResponse is the public view of a household membership.
type MemberResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// HouseholdResponse is the public view of a household with its members.
type HouseholdResponse struct {
	ID        uuid.UUID         `json:"id"`
	Name      string            `json:"name"`
	CreatedBy uuid.UUID         `json:"created_by"`
	Members   []*MemberResponse `json:"members"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

func toHouseholdResponse(h *entity.Household) *HouseholdResponse {
	members := make([]*MemberResponse, 0, len(h.Members))
	for _, m := range h.Members {
		members = append(members, &MemberResponse{
			ID:        m.ID,
			UserID:    m.UserID,
			Role:      string(m.Role),
			CreatedAt: m.CreatedAt,
		})
	}

	return &HouseholdResponse{
		ID:        h.ID,
		Name:      h.Name,
		CreatedBy: h.CreatedBy,
		Members:   members,
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
}

// InvitationResponse is the public view of a household invitation.
type InvitationResponse struct {
	ID            uuid.UUID `json:"id"`
	HouseholdID   uuid.UUID `json:"household_id"`
	Email         string    `json:"email"`
	Token         string    `json:"token"`
	Status        string    `json:"status"`
	InvitationURL string    `json:"invitation_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func toInvitationResponse(inv *entity.HouseholdInvitation, url string) *InvitationResponse {
	return &InvitationResponse{
		ID:            inv.ID,
		HouseholdID:   inv.HouseholdID,
		Email:         inv.Email,
		Token:         inv.Token,
		Status:        string(inv.Status),
		InvitationURL: url,
		CreatedAt:     inv.CreatedAt,
		UpdatedAt:     inv.UpdatedAt,
	}
}

// CategoryResponse is the public view of a category.
type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	HouseholdID uuid.UUID `json:"household_id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toCategoryResponse(cat *entity.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:          cat.ID,
		HouseholdID: cat.HouseholdID,
		Name:        cat.Name,
		Type:        cat.Type.String(),
		CreatedAt:   cat.CreatedAt,
		UpdatedAt:   cat.UpdatedAt,
	}
}

// TransactionResponse is the public view of a transaction.
type TransactionResponse struct {
	ID          uuid.UUID `json:"id"`
	HouseholdID uuid.UUID `json:"household_id"`
	UserID      uuid.UUID `json:"user_id"`
	CategoryID  uuid.UUID `json:"category_id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toTransactionResponse(tx *entity.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:          tx.ID,
		HouseholdID: tx.HouseholdID,
		UserID:      tx.UserID,
		CategoryID:  tx.CategoryID,
		Description: tx.Description,
		Amount:      tx.Amount,
		Date:        tx.Date,
		Type:        tx.Type.String(),
		Status:      string(tx.Status),
		CreatedAt:   tx.CreatedAt,
		UpdatedAt:   tx.UpdatedAt,
	}
}

// BudgetResponse is the public view of a budget.
type BudgetResponse struct {
	ID          uuid.UUID `json:"id"`
	HouseholdID uuid.UUID `json:"household_id"`
	CategoryID  uuid.UUID `json:"category_id"`
	Threshold   float64   `json:"threshold"`
	Month       int       `json:"month"`
	Year        int       `json:"year"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toBudgetResponse(b *entity.Budget) *BudgetResponse {
	return &BudgetResponse{
		ID:          b.ID,
		HouseholdID: b.HouseholdID,
		CategoryID:  b.CategoryID,
		Threshold:   b.Threshold,
		Month:       b.Month,
		Year:        b.Year,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// EventResponse is the public view of a calendar event.
type EventResponse struct {
	ID                    uuid.UUID  `json:"id"`
	HouseholdID           uuid.UUID  `json:"household_id"`
	CreatedBy             uuid.UUID  `json:"created_by"`
	Title                 string     `json:"title"`
	Description           string     `json:"description"`
	StartTime             time.Time  `json:"start_time"`
	EndTime               *time.Time `json:"end_time,omitempty"`
	IsAllDay              bool       `json:"is_all_day"`
	Location              string     `json:"location"`
	ReminderEnabled       bool       `json:"reminder_enabled"`
	ReminderMinutesBefore *int       `json:"reminder_minutes_before,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

func toEventResponse(ev *entity.Event) *EventResponse {
	return &EventResponse{
		ID:                    ev.ID,
		HouseholdID:           ev.HouseholdID,
		CreatedBy:             ev.CreatedBy,
		Title:                 ev.Title,
		Description:           ev.Description,
		StartTime:             ev.StartTime,
		EndTime:               ev.EndTime,
		IsAllDay:              ev.IsAllDay,
		Location:              ev.Location,
		ReminderEnabled:       ev.ReminderEnabled,
		ReminderMinutesBefore: ev.ReminderMinutesBefore,
		CreatedAt:             ev.CreatedAt,
		UpdatedAt:             ev.UpdatedAt,
	}
}
