package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hearth/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := HealthCheck(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestToUserResponse_HidesPasswordHash(t *testing.T) {
	householdID := uuid.New()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "alice@example.com",
		FullName:     "Alice",
		PasswordHash: "$2a$10$secret",
		IsActive:     true,
		Role:         entity.RoleAdmin,
		HouseholdID:  &householdID,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	resp := toUserResponse(user)

	assert.Equal(t, user.ID, resp.ID)
	assert.Equal(t, "alice@example.com", resp.Email)
	assert.Equal(t, "admin", resp.Role)
	require.NotNil(t, resp.HouseholdID)
	assert.Equal(t, householdID, *resp.HouseholdID)
}

func TestQueryTimePtr_AcceptsDateAndRFC3339(t *testing.T) {
	e := echo.New()

	for _, raw := range []string{"2026-03-01", "2026-03-01T10:00:00Z"} {
		req := httptest.NewRequest(http.MethodGet, "/events?from="+raw, nil)
		c := e.NewContext(req, httptest.NewRecorder())

		got, err := queryTimePtr(c, "from")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 2026, got.Year())
	}
}

func TestQueryTimePtr_RejectsGarbage(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/events?from=yesterday", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	_, err := queryTimePtr(c, "from")
	assert.Error(t, err)
}
