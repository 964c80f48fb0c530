package handler

import (
	"log/slog"
	"net/http"
	"time"

	"hearth/internal/delivery/http/response"
	"hearth/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CalendarHandlerParams holds dependencies for CalendarHandler, injected by Fx.
type CalendarHandlerParams struct {
	fx.In

	CalendarUC usecase.CalendarUsecase
	Logger     *slog.Logger
}

// CalendarHandler holds dependencies for calendar event handlers.
type CalendarHandler struct {
	calendarUC usecase.CalendarUsecase
	logger     *slog.Logger
}

// NewCalendarHandler is the constructor for CalendarHandler.
func NewCalendarHandler(params CalendarHandlerParams) *CalendarHandler {
	return &CalendarHandler{
		calendarUC: params.CalendarUC,
		logger:     params.Logger,
	}
}

// CreateEventRequest represents the request body for creating an event.
type CreateEventRequest struct {
	Title                 string     `json:"title" validate:"required"`
	Description           string     `json:"description"`
	StartTime             time.Time  `json:"start_time" validate:"required"`
	EndTime               *time.Time `json:"end_time,omitempty"`
	IsAllDay              bool       `json:"is_all_day"`
	Location              string     `json:"location"`
	ReminderEnabled       bool       `json:"reminder_enabled"`
	ReminderMinutesBefore *int       `json:"reminder_minutes_before,omitempty"`
}

// UpdateEventRequest represents the request body for partial event updates.
// Absent fields are left untouched.
type UpdateEventRequest struct {
	Title                 *string    `json:"title,omitempty"`
	Description           *string    `json:"description,omitempty"`
	StartTime             *time.Time `json:"start_time,omitempty"`
	EndTime               *time.Time `json:"end_time,omitempty"`
	IsAllDay              *bool      `json:"is_all_day,omitempty"`
	Location              *string    `json:"location,omitempty"`
	ReminderEnabled       *bool      `json:"reminder_enabled,omitempty"`
	ReminderMinutesBefore *int       `json:"reminder_minutes_before,omitempty"`
}

// CreateEvent creates an event in the caller's household.
func (h *CalendarHandler) CreateEvent(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid event input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	event, err := h.calendarUC.CreateEvent(c.Request().Context(), actor, &usecase.CreateEventInput{
		Title:                 req.Title,
		Description:           req.Description,
		StartTime:             req.StartTime,
		EndTime:               req.EndTime,
		IsAllDay:              req.IsAllDay,
		Location:              req.Location,
		ReminderEnabled:       req.ReminderEnabled,
		ReminderMinutesBefore: req.ReminderMinutesBefore,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toEventResponse(event))
}

// GetEvent returns one event within the household scope.
func (h *CalendarHandler) GetEvent(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	event, err := h.calendarUC.GetEvent(c.Request().Context(), actor, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toEventResponse(event))
}

// ListEvents returns household events, optionally bounded by a time window.
func (h *CalendarHandler) ListEvents(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	from, err := queryTimePtr(c, "from")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid from parameter")
	}

	to, err := queryTimePtr(c, "to")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid to parameter")
	}

	events, err := h.calendarUC.ListEvents(c.Request().Context(), actor, from, to)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]*EventResponse, 0, len(events))
	for _, ev := range events {
		out = append(out, toEventResponse(ev))
	}

	return response.Success(c, http.StatusOK, out)
}

// UpdateEvent applies partial updates to an event.
func (h *CalendarHandler) UpdateEvent(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateEventRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid event input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	event, err := h.calendarUC.UpdateEvent(c.Request().Context(), actor, id, &usecase.UpdateEventInput{
		Title:                 req.Title,
		Description:           req.Description,
		StartTime:             req.StartTime,
		EndTime:               req.EndTime,
		IsAllDay:              req.IsAllDay,
		Location:              req.Location,
		ReminderEnabled:       req.ReminderEnabled,
		ReminderMinutesBefore: req.ReminderMinutesBefore,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toEventResponse(event))
}

// DeleteEvent removes an event within the household scope.
func (h *CalendarHandler) DeleteEvent(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.calendarUC.DeleteEvent(c.Request().Context(), actor, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Event deleted successfully"})
}
