package handler

import (
	"log/slog"
	"net/http"
	"time"

	"hearth/internal/delivery/http/response"
	"hearth/internal/domain/entity"
	"hearth/internal/domain/repository"
	"hearth/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// FinanceHandlerParams holds dependencies for FinanceHandler, injected by Fx.
type FinanceHandlerParams struct {
	fx.In

	FinanceUC usecase.FinanceUsecase
	Logger    *slog.Logger
}

// FinanceHandler holds dependencies for category, transaction, and budget handlers.
type FinanceHandler struct {
	financeUC usecase.FinanceUsecase
	logger    *slog.Logger
}

// NewFinanceHandler is the constructor for FinanceHandler.
func NewFinanceHandler(params FinanceHandlerParams) *FinanceHandler {
	return &FinanceHandler{
		financeUC: params.FinanceUC,
		logger:    params.Logger,
	}
}

// CreateCategoryRequest represents the request body for creating a category.
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required"`
	Type string `json:"type" validate:"required,oneof=expense income"`
}

// CreateTransactionRequest represents the request body for recording a transaction.
// The type is derived from the category server side.
type CreateTransactionRequest struct {
	CategoryID  uuid.UUID `json:"category_id" validate:"required"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount" validate:"required,gt=0"`
	Date        time.Time `json:"date" validate:"required"`
}

// UpdateTransactionRequest represents the request body for partial transaction
// updates. Absent fields are left untouched.
type UpdateTransactionRequest struct {
	CategoryID  *uuid.UUID `json:"category_id,omitempty"`
	Description *string    `json:"description,omitempty"`
	Amount      *float64   `json:"amount,omitempty" validate:"omitempty,gt=0"`
	Date        *time.Time `json:"date,omitempty"`
	Status      *string    `json:"status,omitempty" validate:"omitempty,oneof=pending completed cancelled failed"`
}

// UpsertBudgetRequest represents the request body for setting a budget threshold.
type UpsertBudgetRequest struct {
	CategoryID uuid.UUID `json:"category_id" validate:"required"`
	Threshold  float64   `json:"threshold" validate:"required,gt=0"`
	Month      int       `json:"month" validate:"required,min=1,max=12"`
	Year       int       `json:"year" validate:"required"`
}

// CreateCategory creates a category in the caller's household.
func (h *FinanceHandler) CreateCategory(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid category input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	category, err := h.financeUC.CreateCategory(c.Request().Context(), actor, &usecase.CreateCategoryInput{
		Name: req.Name,
		Type: entity.TransactionType(req.Type),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toCategoryResponse(category))
}

// ListCategories returns the household's categories, optionally filtered by type.
func (h *FinanceHandler) ListCategories(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var categoryType *entity.TransactionType
	if raw := c.QueryParam("type"); raw != "" {
		t := entity.TransactionType(raw)
		if !t.IsValid() {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid type parameter")
		}
		categoryType = &t
	}

	categories, err := h.financeUC.ListCategories(c.Request().Context(), actor, categoryType)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]*CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		out = append(out, toCategoryResponse(cat))
	}

	return response.Success(c, http.StatusOK, out)
}

// GetCategory returns one category within the household scope.
func (h *FinanceHandler) GetCategory(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	category, err := h.financeUC.GetCategory(c.Request().Context(), actor, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCategoryResponse(category))
}

// CreateTransaction records a transaction in the caller's household.
func (h *FinanceHandler) CreateTransaction(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid transaction input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	tx, err := h.financeUC.CreateTransaction(c.Request().Context(), actor, &usecase.CreateTransactionInput{
		CategoryID:  req.CategoryID,
		Description: req.Description,
		Amount:      req.Amount,
		Date:        req.Date,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toTransactionResponse(tx))
}

// GetTransaction returns one transaction within the household scope.
func (h *FinanceHandler) GetTransaction(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	tx, err := h.financeUC.GetTransaction(c.Request().Context(), actor, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toTransactionResponse(tx))
}

// ListTransactions returns household transactions matching the query filters.
func (h *FinanceHandler) ListTransactions(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	filter, err := h.parseTransactionFilter(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	transactions, err := h.financeUC.ListTransactions(c.Request().Context(), actor, filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]*TransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		out = append(out, toTransactionResponse(tx))
	}

	return response.Success(c, http.StatusOK, out)
}

// UpdateTransaction applies partial updates to a transaction.
func (h *FinanceHandler) UpdateTransaction(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid transaction input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.UpdateTransactionInput{
		CategoryID:  req.CategoryID,
		Description: req.Description,
		Amount:      req.Amount,
		Date:        req.Date,
	}
	if req.Status != nil {
		status := entity.TransactionStatus(*req.Status)
		input.Status = &status
	}

	tx, err := h.financeUC.UpdateTransaction(c.Request().Context(), actor, id, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toTransactionResponse(tx))
}

// DeleteTransaction removes a transaction within the household scope.
func (h *FinanceHandler) DeleteTransaction(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.financeUC.DeleteTransaction(c.Request().Context(), actor, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Transaction deleted successfully"})
}

// UpsertBudget creates or replaces the budget for a category and month.
func (h *FinanceHandler) UpsertBudget(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpsertBudgetRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid budget input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	budget, err := h.financeUC.UpsertBudget(c.Request().Context(), actor, &usecase.UpsertBudgetInput{
		CategoryID: req.CategoryID,
		Threshold:  req.Threshold,
		Month:      req.Month,
		Year:       req.Year,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toBudgetResponse(budget))
}

// ListBudgets returns household budgets, optionally filtered by month and year.
func (h *FinanceHandler) ListBudgets(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	month, err := queryIntPtr(c, "month")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid month parameter")
	}

	year, err := queryIntPtr(c, "year")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid year parameter")
	}

	budgets, err := h.financeUC.ListBudgets(c.Request().Context(), actor, month, year)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]*BudgetResponse, 0, len(budgets))
	for _, b := range budgets {
		out = append(out, toBudgetResponse(b))
	}

	return response.Success(c, http.StatusOK, out)
}

// DeleteBudget removes a budget within the household scope.
func (h *FinanceHandler) DeleteBudget(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.financeUC.DeleteBudget(c.Request().Context(), actor, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Budget deleted successfully"})
}

func (h *FinanceHandler) parseTransactionFilter(c echo.Context) (repository.TransactionFilter, error) {
	var filter repository.TransactionFilter

	if raw := c.QueryParam("category_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filter, errors.New("invalid category_id parameter")
		}
		filter.CategoryID = &id
	}

	if raw := c.QueryParam("type"); raw != "" {
		t := entity.TransactionType(raw)
		if !t.IsValid() {
			return filter, errors.New("invalid type parameter")
		}
		filter.Type = &t
	}

	if raw := c.QueryParam("status"); raw != "" {
		s := entity.TransactionStatus(raw)
		if !s.IsValid() {
			return filter, errors.New("invalid status parameter")
		}
		filter.Status = &s
	}

	from, err := queryTimePtr(c, "date_from")
	if err != nil {
		return filter, errors.New("invalid date_from parameter")
	}
	filter.DateFrom = from

	to, err := queryTimePtr(c, "date_to")
	if err != nil {
		return filter, errors.New("invalid date_to parameter")
	}
	filter.DateTo = to

	filter.Offset, err = queryInt(c, "offset", 0)
	if err != nil {
		return filter, errors.New("invalid offset parameter")
	}

	filter.Limit, err = queryInt(c, "limit", 0)
	if err != nil {
		return filter, errors.New("invalid limit parameter")
	}

	return filter, nil
}
