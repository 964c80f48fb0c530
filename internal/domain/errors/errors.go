// Package errors defines the application error taxonomy shared by every
// transport. Each error carries an HTTP status, a gRPC status code, and a
// stable business error code so both deliveries translate failures the
// same way.
package errors

import (
	"net/http"

	"google.golang.org/grpc/codes"

	"hearth/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int        // HTTP status code
	GRPCCode() codes.Code // gRPC status code for transport parity
	ErrorCode() string    // Business error code
	Message() string      // User-friendly error message
	Details() string      // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	grpcCode  codes.Code
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, grpcCode codes.Code, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		grpcCode:  grpcCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// GRPCCode returns the gRPC status code
func (e *BaseError) GRPCCode() codes.Code {
	return e.grpcCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		grpcCode:  e.grpcCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Authentication failures. All map to 401/UNAUTHENTICATED, never 5xx.
	ErrMissingCredentials = NewBaseError(
		http.StatusUnauthorized,
		codes.Unauthenticated,
		"MISSING_CREDENTIALS",
		"Authorization credential is missing",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		codes.Unauthenticated,
		"INVALID_CREDENTIALS",
		"Incorrect email or password",
		"",
	)

	ErrTokenMalformed = NewBaseError(
		http.StatusUnauthorized,
		codes.Unauthenticated,
		"TOKEN_MALFORMED",
		"Could not validate credentials",
		"",
	)

	ErrTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		codes.Unauthenticated,
		"TOKEN_EXPIRED",
		"Credential has expired",
		"",
	)

	// Authorization failures.
	ErrPermissionDenied = NewBaseError(
		http.StatusForbidden,
		codes.PermissionDenied,
		"PERMISSION_DENIED",
		"Not enough permissions",
		"",
	)

	// ErrUserInactive is authorization-adjacent, distinct from "not
	// authenticated": the credential is valid but the account is disabled.
	ErrUserInactive = NewBaseError(
		http.StatusBadRequest,
		codes.FailedPrecondition,
		"USER_INACTIVE",
		"Inactive user",
		"",
	)

	// ErrNoHousehold is user-correctable, not a permission denial.
	ErrNoHousehold = NewBaseError(
		http.StatusBadRequest,
		codes.FailedPrecondition,
		"NO_HOUSEHOLD",
		"User does not belong to a household; join or create a household first",
		"",
	)

	// Not found.
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		codes.NotFound,
		"NOT_FOUND",
		"Item not found",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		codes.NotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	// Conflicts. The REST layer reports 400 while gRPC reports
	// ALREADY_EXISTS; both sides of the parity table live here.
	ErrEmailAlreadyRegistered = NewBaseError(
		http.StatusBadRequest,
		codes.AlreadyExists,
		"EMAIL_ALREADY_REGISTERED",
		"Email already registered",
		"",
	)

	ErrHouseholdNameTaken = NewBaseError(
		http.StatusBadRequest,
		codes.AlreadyExists,
		"HOUSEHOLD_NAME_TAKEN",
		"Household name already exists",
		"",
	)

	ErrAlreadyInHousehold = NewBaseError(
		http.StatusBadRequest,
		codes.AlreadyExists,
		"ALREADY_IN_HOUSEHOLD",
		"User already belongs to a household",
		"",
	)

	// Validation failures.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		codes.InvalidArgument,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrBudgetCategoryNotExpense = NewBaseError(
		http.StatusBadRequest,
		codes.InvalidArgument,
		"BUDGET_CATEGORY_NOT_EXPENSE",
		"Budgets can only be set for expense categories",
		"",
	)

	ErrMonthOutOfRange = NewBaseError(
		http.StatusBadRequest,
		codes.InvalidArgument,
		"MONTH_OUT_OF_RANGE",
		"Month must be between 1 and 12",
		"",
	)

	// Invariant violations.
	ErrLastAdmin = NewBaseError(
		http.StatusBadRequest,
		codes.FailedPrecondition,
		"LAST_ADMIN",
		"Cannot delete the last admin user",
		"",
	)

	ErrInvitationNotPending = NewBaseError(
		http.StatusBadRequest,
		codes.FailedPrecondition,
		"INVITATION_NOT_PENDING",
		"Invitation is no longer pending",
		"",
	)

	// Infrastructure failures.
	ErrDatabaseError = NewBaseError(
		http.StatusInternalServerError,
		codes.Internal,
		"DATABASE_ERROR",
		"Database operation failed",
		"",
	)
)

// NewDatabaseExecuteError wraps a low-level database error with execution context.
func NewDatabaseExecuteError(err error, details string) error {
	return errors.Wrap(ErrDatabaseError.WithDetails(details), err.Error())
}
