package errors

import (
	"net/http"

	"tradein/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
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
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches errors by business error code, so a WithDetails copy still
// compares equal to its predefined base under errors.Is.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	// Validation errors: malformed or missing input, no state change.
	ErrValidation = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	ErrInvalidCreditAmount = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CREDIT_AMOUNT",
		"credit amount must be a positive integer",
		"",
	)

	ErrMissingShippingFields = NewBaseError(
		http.StatusBadRequest,
		"MISSING_SHIPPING_FIELDS",
		"carrier, tracking number and shipping date are required",
		"",
	)

	ErrMissingWarehouse = NewBaseError(
		http.StatusBadRequest,
		"MISSING_WAREHOUSE",
		"a warehouse must be selected to approve a request",
		"",
	)

	ErrShippingDetailsRequired = NewBaseError(
		http.StatusBadRequest,
		"SHIPPING_DETAILS_REQUIRED",
		"shipping details must be submitted before the item can be marked received",
		"",
	)

	ErrUnknownTransitStatus = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_TRANSIT_STATUS",
		"unsupported transit status",
		"",
	)

	ErrUnknownStatus = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_STATUS",
		"unsupported status",
		"",
	)

	// Conflict errors: a state-machine guard was violated, no state change.
	// These report as 400: the request is well-formed but invalid against the
	// entity's current state, and the caller can recover by re-reading it.
	ErrRequestNotPending = NewBaseError(
		http.StatusBadRequest,
		"REQUEST_NOT_PENDING",
		"this operation is only allowed while the request is pending",
		"",
	)

	ErrRequestNotApproved = NewBaseError(
		http.StatusBadRequest,
		"REQUEST_NOT_APPROVED",
		"this operation is only allowed while the request is approved",
		"",
	)

	ErrRequestNotReceived = NewBaseError(
		http.StatusBadRequest,
		"REQUEST_NOT_RECEIVED",
		"credit can only be assigned after the item has been received",
		"",
	)

	ErrCreditNotAssigned = NewBaseError(
		http.StatusBadRequest,
		"CREDIT_NOT_ASSIGNED",
		"credit must be assigned before the exchange can be completed",
		"",
	)

	ErrCreditAlreadyAssigned = NewBaseError(
		http.StatusBadRequest,
		"CREDIT_ALREADY_ASSIGNED",
		"credit has already been assigned to this request",
		"",
	)

	// Not-found errors: entity, warehouse or external customer absent.
	ErrRequestNotFound = NewBaseError(
		http.StatusNotFound,
		"REQUEST_NOT_FOUND",
		"exchange request not found",
		"",
	)

	ErrWarehouseNotFound = NewBaseError(
		http.StatusNotFound,
		"WAREHOUSE_NOT_FOUND",
		"warehouse not found",
		"",
	)

	ErrLedgerCustomerNotFound = NewBaseError(
		http.StatusNotFound,
		"LEDGER_CUSTOMER_NOT_FOUND",
		"no ledger customer matches the request owner",
		"",
	)

	// Authorization errors.
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)

	ErrAdminRequired = NewBaseError(
		http.StatusForbidden,
		"ADMIN_REQUIRED",
		"this operation requires an admin",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"authentication required",
		"",
	)

	// External service errors.
	ErrLedgerUnavailable = NewBaseError(
		http.StatusBadGateway,
		"LEDGER_UNAVAILABLE",
		"loyalty ledger is temporarily unavailable",
		"",
	)

	// General errors.
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"resource conflict",
		"",
	)
)
