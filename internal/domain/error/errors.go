package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeValidation          = 4001
	CodeInvalidAmount       = 4002
	CodeInvalidID           = 4003
	CodeDuplicateResource   = 4004
	CodeConstraintViolation = 4005
	CodeInvalidEnum         = 4006
	CodeOrderFinalized      = 4007
	CodeNotFound            = 4040

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeDatabaseConnection = 5001
	CodeDatabaseBusy       = 5002
)

// Base error types
var (
	// ErrValidation is the root of every input validation failure
	ErrValidation = errors.New("validation failed")

	// ErrInvalidAmount is returned when an amount or price is malformed or out of range
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidID is returned when an identifier is not a positive integer
	ErrInvalidID = errors.New("id must be a positive integer")

	// ErrInvalidOrderType is returned when an order type is not BUY or SELL
	ErrInvalidOrderType = errors.New("type must be either BUY or SELL")

	// ErrInvalidOrderStatus is returned when an order status is not a known value
	ErrInvalidOrderStatus = errors.New("status must be PENDING, COMPLETED, or CANCELLED")

	// ErrInvalidTxType is returned when a transaction type is not a known value
	ErrInvalidTxType = errors.New("tx_type must be TRANSFER, TRADE, DEPOSIT, or WITHDRAWAL")

	// ErrInvalidCurrency is returned when a fiat currency is not supported
	ErrInvalidCurrency = errors.New("currency must be THB or USD")

	// ErrOrderFinalized is returned when a status change is requested on a completed or cancelled order
	ErrOrderFinalized = errors.New("order is already in a terminal state")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrCryptocurrencyNotFound is returned when the requested cryptocurrency doesn't exist
	ErrCryptocurrencyNotFound = errors.New("cryptocurrency not found")

	// ErrWalletNotFound is returned when the requested wallet doesn't exist
	ErrWalletNotFound = errors.New("wallet not found")

	// ErrFiatBalanceNotFound is returned when the requested fiat balance doesn't exist
	ErrFiatBalanceNotFound = errors.New("fiat balance not found")

	// ErrOrderNotFound is returned when the requested order doesn't exist
	ErrOrderNotFound = errors.New("order not found")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrDuplicateUser is returned when the username or email is already taken
	ErrDuplicateUser = errors.New("username or email already exists")

	// ErrDuplicateCryptocurrency is returned when the symbol is already listed
	ErrDuplicateCryptocurrency = errors.New("cryptocurrency symbol already exists")

	// ErrDuplicateWallet is returned when the user already holds a wallet for the crypto
	ErrDuplicateWallet = errors.New("wallet for this user and cryptocurrency already exists")

	// ErrDuplicateFiatBalance is returned when the user already holds a balance in the currency
	ErrDuplicateFiatBalance = errors.New("fiat balance for this user and currency already exists")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrDatabaseBusy is returned when a statement lost a lock or serialization conflict
	ErrDatabaseBusy = errors.New("database busy")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrOrderFinalized):
		return CodeOrderFinalized
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidID):
		return CodeInvalidID
	case errors.Is(err, ErrInvalidOrderType),
		errors.Is(err, ErrInvalidOrderStatus),
		errors.Is(err, ErrInvalidTxType),
		errors.Is(err, ErrInvalidCurrency):
		return CodeInvalidEnum
	case errors.Is(err, ErrValidation), errors.Is(err, ErrInvalidRequest):
		return CodeValidation
	case IsUniquenessError(err):
		return CodeDuplicateResource
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case IsNotFoundError(err):
		return CodeNotFound
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseConnection
	case errors.Is(err, ErrDatabaseBusy):
		return CodeDatabaseBusy
	default:
		return CodeInternalServer
	}
}

// ValidationError names the input field that failed validation
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

// Error implements the error interface for ValidationError
func (e *ValidationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Is reports ErrValidation for every ValidationError
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Unwrap returns the underlying error
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *ValidationError) LogFields() map[string]any {
	fields := map[string]any{
		"error_type": "validation_error",
		"field":      e.Field,
		"reason":     e.Reason,
		"error_code": ErrorCode(e),
	}
	if e.Err != nil {
		fields["error"] = e.Err.Error()
	}
	return fields
}

// NewValidationError creates a validation error for a field with a human readable reason
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// WrapValidationError creates a validation error for a field that wraps a sentinel
func WrapValidationError(field string, err error) error {
	return &ValidationError{Field: field, Err: err}
}

// StatusTransitionError describes a rejected order status change
type StatusTransitionError struct {
	OrderID uint64
	From    string
	To      string
}

// Error implements the error interface
func (e *StatusTransitionError) Error() string {
	return fmt.Sprintf("order %d cannot move from %s to %s: %v", e.OrderID, e.From, e.To, ErrOrderFinalized)
}

// Is matches both ErrOrderFinalized and ErrValidation
func (e *StatusTransitionError) Is(target error) bool {
	return target == ErrOrderFinalized || target == ErrValidation
}

// LogFields returns a map of fields for structured logging
func (e *StatusTransitionError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "status_transition",
		"order_id":   e.OrderID,
		"from":       e.From,
		"to":         e.To,
		"error_code": CodeOrderFinalized,
	}
}

// NewStatusTransitionError creates a new status transition error
func NewStatusTransitionError(orderID uint64, from, to string) error {
	return &StatusTransitionError{OrderID: orderID, From: from, To: to}
}

// IsValidationError checks if the error came from input validation
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrInvalidRequest) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidID) ||
		errors.Is(err, ErrInvalidOrderType) ||
		errors.Is(err, ErrInvalidOrderStatus) ||
		errors.Is(err, ErrInvalidTxType) ||
		errors.Is(err, ErrInvalidCurrency)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrCryptocurrencyNotFound) ||
		errors.Is(err, ErrWalletNotFound) ||
		errors.Is(err, ErrFiatBalanceNotFound) ||
		errors.Is(err, ErrOrderNotFound) ||
		errors.Is(err, ErrTransactionNotFound)
}

// IsUniquenessError checks if the error is a uniqueness violation
func IsUniquenessError(err error) bool {
	return errors.Is(err, ErrDuplicateUser) ||
		errors.Is(err, ErrDuplicateCryptocurrency) ||
		errors.Is(err, ErrDuplicateWallet) ||
		errors.Is(err, ErrDuplicateFiatBalance)
}

// IsUserNotFoundError checks if the error is a user not found error
func IsUserNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}
