package model

import "fmt"

// Standard error codes for API responses
const (
	ErrCodeValidation        = "VALIDATION_ERROR"
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeInsufficientStock = "INSUFFICIENT_STOCK"
	ErrCodeInternalError     = "INTERNAL_ERROR"
)

// DomainError is a typed business-rule failure with a stable code the
// handler layer maps to an HTTP status.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a domain error for malformed or missing input.
func NewValidationError(message string) *DomainError {
	return NewDomainError(ErrCodeValidation, message)
}

// NewNotFoundError creates a domain error for an absent entity.
func NewNotFoundError(entity string) *DomainError {
	return NewDomainError(ErrCodeNotFound, fmt.Sprintf("%s not found", entity))
}

// InsufficientStockError reports an order that asks for more units than the
// product currently has; Available carries the stock level at the time of
// the check.
type InsufficientStockError struct {
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Insufficient stock. Only %d items are available.", e.Available)
}

// Common domain errors
var (
	ErrInvalidProductID = NewValidationError("Invalid product ID format")
	ErrProductNotFound  = NewNotFoundError("Product")
)
