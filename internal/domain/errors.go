package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a business logic error
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeInvalidTransition = "INVALID_TRANSITION"
	ErrCodeInvalidArgument   = "INVALID_ARGUMENT"
	ErrCodePaymentNotFound   = "PAYMENT_NOT_FOUND"
)

func NewInvalidTransitionError(from, to PaymentStatus) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidTransition,
		Message: fmt.Sprintf("cannot transition from %s to %s", from, to),
	}
}

// NewInvalidArgumentError marks a contract violation inside mapping,
// such as a nil input. It is a defect, not a recoverable condition.
func NewInvalidArgumentError(argument string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidArgument,
		Message: fmt.Sprintf("%s must not be nil", argument),
	}
}

func NewPaymentNotFoundError(id string) *DomainError {
	return &DomainError{
		Code:    ErrCodePaymentNotFound,
		Message: fmt.Sprintf("payment with ID %s not found", id),
	}
}

// IsErrorCode checks if an error is a DomainError with a specific code
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}
