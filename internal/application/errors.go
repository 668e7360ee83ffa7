package application

import (
	"errors"
	"fmt"
	"net/http"
)

// Violation is a single field-level validation failure.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ServiceError is the orchestration-level error returned by services.
type ServiceError struct {
	Code       string
	Message    string
	HTTPStatus int
	Violations []Violation
	Err        error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeValidationFailed = "VALIDATION_FAILED"
	ErrCodeBankUnavailable  = "BANK_UNAVAILABLE"
	ErrCodeBankProtocol     = "BANK_PROTOCOL"
	ErrCodePaymentNotFound  = "PAYMENT_NOT_FOUND"
	ErrCodeInternal         = "INTERNAL_ERROR"
)

// NewValidationError rejects a request before any external call or
// storage. All collected field violations travel with it.
func NewValidationError(violations []Violation) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeValidationFailed,
		Message:    "payment request failed validation",
		HTTPStatus: http.StatusBadRequest,
		Violations: violations,
	}
}

// NewBankUnavailableError wraps a transport failure (including timeout)
// reaching the acquiring bank. Nothing was persisted.
func NewBankUnavailableError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeBankUnavailable,
		Message:    "acquiring bank is unreachable",
		HTTPStatus: http.StatusBadGateway,
		Err:        err,
	}
}

// NewBankProtocolError wraps a non-success status or malformed body
// from the acquiring bank. Distinct from a decline, which is a
// successful call.
func NewBankProtocolError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeBankProtocol,
		Message:    "acquiring bank returned an unusable response",
		HTTPStatus: http.StatusBadGateway,
		Err:        err,
	}
}

// NewPaymentNotFoundError is an expected negative lookup result, not a
// failure.
func NewPaymentNotFoundError(id string) *ServiceError {
	return &ServiceError{
		Code:       ErrCodePaymentNotFound,
		Message:    fmt.Sprintf("payment %s not found", id),
		HTTPStatus: http.StatusNotFound,
	}
}

func NewInternalError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInternal,
		Message:    "an internal error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func IsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	ok := errors.As(err, &svcErr)
	return svcErr, ok
}
