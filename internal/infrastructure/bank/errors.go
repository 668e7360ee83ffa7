package bank

import (
	"errors"
	"fmt"
)

// ErrMalformedResponse marks a 2xx reply whose body could not be
// decoded. A protocol failure, never a decline.
var ErrMalformedResponse = errors.New("bank response body is malformed")

// BankError is a non-success HTTP reply from the acquiring bank.
type BankError struct {
	StatusCode int
	Body       string
}

func (e *BankError) Error() string {
	return fmt.Sprintf("bank returned status %d: %s", e.StatusCode, e.Body)
}

func (e *BankError) IsRetryable() bool {
	return e.StatusCode >= 500
}

func IsBankError(err error) (*BankError, bool) {
	var bankErr *BankError
	ok := errors.As(err, &bankErr)
	return bankErr, ok
}
