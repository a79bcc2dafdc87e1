package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/wallet-api/internal/domain"
)

// Common service errors - sentinel errors used across service implementations.
// Callers check them with errors.Is; the API layer maps them to HTTP status codes.
var (
	// ErrMissingDependency is returned by constructors given a nil collaborator.
	ErrMissingDependency = fmt.Errorf("%w: missing service dependency", domain.ErrMisconfigured)

	// ErrUnknownUser indicates the authenticated user no longer exists.
	// API layer should map this to HTTP 401 Unauthorized.
	ErrUnknownUser = errors.New("authenticated user does not exist")
)

// ServiceError wraps an unexpected failure with the operation that hit it.
type ServiceError struct {
	Service   string
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s service %s failed: %s: %v", e.Service, e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s service %s failed: %s", e.Service, e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

func newAccountError(operation, message string, err error) *ServiceError {
	return &ServiceError{Service: "account", Operation: operation, Message: message, Err: err}
}

func newWalletError(operation, message string, err error) *ServiceError {
	return &ServiceError{Service: "wallet", Operation: operation, Message: message, Err: err}
}

func missing(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingDependency, name)
}
