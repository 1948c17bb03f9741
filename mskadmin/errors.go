package mskadmin

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

// APIError wraps MSK control-plane errors.
type APIError struct {
	Request string
	Message string
}

// Error implements the error interface for APIError.
func (e *APIError) Error() string {
	return fmt.Sprintf("API error [%s]: %s", e.Request, e.Message)
}

// apiErrorMessage unpacks smithy operation errors into the service,
// operation and cause.
func apiErrorMessage(err error) string {
	var oe *smithy.OperationError
	if errors.As(err, &oe) {
		return fmt.Sprintf("%s %s: %v", oe.Service(), oe.Operation(), oe.Unwrap())
	}
	return err.Error()
}
