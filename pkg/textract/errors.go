package textract

import (
	"errors"

	"github.com/aws/smithy-go"
)

// NewAPIError returns the typed error declared for code. Unknown codes
// produce a *smithy.GenericAPIError carrying the same code and message.
func NewAPIError(code, message string) error {
	var msg *string
	if message != "" {
		msg = &message
	}
	if err := newServiceError(code, msg); err != nil {
		return err
	}
	return &smithy.GenericAPIError{Code: code, Message: message, Fault: smithy.FaultUnknown}
}

// IsRetryable reports whether err is a service fault the caller may retry
// after backing off.
func IsRetryable(err error) bool {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.(type) {
	case *ThrottlingException, *ProvisionedThroughputExceededException, *InternalServerError, *LimitExceededException:
		return true
	}
	return false
}
