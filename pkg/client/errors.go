package client

import (
	"errors"
	"fmt"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/smithy-go"

	"textractkit/pkg/textract"
)

// ErrJobFailed matches every *JobFailedError.
var ErrJobFailed = errors.New("textract job failed")

// JobFailedError reports an asynchronous job that finished with FAILED.
type JobFailedError struct {
	Operation string
	JobID     string
	Message   string
}

func (e *JobFailedError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("textract %s: job %s failed", e.Operation, e.JobID)
	}
	return fmt.Sprintf("textract %s: job %s failed: %s", e.Operation, e.JobID, e.Message)
}

// Is reports whether target is ErrJobFailed.
func (e *JobFailedError) Is(target error) bool {
	return target == ErrJobFailed
}

// ServiceError is returned when Textract rejects a call. Unwrap yields the
// typed error from pkg/textract first and then the SDK error it was built
// from, so errors.As reaches both the typed error and *smithy.OperationError.
type ServiceError struct {
	Operation string
	Err       error
	Cause     error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("textract %s: %v", e.Operation, e.Err)
}

func (e *ServiceError) Unwrap() []error { return []error{e.Err, e.Cause} }

// RequestID returns the service request ID carried by err, or "" when the
// error never reached the service.
func RequestID(err error) string {
	var re *awshttp.ResponseError
	if errors.As(err, &re) {
		return re.ServiceRequestID()
	}
	return ""
}

// translateError maps SDK errors onto the typed service errors and adds the
// operation name.
func translateError(operation string, err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return &ServiceError{
			Operation: operation,
			Err:       textract.NewAPIError(apiErr.ErrorCode(), apiErr.ErrorMessage()),
			Cause:     err,
		}
	}
	return fmt.Errorf("textract %s: %w", operation, err)
}
