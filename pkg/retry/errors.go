package retry

import (
	"fmt"

	"github.com/rohmanhakim/session-archiver/pkg/failure"
)

type RetryErrorCause string

const (
	ErrCauseZeroAttempt       RetryErrorCause = "zero attempt budget"
	ErrCauseExhaustedAttempts RetryErrorCause = "exhausted attempts"
)

type RetryError struct {
	Message   string
	Retryable bool
	Cause     RetryErrorCause
}

func (e *RetryError) Error() string {
	return fmt.Sprintf("retry error: %s: %s", e.Cause, e.Message)
}

func (e *RetryError) Severity() failure.Severity {
	if e.Retryable {
		return failure.SeverityRecoverable
	}
	return failure.SeverityFatal
}

// IsRetryable returns whether this error is retryable.
func (e *RetryError) IsRetryable() bool {
	return e.Retryable
}
