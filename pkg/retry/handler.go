package retry

import (
	"fmt"
	"time"

	"github.com/rohmanhakim/session-archiver/pkg/failure"
)

// Retry executes the provided function with retry logic.
// It will invoke the function up to MaxAttempts times, sleeping the fixed
// Wait duration between attempts. Only retryable errors trigger a retry.
//
// Type parameter T represents the return type of the function being retried.
func Retry[T any](retryParam RetryParam, fn func() (T, failure.ClassifiedError)) (T, failure.ClassifiedError) {
	var lastErr failure.ClassifiedError
	var zero T

	if retryParam.MaxAttempts < 1 {
		return zero, &RetryError{
			Message:   "max attempts cannot be 0",
			Cause:     ErrCauseZeroAttempt,
			Retryable: false,
		}
	}

	for attempt := 1; attempt <= retryParam.MaxAttempts; attempt++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}

		lastErr = err

		// Non-retryable failures surface immediately.
		if !isErrorRetryable(err) {
			return zero, err
		}

		if attempt == retryParam.MaxAttempts {
			break
		}

		if retryParam.Wait > 0 {
			time.Sleep(retryParam.Wait)
		}
	}

	return zero, &RetryError{
		Message:   fmt.Sprintf("exhausted %d attempts. Last error: %v", retryParam.MaxAttempts, lastErr),
		Cause:     ErrCauseExhaustedAttempts,
		Retryable: true, // recoverable at scheduler level
	}
}

// isErrorRetryable checks whether an error should be retried.
// Errors that do not declare retryability default to retryable.
func isErrorRetryable(err failure.ClassifiedError) bool {
	type hasRetryable interface {
		IsRetryable() bool
	}
	if r, ok := err.(hasRetryable); ok {
		return r.IsRetryable()
	}
	return true
}
