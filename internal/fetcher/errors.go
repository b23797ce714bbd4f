package fetcher

import (
	"fmt"

	"github.com/rohmanhakim/session-archiver/internal/metadata"
	"github.com/rohmanhakim/session-archiver/pkg/failure"
)

type FetchErrorCause string

const (
	ErrCauseNavigationFailed   FetchErrorCause = "navigation failed"
	ErrCauseTimeout            FetchErrorCause = "timeout"
	ErrCauseEmptyDocument      FetchErrorCause = "empty document"
	ErrCauseSessionUnavailable FetchErrorCause = "browser session unavailable"
)

type FetchError struct {
	Message   string
	Retryable bool
	Cause     FetchErrorCause
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetcher error: %s", e.Cause)
}

func (e *FetchError) Severity() failure.Severity {
	if e.Retryable {
		return failure.SeverityRecoverable
	}
	return failure.SeverityFatal
}

// IsRetryable returns whether this error is retryable.
func (e *FetchError) IsRetryable() bool {
	return e.Retryable
}

// mapFetchErrorToMetadataCause maps fetcher-local error semantics
// to the canonical metadata.ErrorCause table.
//
// This mapping is observational only and MUST NOT be used
// to derive control-flow decisions.
func mapFetchErrorToMetadataCause(err failure.ClassifiedError) metadata.ErrorCause {
	fetchErr, ok := err.(*FetchError)
	if !ok {
		return metadata.CauseNetworkFailure
	}
	switch fetchErr.Cause {
	case ErrCauseTimeout, ErrCauseNavigationFailed, ErrCauseSessionUnavailable:
		return metadata.CauseNetworkFailure
	case ErrCauseEmptyDocument:
		return metadata.CauseContentInvalid
	default:
		return metadata.CauseUnknown
	}
}
