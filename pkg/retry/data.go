package retry

import "time"

// RetryParam holds the parameters for retry logic.
// The fetch boundary specifies a fixed retry count with a fixed
// inter-attempt wait, so there are no backoff knobs here.
type RetryParam struct {
	MaxAttempts int
	Wait        time.Duration
}

// NewRetryParam creates a new RetryParam with the given settings.
func NewRetryParam(maxAttempts int, wait time.Duration) RetryParam {
	return RetryParam{
		MaxAttempts: maxAttempts,
		Wait:        wait,
	}
}
