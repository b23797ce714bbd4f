package fetcher

import (
	"context"

	"github.com/rohmanhakim/session-archiver/pkg/failure"
)

// Fetcher is the capability boundary to the authenticated browser
// session: given a normalized URL it returns the rendered page content,
// or a classified failure after its retry budget is exhausted. Retry is
// entirely the fetcher's concern; the scheduler never re-queues a failed
// URL.
type Fetcher interface {
	Fetch(
		ctx context.Context,
		fetchParam FetchParam,
	) (FetchResult, failure.ClassifiedError)
}
