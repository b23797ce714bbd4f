package metadata

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// MetadataSink captures structured crawl events.
// It must not:
// - perform I/O decisions
// - affect control flow
// Events are recorded synchronously in the order the single crawl worker
// emits them. Ordering is provided for debuggability, not causality.
type MetadataSink interface {
	RecordFetch(
		fetchURL string,
		mimeType string,
		duration time.Duration,
		retryCount int,
	)
	RecordArtifact(kind ArtifactKind, path string, attrs []Attribute)
	RecordError(
		observedAt time.Time,
		packageName string,
		action string,
		cause ErrorCause,
		details string,
		attrs []Attribute,
	)
}

// CrawlFinalizer records the terminal, derived summary of a completed
// crawl. It is invoked exactly once, after crawl termination, and must
// not influence scheduling or termination.
type CrawlFinalizer interface {
	RecordFinalCrawlStats(
		totalPages int,
		totalErrors int,
		totalArtifacts int,
		crawlDuration time.Duration,
	)
}

// Recorder is the slog-backed MetadataSink and CrawlFinalizer. Every line
// carries the crawl run ID so interleaved runs stay distinguishable in
// shared log streams.
type Recorder struct {
	runID  string
	logger *slog.Logger
}

func NewRecorder(logger *slog.Logger) Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	return Recorder{
		runID:  uuid.NewString(),
		logger: logger,
	}
}

func (r *Recorder) RecordFetch(
	fetchURL string,
	mimeType string,
	duration time.Duration,
	retryCount int,
) {
	r.logger.Info("page fetched",
		"run_id", r.runID,
		"url", fetchURL,
		"mime_type", mimeType,
		"duration_ms", duration.Milliseconds(),
		"retries", retryCount,
	)
}

func (r *Recorder) RecordArtifact(kind ArtifactKind, path string, attrs []Attribute) {
	args := []any{
		"run_id", r.runID,
		"kind", string(kind),
		"path", path,
	}
	args = appendAttrs(args, attrs)
	r.logger.Info("artifact written", args...)
}

func (r *Recorder) RecordError(
	observedAt time.Time,
	packageName string,
	action string,
	cause ErrorCause,
	details string,
	attrs []Attribute,
) {
	args := []any{
		"run_id", r.runID,
		"observed_at", observedAt.Format(time.RFC3339),
		"package", packageName,
		"action", action,
		"cause", cause.String(),
		"details", details,
	}
	args = appendAttrs(args, attrs)
	r.logger.Error("crawl error", args...)
}

func (r *Recorder) RecordFinalCrawlStats(
	totalPages int,
	totalErrors int,
	totalArtifacts int,
	crawlDuration time.Duration,
) {
	r.logger.Info("crawl finished",
		"run_id", r.runID,
		"total_pages", totalPages,
		"total_errors", totalErrors,
		"total_artifacts", totalArtifacts,
		"duration_ms", crawlDuration.Milliseconds(),
	)
}

func appendAttrs(args []any, attrs []Attribute) []any {
	for _, attr := range attrs {
		args = append(args, string(attr.Key), attr.Value)
	}
	return args
}
