package scheduler_test

import (
	"context"
	"time"

	"github.com/rohmanhakim/session-archiver/internal/fetcher"
	"github.com/rohmanhakim/session-archiver/internal/metadata"
	"github.com/rohmanhakim/session-archiver/internal/storage"
	"github.com/rohmanhakim/session-archiver/pkg/failure"
	"github.com/rohmanhakim/session-archiver/pkg/hashutil"
)

type classifiedErr struct {
	message  string
	severity failure.Severity
}

func (e *classifiedErr) Error() string {
	return e.message
}

func (e *classifiedErr) Severity() failure.Severity {
	return e.severity
}

func recoverableErr(message string) *classifiedErr {
	return &classifiedErr{message: message, severity: failure.SeverityRecoverable}
}

func fatalErr(message string) *classifiedErr {
	return &classifiedErr{message: message, severity: failure.SeverityFatal}
}

// fetcherFake serves pages from an in-memory site map and records the
// order and instant URLs were fetched at.
type fetcherFake struct {
	pages     map[string]string
	failures  map[string]failure.ClassifiedError
	fetched   []string
	fetchedAt []time.Time
}

func (f *fetcherFake) Fetch(
	_ context.Context,
	param fetcher.FetchParam,
) (fetcher.FetchResult, failure.ClassifiedError) {
	f.fetched = append(f.fetched, param.FetchURL())
	f.fetchedAt = append(f.fetchedAt, time.Now())

	if err, failing := f.failures[param.FetchURL()]; failing {
		return fetcher.FetchResult{}, err
	}

	content, known := f.pages[param.FetchURL()]
	if !known {
		return fetcher.FetchResult{}, recoverableErr("no such page: " + param.FetchURL())
	}

	return fetcher.NewFetchResultForTest(
		param.FetchURL(),
		[]byte(content),
		"text/html",
		"UTF-8",
	), nil
}

// sinkFake records every persisted page without touching the
// filesystem. Representations listed in failRepresentations report a
// failed outcome instead of a written path.
type sinkFake struct {
	written             []storage.PageRecord
	failRepresentations map[storage.Representation]bool
}

func (s *sinkFake) Write(
	_ string,
	record storage.PageRecord,
	_ hashutil.HashAlgo,
) []storage.WriteOutcome {
	s.written = append(s.written, record)

	outcomes := make([]storage.WriteOutcome, 0, 2)
	for _, representation := range []storage.Representation{
		storage.RepresentationWebArchive,
		storage.RepresentationHTMLDocument,
	} {
		if s.failRepresentations[representation] {
			outcomes = append(outcomes, storage.NewWriteOutcome(
				representation,
				"",
				recoverableErr("write failed"),
			))
			continue
		}
		outcomes = append(outcomes, storage.NewWriteOutcome(representation, "fake-path", nil))
	}
	return outcomes
}

type metadataSinkStub struct{}

func (metadataSinkStub) RecordFetch(string, string, time.Duration, int) {}

func (metadataSinkStub) RecordArtifact(metadata.ArtifactKind, string, []metadata.Attribute) {}

func (metadataSinkStub) RecordError(
	time.Time, string, string, metadata.ErrorCause, string, []metadata.Attribute,
) {
}

type finalizerSpy struct {
	recorded       bool
	totalPages     int
	totalErrors    int
	totalArtifacts int
}

func (f *finalizerSpy) RecordFinalCrawlStats(
	totalPages int,
	totalErrors int,
	totalArtifacts int,
	_ time.Duration,
) {
	f.recorded = true
	f.totalPages = totalPages
	f.totalErrors = totalErrors
	f.totalArtifacts = totalArtifacts
}
