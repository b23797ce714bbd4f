package scheduler

import (
	"context"
	"time"

	"github.com/rohmanhakim/session-archiver/internal/config"
	"github.com/rohmanhakim/session-archiver/internal/extractor"
	"github.com/rohmanhakim/session-archiver/internal/fetcher"
	"github.com/rohmanhakim/session-archiver/internal/frontier"
	"github.com/rohmanhakim/session-archiver/internal/metadata"
	"github.com/rohmanhakim/session-archiver/internal/storage"
	"github.com/rohmanhakim/session-archiver/pkg/failure"
	"github.com/rohmanhakim/session-archiver/pkg/hashutil"
	"github.com/rohmanhakim/session-archiver/pkg/limiter"
	"github.com/rohmanhakim/session-archiver/pkg/retry"
	"github.com/rohmanhakim/session-archiver/pkg/urlutil"
)

/*
 Scheduler is the sole control-plane authority of the crawl.

 - Scheduler is the ONLY component allowed to decide whether a URL
   enters the frontier or the visited set.
 - All admission checks (visited-set dedup, same-origin scope) happen
   on dequeue, against the normalized form.
 - Pipeline stages may detect and classify failure, but must never
   decide retry, continuation, or abortion. Fetch retry lives inside
   the fetcher; the scheduler never re-queues a failed URL.
 - Metadata emission is observational only and MUST NOT influence
   scheduling or crawl termination.

 The loop is single-threaded and synchronous: exactly one URL is in
 flight at a time, and the frontier and visited set are owned
 exclusively by this struct, so no locking exists anywhere in it.
*/
type Scheduler struct {
	target         CrawlTarget
	hashAlgo       hashutil.HashAlgo
	userAgent      string
	metadataSink   metadata.MetadataSink
	crawlFinalizer metadata.CrawlFinalizer
	contentFetcher fetcher.Fetcher
	linkExtractor  extractor.LinkExtractor
	storageSink    storage.Sink
	pacer          *limiter.FixedPacer
	frontier       *frontier.Frontier
}

// NewScheduler wires the production pipeline from configuration: the
// slog-backed recorder, the DevTools session fetcher, the configured
// link extractor and the local archive sink.
func NewScheduler(cfg config.Config) Scheduler {
	recorder := metadata.NewRecorder(nil)

	retryParam := retry.NewRetryParam(cfg.FetchAttempts(), cfg.RetryWait())
	sessionFetcher := fetcher.NewSessionFetcher(
		&recorder,
		cfg.DevtoolsURL(),
		cfg.NavigationTimeout(),
		cfg.UserAgent(),
		retryParam,
	)

	var linkExtractor extractor.LinkExtractor = extractor.NewBodyLinkExtractor()
	if cfg.DomLinks() {
		linkExtractor = extractor.NewDomLinkExtractor(&recorder)
	}

	localSink := storage.NewLocalSink(&recorder)
	baseURL := cfg.BaseURL()

	return Scheduler{
		target:         NewCrawlTarget(urlutil.Normalize(baseURL.String()), cfg.OutputDir()),
		hashAlgo:       cfg.HashAlgo(),
		userAgent:      cfg.UserAgent(),
		metadataSink:   &recorder,
		crawlFinalizer: &recorder,
		contentFetcher: &sessionFetcher,
		linkExtractor:  linkExtractor,
		storageSink:    &localSink,
		pacer:          limiter.NewFixedPacer(cfg.CrawlDelay()),
		frontier:       newFrontierPtr(),
	}
}

// NewSchedulerWithDeps creates a Scheduler with injected dependencies for
// testing. It allows tests to substitute a fake fetcher, extractor and
// sink to exercise the crawl loop deterministically without a live
// browser or filesystem.
func NewSchedulerWithDeps(
	target CrawlTarget,
	crawlDelay time.Duration,
	hashAlgo hashutil.HashAlgo,
	metadataSink metadata.MetadataSink,
	crawlFinalizer metadata.CrawlFinalizer,
	contentFetcher fetcher.Fetcher,
	linkExtractor extractor.LinkExtractor,
	storageSink storage.Sink,
) Scheduler {
	return Scheduler{
		target:         target,
		hashAlgo:       hashAlgo,
		metadataSink:   metadataSink,
		crawlFinalizer: crawlFinalizer,
		contentFetcher: contentFetcher,
		linkExtractor:  linkExtractor,
		storageSink:    storageSink,
		pacer:          limiter.NewFixedPacer(crawlDelay),
		frontier:       newFrontierPtr(),
	}
}

func newFrontierPtr() *frontier.Frontier {
	f := frontier.NewFrontier()
	return &f
}

// Run crawls to completion: it seeds the frontier with the target's base
// URL and processes entries breadth-first until the frontier is empty.
//
// Per iteration:
//  1. Pop the front frontier entry.
//  2. Normalize; discard without delay if already visited or out of scope.
//  3. Mark visited BEFORE fetching — at-most-once processing per URL
//     holds even when the fetch fails.
//  4. Fetch via the session fetcher (its own retry budget applies).
//     Failure is recoverable: skip persist/extract, pay the delay, go on.
//  5. Persist both archive representations; outcomes are independent.
//  6. Extract links, drop the ones already visited, append the rest to
//     the back of the frontier. Pending duplicates are fine; step 2
//     filters them on dequeue.
//  7. Pause for the fixed crawl delay.
func (s *Scheduler) Run(ctx context.Context) (CrawlingExecution, failure.ClassifiedError) {
	crawlStartTime := time.Now()
	execution := CrawlingExecution{}

	// Final stats are recorded even if a fatal error aborts the loop.
	defer func() {
		s.crawlFinalizer.RecordFinalCrawlStats(
			s.frontier.VisitedCount(),
			execution.FetchFailures+execution.WriteFailures,
			execution.ArtifactsWritten,
			time.Since(crawlStartTime),
		)
	}()

	s.frontier.Enqueue(s.target.BaseURL())

	for {
		rawURL, ok := s.frontier.Dequeue()
		if !ok {
			break
		}

		normalized := urlutil.Normalize(rawURL)
		if s.frontier.Visited(normalized) || !urlutil.SameOrigin(normalized, s.target.BaseURL()) {
			// Discarded entries pay no delay.
			continue
		}

		s.frontier.MarkVisited(normalized)
		s.pacer.MarkVisit(time.Now())

		fetchResult, err := s.contentFetcher.Fetch(ctx, fetcher.NewFetchParam(normalized, s.userAgent))
		if err != nil {
			if err.Severity() == failure.SeverityFatal {
				return execution, err
			}
			// recoverable → already logged by the fetcher → count and move on
			execution.FetchFailures++
			s.pacer.Pause()
			continue
		}

		record := storage.NewPageRecord(
			normalized,
			fetchResult.Body(),
			fetchResult.MIMEType(),
			fetchResult.TextEncoding(),
		)
		archived := false
		for _, outcome := range s.storageSink.Write(s.target.OutputRoot(), record, s.hashAlgo) {
			if outcome.Err() != nil {
				execution.WriteFailures++
				continue
			}
			archived = true
			execution.ArtifactsWritten++
		}
		if archived {
			execution.PagesArchived++
		}

		links := s.linkExtractor.ExtractLinks(string(fetchResult.Body()), s.target.BaseURL(), normalized)
		for _, link := range links {
			if s.frontier.Visited(urlutil.Normalize(link)) {
				continue
			}
			s.frontier.Enqueue(link)
			execution.LinksDiscovered++
		}

		s.pacer.Pause()
	}

	return execution, nil
}
