package fetcher

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
	"golang.org/x/net/html/charset"

	"github.com/rohmanhakim/session-archiver/internal/metadata"
	"github.com/rohmanhakim/session-archiver/pkg/failure"
	"github.com/rohmanhakim/session-archiver/pkg/retry"
)

const fallbackEncodingName = "UTF-8"

// SessionFetcher captures rendered page content through an
// already-authenticated browser reached over the DevTools protocol.
// The crawl never owns the browser: it attaches to a running instance
// (started with --remote-debugging-port) whose profile carries the
// logged-in session, so every navigation is performed with the user's
// cookies and storage.
//
// Each capture runs in its own tab within that browser. The tab's prior
// location is recorded before navigating and restored afterwards; the
// scheduler relies on the session's original state surviving a capture.
type SessionFetcher struct {
	metadataSink      metadata.MetadataSink
	devtoolsURL       string
	navigationTimeout time.Duration
	userAgent         string
	retryParam        retry.RetryParam
}

func NewSessionFetcher(
	metadataSink metadata.MetadataSink,
	devtoolsURL string,
	navigationTimeout time.Duration,
	userAgent string,
	retryParam retry.RetryParam,
) SessionFetcher {
	return SessionFetcher{
		metadataSink:      metadataSink,
		devtoolsURL:       devtoolsURL,
		navigationTimeout: navigationTimeout,
		userAgent:         userAgent,
		retryParam:        retryParam,
	}
}

func (f *SessionFetcher) Fetch(
	ctx context.Context,
	fetchParam FetchParam,
) (FetchResult, failure.ClassifiedError) {
	start := time.Now()
	attempts := 0

	result, err := retry.Retry(f.retryParam, func() (FetchResult, failure.ClassifiedError) {
		attempts++
		return f.capture(ctx, fetchParam)
	})
	if err != nil {
		f.metadataSink.RecordError(
			time.Now(),
			"fetcher",
			"SessionFetcher.Fetch",
			mapFetchErrorToMetadataCause(err),
			err.Error(),
			[]metadata.Attribute{
				metadata.NewAttr(metadata.AttrURL, fetchParam.FetchURL()),
			},
		)
		return FetchResult{}, err
	}

	f.metadataSink.RecordFetch(
		fetchParam.FetchURL(),
		result.MIMEType(),
		time.Since(start),
		attempts-1,
	)
	return result, nil
}

// capture performs a single navigate-and-snapshot attempt.
func (f *SessionFetcher) capture(
	ctx context.Context,
	fetchParam FetchParam,
) (FetchResult, failure.ClassifiedError) {
	allocCtx, allocCancel := chromedp.NewRemoteAllocator(ctx, f.devtoolsURL)
	defer allocCancel()

	tabCtx, tabCancel := chromedp.NewContext(allocCtx)
	defer tabCancel()

	tabCtx, timeoutCancel := context.WithTimeout(tabCtx, f.navigationTimeout)
	defer timeoutCancel()

	// Declared MIME type of the main document, observed on the wire.
	var mimeType string
	chromedp.ListenTarget(tabCtx, func(ev interface{}) {
		if resp, ok := ev.(*network.EventResponseReceived); ok {
			if resp.Type == network.ResourceTypeDocument && mimeType == "" {
				mimeType = resp.Response.MimeType
			}
		}
	})

	actions := []chromedp.Action{network.Enable()}
	if f.userAgent != "" {
		actions = append(actions, emulation.SetUserAgentOverride(f.userAgent))
	}

	var priorLocation string
	var outerHTML string
	actions = append(actions,
		chromedp.Location(&priorLocation),
		chromedp.Navigate(fetchParam.FetchURL()),
		chromedp.OuterHTML("html", &outerHTML, chromedp.ByQuery),
	)

	runErr := chromedp.Run(tabCtx, actions...)

	// Restore the session's prior location regardless of capture outcome.
	if priorLocation != "" && priorLocation != "about:blank" {
		restoreCtx, restoreCancel := context.WithTimeout(tabCtx, f.navigationTimeout)
		_ = chromedp.Run(restoreCtx, chromedp.Navigate(priorLocation))
		restoreCancel()
	}

	if runErr != nil {
		return FetchResult{}, classifyCaptureError(runErr, fetchParam.FetchURL())
	}
	if outerHTML == "" {
		return FetchResult{}, &FetchError{
			Message:   fmt.Sprintf("no document captured for %s", fetchParam.FetchURL()),
			Retryable: true,
			Cause:     ErrCauseEmptyDocument,
		}
	}

	if mimeType == "" {
		mimeType = "text/html"
	}
	_, encodingName, _ := charset.DetermineEncoding([]byte(outerHTML), mimeType)
	if encodingName == "" {
		encodingName = fallbackEncodingName
	}

	return FetchResult{
		url:          fetchParam.FetchURL(),
		body:         []byte(outerHTML),
		mimeType:     mimeType,
		textEncoding: encodingName,
	}, nil
}

func classifyCaptureError(err error, fetchURL string) *FetchError {
	cause := ErrCauseNavigationFailed
	if errors.Is(err, context.DeadlineExceeded) {
		cause = ErrCauseTimeout
	}
	return &FetchError{
		Message:   fmt.Sprintf("capture of %s failed: %v", fetchURL, err),
		Retryable: true,
		Cause:     cause,
	}
}
