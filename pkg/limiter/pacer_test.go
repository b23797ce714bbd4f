package limiter_test

import (
	"testing"
	"time"

	"github.com/rohmanhakim/session-archiver/pkg/limiter"
)

func TestFixedPacer_FirstVisitPaysNoDelay(t *testing.T) {
	pacer := limiter.NewFixedPacer(time.Second)

	if delay := pacer.ResolveDelay(time.Now()); delay != 0 {
		t.Errorf("expected zero delay before any visit, got: %v", delay)
	}
}

func TestFixedPacer_FullDelayRightAfterVisit(t *testing.T) {
	pacer := limiter.NewFixedPacer(time.Second)

	now := time.Now()
	pacer.MarkVisit(now)

	if delay := pacer.ResolveDelay(now); delay != time.Second {
		t.Errorf("expected full delay immediately after a visit, got: %v", delay)
	}
}

func TestFixedPacer_ProcessingTimeCountsAgainstDelay(t *testing.T) {
	pacer := limiter.NewFixedPacer(time.Second)

	now := time.Now()
	pacer.MarkVisit(now)

	if delay := pacer.ResolveDelay(now.Add(400 * time.Millisecond)); delay != 600*time.Millisecond {
		t.Errorf("expected remaining 600ms, got: %v", delay)
	}
}

func TestFixedPacer_NoDelayOnceElapsed(t *testing.T) {
	pacer := limiter.NewFixedPacer(time.Second)

	now := time.Now()
	pacer.MarkVisit(now)

	if delay := pacer.ResolveDelay(now.Add(2 * time.Second)); delay != 0 {
		t.Errorf("expected no delay after the interval elapsed, got: %v", delay)
	}
}

func TestFixedPacer_PauseDoesNotAdvanceTheVisit(t *testing.T) {
	pacer := limiter.NewFixedPacer(30 * time.Millisecond)

	pacer.MarkVisit(time.Now())
	pacer.Pause()

	// The visit instant stays where MarkVisit put it, so the pause it
	// slept through is not owed a second time.
	if delay := pacer.ResolveDelay(time.Now()); delay != 0 {
		t.Errorf("expected no remaining delay after a full pause, got: %v", delay)
	}
}

func TestFixedPacer_ZeroDelayNeverPauses(t *testing.T) {
	pacer := limiter.NewFixedPacer(0)

	pacer.MarkVisit(time.Now())
	if delay := pacer.ResolveDelay(time.Now()); delay != 0 {
		t.Errorf("zero-delay pacer must never pause, got: %v", delay)
	}
}
