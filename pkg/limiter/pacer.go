package limiter

import "time"

// FixedPacer enforces a fixed delay between consecutive page visits.
// It bookkeeps the last visit timestamp and resolves how much of the
// configured delay remains, so time spent processing a page counts
// against the pause.
//
// The pacer is owned by a single-threaded crawl loop and takes no locks.
type FixedPacer struct {
	delay       time.Duration
	lastVisitAt time.Time
}

func NewFixedPacer(delay time.Duration) *FixedPacer {
	return &FixedPacer{
		delay: delay,
	}
}

// ResolveDelay returns the remaining pause for the given instant.
// The first visit pays no delay.
func (p *FixedPacer) ResolveDelay(now time.Time) time.Duration {
	if p.lastVisitAt.IsZero() {
		return 0
	}
	elapsed := now.Sub(p.lastVisitAt)
	if elapsed < p.delay {
		return p.delay - elapsed
	}
	return 0
}

// MarkVisit records the given instant as the most recent visit.
func (p *FixedPacer) MarkVisit(now time.Time) {
	p.lastVisitAt = now
}

// Pause blocks for the remaining delay. It does not advance the visit
// timestamp; the crawl loop marks the visit when the fetch happens, so
// consecutive fetches stay at least the configured delay apart.
func (p *FixedPacer) Pause() {
	if remaining := p.ResolveDelay(time.Now()); remaining > 0 {
		time.Sleep(remaining)
	}
}
