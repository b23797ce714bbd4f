package frontier

/*
Frontier Responsibilities
- Maintain BFS ordering over pending URLs
- Track the visited set used for deduplication
- Knows nothing about:
	- normalization
	- fetching
	- extraction
	- storage

It is a data structure, not a policy module: the pending queue holds raw
URL strings exactly as discovered (duplicates and not-yet-normalized
entries included), while the visited set holds only normalized entries.
The scheduler alone decides what enters either container.
*/
type Frontier struct {
	pending *FIFOQueue[string]
	visited Set[string]
}

func NewFrontier() Frontier {
	return Frontier{
		pending: NewFIFOQueue[string](),
		visited: NewSet[string](),
	}
}

// Enqueue appends a discovered URL to the back of the pending queue.
// Duplicates are accepted; they are filtered against the visited set
// on their eventual dequeue.
func (f *Frontier) Enqueue(rawURL string) {
	f.pending.Enqueue(rawURL)
}

// Dequeue pops the front pending entry, preserving breadth-first order.
func (f *Frontier) Dequeue() (string, bool) {
	return f.pending.Dequeue()
}

// MarkVisited records a normalized URL as processed. The visited set
// grows monotonically for the lifetime of the run.
func (f *Frontier) MarkVisited(normalizedURL string) {
	f.visited.Add(normalizedURL)
}

// Visited reports whether a normalized URL has already been processed.
func (f *Frontier) Visited(normalizedURL string) bool {
	return f.visited.Contains(normalizedURL)
}

func (f *Frontier) VisitedCount() int {
	return f.visited.Size()
}

func (f *Frontier) PendingCount() int {
	return f.pending.Size()
}
