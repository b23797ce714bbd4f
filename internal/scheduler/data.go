package scheduler

// Crawl control plane

// CrawlTarget fixes what a run crawls and where it archives. It is
// created once from run configuration and never mutated.
type CrawlTarget struct {
	// Normalized base URL; the scope prefix every visited URL must carry.
	baseURL string
	// Root directory archive representations are written under.
	outputRoot string
}

func NewCrawlTarget(baseURL string, outputRoot string) CrawlTarget {
	return CrawlTarget{
		baseURL:    baseURL,
		outputRoot: outputRoot,
	}
}

func (t CrawlTarget) BaseURL() string {
	return t.baseURL
}

func (t CrawlTarget) OutputRoot() string {
	return t.outputRoot
}

// CrawlingExecution is the aggregate outcome of a completed run.
type CrawlingExecution struct {
	PagesArchived    int
	ArtifactsWritten int
	FetchFailures    int
	WriteFailures    int
	LinksDiscovered  int
}
