package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/rohmanhakim/session-archiver/pkg/hashutil"
)

type Config struct {
	//===============
	//  Crawl scope
	//===============
	// Base origin the crawl is rooted at. Only URLs whose normalized form
	// is prefixed by the normalized base URL are visited.
	baseURL url.URL

	//===============
	// Politeness
	//===============
	// Fixed waiting time enforced between two consecutive page visits.
	crawlDelay time.Duration

	//===============
	// Fetch
	//===============
	// Number of fetch attempts before a URL is given up on.
	fetchAttempts int
	// Fixed wait between fetch attempts.
	retryWait time.Duration
	// Maximum time for a single navigation and capture.
	navigationTimeout time.Duration
	// DevTools endpoint of the already-authenticated browser session.
	devtoolsURL string
	// User agent override for the browser session. Empty keeps the
	// session's own user agent.
	userAgent string

	//===============
	// Extraction
	//===============
	// Whether to use the DOM-parsing link extractor instead of the
	// default body-region scanner.
	domLinks bool

	//===============
	// Output
	//===============
	// Root directory the archive representations are written under.
	outputDir string
	// Algorithm for artifact content hashes in audit metadata.
	hashAlgo hashutil.HashAlgo
}

// WithDefault creates a new Config with the provided base URL and output
// directory, and default values for all other fields. Both arguments are
// mandatory; Build validates them.
func WithDefault(baseURL url.URL, outputDir string) *Config {
	defaultConfig := Config{
		baseURL:           baseURL,
		crawlDelay:        time.Second,
		fetchAttempts:     3,
		retryWait:         2 * time.Second,
		navigationTimeout: 30 * time.Second,
		devtoolsURL:       "http://127.0.0.1:9222",
		userAgent:         "",
		domLinks:          false,
		outputDir:         outputDir,
		hashAlgo:          hashutil.HashAlgoSHA256,
	}
	return &defaultConfig
}

func (c *Config) WithCrawlDelay(delay time.Duration) *Config {
	c.crawlDelay = delay
	return c
}

func (c *Config) WithFetchAttempts(attempts int) *Config {
	c.fetchAttempts = attempts
	return c
}

func (c *Config) WithRetryWait(wait time.Duration) *Config {
	c.retryWait = wait
	return c
}

func (c *Config) WithNavigationTimeout(timeout time.Duration) *Config {
	c.navigationTimeout = timeout
	return c
}

func (c *Config) WithDevtoolsURL(devtoolsURL string) *Config {
	c.devtoolsURL = devtoolsURL
	return c
}

func (c *Config) WithUserAgent(agent string) *Config {
	c.userAgent = agent
	return c
}

func (c *Config) WithDomLinks(domLinks bool) *Config {
	c.domLinks = domLinks
	return c
}

func (c *Config) WithHashAlgo(algo hashutil.HashAlgo) *Config {
	c.hashAlgo = algo
	return c
}

func (c *Config) Build() (Config, error) {
	if c.baseURL.Scheme != "http" && c.baseURL.Scheme != "https" {
		return Config{}, fmt.Errorf("%w: base URL scheme must be http or https, got %q", ErrInvalidConfig, c.baseURL.Scheme)
	}
	if c.baseURL.Host == "" {
		return Config{}, fmt.Errorf("%w: base URL has no host", ErrInvalidConfig)
	}
	if c.outputDir == "" {
		return Config{}, fmt.Errorf("%w: output directory cannot be empty", ErrInvalidConfig)
	}
	if c.fetchAttempts < 1 {
		return Config{}, fmt.Errorf("%w: fetch attempts must be at least 1", ErrInvalidConfig)
	}
	if c.crawlDelay < 0 || c.retryWait < 0 {
		return Config{}, fmt.Errorf("%w: delays cannot be negative", ErrInvalidConfig)
	}
	if c.navigationTimeout <= 0 {
		return Config{}, fmt.Errorf("%w: navigation timeout must be positive", ErrInvalidConfig)
	}
	if c.devtoolsURL == "" {
		return Config{}, fmt.Errorf("%w: devtools URL cannot be empty", ErrInvalidConfig)
	}
	if !hashutil.Supported(c.hashAlgo) {
		return Config{}, fmt.Errorf("%w: unsupported hash algorithm %q", ErrInvalidConfig, c.hashAlgo)
	}
	return *c, nil
}

func (c Config) BaseURL() url.URL {
	return c.baseURL
}

func (c Config) CrawlDelay() time.Duration {
	return c.crawlDelay
}

func (c Config) FetchAttempts() int {
	return c.fetchAttempts
}

func (c Config) RetryWait() time.Duration {
	return c.retryWait
}

func (c Config) NavigationTimeout() time.Duration {
	return c.navigationTimeout
}

func (c Config) DevtoolsURL() string {
	return c.devtoolsURL
}

func (c Config) UserAgent() string {
	return c.userAgent
}

func (c Config) DomLinks() bool {
	return c.domLinks
}

func (c Config) OutputDir() string {
	return c.outputDir
}

func (c Config) HashAlgo() hashutil.HashAlgo {
	return c.hashAlgo
}
