package cmd

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rohmanhakim/session-archiver/internal/build"
	"github.com/rohmanhakim/session-archiver/internal/config"
	"github.com/rohmanhakim/session-archiver/internal/scheduler"
	"github.com/rohmanhakim/session-archiver/pkg/fileutil"
	"github.com/rohmanhakim/session-archiver/pkg/hashutil"
)

var (
	crawlDelay        time.Duration
	fetchAttempts     int
	retryWait         time.Duration
	navigationTimeout time.Duration
	devtoolsURL       string
	userAgent         string
	domLinks          bool
	hashAlgo          string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   build.Name + " <BASE_URL> <OUTPUT_DIR>",
	Short: "Archive an authenticated browsing session's site.",
	Long: build.Name + ` crawls a website through an already-logged-in browser
session and archives every same-origin page it can reach, breadth-first,
in two representations: a web archive bundle and a plain HTML document.

The browser is attached to over the DevTools protocol, so the crawl sees
exactly what the logged-in session sees. Start the browser with
--remote-debugging-port and log in before running a crawl.`,
	Version: build.FullVersion(),
	Args:    cobra.ExactArgs(2),
	RunE:    runCrawl,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().DurationVar(&crawlDelay, "delay", time.Second, "fixed delay between page visits")
	rootCmd.PersistentFlags().IntVar(&fetchAttempts, "retries", 3, "fetch attempts per page before giving up")
	rootCmd.PersistentFlags().DurationVar(&retryWait, "retry-wait", 2*time.Second, "fixed wait between fetch attempts")
	rootCmd.PersistentFlags().DurationVar(&navigationTimeout, "nav-timeout", 30*time.Second, "timeout for a single navigation and capture")
	rootCmd.PersistentFlags().StringVar(&devtoolsURL, "devtools-url", "http://127.0.0.1:9222", "DevTools endpoint of the authenticated browser")
	rootCmd.PersistentFlags().StringVar(&userAgent, "user-agent", "", "user agent override (empty keeps the session's own)")
	rootCmd.PersistentFlags().BoolVar(&domLinks, "dom-links", false, "discover links with the DOM parser instead of the body-region scanner")
	rootCmd.PersistentFlags().StringVar(&hashAlgo, "hash-algo", string(hashutil.HashAlgoSHA256), "content hash algorithm for audit metadata (sha256 or blake3)")
}

func runCrawl(cmd *cobra.Command, args []string) error {
	// Arguments are validated; errors from here on are runtime failures,
	// not usage mistakes.
	cmd.SilenceUsage = true

	baseURL, err := url.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid base URL %q: %w", args[0], err)
	}

	cfg, err := buildConfig(*baseURL, args[1])
	if err != nil {
		return err
	}

	if dirErr := fileutil.EnsureDir(cfg.OutputDir()); dirErr != nil {
		return fmt.Errorf("cannot create output directory %s: %w", cfg.OutputDir(), dirErr)
	}

	crawlScheduler := scheduler.NewScheduler(cfg)
	execution, runErr := crawlScheduler.Run(cmd.Context())
	if runErr != nil {
		return runErr
	}

	fmt.Printf("Crawl complete: %d pages archived under %s (%d fetch failures, %d write failures)\n",
		execution.PagesArchived, cfg.OutputDir(), execution.FetchFailures, execution.WriteFailures)
	return nil
}

// buildConfig assembles the run configuration from the positional
// arguments and flag overrides using the With... builder chain.
func buildConfig(baseURL url.URL, outputDir string) (config.Config, error) {
	configBuilder := config.WithDefault(baseURL, outputDir)

	if crawlDelay >= 0 {
		configBuilder = configBuilder.WithCrawlDelay(crawlDelay)
	}
	if fetchAttempts > 0 {
		configBuilder = configBuilder.WithFetchAttempts(fetchAttempts)
	}
	if retryWait >= 0 {
		configBuilder = configBuilder.WithRetryWait(retryWait)
	}
	if navigationTimeout > 0 {
		configBuilder = configBuilder.WithNavigationTimeout(navigationTimeout)
	}
	if devtoolsURL != "" {
		configBuilder = configBuilder.WithDevtoolsURL(devtoolsURL)
	}
	if userAgent != "" {
		configBuilder = configBuilder.WithUserAgent(userAgent)
	}
	if domLinks {
		configBuilder = configBuilder.WithDomLinks(domLinks)
	}
	if hashAlgo != "" {
		configBuilder = configBuilder.WithHashAlgo(hashutil.HashAlgo(hashAlgo))
	}

	return configBuilder.Build()
}

// ResetFlags restores flag defaults between test invocations.
func ResetFlags() {
	crawlDelay = time.Second
	fetchAttempts = 3
	retryWait = 2 * time.Second
	navigationTimeout = 30 * time.Second
	devtoolsURL = "http://127.0.0.1:9222"
	userAgent = ""
	domLinks = false
	hashAlgo = string(hashutil.HashAlgoSHA256)
}
