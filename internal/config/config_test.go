package config_test

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohmanhakim/session-archiver/internal/config"
	"github.com/rohmanhakim/session-archiver/pkg/hashutil"
)

func mustParse(t *testing.T, raw string) url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return *u
}

func TestWithDefault_Defaults(t *testing.T) {
	baseURL := mustParse(t, "https://site.test")

	cfg, err := config.WithDefault(baseURL, "out").Build()
	require.NoError(t, err)

	base := cfg.BaseURL()
	assert.Equal(t, "https://site.test", base.String())
	assert.Equal(t, "out", cfg.OutputDir())
	assert.Equal(t, time.Second, cfg.CrawlDelay())
	assert.Equal(t, 3, cfg.FetchAttempts())
	assert.Equal(t, 2*time.Second, cfg.RetryWait())
	assert.Equal(t, 30*time.Second, cfg.NavigationTimeout())
	assert.Equal(t, "http://127.0.0.1:9222", cfg.DevtoolsURL())
	assert.Empty(t, cfg.UserAgent())
	assert.False(t, cfg.DomLinks())
	assert.Equal(t, hashutil.HashAlgoSHA256, cfg.HashAlgo())
}

func TestBuild_AppliesOverrides(t *testing.T) {
	baseURL := mustParse(t, "https://site.test")

	cfg, err := config.WithDefault(baseURL, "out").
		WithCrawlDelay(250 * time.Millisecond).
		WithFetchAttempts(5).
		WithRetryWait(time.Second).
		WithNavigationTimeout(10 * time.Second).
		WithDevtoolsURL("http://127.0.0.1:9333").
		WithUserAgent("archiver-test/1.0").
		WithDomLinks(true).
		WithHashAlgo(hashutil.HashAlgoBLAKE3).
		Build()
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, cfg.CrawlDelay())
	assert.Equal(t, 5, cfg.FetchAttempts())
	assert.Equal(t, time.Second, cfg.RetryWait())
	assert.Equal(t, 10*time.Second, cfg.NavigationTimeout())
	assert.Equal(t, "http://127.0.0.1:9333", cfg.DevtoolsURL())
	assert.Equal(t, "archiver-test/1.0", cfg.UserAgent())
	assert.True(t, cfg.DomLinks())
	assert.Equal(t, hashutil.HashAlgoBLAKE3, cfg.HashAlgo())
}

func TestBuild_Validation(t *testing.T) {
	validBase := mustParse(t, "https://site.test")

	testCases := []struct {
		name  string
		build func() (config.Config, error)
	}{
		{
			name: "non-http scheme",
			build: func() (config.Config, error) {
				return config.WithDefault(mustParse(t, "ftp://site.test"), "out").Build()
			},
		},
		{
			name: "missing host",
			build: func() (config.Config, error) {
				return config.WithDefault(mustParse(t, "https://"), "out").Build()
			},
		},
		{
			name: "empty output dir",
			build: func() (config.Config, error) {
				return config.WithDefault(validBase, "").Build()
			},
		},
		{
			name: "zero fetch attempts",
			build: func() (config.Config, error) {
				return config.WithDefault(validBase, "out").WithFetchAttempts(0).Build()
			},
		},
		{
			name: "negative crawl delay",
			build: func() (config.Config, error) {
				return config.WithDefault(validBase, "out").WithCrawlDelay(-time.Second).Build()
			},
		},
		{
			name: "zero navigation timeout",
			build: func() (config.Config, error) {
				return config.WithDefault(validBase, "out").WithNavigationTimeout(0).Build()
			},
		},
		{
			name: "empty devtools URL",
			build: func() (config.Config, error) {
				return config.WithDefault(validBase, "out").WithDevtoolsURL("").Build()
			},
		},
		{
			name: "unsupported hash algorithm",
			build: func() (config.Config, error) {
				return config.WithDefault(validBase, "out").WithHashAlgo("md5").Build()
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.build()
			require.Error(t, err)
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}
