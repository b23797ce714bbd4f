package urlutil_test

import (
	"testing"

	"github.com/rohmanhakim/session-archiver/pkg/urlutil"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercases scheme and host, preserves path case",
			input:    "HTTPS://A.com/Path",
			expected: "https://a.com/Path",
		},
		{
			name:     "strips fragment",
			input:    "https://a.com/x#frag",
			expected: "https://a.com/x",
		},
		{
			name:     "collapses empty path segments",
			input:    "https://a.com//x//y/",
			expected: "https://a.com/x/y",
		},
		{
			name:     "empty path normalizes to root",
			input:    "https://a.com",
			expected: "https://a.com/",
		},
		{
			name:     "root stays root",
			input:    "https://a.com/",
			expected: "https://a.com/",
		},
		{
			name:     "strips leading host-duplicate segment",
			input:    "https://example.com/example.com/foo",
			expected: "https://example.com/foo",
		},
		{
			name:     "preserves query string as-is",
			input:    "https://a.com/x?b=2&a=1",
			expected: "https://a.com/x?b=2&a=1",
		},
		{
			name:     "fragment dropped but query kept",
			input:    "https://a.com/x?q=1#frag",
			expected: "https://a.com/x?q=1",
		},
		{
			name:     "trailing slash removed",
			input:    "https://a.com/docs/",
			expected: "https://a.com/docs",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := urlutil.Normalize(tc.input)
			if got != tc.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"HTTPS://A.com/Path",
		"https://a.com//x//y/",
		"https://a.com/x#frag",
		"https://example.com/example.com/foo",
		"https://a.com/x?b=2&a=1",
		"https://a.com",
		"/about",
	}

	for _, input := range inputs {
		once := urlutil.Normalize(input)
		twice := urlutil.Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestNormalize_FailsOpenOnUnparseableInput(t *testing.T) {
	// A control character makes url.Parse reject the input; the
	// normalizer must return it unchanged rather than raise.
	input := "https://a.com/\x7f\x00broken"
	if got := urlutil.Normalize(input); got != input {
		t.Errorf("expected unparseable input returned unchanged, got %q", got)
	}
}

func TestSameOrigin(t *testing.T) {
	base := urlutil.Normalize("https://site.test")

	testCases := []struct {
		name     string
		url      string
		expected bool
	}{
		{"page under base", "https://site.test/a", true},
		{"base itself", "https://site.test/", true},
		{"other host", "https://other.test/b", false},
		{"scheme mismatch", "http://site.test/a", false},
		{"garbage", "not a url", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := urlutil.SameOrigin(urlutil.Normalize(tc.url), base)
			if got != tc.expected {
				t.Errorf("SameOrigin(%q, %q) = %v, want %v", tc.url, base, got, tc.expected)
			}
		})
	}
}
