package urlutil

import (
	"net/url"
	"strings"
)

// Normalize applies a deterministic canonicalization to a raw URL string,
// producing the form used for deduplication keys and scope comparisons.
//
// The normalization follows these rules:
//   - Scheme and host are lowercased
//   - A leading path segment equal to the host is stripped (a pattern left
//     behind by malformed relative-link construction, e.g. /example.com/foo)
//   - Empty path segments are discarded (collapsing // and trailing /),
//     and the path is rejoined with a single leading /; an empty path
//     normalizes to "/"
//   - The fragment is dropped entirely
//   - The query string is preserved as-is
//
// Unparseable input is returned unchanged. The downstream scope check
// excludes most garbage naturally, so normalization fails open rather
// than raising.
//
// Properties:
//   - Pure: no state, no memory
//   - Deterministic: same input always produces same output
//   - Idempotent: Normalize(Normalize(raw)) == Normalize(raw)
func Normalize(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	u.Scheme = lowerASCII(u.Scheme)
	u.Host = lowerASCII(u.Host)

	segments := splitPath(u.Path)
	if len(segments) > 0 && u.Host != "" && segments[0] == u.Host {
		segments = segments[1:]
	}
	u.Path = "/" + strings.Join(segments, "/")
	u.RawPath = ""

	u.Fragment = ""
	u.RawFragment = ""

	return u.String()
}

// SameOrigin reports whether a normalized URL is in scope for a crawl
// rooted at the normalized base URL. Scope is a plain prefix relation;
// both arguments must already be normalized for the check to be stable.
func SameOrigin(normalized string, normalizedBase string) bool {
	return strings.HasPrefix(normalized, normalizedBase)
}

// splitPath breaks a URL path into its non-empty segments.
func splitPath(path string) []string {
	var segments []string
	for _, segment := range strings.Split(path, "/") {
		if segment != "" {
			segments = append(segments, segment)
		}
	}
	return segments
}

// lowerASCII converts ASCII characters to lowercase without allocating
// when the input is already lowercase.
func lowerASCII(s string) string {
	var needsLower bool
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			needsLower = true
			break
		}
	}
	if !needsLower {
		return s
	}
	b := make([]byte, len(s))
	copy(b, s)
	for i := 0; i < len(b); i++ {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}
