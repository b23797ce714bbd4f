package extractor

import (
	"strings"

	"github.com/rohmanhakim/session-archiver/pkg/urlutil"
)

// LinkExtractor produces the candidate same-origin URLs discovered in a
// page's markup. Implementations are best-effort: malformed markup yields
// partial or empty extraction, never an error. Returned links are in
// first-seen order; duplicates within a single extraction are preserved —
// deduplication against the visited set happens at enqueue time in the
// scheduler.
type LinkExtractor interface {
	ExtractLinks(content string, baseURL string, currentURL string) []string
}

// filterCandidate applies the admission rules shared by every extractor
// implementation to one raw href value:
//   - in-page anchor references are discarded
//   - protocol-relative references are discarded; their host is not
//     ours to assume
//   - a link whose normalized form is same-origin with the base URL is
//     kept unless it points back at the current page
//   - a root-relative link is resolved against the base URL by
//     concatenation and kept unconditionally
//   - everything else (off-site, unrecognized) is discarded
func filterCandidate(
	rawHref string,
	baseURL string,
	normalizedBase string,
	normalizedCurrent string,
) (string, bool) {
	if rawHref == "" || strings.HasPrefix(rawHref, "#") || strings.HasPrefix(rawHref, "//") {
		return "", false
	}

	normalized := urlutil.Normalize(rawHref)
	if urlutil.SameOrigin(normalized, normalizedBase) {
		if normalized == normalizedCurrent {
			return "", false
		}
		return normalized, true
	}

	if strings.HasPrefix(rawHref, "/") {
		return urlutil.Normalize(baseURL + rawHref), true
	}

	return "", false
}
