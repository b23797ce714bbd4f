package extractor

import (
	"regexp"

	"github.com/rohmanhakim/session-archiver/pkg/urlutil"
)

var (
	// First body-like region, tolerant of attributes and multi-line
	// content. Non-strict on purpose.
	bodyRegion = regexp.MustCompile(`(?is)<body[^>]*>(.*?)</body>`)
	// Anchor href values in either quoting style.
	hrefAttr = regexp.MustCompile(`(?is)href\s*=\s*(?:"([^"]*)"|'([^']*)')`)
)

// BodyLinkExtractor scans the first body region of the markup with a
// permissive pattern. It is a pragmatic low-fidelity extractor that may
// under-extract on malformed markup; that is accepted degraded behavior,
// not a defect. DomLinkExtractor is the proper-parser alternative behind
// the same interface.
type BodyLinkExtractor struct{}

func NewBodyLinkExtractor() BodyLinkExtractor {
	return BodyLinkExtractor{}
}

func (e BodyLinkExtractor) ExtractLinks(content string, baseURL string, currentURL string) []string {
	region := bodyRegion.FindStringSubmatch(content)
	if region == nil {
		return nil
	}

	normalizedBase := urlutil.Normalize(baseURL)
	normalizedCurrent := urlutil.Normalize(currentURL)

	var links []string
	for _, match := range hrefAttr.FindAllStringSubmatch(region[1], -1) {
		rawHref := match[1]
		if rawHref == "" {
			rawHref = match[2]
		}
		if link, ok := filterCandidate(rawHref, baseURL, normalizedBase, normalizedCurrent); ok {
			links = append(links, link)
		}
	}
	return links
}
