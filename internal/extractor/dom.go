package extractor

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rohmanhakim/session-archiver/internal/metadata"
	"github.com/rohmanhakim/session-archiver/pkg/urlutil"
)

// DomLinkExtractor walks a parsed DOM tree instead of scanning with
// regular expressions. Same admission rules, higher fidelity on markup
// the body-region scanner under-extracts from.
type DomLinkExtractor struct {
	metadataSink metadata.MetadataSink
}

func NewDomLinkExtractor(metadataSink metadata.MetadataSink) DomLinkExtractor {
	return DomLinkExtractor{
		metadataSink: metadataSink,
	}
}

func (e DomLinkExtractor) ExtractLinks(content string, baseURL string, currentURL string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		// Degraded extraction, not a pipeline failure: record and move on.
		e.metadataSink.RecordError(
			time.Now(),
			"extractor",
			"DomLinkExtractor.ExtractLinks",
			metadata.CauseContentInvalid,
			err.Error(),
			[]metadata.Attribute{
				metadata.NewAttr(metadata.AttrURL, currentURL),
			},
		)
		return nil
	}

	body := doc.Find("body").First()
	if body.Length() == 0 {
		return nil
	}

	normalizedBase := urlutil.Normalize(baseURL)
	normalizedCurrent := urlutil.Normalize(currentURL)

	var links []string
	body.Find("a[href]").Each(func(_ int, anchor *goquery.Selection) {
		rawHref, _ := anchor.Attr("href")
		if link, ok := filterCandidate(rawHref, baseURL, normalizedBase, normalizedCurrent); ok {
			links = append(links, link)
		}
	})
	return links
}
