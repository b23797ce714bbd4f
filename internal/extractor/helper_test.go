package extractor_test

import (
	"time"

	"github.com/rohmanhakim/session-archiver/internal/metadata"
)

type recordedError struct {
	packageName string
	action      string
	cause       metadata.ErrorCause
	details     string
}

type metadataSinkMock struct {
	errors []recordedError
}

func (m *metadataSinkMock) RecordFetch(string, string, time.Duration, int) {}

func (m *metadataSinkMock) RecordArtifact(metadata.ArtifactKind, string, []metadata.Attribute) {}

func (m *metadataSinkMock) RecordError(
	_ time.Time,
	packageName string,
	action string,
	cause metadata.ErrorCause,
	details string,
	_ []metadata.Attribute,
) {
	m.errors = append(m.errors, recordedError{
		packageName: packageName,
		action:      action,
		cause:       cause,
		details:     details,
	})
}

// filteringCases is the admission-rule table shared by both extractor
// implementations. Each case is one page of markup against the same base
// and current URL.
var filteringCases = []struct {
	name       string
	content    string
	baseURL    string
	currentURL string
	expected   []string
}{
	{
		name:       "absolute same-origin link is kept normalized",
		content:    `<html><body><a href="https://site.test/docs">Docs</a></body></html>`,
		baseURL:    "https://site.test",
		currentURL: "https://site.test/",
		expected:   []string{"https://site.test/docs"},
	},
	{
		name:       "root-relative link resolves against the base URL",
		content:    `<html><body><a href="/about">About</a></body></html>`,
		baseURL:    "https://site.test",
		currentURL: "https://site.test/",
		expected:   []string{"https://site.test/about"},
	},
	{
		name:       "in-page anchor is discarded",
		content:    `<html><body><a href="#section">Jump</a></body></html>`,
		baseURL:    "https://site.test",
		currentURL: "https://site.test/",
		expected:   nil,
	},
	{
		name:       "link back to the current page is discarded",
		content:    `<html><body><a href="https://site.test/a">Self</a></body></html>`,
		baseURL:    "https://site.test",
		currentURL: "https://site.test/a",
		expected:   nil,
	},
	{
		name:       "fragment variant of the current page is discarded",
		content:    `<html><body><a href="https://site.test/a#top">Self</a></body></html>`,
		baseURL:    "https://site.test",
		currentURL: "https://site.test/a",
		expected:   nil,
	},
	{
		name:       "protocol-relative link is discarded",
		content:    `<html><body><a href="//elsewhere.test/x">Out</a></body></html>`,
		baseURL:    "https://site.test",
		currentURL: "https://site.test/",
		expected:   nil,
	},
	{
		name:       "off-site link is discarded",
		content:    `<html><body><a href="https://elsewhere.test/x">Out</a></body></html>`,
		baseURL:    "https://site.test",
		currentURL: "https://site.test/",
		expected:   nil,
	},
	{
		name:       "first-seen order with duplicates preserved",
		content:    `<html><body><a href="/b">B</a><a href="/c">C</a><a href="/b">B again</a></body></html>`,
		baseURL:    "https://site.test",
		currentURL: "https://site.test/",
		expected:   []string{"https://site.test/b", "https://site.test/c", "https://site.test/b"},
	},
	{
		name:       "uppercase body tag with attributes",
		content:    `<HTML><BODY class="page"><a href="/docs">Docs</a></BODY></HTML>`,
		baseURL:    "https://site.test",
		currentURL: "https://site.test/",
		expected:   []string{"https://site.test/docs"},
	},
}
