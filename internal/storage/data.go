package storage

import "github.com/rohmanhakim/session-archiver/pkg/failure"

// Persistence

// PageRecord is the transient tuple handed from fetch to persist. It is
// not retained after the page has been processed.
type PageRecord struct {
	normalizedURL string
	body          []byte
	mimeType      string
	textEncoding  string
}

func NewPageRecord(
	normalizedURL string,
	body []byte,
	mimeType string,
	textEncoding string,
) PageRecord {
	return PageRecord{
		normalizedURL: normalizedURL,
		body:          body,
		mimeType:      mimeType,
		textEncoding:  textEncoding,
	}
}

func (p PageRecord) URL() string {
	return p.normalizedURL
}

func (p PageRecord) Body() []byte {
	return p.body
}

func (p PageRecord) MIMEType() string {
	return p.mimeType
}

func (p PageRecord) TextEncoding() string {
	return p.textEncoding
}

// Representation names one persisted form of a page's content.
type Representation string

const (
	RepresentationWebArchive   Representation = "webarchive"
	RepresentationHTMLDocument Representation = "html"
)

// WriteOutcome reports one representation's persistence result. Each
// representation succeeds or fails independently of the other.
type WriteOutcome struct {
	representation Representation
	path           string
	err            failure.ClassifiedError
}

func NewWriteOutcome(
	representation Representation,
	path string,
	err failure.ClassifiedError,
) WriteOutcome {
	return WriteOutcome{
		representation: representation,
		path:           path,
		err:            err,
	}
}

func (w WriteOutcome) Representation() Representation {
	return w.representation
}

func (w WriteOutcome) Path() string {
	return w.path
}

func (w WriteOutcome) Err() failure.ClassifiedError {
	return w.err
}
