package fetcher

// Browser session boundary

type FetchParam struct {
	fetchURL  string
	userAgent string
}

func NewFetchParam(fetchURL string, userAgent string) FetchParam {
	return FetchParam{
		fetchURL:  fetchURL,
		userAgent: userAgent,
	}
}

func (f FetchParam) FetchURL() string {
	return f.fetchURL
}

func (f FetchParam) UserAgent() string {
	return f.userAgent
}

type FetchResult struct {
	url          string
	body         []byte
	mimeType     string
	textEncoding string
}

func (f *FetchResult) URL() string {
	return f.url
}

func (f *FetchResult) Body() []byte {
	return f.body
}

// MIMEType is the main document's declared MIME type as observed on the
// wire, "text/html" when the response was not observable.
func (f *FetchResult) MIMEType() string {
	return f.mimeType
}

// TextEncoding is the detected text-encoding name recorded in the
// archive metadata.
func (f *FetchResult) TextEncoding() string {
	return f.textEncoding
}

// NewFetchResultForTest creates a FetchResult for testing purposes.
// This allows test packages to construct FetchResult values without
// accessing unexported fields directly.
func NewFetchResultForTest(
	url string,
	body []byte,
	mimeType string,
	textEncoding string,
) FetchResult {
	return FetchResult{
		url:          url,
		body:         body,
		mimeType:     mimeType,
		textEncoding: textEncoding,
	}
}
