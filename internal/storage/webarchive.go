package storage

import "howett.net/plist"

// Apple web archive property-list layout. The main frame carries no
// name, so WebResourceFrameName is persisted as the empty string.
type webResource struct {
	Data             []byte `plist:"WebResourceData"`
	FrameName        string `plist:"WebResourceFrameName"`
	MIMEType         string `plist:"WebResourceMIMEType"`
	TextEncodingName string `plist:"WebResourceTextEncodingName"`
	URL              string `plist:"WebResourceURL"`
}

type webArchive struct {
	MainResource webResource `plist:"WebMainResource"`
}

// encodeWebArchive serializes a page record as a binary-plist web
// archive, the structured representation bundling the raw content with
// its declared MIME type, text encoding, source URL and frame name.
func encodeWebArchive(record PageRecord) ([]byte, error) {
	archive := webArchive{
		MainResource: webResource{
			Data:             record.Body(),
			FrameName:        "",
			MIMEType:         record.MIMEType(),
			TextEncodingName: record.TextEncoding(),
			URL:              record.URL(),
		},
	}
	return plist.Marshal(archive, plist.BinaryFormat)
}
