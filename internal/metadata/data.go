package metadata

/*
Metadata Collected
- Fetch timestamps, durations, retry counts
- Declared MIME types
- Artifact paths and content hashes
- Classified failure causes

Determinism guarantees:
 - Metadata does not affect control flow
 - Errors do not reorder the frontier
 - Output is stable given identical inputs

Metadata is write-only.
No component may read metadata to influence crawl decisions.
*/

// ArtifactKind identifies one persisted representation of a page.
type ArtifactKind string

const (
	ArtifactWebArchive   ArtifactKind = "webarchive"
	ArtifactHTMLDocument ArtifactKind = "html"
)

type AttrKey string

const (
	AttrURL         AttrKey = "url"
	AttrWritePath   AttrKey = "write_path"
	AttrContentHash AttrKey = "content_hash"
)

type Attribute struct {
	Key   AttrKey
	Value string
}

func NewAttr(key AttrKey, value string) Attribute {
	return Attribute{
		Key:   key,
		Value: value,
	}
}

/*
	ErrorCause is a closed, canonical classification used exclusively for
	observability (logging and reporting).

	Rules:
	 - ErrorCause is for observability only.
	 - It must never be used to derive retry, continuation, or abort decisions.
	 - Pipeline packages MAY map their local errors to ErrorCause,
	   but MUST NOT invent new meanings.

If a failure does not clearly match a defined cause, CauseUnknown MUST be used.
*/
type ErrorCause int

const (
	// CauseUnknown is the safe fallback for unclassifiable failures.
	CauseUnknown ErrorCause = iota

	// CauseNetworkFailure covers transport and remote-availability failures:
	// navigation timeouts, lost DevTools connections, unreachable hosts.
	CauseNetworkFailure

	// CauseContentInvalid covers content that was fetched but could not be
	// processed meaningfully: empty documents, unparseable markup.
	CauseContentInvalid

	// CauseStorageFailure covers failures while persisting archive
	// representations: disk full, permission errors, filesystem I/O.
	CauseStorageFailure

	// CauseInvariantViolation covers violations of system-level invariants,
	// such as an unsupported hash algorithm reaching the storage sink.
	CauseInvariantViolation
)

func (c ErrorCause) String() string {
	switch c {
	case CauseNetworkFailure:
		return "network_failure"
	case CauseContentInvalid:
		return "content_invalid"
	case CauseStorageFailure:
		return "storage_failure"
	case CauseInvariantViolation:
		return "invariant_violation"
	default:
		return "unknown"
	}
}
