package storage

import (
	"errors"
	"os"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rohmanhakim/session-archiver/internal/metadata"
	"github.com/rohmanhakim/session-archiver/pkg/failure"
	"github.com/rohmanhakim/session-archiver/pkg/fileutil"
	"github.com/rohmanhakim/session-archiver/pkg/hashutil"
)

/*
Responsibilities
- Persist both archive representations of a fetched page
- Mirror the URL path hierarchy beneath the output root
- Report each representation's outcome independently

Output Characteristics
- Stable directory layout
- Idempotent writes
- Overwrite-safe reruns
*/

// Sink persists a page in every supported representation. A failed
// representation is reported in its outcome and never blocks the other;
// the run continues regardless.
type Sink interface {
	Write(
		outputRoot string,
		record PageRecord,
		hashAlgo hashutil.HashAlgo,
	) []WriteOutcome
}

type LocalSink struct {
	metadataSink metadata.MetadataSink
}

func NewLocalSink(metadataSink metadata.MetadataSink) LocalSink {
	return LocalSink{
		metadataSink: metadataSink,
	}
}

func (s *LocalSink) Write(
	outputRoot string,
	record PageRecord,
	hashAlgo hashutil.HashAlgo,
) []WriteOutcome {
	dir, base := fileutil.ArchiveBase(outputRoot, record.URL())

	if err := fileutil.EnsureDir(dir); err != nil {
		pathErr := &StorageError{
			Message:   err.Error(),
			Retryable: true,
			Cause:     ErrCausePathError,
			Path:      dir,
		}
		s.recordWriteError(record, pathErr)
		return []WriteOutcome{
			NewWriteOutcome(RepresentationWebArchive, "", pathErr),
			NewWriteOutcome(RepresentationHTMLDocument, "", pathErr),
		}
	}

	return []WriteOutcome{
		s.writeWebArchive(dir, base, record, hashAlgo),
		s.writeHTMLDocument(dir, base, record, hashAlgo),
	}
}

func (s *LocalSink) writeWebArchive(
	dir string,
	base string,
	record PageRecord,
	hashAlgo hashutil.HashAlgo,
) WriteOutcome {
	path := filepath.Join(dir, base+".webarchive")

	encoded, err := encodeWebArchive(record)
	if err != nil {
		encodeErr := &StorageError{
			Message:   err.Error(),
			Retryable: false,
			Cause:     ErrCauseEncodeFailure,
			Path:      path,
		}
		s.recordWriteError(record, encodeErr)
		return NewWriteOutcome(RepresentationWebArchive, path, encodeErr)
	}

	if writeErr := s.writeFile(path, encoded, record); writeErr != nil {
		return NewWriteOutcome(RepresentationWebArchive, path, writeErr)
	}

	s.recordArtifact(metadata.ArtifactWebArchive, path, record, hashAlgo)
	return NewWriteOutcome(RepresentationWebArchive, path, nil)
}

func (s *LocalSink) writeHTMLDocument(
	dir string,
	base string,
	record PageRecord,
	hashAlgo hashutil.HashAlgo,
) WriteOutcome {
	path := filepath.Join(dir, base+".html")

	if writeErr := s.writeFile(path, record.Body(), record); writeErr != nil {
		return NewWriteOutcome(RepresentationHTMLDocument, path, writeErr)
	}

	s.recordArtifact(metadata.ArtifactHTMLDocument, path, record, hashAlgo)
	return NewWriteOutcome(RepresentationHTMLDocument, path, nil)
}

func (s *LocalSink) writeFile(
	path string,
	content []byte,
	record PageRecord,
) failure.ClassifiedError {
	if err := os.WriteFile(path, content, 0644); err != nil {
		cause := ErrCauseWriteFailure
		if errors.Is(err, syscall.ENOSPC) {
			cause = ErrCauseDiskFull
		}
		writeErr := &StorageError{
			Message:   err.Error(),
			Retryable: true,
			Cause:     cause,
			Path:      path,
		}
		s.recordWriteError(record, writeErr)
		return writeErr
	}
	return nil
}

func (s *LocalSink) recordArtifact(
	kind metadata.ArtifactKind,
	path string,
	record PageRecord,
	hashAlgo hashutil.HashAlgo,
) {
	attrs := []metadata.Attribute{
		metadata.NewAttr(metadata.AttrURL, record.URL()),
	}
	if contentHash, err := hashutil.FormatHash(record.Body(), hashAlgo); err == nil {
		attrs = append(attrs, metadata.NewAttr(metadata.AttrContentHash, contentHash))
	}
	s.metadataSink.RecordArtifact(kind, path, attrs)
}

func (s *LocalSink) recordWriteError(record PageRecord, storageErr *StorageError) {
	s.metadataSink.RecordError(
		time.Now(),
		"storage",
		"LocalSink.Write",
		mapStorageErrorToMetadataCause(storageErr),
		storageErr.Message,
		[]metadata.Attribute{
			metadata.NewAttr(metadata.AttrURL, record.URL()),
			metadata.NewAttr(metadata.AttrWritePath, storageErr.Path),
		},
	)
}
