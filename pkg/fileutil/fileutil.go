package fileutil

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/rohmanhakim/session-archiver/pkg/failure"
)

// DefaultBaseName is used when a URL path carries no segments to
// derive a filename from.
const DefaultBaseName = "index"

// EnsureDir checks if a given directory plus the following path exists,
// then creates it if not.
func EnsureDir(dir string, path ...string) failure.ClassifiedError {
	targetPath := []string{dir}
	targetPath = append(targetPath, path...)

	target := filepath.Join(targetPath...)
	if err := os.MkdirAll(target, 0755); err != nil {
		return &FileError{
			Message:   fmt.Sprintf("%v", err),
			Retryable: false,
			Cause:     ErrCausePathError,
		}
	}
	return nil
}

// ArchiveBase maps a normalized URL to the directory and base filename
// its archive representations are written under. The URL's path hierarchy
// mirrors beneath the output root and the final path segment doubles as
// the base filename, so /a lands at <root>/a/a.<ext> and the empty path
// at <root>/index.<ext>.
func ArchiveBase(outputRoot string, normalizedURL string) (string, string) {
	segments := pathSegments(normalizedURL)
	if len(segments) == 0 {
		return outputRoot, DefaultBaseName
	}

	parts := []string{outputRoot}
	parts = append(parts, segments...)
	return filepath.Join(parts...), segments[len(segments)-1]
}

func pathSegments(normalizedURL string) []string {
	u, err := url.Parse(normalizedURL)
	if err != nil {
		return nil
	}
	var segments []string
	for _, segment := range strings.Split(u.Path, "/") {
		if segment != "" {
			segments = append(segments, segment)
		}
	}
	return segments
}
