// Package fs provides a citeneeded.Fetcher that reads saved pages from disk.
package fs

import (
	"context"
	"errors"
	"io/fs"
	"net/url"
	"os"
	"strings"

	"github.com/fwojciec/citeneeded"
)

// Ensure Fetcher implements citeneeded.Fetcher at compile time.
var _ citeneeded.Fetcher = (*Fetcher)(nil)

// Fetcher reads HTML from local files. It accepts plain paths and file:// URLs.
type Fetcher struct{}

// NewFetcher creates a new file-based Fetcher.
func NewFetcher() *Fetcher {
	return &Fetcher{}
}

// Fetch returns the contents of the file at path.
func (f *Fetcher) Fetch(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name, err := FilePath(path)
	if err != nil {
		return "", err
	}

	b, err := os.ReadFile(name)
	if errors.Is(err, fs.ErrNotExist) {
		return "", citeneeded.Errorf(citeneeded.ENOTFOUND, "file %q not found", name)
	} else if err != nil {
		return "", err
	}

	return string(b), nil
}

// Close is a no-op.
func (f *Fetcher) Close() error {
	return nil
}

// FilePath converts a file:// URL to a local path. Other input is returned
// unchanged.
// Example: file:///tmp/History_of_Mexico.html → /tmp/History_of_Mexico.html
func FilePath(raw string) (string, error) {
	if raw == "" {
		return "", citeneeded.Errorf(citeneeded.EINVALID, "file path required")
	}
	if !strings.HasPrefix(raw, "file://") {
		return raw, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", citeneeded.Errorf(citeneeded.EINVALID, "invalid file URL %q: %v", raw, err)
	}
	if u.Host != "" && u.Host != "localhost" {
		return "", citeneeded.Errorf(citeneeded.EINVALID, "file URL %q must not name a remote host", raw)
	}
	return u.Path, nil
}
