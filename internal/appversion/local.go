package appversion

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/eopatcher/eopatcher/util"
)

const (
	// DefaultMarker is the file at the installation root holding the installed version
	DefaultMarker = "version.txt"

	maxMarkerSize = 128
)

// LocalReader reads the version recorded in an installation directory
type LocalReader struct {
	dir    string
	marker string
}

// NewLocalReader creates a reader for the marker file inside dir. An empty marker selects DefaultMarker.
func NewLocalReader(dir, marker string) *LocalReader {
	if marker == "" {
		marker = DefaultMarker
	}
	return &LocalReader{
		dir:    dir,
		marker: marker,
	}
}

// Path returns the location of the version marker
func (r *LocalReader) Path() string {
	return filepath.Join(r.dir, r.marker)
}

// Get returns the installed version. A missing marker is not an error and yields Unknown.
// A marker that cannot be read or parsed yields Unknown together with the cause.
func (r *LocalReader) Get() (Version, error) {
	f, err := os.Open(r.Path())
	if errors.Is(err, fs.ErrNotExist) {
		log.Debugf("no version marker at %s, treating installation as unknown", r.Path())
		return Unknown(), nil
	}
	if err != nil {
		return Unknown(), fmt.Errorf("open version marker: %w", err)
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, maxMarkerSize))
	if err != nil {
		return Unknown(), fmt.Errorf("read version marker: %w", err)
	}

	v, err := Parse(string(content))
	if err != nil {
		return Unknown(), err
	}
	return v, nil
}

// Store records v as the installed version
func (r *LocalReader) Store(ctx context.Context, v Version) error {
	if v.IsUnknown() {
		return fmt.Errorf("refusing to store unknown version")
	}
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("create installation directory: %w", err)
	}
	return util.WriteBytesAtomic(ctx, r.Path(), r.dir, r.marker, []byte(v.String()+"\n"))
}
