// Package settings persists the user preferences of the patcher.
package settings

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/eopatcher/eopatcher/util"
)

// FileName is the settings document stored next to the patcher executable
const FileName = "patcher_settings.json"

// Settings holds the user preferences
type Settings struct {
	// LaunchParameters is an optional wrapper command, e.g. "wine" or "proton run"
	LaunchParameters string
}

// Store loads and saves Settings as a JSON document
type Store struct {
	path string
}

// NewStore creates a store for the given file
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns the settings location next to the running executable
func DefaultPath() string {
	exe, err := os.Executable()
	if err != nil {
		return FileName
	}
	return filepath.Join(filepath.Dir(exe), FileName)
}

// Path returns the file backing the store
func (s *Store) Path() string {
	return s.path
}

// Load returns the stored settings. A missing or corrupt document yields the defaults.
func (s *Store) Load() Settings {
	res, err := util.ReadJson(s.path, &Settings{})
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Warnf("failed to read settings %s, using defaults: %v", s.path, err)
		}
		return Settings{}
	}

	loaded, ok := res.(*Settings)
	if !ok || loaded == nil {
		return Settings{}
	}
	return *loaded
}

// Save writes the settings
func (s *Store) Save(ctx context.Context, settings Settings) error {
	return util.WriteJson(ctx, s.path, settings)
}
