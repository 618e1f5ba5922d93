// Package installdir locates the managed application on disk.
package installdir

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	log "github.com/sirupsen/logrus"

	"github.com/eopatcher/eopatcher/util"
)

const (
	// ExeName is the executable of the managed application
	ExeName = "Endless.exe"

	windowsDefaultDir = "C:/Program Files (x86)/Endless Online/"
)

// Resolver checks well known locations for the managed application
type Resolver struct {
	workDir string
	goos    string
}

// NewResolver returns a resolver looking relative to the current working directory
func NewResolver() (*Resolver, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}
	return &Resolver{workDir: wd, goos: runtime.GOOS}, nil
}

// Resolve returns the installation directory: the working directory when it holds the
// executable, then its parent, then the platform default, then the working directory.
func (r *Resolver) Resolve() string {
	if util.IsRegularFile(filepath.Join(r.workDir, ExeName)) {
		return r.workDir
	}

	parent := filepath.Dir(r.workDir)
	if util.IsRegularFile(filepath.Join(parent, ExeName)) {
		return parent
	}

	if r.goos == "windows" {
		return filepath.Clean(windowsDefaultDir)
	}

	log.Debugf("%s not found near %s, using the working directory", ExeName, r.workDir)
	return r.workDir
}

// Exe returns the path of the managed executable inside dir
func Exe(dir string) string {
	return filepath.Join(dir, ExeName)
}
