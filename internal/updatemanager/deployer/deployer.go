// Package deployer expands a patch archive and copies its files into the installation directory.
package deployer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/hashicorp/go-multierror"
	log "github.com/sirupsen/logrus"

	"github.com/eopatcher/eopatcher/internal/appversion"
	eoperrors "github.com/eopatcher/eopatcher/internal/errors"
	"github.com/eopatcher/eopatcher/internal/updatemanager/status"
	"github.com/eopatcher/eopatcher/util"
	semaphoregroup "github.com/eopatcher/eopatcher/util/semaphore-group"
)

const stagingPrefix = "patch-"

var errEmptyArchive = errors.New("archive contains no files")

// Deployer applies patch archives to one installation directory
type Deployer struct {
	installDir string
	workDir    string
	maxCopies  int
}

// New creates a Deployer. Staging directories are created below workDir.
// maxCopies caps the number of concurrent file copies; zero or less means one goroutine per file.
func New(installDir, workDir string, maxCopies int) *Deployer {
	return &Deployer{
		installDir: installDir,
		workDir:    workDir,
		maxCopies:  maxCopies,
	}
}

// StagingDir returns the extraction directory used for target
func (d *Deployer) StagingDir(target appversion.Version) string {
	return filepath.Join(d.workDir, stagingPrefix+target.String())
}

// Deploy extracts archivePath and copies every file it contains into the installation directory,
// reporting progress through sink. It returns only after every copy settled. A failed copy does not
// stop the others; all failures are returned together as a *DeploymentFailure.
func (d *Deployer) Deploy(ctx context.Context, target appversion.Version, archivePath string, sink status.Sink) error {
	sink = status.Synchronized(sink)
	staging := d.StagingDir(target)

	if err := os.RemoveAll(staging); err != nil {
		return fmt.Errorf("remove stale staging directory %s: %w", staging, err)
	}
	defer func() {
		if err := os.RemoveAll(staging); err != nil {
			log.Warnf("failed to remove staging directory %s: %v", staging, err)
		}
	}()

	if !util.IsRegularFile(archivePath) {
		return &ArchiveError{Archive: archivePath, Err: os.ErrNotExist}
	}

	log.Infof("extracting %s to %s", archivePath, staging)
	if err := extract(archivePath, staging); err != nil {
		return &ArchiveError{Archive: archivePath, Err: err}
	}

	files, err := listFiles(staging)
	if err != nil {
		return &ArchiveError{Archive: archivePath, Err: fmt.Errorf("list extracted files: %w", err)}
	}
	if len(files) == 0 {
		return &ArchiveError{Archive: archivePath, Err: errEmptyArchive}
	}

	if err := os.MkdirAll(d.installDir, 0o755); err != nil {
		return fmt.Errorf("create installation directory: %w", err)
	}

	if err := d.copyAll(ctx, staging, files, sink); err != nil {
		return err
	}

	sink(fmt.Sprintf("Patch applied! You are now on the latest version v%s. Enjoy!", target))
	return nil
}

func (d *Deployer) copyAll(ctx context.Context, staging string, files []string, sink status.Sink) error {
	p := newProgress(len(files), sink)
	p.start()

	var (
		mu          sync.Mutex
		merr        *multierror.Error
		interrupted error
	)

	sg := semaphoregroup.NewSemaphoreGroup(d.maxCopies)
	for _, rel := range files {
		err := sg.Go(ctx, func() {
			if err := d.copyFile(staging, rel); err != nil {
				log.Errorf("failed to deploy %s: %v", rel, err)
				mu.Lock()
				merr = multierror.Append(merr, &CopyError{Path: rel, Err: err})
				mu.Unlock()
				return
			}
			log.Tracef("deployed %s", rel)
			p.fileDone()
		})
		if err != nil {
			interrupted = err
			break
		}
	}
	sg.Wait()

	if interrupted != nil {
		merr = multierror.Append(merr, fmt.Errorf("deployment interrupted after %d of %d files: %w", p.done(), len(files), interrupted))
	}

	if merr == nil {
		return nil
	}
	return &DeploymentFailure{
		Failed: len(files) - int(p.done()),
		Total:  len(files),
		Err:    eoperrors.FormatErrorOrNil(merr),
	}
}

var statFile = os.Stat

func (d *Deployer) copyFile(staging, rel string) error {
	src := filepath.Join(staging, rel)
	dst := filepath.Join(d.installDir, rel)

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	if err := util.CopyFileContents(src, dst); err != nil {
		return err
	}

	info, err := statFile(src)
	if err != nil {
		log.Warnf("failed to read permissions of %s, keeping defaults for %s: %v", src, dst, err)
		return nil
	}
	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		log.Warnf("failed to set permissions of %s: %v", dst, err)
	}
	return nil
}
