// Package updatemanager drives the version check and the patch sequence of the managed application.
package updatemanager

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/rs/xid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/eopatcher/eopatcher/formatter"
	"github.com/eopatcher/eopatcher/internal/appversion"
	"github.com/eopatcher/eopatcher/internal/updatemanager/status"
)

const archiveFileName = "patch.archive"

var errNoTarget = errors.New("no target version")

// Orchestrator owns the check -> download -> deploy sequence and its temporary resources.
// It does not guard against concurrent Patch calls, see Session.
type Orchestrator struct {
	local    LocalVersion
	remote   RemoteVersion
	archives ArchiveSource
	deployer Deployer
	sink     status.Sink
	workDir  string

	state atomic.Int32
}

func NewOrchestrator(local LocalVersion, remote RemoteVersion, archives ArchiveSource, deployer Deployer, sink status.Sink) *Orchestrator {
	return &Orchestrator{
		local:    local,
		remote:   remote,
		archives: archives,
		deployer: deployer,
		sink:     status.Synchronized(sink),
	}
}

// WithWorkDir sets the parent of the per run download directory. The system temp dir is used by default.
func (o *Orchestrator) WithWorkDir(dir string) *Orchestrator {
	o.workDir = dir
	return o
}

func (o *Orchestrator) State() State {
	return State(o.state.Load())
}

func (o *Orchestrator) setState(s State) {
	log.Debugf("patcher state: %s -> %s", o.State(), s)
	o.state.Store(int32(s))
}

// Check reads the installed and the published version concurrently and reports which one is newer
func (o *Orchestrator) Check(ctx context.Context) CheckResult {
	o.setState(CheckingVersions)

	var res CheckResult
	var g errgroup.Group

	o.sink("Getting local version...")
	g.Go(func() error {
		v, err := o.local.Get()
		if err != nil {
			log.Warnf("failed to read local version, assuming an update is needed: %v", err)
		}
		res.Local = v
		return nil
	})

	o.sink("Getting remote version...")
	g.Go(func() error {
		res.Remote = o.remote.Get(ctx)
		return nil
	})

	_ = g.Wait()

	switch {
	case res.Failed():
		log.Errorf("version check failed: %v", res.Remote.Err())
		o.setState(CheckFailed)
		o.sink(fmt.Sprintf("Error: %v", res.Remote.Err()))
	case res.UpdateAvailable():
		log.Infof("new version available: %s -> %s", res.Local, res.Remote.Version())
		o.setState(UpdateAvailable)
		o.sink(fmt.Sprintf("New version available (%s -> %s)", display(res.Local), display(res.Remote.Version())))
	default:
		log.Infof("installation is up to date: %s", res.Local)
		o.setState(UpToDate)
		o.sink(fmt.Sprintf("Up to date (%s)", display(res.Local)))
	}

	return res
}

// Patch downloads the archive for target, deploys it and records target as the installed version
func (o *Orchestrator) Patch(ctx context.Context, target appversion.Version) Outcome {
	logger := log.WithFields(log.Fields{
		formatter.RunField: xid.New().String(),
		"target":           target.String(),
	})

	o.setState(Patching)
	o.sink("Starting patch...")
	logger.Info("starting patch")

	if target.IsUnknown() {
		return o.fail(logger, errNoTarget)
	}

	dir, err := o.downloadDir()
	if err != nil {
		return o.fail(logger, err)
	}
	defer func() {
		if err := os.RemoveAll(dir); err != nil {
			logger.Warnf("failed to remove download directory %s: %v", dir, err)
		}
	}()

	archive := filepath.Join(dir, archiveFileName)
	if err := o.archives.Fetch(ctx, target, archive); err != nil {
		return o.fail(logger, fmt.Errorf("download patch: %w", err))
	}
	logger.Debugf("patch archive downloaded to %s", archive)

	if err := o.deployer.Deploy(ctx, target, archive, o.sink); err != nil {
		return o.fail(logger, err)
	}

	if err := o.local.Store(ctx, target); err != nil {
		logger.Warnf("patch applied but the local version marker was not updated: %v", err)
	}

	o.setState(Patched)
	o.sink(fmt.Sprintf("Updated to %s!", display(target)))
	logger.Info("patch applied")
	return Succeeded(target)
}

func (o *Orchestrator) downloadDir() (string, error) {
	if o.workDir != "" {
		if err := os.MkdirAll(o.workDir, 0o755); err != nil {
			return "", fmt.Errorf("create work directory: %w", err)
		}
	}

	dir, err := os.MkdirTemp(o.workDir, "download-")
	if err != nil {
		return "", fmt.Errorf("create download directory: %w", err)
	}
	return dir, nil
}

func (o *Orchestrator) fail(logger *log.Entry, err error) Outcome {
	logger.Errorf("patch failed: %v", err)
	o.setState(PatchFailed)
	o.sink(fmt.Sprintf("Patch failed: %v", err))
	return Failed(err)
}

func display(v appversion.Version) string {
	if v.IsUnknown() {
		return v.String()
	}
	return "v" + v.String()
}
