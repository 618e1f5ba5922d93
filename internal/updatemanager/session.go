package updatemanager

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/eopatcher/eopatcher/internal/appversion"
)

var (
	// ErrPatchInProgress is returned when a patch is requested while another one runs
	ErrPatchInProgress = errors.New("a patch is already in progress")
	// ErrNotChecked is returned when a patch is requested before a successful version check
	ErrNotChecked = errors.New("remote version has not been checked")
)

// Session remembers the last checked remote version and lets at most one patch run at a time
type Session struct {
	orchestrator *Orchestrator
	patching     atomic.Bool

	mu     sync.Mutex
	remote appversion.Version
}

func NewSession(orchestrator *Orchestrator) *Session {
	return &Session{orchestrator: orchestrator}
}

// Check runs a version check and remembers the remote version when it succeeds
func (s *Session) Check(ctx context.Context) CheckResult {
	res := s.orchestrator.Check(ctx)
	if !res.Failed() {
		s.mu.Lock()
		s.remote = res.Remote.Version()
		s.mu.Unlock()
	}
	return res
}

// RemoteVersion returns the version seen by the last successful check
func (s *Session) RemoteVersion() appversion.Version {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remote
}

func (s *Session) IsPatching() bool {
	return s.patching.Load()
}

// Patch applies the last checked remote version
func (s *Session) Patch(ctx context.Context) (Outcome, error) {
	target := s.RemoteVersion()
	if target.IsUnknown() {
		return Outcome{}, ErrNotChecked
	}

	if !s.patching.CompareAndSwap(false, true) {
		return Outcome{}, ErrPatchInProgress
	}
	defer s.patching.Store(false)

	return s.orchestrator.Patch(ctx, target), nil
}

func (s *Session) State() State {
	return s.orchestrator.State()
}
