package updatemanager

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eopatcher/eopatcher/internal/appversion"
	"github.com/eopatcher/eopatcher/internal/updatemanager/fetcher"
	"github.com/eopatcher/eopatcher/internal/updatemanager/status"
)

func TestSession_PatchBeforeCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newMocks(ctrl)

	s := NewSession(NewOrchestrator(m.local, m.remote, m.archives, m.deployer, status.Discard))
	_, err := s.Patch(context.Background())
	assert.ErrorIs(t, err, ErrNotChecked)
}

func TestSession_FailedCheckKeepsPreviousVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newMocks(ctrl)

	m.local.EXPECT().Get().Return(appversion.MustParse("1.0"), nil).Times(2)
	gomock.InOrder(
		m.remote.EXPECT().Get(gomock.Any()).Return(fetcher.Success(appversion.MustParse("1.1"))),
		m.remote.EXPECT().Get(gomock.Any()).Return(fetcher.Failure("timeout", nil)),
	)

	s := NewSession(NewOrchestrator(m.local, m.remote, m.archives, m.deployer, status.Discard))
	s.Check(context.Background())
	res := s.Check(context.Background())

	assert.True(t, res.Failed())
	assert.Equal(t, CheckFailed, s.State())
	assert.Equal(t, "1.1.0", s.RemoteVersion().String())
}

func TestSession_SingleFlightPatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newMocks(ctrl)
	target := appversion.MustParse("1.1.0")

	entered := make(chan struct{})
	release := make(chan struct{})

	m.local.EXPECT().Get().Return(appversion.MustParse("1.0.0"), nil)
	m.remote.EXPECT().Get(gomock.Any()).Return(fetcher.Success(target))
	m.archives.EXPECT().Fetch(gomock.Any(), target, gomock.Any()).Return(nil)
	m.deployer.EXPECT().Deploy(gomock.Any(), target, gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, appversion.Version, string, status.Sink) error {
			close(entered)
			<-release
			return nil
		})
	m.local.EXPECT().Store(gomock.Any(), target).Return(nil)

	s := NewSession(NewOrchestrator(m.local, m.remote, m.archives, m.deployer, status.Discard).WithWorkDir(t.TempDir()))
	require.True(t, s.Check(context.Background()).UpdateAvailable())

	type result struct {
		outcome Outcome
		err     error
	}
	first := make(chan result, 1)
	go func() {
		outcome, err := s.Patch(context.Background())
		first <- result{outcome, err}
	}()

	<-entered
	assert.True(t, s.IsPatching())
	assert.Equal(t, Patching, s.State())

	_, err := s.Patch(context.Background())
	assert.ErrorIs(t, err, ErrPatchInProgress)

	close(release)
	res := <-first
	require.NoError(t, res.err)
	assert.True(t, res.outcome.Success())
	assert.False(t, s.IsPatching())
	assert.Equal(t, Patched, s.State())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "update available", UpdateAvailable.String())
	assert.Equal(t, "patch failed", PatchFailed.String())
	assert.Equal(t, "invalid", State(42).String())
}
