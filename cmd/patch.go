package cmd

import (
	"context"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/eopatcher/eopatcher/internal/installdir"
	"github.com/eopatcher/eopatcher/internal/launcher"
	"github.com/eopatcher/eopatcher/internal/settings"
)

var (
	launchAfterPatch bool
	launchOnFailure  bool
	patchCmd         = &cobra.Command{
		Use:   "patch",
		Short: "checks for a new version and applies it",
		RunE:  patchFunc,
	}
)

func init() {
	patchCmd.Flags().BoolVar(&launchAfterPatch, "launch", false, "launch the game once the installation is up to date")
	patchCmd.Flags().BoolVar(&launchOnFailure, "launch-on-failure", false, "with --launch, start the game even when patching failed")
}

func patchFunc(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	SetupCloseHandler(ctx, cancel)

	dir, err := resolveInstallDir()
	if err != nil {
		return err
	}

	session := newSession(cmd, dir)
	res := checkWithRetry(ctx, session)

	var patchErr error
	switch {
	case res.Failed():
		patchErr = res.Remote.Err()
	case res.UpdateAvailable():
		outcome, err := session.Patch(ctx)
		if err != nil {
			patchErr = err
		} else if !outcome.Success() {
			patchErr = outcome.Err()
		}
	}

	if patchErr != nil {
		log.Errorf("the installation could not be updated: %v", patchErr)
		if !launchAfterPatch || !launchOnFailure {
			return patchErr
		}
	}

	if !launchAfterPatch {
		return nil
	}
	return launchGame(dir)
}

func launchGame(dir string) error {
	params := settings.NewStore(settingsPath).Load().LaunchParameters
	exe := installdir.Exe(dir)
	log.Infof("launching %s", exe)
	return launcher.Start(exe, params)
}
