package cmd

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/eopatcher/eopatcher/internal/updatemanager"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "compares the installed version with the published one",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		SetupCloseHandler(ctx, cancel)

		dir, err := resolveInstallDir()
		if err != nil {
			return err
		}

		res := checkWithRetry(ctx, newSession(cmd, dir))
		if res.Failed() {
			return res.Remote.Err()
		}
		return nil
	},
}

// checkWithRetry repeats a failed version check up to --retries times with exponential backoff
func checkWithRetry(ctx context.Context, session *updatemanager.Session) updatemanager.CheckResult {
	var res updatemanager.CheckResult

	operation := func() error {
		res = session.Check(ctx)
		if res.Failed() {
			return res.Remote.Err()
		}
		return nil
	}

	b := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), retries), ctx)
	err := backoff.RetryNotify(operation, b, func(err error, d time.Duration) {
		log.Warnf("version check failed, retrying in %s: %v", d, err)
	})
	if err != nil {
		log.Debugf("version check gave up: %v", err)
	}
	return res
}
