package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/eopatcher/eopatcher/formatter"
	"github.com/eopatcher/eopatcher/internal/appversion"
	"github.com/eopatcher/eopatcher/internal/installdir"
	"github.com/eopatcher/eopatcher/internal/settings"
	"github.com/eopatcher/eopatcher/internal/updatemanager"
	"github.com/eopatcher/eopatcher/internal/updatemanager/deployer"
	"github.com/eopatcher/eopatcher/internal/updatemanager/downloader"
	"github.com/eopatcher/eopatcher/internal/updatemanager/fetcher"
	"github.com/eopatcher/eopatcher/internal/updatemanager/status"
	"github.com/eopatcher/eopatcher/util"
	"github.com/eopatcher/eopatcher/version"
)

const (
	installDirFlag    = "install-dir"
	versionURLFlag    = "version-url"
	archiveURLFlag    = "archive-url"
	markerFlag        = "marker"
	workDirFlag       = "work-dir"
	maxCopiesFlag     = "max-copies"
	settingsFlag      = "settings"
	retriesFlag       = "retries"
	timeoutFlag       = "timeout"
	archiveSHA256Flag = "archive-sha256"
)

var (
	installDir    string
	versionURL    string
	archiveURL    string
	markerName    string
	workDir       string
	maxCopies     int
	settingsPath  string
	retries       uint64
	timeout       time.Duration
	archiveSHA256 string
	logLevel      string
	logFile       string
	logFormat     string
	rootCmd       = &cobra.Command{
		Use:               "eopatcher",
		Short:             "Keeps an Endless Online installation up to date",
		Long:              "eopatcher compares the installed game version with the published one, applies the patch archive and launches the game.",
		SilenceUsage:      true,
		PersistentPreRunE: preRun,
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&installDir, installDirFlag, "", "installation directory of the game. Detected from the working directory when empty")
	rootCmd.PersistentFlags().StringVar(&versionURL, versionURLFlag, version.DefaultVersionURL, "URL serving the published version as plain text")
	rootCmd.PersistentFlags().StringVar(&archiveURL, archiveURLFlag, version.DefaultArchiveURL, "URL of the patch archive. %version, %os and %arch are substituted")
	rootCmd.PersistentFlags().StringVar(&markerName, markerFlag, appversion.DefaultMarker, "name of the version marker file in the installation directory")
	rootCmd.PersistentFlags().StringVar(&workDir, workDirFlag, filepath.Join(os.TempDir(), "eopatcher"), "directory for downloads and staging")
	rootCmd.PersistentFlags().IntVar(&maxCopies, maxCopiesFlag, 0, "maximum number of files copied concurrently, 0 means unlimited")
	rootCmd.PersistentFlags().StringVar(&settingsPath, settingsFlag, settings.DefaultPath(), "patcher settings file")
	rootCmd.PersistentFlags().Uint64Var(&retries, retriesFlag, 0, "number of times a failed version check is retried")
	rootCmd.PersistentFlags().DurationVar(&timeout, timeoutFlag, 30*time.Second, "timeout of the version check request")
	rootCmd.PersistentFlags().StringVar(&archiveSHA256, archiveSHA256Flag, "", "expected SHA-256 of the patch archive, hex encoded")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info", "sets eopatcher log level")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", util.ConsoleLog, "sets eopatcher log path. If console is specified the log will be output to stderr")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", formatter.TextFormat, "sets eopatcher log format, text or json")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(patchCmd)
	rootCmd.AddCommand(launchCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(versionCmd)

	settingsCmd.AddCommand(settingsGetCmd, settingsSetCmd)
}

func preRun(cmd *cobra.Command, args []string) error {
	util.SetFlagsFromEnvVars(cmd.Root())

	if err := util.InitLog(logLevel, logFile, logFormat); err != nil {
		return fmt.Errorf("failed initializing log %v", err)
	}
	return nil
}

// SetupCloseHandler cancels the context on SIGINT or SIGTERM
func SetupCloseHandler(ctx context.Context, cancel context.CancelFunc) {
	termCh := make(chan os.Signal, 1)
	signal.Notify(termCh, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		defer signal.Stop(termCh)
		select {
		case <-ctx.Done():
		case <-termCh:
			log.Info("shutdown signal received")
			cancel()
		}
	}()
}

func resolveInstallDir() (string, error) {
	if installDir != "" {
		return installDir, nil
	}

	resolver, err := installdir.NewResolver()
	if err != nil {
		return "", err
	}
	dir := resolver.Resolve()
	log.Debugf("using installation directory %s", dir)
	return dir, nil
}

// newSession wires the production collaborators around an orchestrator that prints statuses to cmd
func newSession(cmd *cobra.Command, dir string) *updatemanager.Session {
	sink := status.Sink(func(s string) {
		fmt.Fprintln(cmd.OutOrStdout(), s)
	})

	var sourceOpts []downloader.Option
	if archiveSHA256 != "" {
		sourceOpts = append(sourceOpts, downloader.WithSHA256(archiveSHA256))
	}

	orchestrator := updatemanager.NewOrchestrator(
		appversion.NewLocalReader(dir, markerName),
		fetcher.NewHTTPFetcher(versionURL, &http.Client{Timeout: timeout}),
		downloader.NewHTTPSource(archiveURL, sourceOpts...),
		deployer.New(dir, workDir, maxCopies),
		sink,
	).WithWorkDir(workDir)

	return updatemanager.NewSession(orchestrator)
}
