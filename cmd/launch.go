package cmd

import (
	"github.com/spf13/cobra"
)

var launchCmd = &cobra.Command{
	Use:   "launch",
	Short: "starts the game with the configured launch parameters",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveInstallDir()
		if err != nil {
			return err
		}
		return launchGame(dir)
	},
}
