package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eopatcher/eopatcher/version"
)

var (
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "prints eopatcher version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.PatcherVersion())
		},
	}
)
