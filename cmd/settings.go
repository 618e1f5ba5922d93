package cmd

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/eopatcher/eopatcher/internal/settings"
)

var (
	settingsCmd = &cobra.Command{
		Use:   "settings",
		Short: "manages patcher settings",
	}

	settingsGetCmd = &cobra.Command{
		Use:   "get",
		Short: "prints the launch parameters",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			s := settings.NewStore(settingsPath).Load()
			fmt.Fprintln(cmd.OutOrStdout(), s.LaunchParameters)
		},
	}

	settingsSetCmd = &cobra.Command{
		Use:   "set [launch parameters]",
		Short: "stores the launch parameters, e.g. \"proton run\". Without arguments they are cleared",
		Run: func(cmd *cobra.Command, args []string) {
			store := settings.NewStore(settingsPath)
			s := store.Load()
			s.LaunchParameters = strings.Join(args, " ")

			if err := store.Save(cmd.Context(), s); err != nil {
				log.Errorf("failed to save settings to %s: %v", store.Path(), err)
				return
			}
			log.Debugf("settings saved to %s", store.Path())
		},
	}
)
