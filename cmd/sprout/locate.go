package main

import (
	"fmt"

	"github.com/Veraticus/sprout/internal/cli"
	"github.com/Veraticus/sprout/internal/config"
	"github.com/Veraticus/sprout/internal/locate"
	"github.com/spf13/cobra"
)

func locateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locate",
		Short: "Find the readings file",
		Long: `Search the well-known locations and then the directory tree for the
readings file, and print the first match.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := loadSettings()
			if err != nil {
				return err
			}

			if settings.File != "" {
				fmt.Fprintln(cmd.OutOrStdout(), settings.File)
				return nil
			}

			spinner := cli.NewSearchSpinner(cmd.ErrOrStderr())
			path, err := settings.Locator(locate.WithVisit(spinner.Visit)).Locate()
			spinner.Finish()
			if err != nil {
				return userFacing(err, settings)
			}

			fmt.Fprintln(cmd.OutOrStdout(), config.DisplayPath(path))
			return nil
		},
	}
}
