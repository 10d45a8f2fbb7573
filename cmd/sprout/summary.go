package main

import (
	"fmt"

	"github.com/Veraticus/sprout/internal/cli"
	"github.com/Veraticus/sprout/internal/dashboard"
	"github.com/spf13/cobra"
)

func summaryCmd() *cobra.Command {
	var (
		from   int
		to     int
		format string
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the latest readings, alerts and moisture trend",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}

			settings, err := loadSettings()
			if err != nil {
				return err
			}

			board, err := openBoard(settings)
			if err != nil {
				return err
			}

			snap := board.Snapshot(dashboard.Window{From: from, To: to})
			if format == cli.FormatText {
				fmt.Fprintln(cmd.OutOrStdout(), cli.RenderSnapshot(snap))
				return nil
			}
			return cli.Encode(cmd.OutOrStdout(), format, cli.NewReport(snap))
		},
	}

	cmd.Flags().IntVar(&from, "from", 0, "first row of the trend window")
	cmd.Flags().IntVar(&to, "to", 0, "end of the trend window, exclusive (default: all rows)")
	cmd.Flags().StringVarP(&format, "format", "o", cli.FormatText, "output format (text, json, yaml)")

	return cmd
}
