package main

import (
	"errors"
	"fmt"

	"github.com/Veraticus/sprout/internal/cli"
	"github.com/Veraticus/sprout/internal/common"
	"github.com/spf13/cobra"
)

func corrCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "corr",
		Aliases: []string{"correlation"},
		Short:   "Show the correlation heatmap of numeric columns",
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

			matrix, err := board.Aggregator().Correlation()
			if errors.Is(err, common.ErrInsufficientData) {
				if format != cli.FormatText {
					return cli.Encode(cmd.OutOrStdout(), format, cli.CorrelationReport{Insufficient: true})
				}
				fmt.Fprintln(cmd.OutOrStdout(), cli.FormatInfo("Not enough numeric columns for a correlation view"))
				return nil
			}
			if err != nil {
				return err
			}

			if format != cli.FormatText {
				return cli.Encode(cmd.OutOrStdout(), format, cli.NewCorrelationReport(matrix))
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.RenderBox(cli.ChartIcon+" Sensor correlation", cli.RenderCorrelation(matrix)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "o", cli.FormatText, "output format (text, json, yaml)")

	return cmd
}
