package main

import (
	"fmt"

	"github.com/Veraticus/sprout/internal/cli"
	"github.com/spf13/cobra"
)

func rolesCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "roles",
		Short: "Show which column was picked for each sensor role",
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

			source := board.Dataset().Source()
			if format != cli.FormatText {
				return cli.Encode(cmd.OutOrStdout(), format, cli.NewBindingReport(source, board.Binding()))
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatTitle("Column roles for "+source))
			fmt.Fprintln(cmd.OutOrStdout(), cli.RenderBinding(board.Binding()))
			if missing := board.Binding().Unresolved(); len(missing) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), cli.FormatWarning(fmt.Sprintf("%d role(s) have no matching column", len(missing))))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Every role has a column"))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "o", cli.FormatText, "output format (text, json, yaml)")

	return cmd
}
