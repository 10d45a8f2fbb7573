package main

import (
	"github.com/Veraticus/sprout/internal/common"
	"github.com/Veraticus/sprout/internal/dashboard"
	"github.com/Veraticus/sprout/internal/tui"
	"github.com/spf13/cobra"
)

func dashboardCmd() *cobra.Command {
	var (
		from   int
		to     int
		step   int
		record bool
	)

	cmd := &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"ui"},
		Short:   "Open the interactive dashboard",
		Long: `Open the interactive terminal dashboard. Use the arrow keys to move the
trend window, [ and ] to resize it and r to re-read the readings file.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := loadSettings()
			if err != nil {
				return err
			}

			service := newService(settings)
			board, err := service.Open(settings.File)
			if err != nil {
				return userFacing(err, settings)
			}

			source := board.Dataset().Source()
			reload := func() (*dashboard.Board, error) {
				fresh, reloadErr := service.Reload(source)
				if reloadErr != nil {
					return nil, userFacing(reloadErr, settings)
				}
				return fresh, nil
			}

			recorder := tui.NewRecorder(record, "")
			defer recorder.Close()
			if dir := recorder.Dir(); dir != "" {
				common.LogDebug("Recording dashboard frames", common.Fields{"dir": dir})
			}

			return tui.Run(cmd.Context(), board,
				tui.WithWindow(dashboard.Window{From: from, To: to}),
				tui.WithStep(step),
				tui.WithReload(reload),
				tui.WithRecorder(recorder),
			)
		},
	}

	cmd.Flags().IntVar(&from, "from", 0, "first row of the trend window")
	cmd.Flags().IntVar(&to, "to", 0, "end of the trend window, exclusive (default: all rows)")
	cmd.Flags().IntVar(&step, "step", 5, "rows moved per key press")
	cmd.Flags().BoolVar(&record, "record", false, "record rendered frames to a temp directory for debugging")

	return cmd
}
