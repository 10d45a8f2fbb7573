package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/sprout/internal/cli"
	"github.com/Veraticus/sprout/internal/common"
	"github.com/Veraticus/sprout/internal/config"
	"github.com/Veraticus/sprout/internal/dashboard"
	"github.com/Veraticus/sprout/internal/load"
	"github.com/Veraticus/sprout/internal/resolve"
	"github.com/spf13/viper"
)

// datasetLoader is the process-wide dataset cache.
var datasetLoader = load.NewLoader()

// loadSettings reads source and role settings from viper.
func loadSettings() (config.Settings, error) {
	return config.FromViper(viper.GetViper())
}

// newService wires the locator, loader and keyword table for settings.
func newService(settings config.Settings) *dashboard.Service {
	table := resolve.DefaultTable().Merge(settings.Roles)
	return dashboard.NewService(settings.Locator(), datasetLoader, table)
}

// openBoard locates (unless --file is set), loads and resolves the readings.
func openBoard(settings config.Settings) (*dashboard.Board, error) {
	board, err := newService(settings).Open(settings.File)
	if err != nil {
		return nil, userFacing(err, settings)
	}
	return board, nil
}

// userFacing turns data-absence errors into actionable messages.
func userFacing(err error, settings config.Settings) error {
	if !common.IsRecoverable(err) {
		return err
	}

	switch {
	case errors.Is(err, common.ErrSourceNotFound):
		return common.NewUserError(fmt.Sprintf(
			"Could not find %s. Put it in %s or pass --file",
			settings.Filename, strings.Join(settings.Candidates, ", ")), err)
	case errors.Is(err, common.ErrEmptyDataset):
		return common.NewUserError("The readings file has no data rows", err)
	case errors.Is(err, common.ErrUnreadable):
		return common.NewUserError("The readings file could not be read as CSV", err)
	default:
		return err
	}
}

// validateFormat checks an --format value.
func validateFormat(format string) error {
	switch format {
	case cli.FormatText, cli.FormatJSON, cli.FormatYAML:
		return nil
	default:
		return fmt.Errorf("%w: invalid format %q (text, json, yaml)", common.ErrInvalidConfig, format)
	}
}
