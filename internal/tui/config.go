package tui

import (
	"github.com/Veraticus/sprout/internal/dashboard"
	"github.com/Veraticus/sprout/internal/tui/themes"
)

// ReloadFunc reopens the board from disk, bypassing the loader cache.
type ReloadFunc func() (*dashboard.Board, error)

// Config holds TUI configuration.
type Config struct {
	Theme    themes.Theme
	Reload   ReloadFunc
	Recorder *Recorder
	Window   dashboard.Window
	Width    int
	Height   int
	Step     int
	ShowHelp bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:  themes.Default,
		Width:  100,
		Height: 30,
		Step:   5,
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithWindow sets the initial row window.
func WithWindow(w dashboard.Window) Option {
	return func(c *Config) {
		c.Window = w
	}
}

// WithStep sets how many rows one key press moves the window.
func WithStep(step int) Option {
	return func(c *Config) {
		if step > 0 {
			c.Step = step
		}
	}
}

// WithReload enables the reload key.
func WithReload(fn ReloadFunc) Option {
	return func(c *Config) {
		c.Reload = fn
	}
}

// WithRecorder records every update to r.
func WithRecorder(r *Recorder) Option {
	return func(c *Config) {
		c.Recorder = r
	}
}
