package config

import (
	"fmt"

	"github.com/Veraticus/sprout/internal/common"
	"github.com/Veraticus/sprout/internal/locate"
	"github.com/Veraticus/sprout/internal/model"
	"github.com/spf13/viper"
)

// Settings controls where readings come from and how columns are matched.
type Settings struct {
	Roles      map[model.Role][]string
	File       string
	Root       string
	Filename   string
	Candidates []string
}

// DefaultSettings returns settings that locate dashboard_ready.csv under the
// working directory with the built-in keyword table.
func DefaultSettings() Settings {
	return Settings{
		Root:       ".",
		Filename:   locate.DefaultFilename,
		Candidates: locate.DefaultCandidates(),
	}
}

// FromViper loads settings from v. It follows this precedence:
// 1. Flags bound to v (source.file, source.root)
// 2. Configuration file or SPROUT_ environment variables
// 3. Default values
func FromViper(v *viper.Viper) (Settings, error) {
	s := DefaultSettings()

	if f := v.GetString("source.file"); f != "" {
		s.File = ExpandPath(f)
	}
	if r := v.GetString("source.root"); r != "" {
		s.Root = ExpandPath(r)
	}
	if name := v.GetString("source.filename"); name != "" {
		s.Filename = name
		s.Candidates = locate.New("", locate.WithFilename(name)).Candidates()
	}
	if candidates := v.GetStringSlice("source.candidates"); len(candidates) > 0 {
		s.Candidates = make([]string, len(candidates))
		for i, c := range candidates {
			s.Candidates[i] = ExpandPath(c)
		}
	}

	raw := v.GetStringMapStringSlice("roles")
	if len(raw) > 0 {
		s.Roles = make(map[model.Role][]string, len(raw))
		for name, keywords := range raw {
			role, err := model.ParseRole(name)
			if err != nil {
				return Settings{}, fmt.Errorf("%w: roles: %v", common.ErrInvalidConfig, err)
			}
			s.Roles[role] = keywords
		}
	}

	return s, nil
}

// Locator builds the source locator these settings describe.
func (s Settings) Locator(opts ...locate.Option) *locate.Locator {
	base := []locate.Option{
		locate.WithFilename(s.Filename),
		locate.WithCandidates(s.Candidates...),
	}
	return locate.New(s.Root, append(base, opts...)...)
}
