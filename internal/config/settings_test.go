package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Veraticus/sprout/internal/common"
	"github.com/Veraticus/sprout/internal/locate"
	"github.com/Veraticus/sprout/internal/model"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViperDefaults(t *testing.T) {
	s, err := FromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, DefaultSettings(), s)
	assert.Equal(t, locate.DefaultFilename, s.Filename)
	assert.Empty(t, s.File)
	assert.Nil(t, s.Roles)
}

func TestFromViperConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
source:
  root: /srv/farm
  filename: readings.csv
roles:
  moisture: ["vwc", "soil water"]
  heat_stress: ["thi alert"]
`), 0o600))

	v := viper.New()
	v.SetConfigFile(cfgPath)
	require.NoError(t, v.ReadInConfig())

	s, err := FromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "/srv/farm", s.Root)
	assert.Equal(t, "readings.csv", s.Filename)
	assert.Equal(t, filepath.Join("data", "processed", "readings.csv"), s.Candidates[1])
	assert.Equal(t, []string{"vwc", "soil water"}, s.Roles[model.RoleMoisture])
	assert.Equal(t, []string{"thi alert"}, s.Roles[model.RoleHeatStress])

	l := s.Locator()
	assert.Equal(t, "/srv/farm", l.Root())
	assert.Equal(t, s.Candidates, l.Candidates())
}

func TestFromViperOverrides(t *testing.T) {
	t.Setenv("FARM_DIR", "/data/farm")

	v := viper.New()
	v.Set("source.file", "$FARM_DIR/today.csv")
	v.Set("source.candidates", []string{"a.csv", "b/a.csv"})

	s, err := FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "/data/farm/today.csv", s.File)
	assert.Equal(t, []string{"a.csv", "b/a.csv"}, s.Candidates)
}

func TestFromViperUnknownRole(t *testing.T) {
	v := viper.New()
	v.Set("roles", map[string]any{"rainfall": []string{"rain"}})

	_, err := FromViper(v)
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("SPROUT_TEST_DIR", "/tmp/x")

	assert.Equal(t, "", ExpandPath(""))
	assert.Equal(t, home, ExpandPath("~"))
	assert.Equal(t, filepath.Join(home, "data.csv"), ExpandPath("~/data.csv"))
	assert.Equal(t, "/tmp/x/data.csv", ExpandPath("$SPROUT_TEST_DIR/data.csv"))
}

func TestDisplayPath(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("data", "x.csv"), DisplayPath(filepath.Join(wd, "data", "x.csv")))

	outside := filepath.Join(filepath.Dir(wd), "elsewhere.csv")
	assert.Equal(t, outside, DisplayPath(outside))
}
