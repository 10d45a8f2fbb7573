package locate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Veraticus/sprout/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile creates path (and its parents) under root.
func writeFile(t *testing.T, root, path string) string {
	t.Helper()
	full := filepath.Join(root, path)
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o750))
	require.NoError(t, os.WriteFile(full, []byte("a,b\n1,2\n"), 0o600))
	return full
}

func TestLocateCandidatePriority(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		want  string
	}{
		{
			name:  "root wins over data/processed",
			files: []string{"dashboard_ready.csv", "data/processed/dashboard_ready.csv"},
			want:  "dashboard_ready.csv",
		},
		{
			name:  "data/processed wins over dashboard",
			files: []string{"data/processed/dashboard_ready.csv", "dashboard/dashboard_ready.csv"},
			want:  "data/processed/dashboard_ready.csv",
		},
		{
			name:  "dashboard wins over search",
			files: []string{"dashboard/dashboard_ready.csv", "a/dashboard_ready.csv"},
			want:  "dashboard/dashboard_ready.csv",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			for _, f := range tt.files {
				writeFile(t, root, f)
			}

			got, err := New(root).Locate()
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(root, tt.want), got)
		})
	}
}

func TestLocateSearchOrder(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "b/dashboard_ready.csv")
	writeFile(t, root, "a/deep/dashboard_ready.csv")
	writeFile(t, root, ".hidden/dashboard_ready.csv")

	got, err := New(root).Locate()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "a", "deep", "dashboard_ready.csv"), got)
}

func TestLocateShallowFileBeforeSubdirectory(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "x/dashboard_ready.csv")
	writeFile(t, root, "x/a/dashboard_ready.csv")

	got, err := New(root).Locate()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "x", "dashboard_ready.csv"), got)
}

func TestLocateSkipsHiddenDirectories(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".git/dashboard_ready.csv")

	_, err := New(root).Locate()
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrSourceNotFound)
}

func TestLocateIgnoresDirectoryNamedLikeFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "dashboard_ready.csv"), 0o750))

	_, err := New(root).Locate()
	assert.ErrorIs(t, err, common.ErrSourceNotFound)
}

func TestLocateNotFound(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "data/other.csv")

	var visited []string
	_, err := New(root, WithVisit(func(dir string) { visited = append(visited, dir) })).Locate()
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrSourceNotFound)
	assert.Contains(t, err.Error(), "dashboard_ready.csv")
	assert.Equal(t, []string{root, filepath.Join(root, "data")}, visited)
}

func TestLocateOptions(t *testing.T) {
	l := New("", WithFilename("readings.csv"))
	assert.Equal(t, ".", l.Root())
	assert.Equal(t, []string{
		"readings.csv",
		filepath.Join("data", "processed", "readings.csv"),
		filepath.Join("dashboard", "readings.csv"),
	}, l.Candidates())

	root := t.TempDir()
	abs := writeFile(t, t.TempDir(), "elsewhere.csv")
	got, err := New(root, WithCandidates("missing.csv", abs)).Locate()
	require.NoError(t, err)
	assert.Equal(t, abs, got)
}
