package tui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Veraticus/sprout/internal/tui/tuitest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderWritesFrames(t *testing.T) {
	dir := t.TempDir()
	rec := NewRecorder(true, dir)
	require.Equal(t, dir, rec.Dir())

	m := New(testBoard(t, 10), WithRecorder(rec), WithSize(120, 40))
	tuitest.Send(m, tuitest.KeyPress("["), tuitest.KeyRight())
	rec.Close()

	frame, err := os.ReadFile(filepath.Join(dir, "frame-0002.txt"))
	require.NoError(t, err)
	assert.Contains(t, tuitest.StripANSI(string(frame)), "Smart Village Farming Dashboard")

	log, err := os.ReadFile(filepath.Join(dir, "tui.log"))
	require.NoError(t, err)
	assert.True(t, tuitest.ContainsInOrder(string(log), "Frame 1", "[0, 5)", "Frame 2", "[5, 10)", "2 frames captured"))
}

func TestDisabledRecorder(t *testing.T) {
	rec := NewRecorder(false, "")
	assert.Empty(t, rec.Dir())

	m := New(testBoard(t, 3), WithRecorder(rec))
	tuitest.Send(m, tuitest.KeyRight())
	rec.Close()

	var nilRecorder *Recorder
	nilRecorder.RecordState(m, nil)
	nilRecorder.Close()
}
