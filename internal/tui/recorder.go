package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Recorder captures dashboard state changes and rendered frames for debugging.
type Recorder struct {
	logFile  *os.File
	frameDir string
	frameNum int
	enabled  bool
}

// NewRecorder creates a recorder writing under dir. An empty dir uses a new
// directory in the system temp dir. A disabled recorder does nothing.
func NewRecorder(enabled bool, dir string) *Recorder {
	if !enabled {
		return &Recorder{enabled: false}
	}

	if dir == "" {
		dir = filepath.Join(os.TempDir(), fmt.Sprintf("sprout-record-%d", time.Now().Unix()))
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return &Recorder{enabled: false}
	}

	logPath := filepath.Join(dir, "tui.log")
	logFile, err := os.Create(filepath.Clean(logPath)) // #nosec G304 -- safe constructed path
	if err != nil {
		return &Recorder{enabled: false}
	}

	r := &Recorder{
		enabled:  true,
		logFile:  logFile,
		frameDir: dir,
	}

	r.Log("Recorder started at %s", dir)
	return r
}

// Dir returns the recording directory, empty when disabled.
func (r *Recorder) Dir() string {
	return r.frameDir
}

// RecordState logs msg and the resulting window, then saves the rendered view.
func (r *Recorder) RecordState(model Model, msg tea.Msg) {
	if r == nil || !r.enabled {
		return
	}

	r.frameNum++

	r.Log("\n=== Frame %d ===", r.frameNum)
	r.Log("Time: %s", time.Now().Format("15:04:05.000"))
	r.Log("Message Type: %T", msg)
	r.Log("Window: %s of %d rows", model.window, model.snapshot.Rows)
	if model.lastError != nil {
		r.Log("Last error: %v", model.lastError)
	}

	view := model.View()
	framePath := filepath.Join(r.frameDir, fmt.Sprintf("frame-%04d.txt", r.frameNum))
	if err := os.WriteFile(framePath, []byte(view), 0600); err != nil {
		r.Log("Error saving frame: %v", err)
	}
}

// Log writes to the log file.
func (r *Recorder) Log(format string, args ...any) {
	if r == nil || !r.enabled || r.logFile == nil {
		return
	}

	if _, err := fmt.Fprintf(r.logFile, format+"\n", args...); err != nil {
		return
	}
	_ = r.logFile.Sync()
}

// Close closes the recorder.
func (r *Recorder) Close() {
	if r == nil || r.logFile == nil {
		return
	}
	r.Log("Recording complete. %d frames captured.", r.frameNum)
	_ = r.logFile.Close()
	r.logFile = nil
}
