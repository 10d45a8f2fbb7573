package cli

import (
	"io"

	"github.com/schollz/progressbar/v3"
)

// SearchSpinner reports directories visited by the locator's recursive search.
type SearchSpinner struct {
	bar *progressbar.ProgressBar
}

// NewSearchSpinner creates a spinner writing to w.
func NewSearchSpinner(w io.Writer) *SearchSpinner {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetDescription("[cyan]Searching for readings file...[reset]"),
		progressbar.OptionClearOnFinish(),
	)
	return &SearchSpinner{bar: bar}
}

// Visit records one visited directory. It matches locate.WithVisit.
func (s *SearchSpinner) Visit(_ string) {
	_ = s.bar.Add(1)
}

// Finish clears the spinner.
func (s *SearchSpinner) Finish() {
	_ = s.bar.Finish()
}
