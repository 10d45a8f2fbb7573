package load

import (
	"fmt"

	"github.com/Veraticus/sprout/internal/common"
)

// Reason classifies why a load failed.
type Reason int

const (
	// ReasonUnreadable means the path could not be read or is not tabular text.
	ReasonUnreadable Reason = iota
	// ReasonEmpty means the file parsed but has no records or no columns.
	ReasonEmpty
)

func (r Reason) String() string {
	switch r {
	case ReasonUnreadable:
		return "unreadable"
	case ReasonEmpty:
		return "empty"
	default:
		return fmt.Sprintf("reason(%d)", int(r))
	}
}

// LoadError reports a failed load. It matches common.ErrUnreadable or
// common.ErrEmptyDataset under errors.Is, depending on Reason.
type LoadError struct {
	Err    error
	Path   string
	Reason Reason
}

func newLoadError(path string, reason Reason, err error) *LoadError {
	return &LoadError{Path: path, Reason: reason, Err: err}
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("load %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("load %s: %s", e.Path, e.Reason)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is matches the common sentinel for the error's reason.
func (e *LoadError) Is(target error) bool {
	switch e.Reason {
	case ReasonUnreadable:
		return target == common.ErrUnreadable
	case ReasonEmpty:
		return target == common.ErrEmptyDataset
	default:
		return false
	}
}
