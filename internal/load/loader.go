package load

import (
	"fmt"
	"os"
	"sync"

	"github.com/Veraticus/sprout/internal/common"
	"github.com/Veraticus/sprout/internal/model"
	"golang.org/x/sync/singleflight"
)

// ParseFunc turns the file at path into a dataset.
type ParseFunc func(path string) (*model.Dataset, error)

// Loader parses readings files and keeps each dataset for the life of the
// process. Concurrent first loads of one path share a single parse.
type Loader struct {
	entries map[string]*model.Dataset
	parse   ParseFunc
	group   singleflight.Group
	mu      sync.RWMutex
}

// Option configures a Loader.
type Option func(*Loader)

// WithParseFunc replaces the file parser.
func WithParseFunc(fn ParseFunc) Option {
	return func(l *Loader) {
		if fn != nil {
			l.parse = fn
		}
	}
}

// NewLoader creates a loader with an empty cache.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		entries: make(map[string]*model.Dataset),
		parse:   ReadFile,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load returns the dataset for path, parsing it on first use. Failures are
// returned as *LoadError and are not cached.
func (l *Loader) Load(path string) (*model.Dataset, error) {
	if ds, ok := l.get(path); ok {
		return ds, nil
	}

	v, err, shared := l.group.Do(path, func() (any, error) {
		if ds, ok := l.get(path); ok {
			return ds, nil
		}

		ds, err := l.parse(path)
		if err != nil {
			return nil, err
		}

		l.mu.Lock()
		l.entries[path] = ds
		l.mu.Unlock()

		common.LogDebug("Loaded readings file", common.Fields{
			"path":    path,
			"rows":    ds.Len(),
			"columns": ds.Width(),
		})
		return ds, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		common.LogDebug("Shared in-flight load", common.Fields{"path": path})
	}

	return v.(*model.Dataset), nil
}

// Reload drops any cached dataset for path and parses it again.
func (l *Loader) Reload(path string) (*model.Dataset, error) {
	l.mu.Lock()
	delete(l.entries, path)
	l.mu.Unlock()
	l.group.Forget(path)

	return l.Load(path)
}

// Cached reports how many datasets the loader holds.
func (l *Loader) Cached() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

func (l *Loader) get(path string) (*model.Dataset, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	ds, ok := l.entries[path]
	return ds, ok
}

// ReadFile opens and parses a readings file.
func ReadFile(path string) (*model.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newLoadError(path, ReasonUnreadable, err)
	}
	defer func() {
		_ = f.Close()
	}()

	info, err := f.Stat()
	if err != nil {
		return nil, newLoadError(path, ReasonUnreadable, err)
	}
	if info.IsDir() {
		return nil, newLoadError(path, ReasonUnreadable, fmt.Errorf("%s is a directory", path))
	}

	return Parse(path, f)
}
