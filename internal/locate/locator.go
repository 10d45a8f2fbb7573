// Package locate finds the sensor readings file under a working directory.
package locate

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Veraticus/sprout/internal/common"
)

// DefaultFilename is the readings export the dashboard consumes.
const DefaultFilename = "dashboard_ready.csv"

// DefaultCandidates returns the conventional locations, in priority order,
// relative to the search root.
func DefaultCandidates() []string {
	return []string{
		DefaultFilename,
		filepath.Join("data", "processed", DefaultFilename),
		filepath.Join("dashboard", DefaultFilename),
	}
}

// Locator discovers the readings file.
type Locator struct {
	visit      func(dir string)
	root       string
	filename   string
	candidates []string
}

// Option configures a Locator.
type Option func(*Locator)

// WithFilename changes the file searched for and rebuilds the conventional
// candidate list around it.
func WithFilename(name string) Option {
	return func(l *Locator) {
		if name == "" {
			return
		}
		l.filename = name
		l.candidates = []string{
			name,
			filepath.Join("data", "processed", name),
			filepath.Join("dashboard", name),
		}
	}
}

// WithCandidates replaces the ordered candidate paths.
func WithCandidates(paths ...string) Option {
	return func(l *Locator) {
		if len(paths) > 0 {
			l.candidates = append([]string(nil), paths...)
		}
	}
}

// WithVisit registers a callback invoked for every directory the recursive
// search enters.
func WithVisit(fn func(dir string)) Option {
	return func(l *Locator) {
		l.visit = fn
	}
}

// New creates a Locator rooted at root. An empty root means the current
// working directory.
func New(root string, opts ...Option) *Locator {
	if root == "" {
		root = "."
	}
	l := &Locator{
		root:       root,
		filename:   DefaultFilename,
		candidates: DefaultCandidates(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Candidates returns the ordered candidate paths.
func (l *Locator) Candidates() []string {
	return append([]string(nil), l.candidates...)
}

// Root returns the search root.
func (l *Locator) Root() string {
	return l.root
}

// Locate returns the path of the readings file. It checks the candidate list
// first and then searches the tree under root. When nothing matches it returns
// common.ErrSourceNotFound.
func (l *Locator) Locate() (string, error) {
	for _, candidate := range l.candidates {
		path := candidate
		if !filepath.IsAbs(path) {
			path = filepath.Join(l.root, candidate)
		}
		if isRegularFile(path) {
			common.LogDebug("Found readings file at candidate path", common.Fields{"path": path})
			return path, nil
		}
	}

	if path, ok := l.search(l.root); ok {
		common.LogDebug("Found readings file by search", common.Fields{"path": path, "root": l.root})
		return path, nil
	}

	return "", fmt.Errorf("%w: %s under %s", common.ErrSourceNotFound, l.filename, l.root)
}

// search walks dir top-down: the directory's own files before any
// subdirectory, entries in lexicographic order.
func (l *Locator) search(dir string) (string, bool) {
	if l.visit != nil {
		l.visit(dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		common.LogDebug("Skipping unreadable directory", common.Fields{"dir": dir, "error": err.Error()})
		return "", false
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	var subdirs []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			if !strings.HasPrefix(name, ".") {
				subdirs = append(subdirs, name)
			}
			continue
		}
		if name == l.filename && entry.Type()&fs.ModeType == 0 {
			return filepath.Join(dir, name), true
		}
	}

	for _, name := range subdirs {
		if path, ok := l.search(filepath.Join(dir, name)); ok {
			return path, true
		}
	}
	return "", false
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
