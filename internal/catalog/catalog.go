// Package catalog builds the fixed, sorted list of files a picker session
// works on.
package catalog

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"unicode/utf8"
)

// Entry is one regular file of the listed directory. Entries are values and
// never change once built; selection state lives in the session.
type Entry struct {
	Name    string
	Path    string
	Hidden  bool
	Ignored bool
	Size    int64
	ModTime time.Time
}

// Dim reports whether the entry should be drawn de-emphasised.
func (e Entry) Dim() bool {
	return e.Hidden || e.Ignored
}

// Catalog is the ordered entry set. Index order is identity for the lifetime
// of a session.
type Catalog []Entry

// Options tunes Build.
type Options struct {
	Logger *slog.Logger
}

// Option mutates Options.
type Option func(*Options)

// WithLogger routes skip/fallback diagnostics to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

func newOptions(opts []Option) Options {
	o := Options{Logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	return o
}

// Build lists the regular files of dir, flags them against m and returns them
// sorted. Only failing to read dir itself is an error.
func Build(dir string, m Matcher, opts ...Option) (Catalog, error) {
	o := newOptions(opts)
	if m == nil {
		m = Nothing
	}

	entries, err := List(dir, opts...)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i].Ignored = m.Match(entries[i].Name)
	}

	c := New(entries)
	o.Logger.Debug("catalog built", "dir", dir, "entries", len(c))
	return c, nil
}

// List enumerates dir and returns one Entry per regular file, following
// symlinks. Directories, symlinks to directories, entries that cannot be
// stat'ed and names that are not valid UTF-8 are skipped. The result is in
// directory order and Ignored is left false.
func List(dir string, opts ...Option) ([]Entry, error) {
	o := newOptions(opts)

	items, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	entries := make([]Entry, 0, len(items))
	for _, item := range items {
		name := item.Name()
		if !utf8.ValidString(name) {
			o.Logger.Debug("skipping undecodable name", "name", fmt.Sprintf("%q", name))
			continue
		}
		full := filepath.Join(dir, name)
		// os.Stat follows symlinks so a link to a file counts as a file.
		info, err := os.Stat(full)
		if err != nil {
			o.Logger.Debug("skipping unreadable entry", "path", full, "err", err)
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}
		entries = append(entries, Entry{
			Name:    name,
			Path:    full,
			Hidden:  strings.HasPrefix(name, "."),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}
	return entries, nil
}

// New returns entries ordered visible-first then hidden, each group sorted
// case-insensitively by name. The input slice is not modified.
func New(entries []Entry) Catalog {
	c := make(Catalog, len(entries))
	copy(c, entries)

	sort.SliceStable(c, func(i, j int) bool {
		if c[i].Hidden != c[j].Hidden {
			return !c[i].Hidden
		}
		return strings.ToLower(c[i].Name) < strings.ToLower(c[j].Name)
	})
	return c
}

// Names returns the entry names in catalog order.
func (c Catalog) Names() []string {
	out := make([]string, len(c))
	for i, e := range c {
		out[i] = e.Name
	}
	return out
}
