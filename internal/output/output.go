// Package output prints the picked paths.
package output

import (
	"fmt"
	"io"
	"path/filepath"
)

// Exit codes for the two ways a pick ends.
const (
	ExitConfirmed = 0
	ExitCancelled = 130 // POSIX "terminated by SIGINT"
	ExitFailure   = 1
)

// Relative expresses path relative to base. When that is impossible the
// absolute path is returned, and failing that the path as given.
func Relative(base, path string) string {
	abs := path
	if a, err := filepath.Abs(path); err == nil {
		abs = a
	}
	absBase, err := filepath.Abs(base)
	if err != nil {
		return abs
	}
	rel, err := filepath.Rel(absBase, abs)
	if err != nil {
		return abs
	}
	return rel
}

// Write prints one path per line, each relative to base.
func Write(w io.Writer, base string, paths []string) error {
	for _, p := range paths {
		if _, err := fmt.Fprintln(w, Relative(base, p)); err != nil {
			return fmt.Errorf("write selection: %w", err)
		}
	}
	return nil
}
