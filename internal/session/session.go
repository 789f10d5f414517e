// Package session holds the navigation, selection and preview state of one
// picker run.
package session

import (
	"fmt"
	"unicode/utf8"

	"github.com/zackbart/sharkit/internal/catalog"
)

const (
	// MaxPreviewChars caps how many characters of a file are kept for preview.
	MaxPreviewChars = 10000

	NoFilesText   = "no files available"
	EmptyFileText = "<empty file>"
)

type item struct {
	entry    catalog.Entry
	selected bool
}

// Session is the mutable state over a fixed catalog. It is not safe for
// concurrent use; the event loop owns it.
type Session struct {
	items       []item
	cursor      int
	preview     string
	isContent   bool
	showPreview bool
	reader      Reader
}

// Option configures a Session at construction.
type Option func(*Session)

// WithReader replaces the file reader used for previews.
func WithReader(r Reader) Option {
	return func(s *Session) {
		if r != nil {
			s.reader = r
		}
	}
}

// WithPreviewVisible sets the initial preview pane visibility.
func WithPreviewVisible(v bool) Option {
	return func(s *Session) { s.showPreview = v }
}

// New starts a session on c with the cursor on the first entry and nothing
// selected. The preview for the cursor is computed immediately.
func New(c catalog.Catalog, opts ...Option) *Session {
	s := &Session{
		items:       make([]item, len(c)),
		showPreview: true,
		reader:      FileReader{},
	}
	for i, e := range c {
		s.items[i] = item{entry: e}
	}
	for _, opt := range opts {
		opt(s)
	}
	s.refreshPreview()
	return s
}

// Len is the number of entries.
func (s *Session) Len() int { return len(s.items) }

// Cursor is the highlighted index, or -1 when there are no entries.
func (s *Session) Cursor() int {
	if len(s.items) == 0 {
		return -1
	}
	return s.cursor
}

// Current returns the entry under the cursor.
func (s *Session) Current() (catalog.Entry, bool) {
	if len(s.items) == 0 {
		return catalog.Entry{}, false
	}
	return s.items[s.cursor].entry, true
}

// Preview is the memoized preview text for the entry under the cursor.
func (s *Session) Preview() string { return s.preview }

// PreviewIsContent reports whether Preview holds file content rather than a
// placeholder or error message.
func (s *Session) PreviewIsContent() bool { return s.isContent }

// ShowPreview reports whether the preview pane should be drawn.
func (s *Session) ShowPreview() bool { return s.showPreview }

// MoveUp moves the cursor one entry up, wrapping to the last entry.
func (s *Session) MoveUp() {
	if len(s.items) == 0 {
		return
	}
	if s.cursor == 0 {
		s.cursor = len(s.items) - 1
	} else {
		s.cursor--
	}
	s.refreshPreview()
}

// MoveDown moves the cursor one entry down, wrapping to the first entry.
func (s *Session) MoveDown() {
	if len(s.items) == 0 {
		return
	}
	s.cursor = (s.cursor + 1) % len(s.items)
	s.refreshPreview()
}

// ToggleCurrent flips the selection of the entry under the cursor.
func (s *Session) ToggleCurrent() {
	if len(s.items) == 0 {
		return
	}
	s.items[s.cursor].selected = !s.items[s.cursor].selected
}

// SelectAll marks every entry selected.
func (s *Session) SelectAll() {
	for i := range s.items {
		s.items[i].selected = true
	}
}

// SelectNone clears every selection.
func (s *Session) SelectNone() {
	for i := range s.items {
		s.items[i].selected = false
	}
}

// SelectOnly clears the selection, then selects the entry at n and moves the
// cursor there. n past the end clamps to the last entry.
func (s *Session) SelectOnly(n int) {
	s.SelectNone()
	if len(s.items) == 0 {
		return
	}
	idx := min(max(n, 0), len(s.items)-1)
	s.items[idx].selected = true
	s.cursor = idx
	s.refreshPreview()
}

// SelectLast is SelectOnly on the final entry.
func (s *Session) SelectLast() {
	if len(s.items) == 0 {
		return
	}
	s.SelectOnly(len(s.items) - 1)
}

// TogglePreview flips preview pane visibility. The preview text is kept.
func (s *Session) TogglePreview() {
	s.showPreview = !s.showPreview
}

// SelectedPaths returns the paths of selected entries in catalog order.
func (s *Session) SelectedPaths() []string {
	var out []string
	for _, it := range s.items {
		if it.selected {
			out = append(out, it.entry.Path)
		}
	}
	return out
}

// SelectedCount is the number of selected entries.
func (s *Session) SelectedCount() int {
	n := 0
	for _, it := range s.items {
		if it.selected {
			n++
		}
	}
	return n
}

func (s *Session) refreshPreview() {
	s.preview, s.isContent = derivePreview(s.items, s.cursor, s.reader)
}

func derivePreview(items []item, cursor int, r Reader) (string, bool) {
	if len(items) == 0 {
		return NoFilesText, false
	}
	content, err := r.ReadText(items[cursor].entry.Path)
	if err != nil {
		return fmt.Sprintf("Error reading file: %v", err), false
	}
	if content == "" {
		return EmptyFileText, false
	}
	return truncatePreview(content), true
}

// truncatePreview keeps the first MaxPreviewChars characters of content and
// appends a notice carrying the original byte length.
func truncatePreview(content string) string {
	if utf8.RuneCountInString(content) <= MaxPreviewChars {
		return content
	}
	cut, n := 0, 0
	for i := range content {
		if n == MaxPreviewChars {
			cut = i
			break
		}
		n++
	}
	return fmt.Sprintf("%s\n\n... (truncated, file is %d bytes)", content[:cut], len(content))
}
