package session

import (
	"time"
)

const (
	markSelected   = "✓"
	markUnselected = " "
)

// Row is one list line as the renderer should draw it.
type Row struct {
	Line     string
	Name     string
	Selected bool
	Dim      bool
}

// Focus describes the entry under the cursor for the preview header.
type Focus struct {
	Name    string
	Size    int64
	ModTime time.Time
}

// Snapshot is everything needed to draw one frame. It never aliases
// session state.
type Snapshot struct {
	Rows             []Row
	Cursor           int
	HasFocus         bool
	Focus            Focus
	Preview          string
	PreviewIsContent bool
	ShowPreview      bool
	SelectedCount    int
	Total            int
}

// RowLine formats the list line for an entry name.
func RowLine(name string, selected bool) string {
	mark := markUnselected
	if selected {
		mark = markSelected
	}
	return " [" + mark + "] " + name
}

// Snapshot captures the current display state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Rows:             make([]Row, len(s.items)),
		Cursor:           s.Cursor(),
		Preview:          s.preview,
		PreviewIsContent: s.isContent,
		ShowPreview:      s.showPreview,
		Total:            len(s.items),
	}
	for i, it := range s.items {
		snap.Rows[i] = Row{
			Line:     RowLine(it.entry.Name, it.selected),
			Name:     it.entry.Name,
			Selected: it.selected,
			Dim:      it.entry.Dim(),
		}
		if it.selected {
			snap.SelectedCount++
		}
	}
	if e, ok := s.Current(); ok {
		snap.HasFocus = true
		snap.Focus = Focus{Name: e.Name, Size: e.Size, ModTime: e.ModTime}
	}
	return snap
}
