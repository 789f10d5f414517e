package session

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zackbart/sharkit/internal/catalog"
)

// fakeReader serves file contents from memory and counts reads.
type fakeReader struct {
	files map[string]string
	reads int
}

func (f *fakeReader) ReadText(path string) (string, error) {
	f.reads++
	c, ok := f.files[path]
	if !ok {
		return "", errors.New("no such file")
	}
	return c, nil
}

func catalogOf(names ...string) catalog.Catalog {
	entries := make([]catalog.Entry, len(names))
	for i, n := range names {
		entries[i] = catalog.Entry{Name: n, Path: n, Hidden: strings.HasPrefix(n, ".")}
	}
	return catalog.New(entries)
}

func newTestSession(names ...string) (*Session, *fakeReader) {
	r := &fakeReader{files: map[string]string{}}
	for _, n := range names {
		r.files[n] = "contents of " + n
	}
	return New(catalogOf(names...), WithReader(r)), r
}

func TestNewStartsAtFirstEntry(t *testing.T) {
	s, r := newTestSession("b.txt", "a.txt")

	assert.Equal(t, 0, s.Cursor())
	assert.Equal(t, "contents of a.txt", s.Preview())
	assert.True(t, s.PreviewIsContent())
	assert.True(t, s.ShowPreview())
	assert.Equal(t, 0, s.SelectedCount())
	assert.Equal(t, 1, r.reads)
}

func TestMoveWrapsAround(t *testing.T) {
	for n := 1; n <= 5; n++ {
		names := make([]string, n)
		for i := range names {
			names[i] = string(rune('a' + i))
		}
		s, _ := newTestSession(names...)

		for start := 0; start < n; start++ {
			s.SelectOnly(start)
			s.MoveUp()
			s.MoveDown()
			assert.Equal(t, start, s.Cursor(), "up/down from %d of %d", start, n)
			s.MoveDown()
			s.MoveUp()
			assert.Equal(t, start, s.Cursor(), "down/up from %d of %d", start, n)
		}
	}
}

func TestMoveUpFromTopGoesToLast(t *testing.T) {
	s, _ := newTestSession("a", "b", "c")
	s.MoveUp()
	assert.Equal(t, 2, s.Cursor())
	assert.Equal(t, "contents of c", s.Preview())
}

func TestMoveDownFromLastGoesToTop(t *testing.T) {
	s, _ := newTestSession("a", "b")
	s.MoveDown()
	s.MoveDown()
	assert.Equal(t, 0, s.Cursor())
	assert.Equal(t, "contents of a", s.Preview())
}

func TestToggleCurrentTwiceRestores(t *testing.T) {
	s, r := newTestSession("a", "b", "c")
	s.MoveDown()
	reads := r.reads

	s.ToggleCurrent()
	assert.Equal(t, 1, s.SelectedCount())
	assert.Equal(t, []string{"b"}, s.SelectedPaths())
	assert.Equal(t, 1, s.Cursor())

	s.ToggleCurrent()
	assert.Equal(t, 0, s.SelectedCount())
	assert.Equal(t, 1, s.Cursor())

	// selection never re-reads the preview
	assert.Equal(t, reads, r.reads)
}

func TestSelectAllAndNone(t *testing.T) {
	s, _ := newTestSession("a", "b", "c", ".d")

	s.SelectAll()
	assert.Equal(t, s.Len(), s.SelectedCount())
	assert.Equal(t, []string{"a", "b", "c", ".d"}, s.SelectedPaths())

	s.SelectNone()
	assert.Equal(t, 0, s.SelectedCount())
	assert.Empty(t, s.SelectedPaths())
}

func TestSelectOnlyClamps(t *testing.T) {
	tests := []struct {
		name string
		size int
		n    int
		want int
	}{
		{"first", 3, 0, 0},
		{"middle", 3, 1, 1},
		{"past end", 3, 8, 2},
		{"single", 1, 5, 0},
		{"negative", 3, -1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			names := make([]string, tt.size)
			for i := range names {
				names[i] = string(rune('a' + i))
			}
			s, _ := newTestSession(names...)
			s.SelectAll()

			s.SelectOnly(tt.n)

			assert.Equal(t, 1, s.SelectedCount())
			assert.Equal(t, tt.want, s.Cursor())
			assert.True(t, s.items[tt.want].selected)
			assert.Equal(t, "contents of "+names[tt.want], s.Preview())
		})
	}
}

func TestSelectLast(t *testing.T) {
	s, _ := newTestSession("a", "b", "c")
	s.SelectLast()
	assert.Equal(t, []string{"c"}, s.SelectedPaths())
	assert.Equal(t, 2, s.Cursor())
}

func TestTogglePreview(t *testing.T) {
	s, _ := newTestSession("a")
	s.TogglePreview()
	assert.False(t, s.ShowPreview())
	s.TogglePreview()
	assert.True(t, s.ShowPreview())

	hidden := New(catalogOf("a"), WithReader(&fakeReader{}), WithPreviewVisible(false))
	assert.False(t, hidden.ShowPreview())
}

func TestEmptyCatalog(t *testing.T) {
	s := New(nil, WithReader(&fakeReader{}))

	assert.Equal(t, NoFilesText, s.Preview())
	assert.False(t, s.PreviewIsContent())
	assert.Equal(t, -1, s.Cursor())

	s.MoveUp()
	s.MoveDown()
	s.ToggleCurrent()
	s.SelectOnly(3)
	s.SelectLast()
	s.SelectAll()

	assert.Equal(t, -1, s.Cursor())
	assert.Equal(t, 0, s.SelectedCount())
	assert.Empty(t, s.SelectedPaths())
	assert.Equal(t, NoFilesText, s.Preview())

	_, ok := s.Current()
	assert.False(t, ok)
}

func TestPreviewReadError(t *testing.T) {
	s := New(catalogOf("gone"), WithReader(&fakeReader{files: map[string]string{}}))
	assert.Equal(t, "Error reading file: no such file", s.Preview())
	assert.False(t, s.PreviewIsContent())
}

func TestPreviewFromDisk(t *testing.T) {
	dir := t.TempDir()
	write := func(name string, data []byte) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, data, 0o644))
		return p
	}

	long := strings.Repeat("x", 11000)
	tests := []struct {
		name    string
		data    []byte
		want    string
		content bool
	}{
		{"abc", []byte("abc"), "abc", true},
		{"empty", nil, EmptyFileText, false},
		{"long", []byte(long), long[:10000] + "\n\n... (truncated, file is 11000 bytes)", true},
		{"exact", []byte(long[:10000]), long[:10000], true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := write(tt.name, tt.data)
			s := New(catalog.Catalog{{Name: tt.name, Path: p}})
			assert.Equal(t, tt.want, s.Preview())
			assert.Equal(t, tt.content, s.PreviewIsContent())
		})
	}
}

func TestPreviewTruncatesByCharacter(t *testing.T) {
	content := strings.Repeat("é", 10001)
	got := truncatePreview(content)

	head, notice, ok := strings.Cut(got, "\n\n")
	require.True(t, ok)
	assert.Equal(t, strings.Repeat("é", 10000), head)
	assert.Equal(t, "... (truncated, file is 20002 bytes)", notice)
}

func TestPreviewBinaryFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "img.png")
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\xff\xfe")
	require.NoError(t, os.WriteFile(p, png, 0o644))

	s := New(catalog.Catalog{{Name: "img.png", Path: p}})
	assert.True(t, strings.HasPrefix(s.Preview(), "Error reading file: not a text file ("), s.Preview())
	assert.False(t, s.PreviewIsContent())
}

func TestPreviewMissingFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "vanished")
	s := New(catalog.Catalog{{Name: "vanished", Path: p}})
	assert.Contains(t, s.Preview(), "Error reading file:")
	assert.Contains(t, s.Preview(), "no such file or directory")
}

func TestSnapshot(t *testing.T) {
	entries := []catalog.Entry{
		{Name: "a.txt", Path: "a.txt", Size: 3},
		{Name: "b.log", Path: "b.log", Ignored: true},
		{Name: ".c", Path: ".c", Hidden: true},
	}
	s := New(catalog.New(entries), WithReader(&fakeReader{files: map[string]string{"a.txt": "abc"}}))
	s.ToggleCurrent()

	snap := s.Snapshot()

	require.Len(t, snap.Rows, 3)
	assert.Equal(t, " [✓] a.txt", snap.Rows[0].Line)
	assert.Equal(t, " [ ] b.log", snap.Rows[1].Line)
	assert.False(t, snap.Rows[0].Dim)
	assert.True(t, snap.Rows[1].Dim)
	assert.True(t, snap.Rows[2].Dim)
	assert.Equal(t, 0, snap.Cursor)
	assert.Equal(t, 1, snap.SelectedCount)
	assert.Equal(t, 3, snap.Total)
	assert.Equal(t, "abc", snap.Preview)
	assert.True(t, snap.HasFocus)
	assert.Equal(t, "a.txt", snap.Focus.Name)
	assert.Equal(t, int64(3), snap.Focus.Size)

	// snapshots are detached from later mutations
	s.SelectNone()
	assert.True(t, snap.Rows[0].Selected)
}

func TestSnapshotEmpty(t *testing.T) {
	snap := New(nil).Snapshot()
	assert.Empty(t, snap.Rows)
	assert.Equal(t, -1, snap.Cursor)
	assert.False(t, snap.HasFocus)
	assert.Equal(t, NoFilesText, snap.Preview)
}
