package output

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelative(t *testing.T) {
	base := t.TempDir()

	tests := []struct {
		name string
		path string
		want string
	}{
		{"inside", filepath.Join(base, "a.txt"), "a.txt"},
		{"nested", filepath.Join(base, "sub", "b.txt"), filepath.Join("sub", "b.txt")},
		{"sibling", filepath.Join(filepath.Dir(base), "other.txt"), filepath.Join("..", "other.txt")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Relative(base, tt.path))
		})
	}
}

func TestRelativeFromWorkingDir(t *testing.T) {
	t.Chdir(t.TempDir())
	assert.Equal(t, "a.txt", Relative(".", "a.txt"))
	assert.Equal(t, filepath.Join("docs", "b.md"), Relative(".", filepath.Join("docs", "b.md")))
}

func TestWrite(t *testing.T) {
	base := t.TempDir()
	var buf bytes.Buffer

	err := Write(&buf, base, []string{filepath.Join(base, "a.txt"), filepath.Join(base, "b.txt")})
	require.NoError(t, err)

	assert.Equal(t, "a.txt\nb.txt\n", buf.String())
}

func TestWriteNothing(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, ".", nil))
	assert.Empty(t, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestWriteError(t *testing.T) {
	err := Write(failingWriter{}, ".", []string{"a"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "closed pipe")
}
