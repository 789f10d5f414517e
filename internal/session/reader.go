package session

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
)

// Reader loads the text shown in the preview pane.
type Reader interface {
	ReadText(path string) (string, error)
}

// ReaderFunc adapts a function to Reader.
type ReaderFunc func(path string) (string, error)

func (f ReaderFunc) ReadText(path string) (string, error) { return f(path) }

// FileReader reads whole files from disk and refuses anything that is not
// UTF-8 text.
type FileReader struct{}

func (FileReader) ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("not a text file (%s)", mimetype.Detect(data).String())
	}
	return string(data), nil
}
