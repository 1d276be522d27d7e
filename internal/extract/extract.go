// Package extract reads quiz source documents from disk. It is a thin
// file-format adapter: it returns raw text or fails, nothing more.
package extract

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

// ErrUnsupportedFormat reports a file extension the adapter cannot
// handle.
type ErrUnsupportedFormat struct {
	Ext string
}

func (e *ErrUnsupportedFormat) Error() string {
	return fmt.Sprintf("unsupported file format %q (want .txt or .pdf)", e.Ext)
}

// FromFile reads the document at path and returns its plain text and
// the source format ("txt" or "pdf"). Empty extracted text is
// reported as an error so callers can treat it as an empty document.
func FromFile(path string) (text, format string, err error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))

	switch ext {
	case "txt":
		text, err = readText(path)
	case "pdf":
		text, err = readPDF(path)
	default:
		return "", "", &ErrUnsupportedFormat{Ext: ext}
	}
	if err != nil {
		return "", ext, err
	}

	if strings.TrimSpace(text) == "" {
		return "", ext, fmt.Errorf("no text extracted from %s", path)
	}
	return text, ext, nil
}

// readText reads a plain-text file, decoding as UTF-8 with a Latin-1
// fallback for legacy files.
func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	if utf8.Valid(data) {
		return string(data), nil
	}

	// Latin-1: every byte maps directly to the same code point.
	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b)
	}
	return string(runes), nil
}

// readPDF extracts the plain text of every page.
func readPDF(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var buf bytes.Buffer
	content, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extracting text from %s: %w", path, err)
	}
	if _, err := buf.ReadFrom(content); err != nil {
		return "", fmt.Errorf("reading text of %s: %w", path, err)
	}
	return buf.String(), nil
}
