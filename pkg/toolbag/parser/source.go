package parser

import (
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Encoding names reported by DecodeText.
const (
	EncodingUTF8        = "utf-8"
	EncodingWindows1252 = "windows-1252"
	EncodingUTF16LE     = "utf-16le"
)

// ReadFile reads a whole file. The handle is closed before any parsing starts.
func ReadFile(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read %s", path)
	}
	return b, nil
}

// ReadAll reads r to the end.
func ReadAll(r io.Reader) ([]byte, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "could not read input")
	}
	return b, nil
}

// DecodeText decodes b as UTF-8, dropping a byte order mark. Input that is not
// valid UTF-8 is decoded once more as Windows-1252.
func DecodeText(b []byte) (string, string, error) {
	if utf8.Valid(b) {
		text, err := unicode.UTF8BOM.NewDecoder().Bytes(b)
		if err == nil {
			return string(text), EncodingUTF8, nil
		}
	}
	text, err := charmap.Windows1252.NewDecoder().Bytes(b)
	if err != nil {
		return "", "", errors.Wrap(err, "could not decode text")
	}
	return string(text), EncodingWindows1252, nil
}

// SplitRows splits text into lines, trims surrounding whitespace from each
// line and splits it on delim. Blank lines at the end of the input are dropped.
func SplitRows(text string, delim string) [][]string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	rows := make([][]string, len(lines))
	for i, line := range lines {
		rows[i] = strings.Split(strings.TrimSpace(line), delim)
	}
	return rows
}
