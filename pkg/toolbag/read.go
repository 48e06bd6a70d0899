package toolbag

import (
	"path/filepath"
	"strings"

	"github.com/l-johnston/toolbag/pkg/toolbag/container"
)

// Result is the outcome of Read. Table is set for FormatCSV and FormatXLSX,
// Waveform for FormatLTRaw and Data for every labeled result.
type Result struct {
	Path     string
	Format   Format
	Table    *Table
	Waveform *Waveform
	Data     *container.Container
}

// DetectFormat returns the format implied by the extension of path.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	case ".txt":
		return FormatLTxt, nil
	case ".raw":
		return FormatLTRaw, nil
	default:
		return FormatAuto, NewReadError(path, FormatAuto, ErrUnknownFormat)
	}
}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatAuto, FormatCSV, FormatXLSX, FormatLTxt, FormatLTRaw, FormatTraceData:
		return f, nil
	default:
		return FormatAuto, ErrUnknownFormat
	}
}

// Read reads path with the reader for opts.Format, or for the file extension
// when no format is given.
func Read(path string, opts Options) (*Result, error) {
	format := opts.Format
	if format == FormatAuto {
		f, err := DetectFormat(path)
		if err != nil {
			return nil, err
		}
		format = f
	}

	res := &Result{Path: path, Format: format}
	switch format {
	case FormatCSV:
		t, err := ReadCSVFile(path, opts)
		if err != nil {
			return nil, err
		}
		res.Table, res.Data = t, t.Data
	case FormatXLSX:
		t, err := ReadXLSXFile(path, opts)
		if err != nil {
			return nil, err
		}
		res.Table, res.Data = t, t.Data
	case FormatLTxt:
		c, err := ReadLTxtFile(path, opts)
		if err != nil {
			return nil, err
		}
		res.Data = c
	case FormatLTRaw:
		w, err := ReadLTRaw(path, opts)
		if err != nil {
			return nil, err
		}
		res.Waveform, res.Data = w, w.Container
	case FormatTraceData:
		c, err := ReadTraceDataFile(path, opts)
		if err != nil {
			return nil, err
		}
		res.Data = c
	default:
		return nil, NewReadError(path, format, ErrUnknownFormat)
	}
	return res, nil
}
