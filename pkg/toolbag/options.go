// Package toolbag reads lab-instrument and EDA-tool export files into a
// uniform, unit-aware data model.
package toolbag

import (
	"log/slog"

	"github.com/l-johnston/toolbag/pkg/toolbag/parser"
	"github.com/l-johnston/toolbag/pkg/toolbag/units"
)

// Format names an input file format.
type Format string

const (
	// FormatAuto selects the format from the file extension.
	FormatAuto Format = ""
	// FormatCSV is LabVIEW delimited spreadsheet text.
	FormatCSV Format = "csv"
	// FormatXLSX is an Excel workbook laid out like FormatCSV.
	FormatXLSX Format = "xlsx"
	// FormatLTxt is an LTspice text export.
	FormatLTxt Format = "ltxt"
	// FormatLTRaw is an LTspice binary raw file.
	FormatLTRaw Format = "ltraw"
	// FormatTraceData is AWR Microwave Office graph trace data.
	FormatTraceData Format = "awr"
)

// Revision selects the rules of a format revision.
type Revision string

const (
	// RevisionCurrent pads ragged rows and reads blank cells as NaN.
	RevisionCurrent Revision = "current"
	// RevisionLegacy rejects ragged rows and blank cells.
	RevisionLegacy Revision = "legacy"
)

// Options configures reading behavior.
type Options struct {
	// Format forces the input format. FormatAuto uses the file extension.
	Format Format
	// Revision selects the format revision rules.
	Revision Revision
	// Delimiter overrides the cell delimiter of delimited text.
	// If empty, "," for CSV and "\t" for the tab-delimited formats.
	Delimiter string
	// PadRagged specifies whether rows of unequal length are NaN-padded.
	// If nil, defaults to true unless Revision is legacy.
	PadRagged *bool
	// BlankAsNaN specifies whether a blank cell inside the block reads as NaN.
	// If nil, defaults to true unless Revision is legacy.
	BlankAsNaN *bool
	// Sheet is the workbook sheet to read. If empty, the active sheet.
	Sheet string
	// Range restricts a workbook read to a cell range such as "A1:D10".
	// If empty, the sheet's print area, otherwise its used range.
	Range string
	// Logger receives debug and warning records. If nil, slog.Default().
	Logger *slog.Logger
	// Units resolves unit symbols. If nil, units.Default.
	Units *units.Registry
}

// DefaultOptions returns options for the current format revision.
func DefaultOptions() Options {
	return Options{
		Revision: RevisionCurrent,
	}
}

// LegacyOptions returns options for the earlier format revision, which had
// neither ragged-row padding nor blank cells.
func LegacyOptions() Options {
	return Options{
		Revision: RevisionLegacy,
	}
}

// ShouldPadRagged returns whether ragged rows are NaN-padded.
func (o Options) ShouldPadRagged() bool {
	if o.PadRagged != nil {
		return *o.PadRagged
	}
	return o.Revision != RevisionLegacy
}

// ShouldBlankAsNaN returns whether blank cells read as NaN.
func (o Options) ShouldBlankAsNaN() bool {
	if o.BlankAsNaN != nil {
		return *o.BlankAsNaN
	}
	return o.Revision != RevisionLegacy
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}

func (o Options) registry() *units.Registry {
	if o.Units == nil {
		return units.Default
	}
	return o.Units
}

func (o Options) blockOptions(defaultDelimiter string) parser.BlockOptions {
	delim := o.Delimiter
	if delim == "" {
		delim = defaultDelimiter
	}
	return parser.BlockOptions{
		Delimiter:  delim,
		PadRagged:  o.ShouldPadRagged(),
		BlankAsNaN: o.ShouldBlankAsNaN(),
	}
}
