package parser

import (
	"errors"
	"fmt"
)

// ErrParse matches every parse failure reported by this package.
var ErrParse = errors.New("parse error")

// ErrNotNumeric indicates a single token is not a number.
var ErrNotNumeric = errors.New("not numeric")

// ErrNoData indicates the input contains no numeric block.
var ErrNoData = fmt.Errorf("%w: no numeric data found", ErrParse)

// ErrNoBinaryMarker indicates a waveform file lacks the "Binary:" line.
var ErrNoBinaryMarker = fmt.Errorf(`%w: no "Binary:" marker found`, ErrParse)

// NonNumericInBlockError reports a cell inside the data block that failed to lex.
type NonNumericInBlockError struct {
	Value  string
	Line   int // 1-based source line
	Column int // 1-based cell index
}

func (e *NonNumericInBlockError) Error() string {
	return fmt.Sprintf("non numeric value %q found in data array at line %d, column %d", e.Value, e.Line, e.Column)
}

func (e *NonNumericInBlockError) Is(target error) bool { return target == ErrParse }

// RaggedRowsError reports rows of unequal length when padding is disabled.
type RaggedRowsError struct {
	Line     int
	Got      int
	Expected int
}

func (e *RaggedRowsError) Error() string {
	return fmt.Sprintf("row at line %d has %d values, expected %d", e.Line, e.Got, e.Expected)
}

func (e *RaggedRowsError) Is(target error) bool { return target == ErrParse }

// UnexpectedHeaderKeyError reports a waveform header line outside the known keys.
type UnexpectedHeaderKeyError struct {
	Key  string
	Line int
}

func (e *UnexpectedHeaderKeyError) Error() string {
	return fmt.Sprintf("unexpected header key %q at line %d", e.Key, e.Line)
}

func (e *UnexpectedHeaderKeyError) Is(target error) bool { return target == ErrParse }

// HeaderError reports a malformed value for a known waveform header key.
type HeaderError struct {
	Key  string
	Line int
	Err  error
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("invalid %q header at line %d: %v", e.Key, e.Line, e.Err)
}

func (e *HeaderError) Unwrap() error { return e.Err }

func (e *HeaderError) Is(target error) bool { return target == ErrParse }

// TruncatedPayloadError reports a payload that ends inside a record.
type TruncatedPayloadError struct {
	RecordSize int
	Remainder  int
}

func (e *TruncatedPayloadError) Error() string {
	return fmt.Sprintf("payload ends %d bytes into a %d byte record", e.Remainder, e.RecordSize)
}

func (e *TruncatedPayloadError) Is(target error) bool { return target == ErrParse }
