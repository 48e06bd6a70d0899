package models

import "gonum.org/v1/gonum/mat"

// ParsedBlock is the located numeric region of a file.
//
// For Row and Column orientation the first matrix dimension indexes axes. For
// Unknown orientation the matrix keeps the layout of the file.
type ParsedBlock struct {
	// Data holds real-valued blocks.
	Data *mat.Dense
	// Complex holds complex-valued waveform blocks. Exactly one of Data and
	// Complex is set.
	Complex *mat.CDense
	// Lengths is the sample count of each axis of a ragged row-oriented block;
	// nil when every axis spans the full width.
	Lengths []int
	// Orientation records how the axes were found.
	Orientation Orientation
	// Header is the text preceding the block, lines joined by "\n".
	Header string
	// Labels are the raw label tokens, nil for Unknown orientation.
	Labels []string
}

// Dims returns the matrix shape.
func (b *ParsedBlock) Dims() (r, c int) {
	if b.Complex != nil {
		return b.Complex.Dims()
	}
	if b.Data == nil {
		return 0, 0
	}
	return b.Data.Dims()
}

// IsComplex reports whether the block holds complex values.
func (b *ParsedBlock) IsComplex() bool {
	return b.Complex != nil
}
