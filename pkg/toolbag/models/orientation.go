package models

// Orientation tells whether the axes of a block run along rows or columns of
// the source file.
type Orientation int

const (
	// Unknown means no usable label set was found.
	Unknown Orientation = iota
	// Row means each physical row is one labeled axis.
	Row
	// Column means each physical column is one labeled axis.
	Column
)

func (o Orientation) String() string {
	switch o {
	case Row:
		return "row"
	case Column:
		return "column"
	default:
		return "unknown"
	}
}
