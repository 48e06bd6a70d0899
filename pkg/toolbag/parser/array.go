package parser

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// BlockOptions selects the format revision rules for a numeric block.
type BlockOptions struct {
	// Delimiter joins header cells back into header text.
	Delimiter string
	// PadRagged pads short rows with NaN instead of failing.
	PadRagged bool
	// BlankAsNaN lexes an empty cell inside the block as NaN.
	BlankAsNaN bool
}

// DefaultBlockOptions returns the rules of the current format revision.
func DefaultBlockOptions() BlockOptions {
	return BlockOptions{Delimiter: ",", PadRagged: true, BlankAsNaN: true}
}

// BuildArray lexes every cell of rows into a matrix with one matrix row per
// input row. firstLine is the 1-based source line of rows[0] and colOffset the
// number of cells removed from the left of every row, both used for error
// locations. When row lengths differ and padding is enabled the short rows are
// NaN-padded and the per-row lengths are returned; otherwise lengths is nil.
func BuildArray(rows [][]string, lex *Lexer, opts BlockOptions, firstLine, colOffset int) (*mat.Dense, []int, error) {
	width := 0
	ragged := false
	for i, row := range rows {
		if i > 0 && len(row) != len(rows[0]) {
			if !opts.PadRagged {
				return nil, nil, &RaggedRowsError{Line: firstLine + i, Got: len(row), Expected: len(rows[0])}
			}
			ragged = true
		}
		if len(row) > width {
			width = len(row)
		}
	}
	if len(rows) == 0 || width == 0 {
		return nil, nil, ErrNoData
	}

	data := make([]float64, len(rows)*width)
	var lengths []int
	if ragged {
		lengths = make([]int, len(rows))
	}
	for i, row := range rows {
		dst := data[i*width : (i+1)*width]
		for j, cell := range row {
			v, err := lexCell(cell, lex, opts)
			if err != nil {
				return nil, nil, &NonNumericInBlockError{Value: cell, Line: firstLine + i, Column: colOffset + j + 1}
			}
			dst[j] = v
		}
		for j := len(row); j < width; j++ {
			dst[j] = math.NaN()
		}
		if ragged {
			lengths[i] = len(row)
		}
	}
	return mat.NewDense(len(rows), width, data), lengths, nil
}

func lexCell(cell string, lex *Lexer, opts BlockOptions) (float64, error) {
	if cell == "" && opts.BlankAsNaN {
		return math.NaN(), nil
	}
	return lex.Parse(cell)
}
