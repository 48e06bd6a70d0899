package parser

import (
	"errors"
	"strings"

	"github.com/l-johnston/toolbag/pkg/toolbag/models"
	"gonum.org/v1/gonum/mat"
)

// LocateBlock finds the numeric block inside rows of delimited cells.
//
// Leading rows whose last cell is not a number form the header. If the first
// cell of the first block row is not a number, the first column holds row
// labels. Otherwise, when the last header line has one cell per block column,
// it is taken as column labels. Column-oriented blocks are transposed so that
// the first matrix dimension always indexes axes.
func LocateBlock(rows [][]string, lex *Lexer, opts BlockOptions) (*models.ParsedBlock, error) {
	headerEnd := findHeaderEnd(rows, lex)
	if headerEnd == len(rows) {
		return nil, ErrNoData
	}
	block := rows[headerEnd:]
	header := rows[:headerEnd]

	labelColumn := isLabelCell(block[0][0], lex)
	values := block
	colOffset := 0
	var rowLabels []string
	var lines []int
	if labelColumn {
		// Blank lines between labelled rows are skipped. lines maps each kept
		// row back to its source line.
		values = make([][]string, 0, len(block))
		rowLabels = make([]string, 0, len(block))
		lines = make([]int, 0, len(block))
		for i, row := range block {
			if isBlankRow(row) {
				continue
			}
			rowLabels = append(rowLabels, row[0])
			values = append(values, row[1:])
			lines = append(lines, headerEnd+1+i)
		}
		colOffset = 1
	}

	data, lengths, err := BuildArray(values, lex, opts, 1, colOffset)
	if err != nil {
		return nil, relocate(err, lines, headerEnd)
	}
	r, c := data.Dims()

	pb := &models.ParsedBlock{Orientation: models.Unknown}
	switch {
	case labelColumn && len(rowLabels) == r:
		pb.Orientation = models.Row
		pb.Labels = rowLabels
		pb.Lengths = lengths
	case !labelColumn && len(header) > 0 && len(header[len(header)-1]) == c:
		pb.Orientation = models.Column
		pb.Labels = header[len(header)-1]
		header = header[:len(header)-1]
		data = mat.DenseCopyOf(data.T())
	}
	pb.Data = data
	pb.Header = joinHeader(header, opts.Delimiter)
	return pb, nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}

// relocate rewrites the 1-based row index in a BuildArray error to a source
// line, through lines when rows were skipped and by offset otherwise.
func relocate(err error, lines []int, offset int) error {
	line := func(n int) int {
		if lines != nil && n >= 1 && n <= len(lines) {
			return lines[n-1]
		}
		return offset + n
	}
	var nonNumeric *NonNumericInBlockError
	if errors.As(err, &nonNumeric) {
		nonNumeric.Line = line(nonNumeric.Line)
	}
	var ragged *RaggedRowsError
	if errors.As(err, &ragged) {
		ragged.Line = line(ragged.Line)
	}
	return err
}

// findHeaderEnd returns the index of the first row whose last cell is a number.
func findHeaderEnd(rows [][]string, lex *Lexer) int {
	for i, row := range rows {
		if len(row) > 0 && lex.Probe(row[len(row)-1]) {
			return i
		}
	}
	return len(rows)
}

// isLabelCell reports whether cell is a label rather than a (possibly blank) value.
func isLabelCell(cell string, lex *Lexer) bool {
	return cell != "" && !lex.Probe(cell)
}

func joinHeader(lines [][]string, delim string) string {
	if delim == "" {
		delim = ","
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = strings.Join(line, delim)
	}
	return strings.Join(out, "\n")
}
