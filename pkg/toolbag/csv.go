package toolbag

import (
	"io"
	"log/slog"
	"os"

	"github.com/l-johnston/toolbag/pkg/toolbag/container"
	"github.com/l-johnston/toolbag/pkg/toolbag/models"
	"github.com/l-johnston/toolbag/pkg/toolbag/parser"
	"gonum.org/v1/gonum/mat"
)

// Table is the result of reading a delimited spreadsheet. Exactly one of
// Values, Matrix and Data is set: Values for an unlabeled single row or
// column, Matrix for an unlabeled 2-D block, Data when labels were found.
type Table struct {
	// Header is the text preceding the block, minus any consumed label line.
	Header string
	// Orientation records how the labels were found.
	Orientation models.Orientation
	// Values is the flattened block when it has a single row or column.
	Values []float64
	// Matrix is the unlabeled block in file layout.
	Matrix *mat.Dense
	// Data gives labeled, unit-aware access to the axes.
	Data *container.Container
}

// ReadCSV reads LabVIEW delimited spreadsheet text from r.
func ReadCSV(r io.Reader, opts Options) (*Table, error) {
	t, err := readCSV(r, opts)
	if err != nil {
		return nil, NewReadError("", FormatCSV, err)
	}
	return t, nil
}

// ReadCSVFile reads a LabVIEW delimited spreadsheet file.
func ReadCSVFile(path string, opts Options) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, NewReadError(path, FormatCSV, err)
	}
	t, err := readCSV(f, opts)
	f.Close()
	if err != nil {
		return nil, NewReadError(path, FormatCSV, err)
	}
	return t, nil
}

func readCSV(r io.Reader, opts Options) (*Table, error) {
	b, err := parser.ReadAll(r)
	if err != nil {
		return nil, err
	}
	text, enc, err := parser.DecodeText(b)
	if err != nil {
		return nil, err
	}
	bo := opts.blockOptions(",")
	opts.logger().Debug("decoded delimited text", slog.String("encoding", enc), slog.Int("bytes", len(b)))
	return buildTable(parser.SplitRows(text, bo.Delimiter), bo, opts)
}

// buildTable locates the block in rows and wraps it according to the
// orientation found.
func buildTable(rows [][]string, bo parser.BlockOptions, opts Options) (*Table, error) {
	block, err := parser.LocateBlock(rows, parser.SI, bo)
	if err != nil {
		return nil, err
	}
	r, c := block.Dims()
	opts.logger().Debug("located numeric block",
		slog.String("orientation", block.Orientation.String()),
		slog.Int("rows", r),
		slog.Int("columns", c),
		slog.Bool("ragged", block.Lengths != nil))

	t := &Table{Header: block.Header, Orientation: block.Orientation}
	if block.Orientation == models.Unknown {
		switch {
		case r == 1:
			t.Values = mat.Row(nil, 0, block.Data)
		case c == 1:
			t.Values = mat.Col(nil, 0, block.Data)
		default:
			t.Matrix = block.Data
		}
		return t, nil
	}

	data, err := container.New(block, parser.ParseDataLabels(block.Labels), container.WithRegistry(opts.registry()))
	if err != nil {
		return nil, err
	}
	t.Data = data
	return t, nil
}
