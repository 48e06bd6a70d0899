package toolbag

import (
	"io"
	"log/slog"

	"github.com/l-johnston/toolbag/pkg/toolbag/models"
	"github.com/l-johnston/toolbag/pkg/toolbag/parser"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// ReadXLSX reads a workbook sheet laid out like LabVIEW delimited text.
func ReadXLSX(r io.Reader, opts Options) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, NewReadError("", FormatXLSX, errors.Wrap(err, "could not open workbook"))
	}
	defer f.Close()
	t, err := readWorkbook(f, opts)
	if err != nil {
		return nil, NewReadError("", FormatXLSX, err)
	}
	return t, nil
}

// ReadXLSXFile reads a workbook file. See ReadXLSX.
func ReadXLSXFile(path string, opts Options) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewReadError(path, FormatXLSX, errors.Wrapf(err, "could not open %s", path))
	}
	defer f.Close()
	t, err := readWorkbook(f, opts)
	if err != nil {
		return nil, NewReadError(path, FormatXLSX, err)
	}
	return t, nil
}

func readWorkbook(f *excelize.File, opts Options) (*Table, error) {
	sheetName := opts.Sheet
	if sheetName == "" {
		sheetName = f.GetSheetName(f.GetActiveSheetIndex())
	}

	var area *models.CellRange
	if opts.Range != "" {
		a, err := parser.ParseRange(opts.Range)
		if err != nil {
			return nil, err
		}
		area = a
	} else {
		area = parser.PrintArea(f, sheetName)
	}

	rows, sheetName, err := parser.SheetRows(f, sheetName, area)
	if err != nil {
		return nil, err
	}
	opts.logger().Debug("read worksheet", slog.String("sheet", sheetName), slog.Int("rows", len(rows)))
	return buildTable(rows, opts.blockOptions(","), opts)
}
