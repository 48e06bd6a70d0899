package parser

import (
	"fmt"

	"github.com/l-johnston/toolbag/pkg/toolbag/models"
	"github.com/xuri/excelize/v2"
)

// SheetRows returns the raw cell text of a worksheet, one slice per row.
// An empty sheetName selects the active sheet. When area is non-nil only the
// cells inside it are returned; otherwise the rows are cropped to the bounding
// box of non-empty cells.
func SheetRows(f *excelize.File, sheetName string, area *models.CellRange) ([][]string, string, error) {
	if sheetName == "" {
		sheetName = f.GetSheetName(f.GetActiveSheetIndex())
	}
	if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		return nil, sheetName, fmt.Errorf("sheet %q not found", sheetName)
	}
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, sheetName, err
	}

	if area == nil {
		used, ok := usedRange(rows)
		if !ok {
			return nil, sheetName, ErrNoData
		}
		area = &used
	}
	return cropRows(rows, *area), sheetName, nil
}

// cropRows keeps the cells inside area. Trailing empty cells of each row are
// dropped so that ragged sheets read like ragged delimited text.
func cropRows(rows [][]string, area models.CellRange) [][]string {
	var result [][]string
	for r := area.R1; r <= area.R2; r++ {
		var row []string
		if r-1 < len(rows) {
			row = rows[r-1]
		}
		var cells []string
		for c := area.C1; c <= area.C2; c++ {
			cell := ""
			if c-1 < len(row) {
				cell = row[c-1]
			}
			cells = append(cells, cell)
		}
		for len(cells) > 1 && cells[len(cells)-1] == "" {
			cells = cells[:len(cells)-1]
		}
		result = append(result, cells)
	}
	return result
}
