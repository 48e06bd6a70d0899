package parser

import "github.com/l-johnston/toolbag/pkg/toolbag/models"

// usedRange returns the smallest 1-based range holding every non-empty cell,
// or false when all cells are empty.
func usedRange(rows [][]string) (models.CellRange, bool) {
	var area models.CellRange
	found := false
	for r, row := range rows {
		for c, cell := range row {
			if cell == "" {
				continue
			}
			y, x := r+1, c+1
			if !found {
				area = models.CellRange{R1: y, C1: x, R2: y, C2: x}
				found = true
				continue
			}
			area.R1 = min(area.R1, y)
			area.R2 = max(area.R2, y)
			area.C1 = min(area.C1, x)
			area.C2 = max(area.C2, x)
		}
	}
	return area, found
}
