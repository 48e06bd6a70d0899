package parser

import (
	"fmt"
	"strings"

	"github.com/l-johnston/toolbag/pkg/toolbag/models"
	"github.com/xuri/excelize/v2"
)

const printAreaName = "_xlnm.Print_Area"

// PrintArea returns the first print area defined for sheetName, or nil.
func PrintArea(f *excelize.File, sheetName string) *models.CellRange {
	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, printAreaName) {
			continue
		}
		if area, ok := sheetArea(dn.RefersTo, sheetName); ok {
			return &area
		}
	}
	return nil
}

// sheetArea picks the first range of ref that belongs to sheetName. ref is a
// comma separated list of 'Sheet'!$A$1:$D$10 references.
func sheetArea(ref, sheetName string) (models.CellRange, bool) {
	for _, part := range strings.Split(ref, ",") {
		bang := strings.LastIndex(part, "!")
		if bang < 0 {
			continue
		}
		if strings.Trim(strings.TrimSpace(part[:bang]), "'") != sheetName {
			continue
		}
		if area, err := ParseRange(part[bang+1:]); err == nil {
			return *area, true
		}
	}
	return models.CellRange{}, false
}

// ParseRange parses an A1-style range such as "A1:D10" or "$A$1:$D$10". The
// corners may be given in either order.
func ParseRange(s string) (*models.CellRange, error) {
	first, last, ok := strings.Cut(strings.ReplaceAll(strings.TrimSpace(s), "$", ""), ":")
	if !ok {
		return nil, fmt.Errorf("invalid cell range %q: expected two corners", s)
	}
	c1, r1, err := excelize.CellNameToCoordinates(first)
	if err != nil {
		return nil, fmt.Errorf("invalid cell range %q: %w", s, err)
	}
	c2, r2, err := excelize.CellNameToCoordinates(last)
	if err != nil {
		return nil, fmt.Errorf("invalid cell range %q: %w", s, err)
	}
	return &models.CellRange{R1: min(r1, r2), C1: min(c1, c2), R2: max(r1, r2), C2: max(c1, c2)}, nil
}
