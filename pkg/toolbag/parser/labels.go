package parser

import (
	"regexp"
	"strings"

	"github.com/l-johnston/toolbag/pkg/toolbag/models"
)

// dataLabel is the '<name> (<unit>) - <legend>' grammar of delimited text files.
var dataLabel = regexp.MustCompile(`^(?P<name>[\p{L}\p{N}_]+)\s*(?P<unit>\(.+\))?( - )?(?P<legend>[\p{L}\p{N}_ ]+)?$`)

// ParseDataLabel decomposes a raw header token. When the token does not match
// the grammar only Raw is set and the axis stays reachable by label or index.
func ParseDataLabel(raw string) models.AxisLabel {
	axis := models.AxisLabel{Raw: raw}
	m := dataLabel.FindStringSubmatch(raw)
	if m == nil {
		return axis
	}
	if name := m[dataLabel.SubexpIndex("name")]; models.IsValidIdentifier(name) {
		axis.Name = name
	}
	if unit := strings.Trim(m[dataLabel.SubexpIndex("unit")], "()"); unit != "" {
		axis.Units = []string{unit}
	}
	axis.Legend = m[dataLabel.SubexpIndex("legend")]
	return axis
}

// ParseDataLabels parses each raw label in order.
func ParseDataLabels(raw []string) []models.AxisLabel {
	axes := make([]models.AxisLabel, len(raw))
	for i, r := range raw {
		axes[i] = ParseDataLabel(r)
	}
	return axes
}

// ParseColumnLabels builds axes that use each raw label verbatim as its legend,
// as AWR trace exports do.
func ParseColumnLabels(raw []string) []models.AxisLabel {
	axes := make([]models.AxisLabel, len(raw))
	for i, r := range raw {
		axes[i] = models.AxisLabel{Raw: r, Legend: r}
		if models.IsValidIdentifier(r) {
			axes[i].Name = r
		}
	}
	return axes
}
