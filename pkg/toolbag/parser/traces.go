package parser

import (
	"regexp"
	"strings"

	"github.com/l-johnston/toolbag/pkg/toolbag/models"
	"github.com/l-johnston/toolbag/pkg/toolbag/units"
	"gonum.org/v1/gonum/mat"
)

var (
	// atomicTrace matches the trace atoms LTspice writes into label lines.
	atomicTrace = regexp.MustCompile(`time|Freq.|frequency|freq|omega|V\(\w+\)|I\(\w+\)`)
	// simpleTrace matches a bare node voltage or branch current.
	simpleTrace = regexp.MustCompile(`^([VI])\((\w+)\)$`)
)

// traceUnit maps an atom to the unit symbol it stands for in a label
// expression, plus the canonical display word for frequency atoms.
func traceUnit(atom string) (unit, display string) {
	switch {
	case atom == "time":
		return "s", ""
	case atom == "frequency" || atom == "freq" || strings.HasPrefix(atom, "Freq"):
		return "Hz", "frequency"
	case strings.HasPrefix(atom, "V"):
		return "V", ""
	case strings.HasPrefix(atom, "I"):
		return "A", ""
	default:
		return "", ""
	}
}

// ParseTraceLabel decomposes an LTspice text-export label. firstValue is the
// label's cell in the first data row and selects the axis form: "a,b" is
// cartesian, "(a dB,b°)" polar, anything else real. Unit expressions that the
// registry cannot resolve leave the axis dimensionless.
func ParseTraceLabel(raw, firstValue string, reg *units.Registry) models.AxisLabel {
	if reg == nil {
		reg = units.Default
	}
	expr := raw
	label := raw
	for _, atom := range atomicTrace.FindAllString(raw, -1) {
		unit, display := traceUnit(atom)
		if unit == "" {
			continue
		}
		expr = strings.ReplaceAll(expr, atom, unit)
		if display != "" {
			label = strings.ReplaceAll(label, atom, display)
		}
	}

	var unit string
	if u, err := reg.Parse(expr); err == nil && !u.IsDimensionless() {
		unit = u.Symbol
	}

	axis := models.AxisLabel{Raw: label, Name: traceName(label), Legend: label}
	switch iscomplex, ispolar := traceForm(firstValue); {
	case !iscomplex:
		axis.Form = models.FormReal
		if unit != "" {
			axis.Units = []string{unit}
		}
	case ispolar:
		axis.Form = models.FormPolar
		axis.Units = []string{"dB", "degree"}
	default:
		axis.Form = models.FormCartesian
		axis.Units = []string{unit, unit}
	}
	return axis
}

// traceName derives the programmatic name of a trace label.
func traceName(label string) string {
	if models.IsValidIdentifier(label) {
		return label
	}
	if m := simpleTrace.FindStringSubmatch(label); m != nil {
		return m[1] + "_" + m[2]
	}
	return ""
}

func traceForm(value string) (iscomplex, ispolar bool) {
	ispolar = strings.HasPrefix(value, "(")
	iscomplex = len(splitTraceValue(value)) == 2
	return iscomplex, ispolar
}

// splitTraceValue splits a cell into its components, dropping the polar
// decorations "(", ")", "dB" and "°".
func splitTraceValue(value string) []string {
	parts := strings.Split(strings.Trim(value, "()"), ",")
	for i, p := range parts {
		parts[i] = strings.Trim(strings.TrimSpace(p), "dB°")
	}
	return parts
}

// variableUnits maps declared raw-file variable types to units.
var variableUnits = map[string]string{
	"time":      "s",
	"voltage":   "V",
	"current":   "A",
	"frequency": "Hz",
}

// variableUnit returns the unit of a declared variable type. Device and
// subcircuit currents ("device_current", "subckt_current") are amperes.
func variableUnit(typ string) (string, bool) {
	if unit, ok := variableUnits[typ]; ok {
		return unit, true
	}
	if strings.HasSuffix(typ, "_current") {
		return "A", true
	}
	return "", false
}

var latexEscaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`_`, `\_`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`&`, `\&`,
	`{`, `\{`,
	`}`, `\}`,
	`^`, `\^{}`,
	`~`, `\~{}`,
)

// ParseVariableLabel builds the axis of a declared raw-file variable. Unknown
// types are dimensionless and get a LaTeX-escaped legend.
func ParseVariableLabel(v models.Variable, iscomplex bool) models.AxisLabel {
	axis := models.AxisLabel{Raw: v.Name, Name: traceName(v.Name), Legend: v.Name}
	unit, known := variableUnit(v.Type)
	if !known {
		axis.Legend = latexEscaper.Replace(v.Name)
	}
	if iscomplex {
		axis.Form = models.FormCartesian
		axis.Units = []string{unit, unit}
		return axis
	}
	if unit != "" {
		axis.Units = []string{unit}
	}
	return axis
}

// BuildTraceBlock lexes the data rows of a trace export into a column-oriented
// block, one matrix row per axis. Complex cells are read according to the
// form of their axis. firstLine is the 1-based source line of rows[0].
func BuildTraceBlock(rows [][]string, axes []models.AxisLabel, lex *Lexer, opts BlockOptions, firstLine int) (*models.ParsedBlock, error) {
	labels := make([]string, len(axes))
	complexBlock := false
	for i, a := range axes {
		labels[i] = a.Raw
		if a.Form != models.FormReal {
			complexBlock = true
		}
	}

	if !complexBlock {
		data, _, err := BuildArray(rows, lex, opts, firstLine, 0)
		if err != nil {
			return nil, err
		}
		if _, c := data.Dims(); c != len(axes) {
			return nil, &RaggedRowsError{Line: firstLine, Got: c, Expected: len(axes)}
		}
		return &models.ParsedBlock{
			Data:        mat.DenseCopyOf(data.T()),
			Orientation: models.Column,
			Labels:      labels,
		}, nil
	}

	if len(rows) == 0 {
		return nil, ErrNoData
	}
	n, points := len(axes), len(rows)
	values := make([]complex128, n*points)
	for p, row := range rows {
		if len(row) != n {
			return nil, &RaggedRowsError{Line: firstLine + p, Got: len(row), Expected: n}
		}
		for i, cell := range row {
			z, err := parseTraceValue(cell, axes[i].Form, lex)
			if err != nil {
				return nil, &NonNumericInBlockError{Value: cell, Line: firstLine + p, Column: i + 1}
			}
			values[i*points+p] = z
		}
	}
	return &models.ParsedBlock{
		Complex:     mat.NewCDense(n, points, values),
		Orientation: models.Column,
		Labels:      labels,
	}, nil
}

// parseTraceValue reads one cell. Polar cells keep (dB, degree) as the real
// and imaginary parts.
func parseTraceValue(cell string, form models.Form, lex *Lexer) (complex128, error) {
	if form == models.FormReal {
		v, err := lex.Parse(cell)
		return complex(v, 0), err
	}
	parts := splitTraceValue(cell)
	if len(parts) != 2 {
		return 0, ErrNotNumeric
	}
	re, err := lex.Parse(parts[0])
	if err != nil {
		return 0, err
	}
	im, err := lex.Parse(parts[1])
	if err != nil {
		return 0, err
	}
	return complex(re, im), nil
}
