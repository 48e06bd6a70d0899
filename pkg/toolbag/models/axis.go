// Package models defines data structures shared by the toolbag readers.
package models

import "regexp"

// validIdentifier matches names usable as programmatic keys.
var validIdentifier = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// IsValidIdentifier reports whether s can serve as an axis name.
func IsValidIdentifier(s string) bool {
	return validIdentifier.MatchString(s)
}

// Form describes the shape of the view an axis produces.
type Form int

const (
	// FormReal axes yield one real array.
	FormReal Form = iota
	// FormCartesian axes yield one complex array whose parts share a unit.
	FormCartesian
	// FormPolar axes yield a (magnitude in dB, phase in degrees) pair.
	FormPolar
)

func (f Form) String() string {
	switch f {
	case FormReal:
		return "real"
	case FormCartesian:
		return "cartesian"
	case FormPolar:
		return "polar"
	default:
		return "unknown"
	}
}

// AxisLabel describes one labeled row or column of a dataset.
type AxisLabel struct {
	// Raw is the header token as it appeared in the file.
	Raw string `json:"label"`
	// Name is the programmatic name, empty if none can be derived.
	Name string `json:"name,omitempty"`
	// Units holds zero (dimensionless), one, or two (complex axis) unit symbols.
	Units []string `json:"units,omitempty"`
	// Legend is the optional descriptive text.
	Legend string `json:"legend,omitempty"`
	// Form is the view shape of the axis.
	Form Form `json:"-"`
}

// Unit returns the first unit symbol, or "" when dimensionless.
func (a AxisLabel) Unit() string {
	if len(a.Units) == 0 {
		return ""
	}
	return a.Units[0]
}
