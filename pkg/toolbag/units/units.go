// Package units provides physical units for parsed axes: a registry of named
// units, an expression parser for composite symbols such as "V/m" or "kg*m**2",
// and unit-attached arrays.
package units

import (
	"fmt"
	"math"
	"strings"
)

// Base dimensions. Ratio covers logarithmic units (dB, dBm) and Angle covers
// plane angles so that dB and degree are not silently dimensionless.
const (
	Mass = iota
	Length
	Time
	Current
	Temperature
	Amount
	Luminosity
	Angle
	Ratio
	numDimensions
)

var dimensionSymbols = [numDimensions]string{"kg", "m", "s", "A", "K", "mol", "cd", "rad", "dB"}

// Dimension is the exponent of each base dimension.
type Dimension [numDimensions]int

func (d Dimension) add(o Dimension, sign int) Dimension {
	for i := range d {
		d[i] += sign * o[i]
	}
	return d
}

func (d Dimension) scale(n int) Dimension {
	for i := range d {
		d[i] *= n
	}
	return d
}

// IsZero reports whether the dimension is dimensionless.
func (d Dimension) IsZero() bool {
	return d == Dimension{}
}

// String renders the dimension in base units, e.g. "kg*m**2/(A*s**3)".
func (d Dimension) String() string {
	var num, den []string
	for i, p := range d {
		switch {
		case p == 1:
			num = append(num, dimensionSymbols[i])
		case p > 1:
			num = append(num, fmt.Sprintf("%s**%d", dimensionSymbols[i], p))
		case p == -1:
			den = append(den, dimensionSymbols[i])
		case p < -1:
			den = append(den, fmt.Sprintf("%s**%d", dimensionSymbols[i], -p))
		}
	}
	s := strings.Join(num, "*")
	if s == "" {
		s = "1"
	}
	switch len(den) {
	case 0:
		return s
	case 1:
		return s + "/" + den[0]
	default:
		return s + "/(" + strings.Join(den, "*") + ")"
	}
}

// Unit is a named unit with its conversion factor to the base dimension.
type Unit struct {
	// Symbol is the unit as written, e.g. "mV" or "V/m". Empty means dimensionless.
	Symbol string
	// Scale converts a value in this unit to base units.
	Scale float64
	// Dim is the unit's dimension.
	Dim Dimension
}

// Dimensionless returns the unit of pure numbers.
func Dimensionless() Unit {
	return Unit{Scale: 1}
}

// IsDimensionless reports whether u has no dimension and unit scale.
func (u Unit) IsDimensionless() bool {
	return u.Dim.IsZero() && u.Scale == 1
}

// String returns the symbol, or "dimensionless".
func (u Unit) String() string {
	if u.Symbol == "" {
		return "dimensionless"
	}
	return u.Symbol
}

// Equivalent reports whether u and v share a dimension.
func (u Unit) Equivalent(v Unit) bool {
	return u.Dim == v.Dim
}

// Equal reports whether u and v denote the same quantity scale.
func (u Unit) Equal(v Unit) bool {
	return u.Dim == v.Dim && closeTo(u.Scale, v.Scale)
}

// ConversionFactor returns the factor f such that x[u] == x*f [to].
func (u Unit) ConversionFactor(to Unit) (float64, error) {
	if !u.Equivalent(to) {
		return 0, &IncompatibleError{From: u, To: to}
	}
	return u.Scale / to.Scale, nil
}

// Base returns the base-unit equivalent of u.
func (u Unit) Base() Unit {
	sym := u.Dim.String()
	if u.Dim.IsZero() {
		sym = ""
	}
	return Unit{Symbol: sym, Scale: 1, Dim: u.Dim}
}

func (u Unit) mul(v Unit) Unit {
	return Unit{Symbol: join(u.Symbol, "*", v.Symbol), Scale: u.Scale * v.Scale, Dim: u.Dim.add(v.Dim, 1)}
}

func (u Unit) div(v Unit) Unit {
	return Unit{Symbol: join(u.Symbol, "/", v.Symbol), Scale: u.Scale / v.Scale, Dim: u.Dim.add(v.Dim, -1)}
}

func (u Unit) pow(n int) Unit {
	return Unit{Symbol: fmt.Sprintf("%s**%d", u.Symbol, n), Scale: math.Pow(u.Scale, float64(n)), Dim: u.Dim.scale(n)}
}

func join(a, op, b string) string {
	if a == "" {
		a = "1"
	}
	return a + op + b
}

func closeTo(a, b float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= 1e-12*math.Max(math.Abs(a), math.Abs(b))
}

// IncompatibleError is returned when converting between units of different dimension.
type IncompatibleError struct {
	From Unit
	To   Unit
}

func (e *IncompatibleError) Error() string {
	return fmt.Sprintf("units: cannot convert %s (%s) to %s (%s)", e.From, e.From.Dim, e.To, e.To.Dim)
}
