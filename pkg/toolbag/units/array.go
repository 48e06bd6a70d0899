package units

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Array is a sequence of real values with a unit.
type Array struct {
	Name   string
	Unit   Unit
	Values []float64
}

// Len returns the number of values.
func (a Array) Len() int { return len(a.Values) }

// To converts a to the target unit.
func (a Array) To(target Unit) (Array, error) {
	f, err := a.Unit.ConversionFactor(target)
	if err != nil {
		return Array{}, err
	}
	out := Array{Name: a.Name, Unit: target, Values: make([]float64, len(a.Values))}
	for i, v := range a.Values {
		out.Values[i] = v * f
	}
	return out, nil
}

// AllClose reports whether a and b have equivalent units and element-wise
// close values once b is expressed in a's unit. NaNs compare equal.
func (a Array) AllClose(b Array, rtol, atol float64) bool {
	if len(a.Values) != len(b.Values) {
		return false
	}
	bb, err := b.To(a.Unit)
	if err != nil {
		return false
	}
	for i, v := range a.Values {
		if !isClose(v, bb.Values[i], rtol, atol) {
			return false
		}
	}
	return true
}

func (a Array) String() string {
	return fmt.Sprintf("%v %s", a.Values, a.Unit)
}

// ComplexArray is a sequence of complex values whose real and imaginary parts
// both carry Unit.
type ComplexArray struct {
	Name   string
	Unit   Unit
	Values []complex128
}

// Len returns the number of values.
func (a ComplexArray) Len() int { return len(a.Values) }

// Real returns the real parts.
func (a ComplexArray) Real() Array {
	out := Array{Name: a.Name, Unit: a.Unit, Values: make([]float64, len(a.Values))}
	for i, v := range a.Values {
		out.Values[i] = real(v)
	}
	return out
}

// Imag returns the imaginary parts.
func (a ComplexArray) Imag() Array {
	out := Array{Name: a.Name, Unit: a.Unit, Values: make([]float64, len(a.Values))}
	for i, v := range a.Values {
		out.Values[i] = imag(v)
	}
	return out
}

// Abs returns the magnitudes.
func (a ComplexArray) Abs() Array {
	out := Array{Name: a.Name, Unit: a.Unit, Values: make([]float64, len(a.Values))}
	for i, v := range a.Values {
		out.Values[i] = cmplx.Abs(v)
	}
	return out
}

func (a ComplexArray) String() string {
	return fmt.Sprintf("%v %s", a.Values, a.Unit)
}

func isClose(a, b, rtol, atol float64) bool {
	switch {
	case math.IsNaN(a) || math.IsNaN(b):
		return math.IsNaN(a) && math.IsNaN(b)
	case math.IsInf(a, 0) || math.IsInf(b, 0):
		return a == b
	}
	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}
