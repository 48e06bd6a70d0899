package container

import (
	"fmt"

	"github.com/l-johnston/toolbag/pkg/toolbag/models"
	"github.com/l-johnston/toolbag/pkg/toolbag/units"
)

// View is the unit-attached data of one axis. Form selects which fields are
// set: Real for FormReal, Complex for FormCartesian, Magnitude and Phase for
// FormPolar.
type View struct {
	Form      models.Form
	Real      units.Array
	Complex   units.ComplexArray
	Magnitude units.Array
	Phase     units.Array
}

// Len returns the number of samples.
func (v View) Len() int {
	switch v.Form {
	case models.FormCartesian:
		return v.Complex.Len()
	case models.FormPolar:
		return v.Magnitude.Len()
	default:
		return v.Real.Len()
	}
}

func (v View) String() string {
	switch v.Form {
	case models.FormCartesian:
		return v.Complex.String()
	case models.FormPolar:
		return fmt.Sprintf("(%s, %s)", v.Magnitude, v.Phase)
	default:
		return v.Real.String()
	}
}

// clone returns v with its own copy of the sample slices.
func (v View) clone() View {
	v.Real.Values = cloneFloats(v.Real.Values)
	v.Magnitude.Values = cloneFloats(v.Magnitude.Values)
	v.Phase.Values = cloneFloats(v.Phase.Values)
	if v.Complex.Values != nil {
		v.Complex.Values = append([]complex128(nil), v.Complex.Values...)
	}
	return v
}

func cloneFloats(x []float64) []float64 {
	if x == nil {
		return nil
	}
	return append([]float64(nil), x...)
}

// materialize builds the view of axis i.
func (c *Container) materialize(i int) (View, error) {
	axis := c.axes[i]
	view := View{Form: axis.Form}
	name := axis.Raw

	unitAt := func(k int) (units.Unit, error) {
		if k >= len(axis.Units) {
			return units.Dimensionless(), nil
		}
		u, err := c.registry.Parse(axis.Units[k])
		if err != nil {
			return units.Unit{}, &UnitError{Axis: name, Err: err}
		}
		return u, nil
	}

	if c.block.Complex == nil {
		u, err := unitAt(0)
		if err != nil {
			return View{}, err
		}
		view.Form = models.FormReal
		view.Real = units.Array{Name: name, Unit: u, Values: c.realRow(i)}
		return view, nil
	}

	row := c.complexRow(i)
	switch axis.Form {
	case models.FormPolar:
		mag, err := unitAt(0)
		if err != nil {
			return View{}, err
		}
		phase, err := unitAt(1)
		if err != nil {
			return View{}, err
		}
		m := make([]float64, len(row))
		p := make([]float64, len(row))
		for k, z := range row {
			m[k], p[k] = real(z), imag(z)
		}
		view.Magnitude = units.Array{Name: name, Unit: mag, Values: m}
		view.Phase = units.Array{Name: name, Unit: phase, Values: p}
	case models.FormCartesian:
		u, err := unitAt(0)
		if err != nil {
			return View{}, err
		}
		view.Complex = units.ComplexArray{Name: name, Unit: u, Values: row}
	default:
		u, err := unitAt(0)
		if err != nil {
			return View{}, err
		}
		re := make([]float64, len(row))
		for k, z := range row {
			re[k] = real(z)
		}
		view.Real = units.Array{Name: name, Unit: u, Values: re}
	}
	return view, nil
}

func (c *Container) realRow(i int) []float64 {
	n := c.length(i)
	out := make([]float64, n)
	for k := 0; k < n; k++ {
		out[k] = c.block.Data.At(i, k)
	}
	return out
}

func (c *Container) complexRow(i int) []complex128 {
	n := c.length(i)
	out := make([]complex128, n)
	for k := 0; k < n; k++ {
		out[k] = c.block.Complex.At(i, k)
	}
	return out
}

func (c *Container) length(i int) int {
	if c.block.Lengths != nil {
		return c.block.Lengths[i]
	}
	_, n := c.block.Dims()
	return n
}
