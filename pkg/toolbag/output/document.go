// Package output renders read results as JSON or YAML.
package output

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/l-johnston/toolbag/pkg/toolbag"
	"github.com/l-johnston/toolbag/pkg/toolbag/container"
	"github.com/l-johnston/toolbag/pkg/toolbag/models"
	"gonum.org/v1/gonum/mat"
)

// Number is a float64 that renders NaN and ±Inf as JSON strings.
type Number float64

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte(strconv.Quote(FormatNumber(f))), nil
	}
	return json.Marshal(f)
}

func numbers(v []float64) []Number {
	if v == nil {
		return nil
	}
	out := make([]Number, len(v))
	for i, f := range v {
		out[i] = Number(f)
	}
	return out
}

// Axis is the rendered form of one axis.
type Axis struct {
	Label     string   `json:"label" yaml:"label"`
	Name      string   `json:"name,omitempty" yaml:"name,omitempty"`
	Units     []string `json:"units,omitempty" yaml:"units,omitempty"`
	Legend    string   `json:"legend,omitempty" yaml:"legend,omitempty"`
	Form      string   `json:"form" yaml:"form"`
	Values    []Number `json:"values,omitempty" yaml:"values,omitempty"`
	Real      []Number `json:"real,omitempty" yaml:"real,omitempty"`
	Imag      []Number `json:"imag,omitempty" yaml:"imag,omitempty"`
	Magnitude []Number `json:"magnitude,omitempty" yaml:"magnitude,omitempty"`
	Phase     []Number `json:"phase,omitempty" yaml:"phase,omitempty"`
}

// Document is the rendered form of a toolbag.Result.
type Document struct {
	Path        string                 `json:"path" yaml:"path"`
	Format      string                 `json:"format" yaml:"format"`
	Header      string                 `json:"header,omitempty" yaml:"header,omitempty"`
	Orientation string                 `json:"orientation,omitempty" yaml:"orientation,omitempty"`
	Waveform    *models.WaveformHeader `json:"waveform,omitempty" yaml:"waveform,omitempty"`
	Axes        []Axis                 `json:"axes,omitempty" yaml:"axes,omitempty"`
	Values      []Number               `json:"values,omitempty" yaml:"values,omitempty"`
	Matrix      [][]Number             `json:"matrix,omitempty" yaml:"matrix,omitempty"`
}

// FromResult builds a Document. When withValues is false only the axis
// metadata is rendered.
func FromResult(res *toolbag.Result, withValues bool) (*Document, error) {
	doc := &Document{Path: res.Path, Format: string(res.Format)}
	if res.Table != nil {
		doc.Header = res.Table.Header
		doc.Orientation = res.Table.Orientation.String()
		if withValues {
			doc.Values = numbers(res.Table.Values)
			doc.Matrix = matrix(res.Table.Matrix)
		}
	}
	if res.Waveform != nil {
		h := res.Waveform.Header
		doc.Waveform = &h
	}
	if res.Data == nil {
		return doc, nil
	}
	if doc.Header == "" && res.Waveform == nil {
		doc.Header = res.Data.Header()
	}
	axes, err := Axes(res.Data, withValues)
	if err != nil {
		return nil, err
	}
	doc.Axes = axes
	return doc, nil
}

// Axes renders every axis of c.
func Axes(c *container.Container, withValues bool) ([]Axis, error) {
	labels := c.Axes()
	out := make([]Axis, len(labels))
	for i, a := range labels {
		form, err := c.Form(i)
		if err != nil {
			return nil, err
		}
		out[i] = Axis{Label: a.Raw, Name: a.Name, Units: a.Units, Legend: a.Legend, Form: form.String()}
		if !withValues {
			continue
		}
		v, err := c.Index(i)
		if err != nil {
			return nil, err
		}
		switch v.Form {
		case models.FormCartesian:
			out[i].Real = numbers(v.Complex.Real().Values)
			out[i].Imag = numbers(v.Complex.Imag().Values)
		case models.FormPolar:
			out[i].Magnitude = numbers(v.Magnitude.Values)
			out[i].Phase = numbers(v.Phase.Values)
		default:
			out[i].Values = numbers(v.Real.Values)
		}
	}
	return out, nil
}

func matrix(m *mat.Dense) [][]Number {
	if m == nil {
		return nil
	}
	r, _ := m.Dims()
	out := make([][]Number, r)
	for i := 0; i < r; i++ {
		out[i] = numbers(mat.Row(nil, i, m))
	}
	return out
}

// FormatNumber renders f in the shortest form, spelling out NaN and ±Inf.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Inf"
	case math.IsInf(f, -1):
		return "-Inf"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
