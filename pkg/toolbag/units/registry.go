package units

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"unicode/utf8"
)

// ErrUnknownUnit is returned for a symbol that is not registered.
var ErrUnknownUnit = errors.New("unknown unit")

// siPrefixes maps a prefix to its power of ten. Both "u" and "µ" denote micro.
var siPrefixes = map[string]int{
	"y": -24, "z": -21, "a": -18, "f": -15, "p": -12, "n": -9, "u": -6, "µ": -6,
	"m": -3, "c": -2, "d": -1, "k": 3, "M": 6, "G": 9, "T": 12, "P": 15,
	"E": 18, "Z": 21, "Y": 24,
}

type entry struct {
	unit       Unit
	prefixable bool
}

// Registry holds named units. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	units map[string]entry
}

// NewRegistry returns a registry populated with SI base and derived units
// plus the instrument units dB, dBm and degree.
func NewRegistry() *Registry {
	r := &Registry{units: make(map[string]entry)}
	base := func(sym string, dim int) {
		var d Dimension
		d[dim] = 1
		r.units[sym] = entry{unit: Unit{Symbol: sym, Scale: 1, Dim: d}, prefixable: true}
	}
	base("m", Length)
	base("s", Time)
	base("A", Current)
	base("K", Temperature)
	base("mol", Amount)
	base("cd", Luminosity)
	base("rad", Angle)
	base("dB", Ratio)
	r.units["g"] = entry{unit: Unit{Symbol: "g", Scale: 1e-3, Dim: Dimension{Mass: 1}}, prefixable: true}

	derived := []struct {
		sym        string
		expr       string
		scale      float64
		prefixable bool
	}{
		{"Hz", "1/s", 1, true},
		{"N", "kg*m/s**2", 1, true},
		{"Pa", "N/m**2", 1, true},
		{"J", "N*m", 1, true},
		{"W", "J/s", 1, true},
		{"C", "A*s", 1, true},
		{"V", "W/A", 1, true},
		{"F", "C/V", 1, true},
		{"Ohm", "V/A", 1, true},
		{"Ω", "V/A", 1, true},
		{"S", "A/V", 1, true},
		{"Wb", "V*s", 1, true},
		{"T", "Wb/m**2", 1, true},
		{"H", "Wb/A", 1, true},
		{"dBm", "dB", 1, false},
		{"degree", "rad", math.Pi / 180, false},
		{"deg", "rad", math.Pi / 180, false},
		{"°", "rad", math.Pi / 180, false},
		{"min", "s", 60, false},
		{"h", "s", 3600, false},
		{"percent", "1", 0.01, false},
		{"%", "1", 0.01, false},
	}
	for _, d := range derived {
		if err := r.define(d.sym, d.scale, d.expr, d.prefixable); err != nil {
			panic(err)
		}
	}
	return r
}

// Default is the registry used when callers do not supply one.
var Default = NewRegistry()

// Define registers symbol as scale times the unit expression base, e.g.
// Define("dBm", 1, "dB"). Redefining an existing symbol is an error.
func (r *Registry) Define(symbol string, scale float64, base string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.units[symbol]; ok {
		return fmt.Errorf("units: %q is already defined", symbol)
	}
	return r.define(symbol, scale, base, false)
}

func (r *Registry) define(symbol string, scale float64, base string, prefixable bool) error {
	if symbol == "" || strings.ContainsAny(symbol, "*/^() ") {
		return fmt.Errorf("units: invalid symbol %q", symbol)
	}
	u, err := r.parse(base)
	if err != nil {
		return err
	}
	u.Symbol = symbol
	u.Scale *= scale
	r.units[symbol] = entry{unit: u, prefixable: prefixable}
	return nil
}

// Lookup resolves a single symbol, allowing an SI prefix on prefixable units.
func (r *Registry) Lookup(symbol string) (Unit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lookup(symbol)
}

func (r *Registry) lookup(symbol string) (Unit, error) {
	if e, ok := r.units[symbol]; ok {
		return e.unit, nil
	}
	if symbol == "kg" {
		return Unit{Symbol: "kg", Scale: 1, Dim: Dimension{Mass: 1}}, nil
	}
	_, size := utf8.DecodeRuneInString(symbol)
	if size > 0 && size < len(symbol) {
		if p, ok := siPrefixes[symbol[:size]]; ok {
			if e, ok := r.units[symbol[size:]]; ok && e.prefixable {
				u := e.unit
				u.Symbol = symbol
				u.Scale *= math.Pow10(p)
				return u, nil
			}
		}
	}
	return Unit{}, fmt.Errorf("units: %w: %q", ErrUnknownUnit, symbol)
}

// Parse resolves a unit expression. Empty input and "dimensionless" yield
// the dimensionless unit.
func (r *Registry) Parse(expr string) (Unit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.parse(expr)
}

// Define registers a unit in the Default registry.
func Define(symbol string, scale float64, base string) error {
	return Default.Define(symbol, scale, base)
}

// Parse resolves expr with the Default registry.
func Parse(expr string) (Unit, error) {
	return Default.Parse(expr)
}
