// Package container provides the read-only, unit-aware access layer shared by
// every toolbag reader.
package container

import (
	"fmt"
	"math"
	"sync"

	"github.com/l-johnston/toolbag/pkg/toolbag/models"
	"github.com/l-johnston/toolbag/pkg/toolbag/units"
)

// Container holds a parsed numeric block and one AxisLabel per matrix row.
// Views are computed on first access and cached for the lifetime of the
// container. A Container is safe for concurrent use.
type Container struct {
	block     *models.ParsedBlock
	axes      []models.AxisLabel
	header    string
	variables []string
	registry  *units.Registry

	names  map[string]int
	labels map[string]int

	mu    sync.Mutex
	cache map[string]View
}

// Option configures a Container.
type Option func(*Container)

// WithRegistry resolves axis units with r instead of units.Default.
func WithRegistry(r *units.Registry) Option {
	return func(c *Container) {
		if r != nil {
			c.registry = r
		}
	}
}

// WithHeader overrides the header text of the block.
func WithHeader(header string) Option {
	return func(c *Container) { c.header = header }
}

// WithVariables records the declared trace names of a waveform file.
func WithVariables(names []string) Option {
	return func(c *Container) { c.variables = append([]string(nil), names...) }
}

// New wraps block with axes. There must be exactly one axis per matrix row and
// every axis must carry its raw label.
func New(block *models.ParsedBlock, axes []models.AxisLabel, opts ...Option) (*Container, error) {
	if block == nil || (block.Data == nil && block.Complex == nil) {
		return nil, fmt.Errorf("container: empty block")
	}
	r, _ := block.Dims()
	if len(axes) != r {
		return nil, fmt.Errorf("container: %d axes for %d matrix rows", len(axes), r)
	}
	if block.Lengths != nil && len(block.Lengths) != r {
		return nil, fmt.Errorf("container: %d lengths for %d matrix rows", len(block.Lengths), r)
	}

	c := &Container{
		block:    block,
		axes:     append([]models.AxisLabel(nil), axes...),
		header:   block.Header,
		registry: units.Default,
		names:    make(map[string]int),
		labels:   make(map[string]int),
		cache:    make(map[string]View),
	}
	for _, opt := range opts {
		opt(c)
	}

	counts := make(map[string]int)
	for i, a := range c.axes {
		if a.Raw == "" {
			return nil, fmt.Errorf("container: axis %d has no label", i)
		}
		if _, ok := c.labels[a.Raw]; !ok {
			c.labels[a.Raw] = i
		}
		if a.Name != "" {
			counts[a.Name]++
		}
	}
	for i, a := range c.axes {
		if a.Name != "" && counts[a.Name] == 1 {
			c.names[a.Name] = i
		}
	}
	return c, nil
}

// Len returns the number of axes.
func (c *Container) Len() int { return len(c.axes) }

// Header returns the text that preceded the numeric block.
func (c *Container) Header() string { return c.header }

// Axes returns a copy of the axis labels in order.
func (c *Container) Axes() []models.AxisLabel {
	return append([]models.AxisLabel(nil), c.axes...)
}

// Columns returns the raw labels in order.
func (c *Container) Columns() []string {
	out := make([]string, len(c.axes))
	for i, a := range c.axes {
		out[i] = a.Raw
	}
	return out
}

// Legends returns the legend of every axis in order.
func (c *Container) Legends() []string {
	out := make([]string, len(c.axes))
	for i, a := range c.axes {
		out[i] = a.Legend
	}
	return out
}

// Names returns the names usable with Get, in axis order. Names shared by more
// than one axis are left out.
func (c *Container) Names() []string {
	var out []string
	for i, a := range c.axes {
		if j, ok := c.names[a.Name]; ok && j == i {
			out = append(out, a.Name)
		}
	}
	return out
}

// Variables returns the declared trace names of a waveform file, or nil.
func (c *Container) Variables() []string {
	return append([]string(nil), c.variables...)
}

// Contains reports whether key is a raw label or the name of any axis,
// including names shared by several axes.
func (c *Container) Contains(key string) bool {
	if _, ok := c.labels[key]; ok {
		return true
	}
	for _, a := range c.axes {
		if a.Name != "" && a.Name == key {
			return true
		}
	}
	return false
}

// Form returns the view shape of axis i.
func (c *Container) Form(i int) (models.Form, error) {
	if i < 0 || i >= len(c.axes) {
		return 0, &IndexError{Index: i, Len: len(c.axes)}
	}
	return c.axisForm(i), nil
}

// FormOf returns the view shape of the axis Get(key) would return.
func (c *Container) FormOf(key string) (models.Form, error) {
	i, ok := c.resolve(key)
	if !ok {
		return 0, &KeyNotFoundError{Key: key}
	}
	return c.axisForm(i), nil
}

func (c *Container) axisForm(i int) models.Form {
	if c.block.Complex == nil {
		return models.FormReal
	}
	return c.axes[i].Form
}

// Index returns the view of axis i.
func (c *Container) Index(i int) (View, error) {
	if i < 0 || i >= len(c.axes) {
		return View{}, &IndexError{Index: i, Len: len(c.axes)}
	}
	return c.cached(fmt.Sprintf("index:%d", i), i)
}

// Get returns the view of the axis named key, falling back to the axis whose
// raw label is key.
func (c *Container) Get(key string) (View, error) {
	i, ok := c.resolve(key)
	if !ok {
		return View{}, &KeyNotFoundError{Key: key}
	}
	return c.cached("key:"+key, i)
}

// Label returns the view of the axis whose raw label is raw.
func (c *Container) Label(raw string) (View, error) {
	i, ok := c.labels[raw]
	if !ok {
		return View{}, &KeyNotFoundError{Key: raw}
	}
	return c.cached("label:"+raw, i)
}

// End is a Slice stop that runs to the last axis.
const End = math.MaxInt

// Slice returns the views of the axes start, start+step, ... up to but not
// including stop. Negative bounds count from the end and out of range bounds
// are clamped, so Slice(0, End, 1) returns every axis and Slice(-1, -End, -1)
// every axis in reverse.
func (c *Container) Slice(start, stop, step int) ([]View, error) {
	if step == 0 {
		return nil, fmt.Errorf("container: slice step cannot be zero")
	}
	start, stop = sliceBounds(start, stop, step, len(c.axes))
	var out []View
	for i := start; (step > 0 && i < stop) || (step < 0 && i > stop); i += step {
		v, err := c.Index(i)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Views returns the view of every axis in order.
func (c *Container) Views() ([]View, error) {
	return c.Slice(0, End, 1)
}

// Set always fails with ErrReadOnly.
func (c *Container) Set(key string, _ View) error {
	return fmt.Errorf("set %q: %w", key, ErrReadOnly)
}

// Delete always fails with ErrReadOnly.
func (c *Container) Delete(key string) error {
	return fmt.Errorf("delete %q: %w", key, ErrReadOnly)
}

func (c *Container) resolve(key string) (int, bool) {
	if i, ok := c.names[key]; ok {
		return i, true
	}
	i, ok := c.labels[key]
	return i, ok
}

func (c *Container) cached(key string, i int) (View, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.cache[key]; ok {
		return v.clone(), nil
	}
	v, err := c.materialize(i)
	if err != nil {
		return View{}, err
	}
	c.cache[key] = v
	return v.clone(), nil
}

func sliceBounds(start, stop, step, n int) (int, int) {
	lower, upper := 0, n
	if step < 0 {
		lower, upper = -1, n-1
	}
	clamp := func(i int) int {
		if i < 0 {
			i += n
			if i < lower {
				i = lower
			}
		} else if i > upper {
			i = upper
		}
		return i
	}
	return clamp(start), clamp(stop)
}
