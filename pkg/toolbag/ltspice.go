package toolbag

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/l-johnston/toolbag/pkg/toolbag/container"
	"github.com/l-johnston/toolbag/pkg/toolbag/models"
	"github.com/l-johnston/toolbag/pkg/toolbag/parser"
)

// ReadLTxt reads an LTspice "Export data as text" file. The first line holds
// the trace labels and the first data row decides whether each trace is real,
// cartesian ("re,im") or polar ("(mag dB,phase°)").
func ReadLTxt(r io.Reader, opts Options) (*container.Container, error) {
	c, err := readLTxt(r, opts)
	if err != nil {
		return nil, NewReadError("", FormatLTxt, err)
	}
	return c, nil
}

// ReadLTxtFile reads an LTspice text export file. See ReadLTxt.
func ReadLTxtFile(path string, opts Options) (*container.Container, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, NewReadError(path, FormatLTxt, err)
	}
	c, err := readLTxt(f, opts)
	f.Close()
	if err != nil {
		return nil, NewReadError(path, FormatLTxt, err)
	}
	return c, nil
}

func readLTxt(r io.Reader, opts Options) (*container.Container, error) {
	b, err := parser.ReadAll(r)
	if err != nil {
		return nil, err
	}
	text, enc, err := parser.DecodeText(b)
	if err != nil {
		return nil, err
	}
	bo := opts.blockOptions("\t")
	rows := parser.SplitRows(text, bo.Delimiter)
	if len(rows) < 2 {
		return nil, parser.ErrNoData
	}

	labels, first := rows[0], rows[1]
	axes := make([]models.AxisLabel, len(labels))
	for i, raw := range labels {
		value := ""
		if i < len(first) {
			value = first[i]
		}
		axes[i] = parser.ParseTraceLabel(raw, value, opts.registry())
	}
	opts.logger().Debug("parsed trace labels", slog.String("encoding", enc), slog.Int("traces", len(axes)))

	block, err := parser.BuildTraceBlock(rows[1:], axes, parser.Scientific, bo, 2)
	if err != nil {
		return nil, err
	}
	header := make([]string, len(axes))
	for i, a := range axes {
		header[i] = a.Raw
	}
	return container.New(block, axes,
		container.WithRegistry(opts.registry()),
		container.WithHeader(strings.Join(header, "\t")))
}

// Waveform is a decoded LTspice binary raw file.
type Waveform struct {
	// Header is the parsed text header.
	Header models.WaveformHeader
	*container.Container
}

// Sweep returns the view of the sweep variable, time or frequency.
func (w *Waveform) Sweep() (container.View, error) {
	return w.Index(0)
}

// ReadLTRaw reads an LTspice binary raw file.
func ReadLTRaw(path string, opts Options) (*Waveform, error) {
	b, err := parser.ReadFile(path)
	if err != nil {
		return nil, NewReadError(path, FormatLTRaw, err)
	}
	w, err := DecodeLTRaw(b, opts)
	if err != nil {
		return nil, NewReadError(path, FormatLTRaw, err)
	}
	return w, nil
}

// DecodeLTRaw decodes the contents of an LTspice binary raw file.
func DecodeLTRaw(b []byte, opts Options) (*Waveform, error) {
	log := opts.logger()
	text, offset, enc, err := parser.SplitWaveform(b)
	if err != nil {
		return nil, err
	}
	h, err := parser.ParseWaveformHeader(text)
	if err != nil {
		return nil, err
	}
	h.PayloadOffset = offset
	h.Encoding = enc

	first, other := parser.RecordLayout(h)
	log.Debug("parsed waveform header",
		slog.String("encoding", enc),
		slog.String("plotname", h.Plotname),
		slog.Int("variables", len(h.Variables)),
		slog.Int("payload_offset", offset),
		slog.Int("sweep_bytes", first),
		slog.Int("trace_bytes", other))

	block, err := parser.DecodeWaveform(h, b[offset:])
	if err != nil {
		return nil, err
	}
	if _, points := block.Dims(); points != h.NumPoints {
		log.Warn("point count differs from header",
			slog.Int("declared", h.NumPoints),
			slog.Int("decoded", points))
	}

	iscomplex := block.IsComplex()
	axes := make([]models.AxisLabel, len(h.Variables))
	names := make([]string, len(h.Variables))
	for i, v := range h.Variables {
		axes[i] = parser.ParseVariableLabel(v, iscomplex && i > 0)
		names[i] = v.Name
	}
	c, err := container.New(block, axes,
		container.WithRegistry(opts.registry()),
		container.WithVariables(names),
		container.WithHeader(strings.TrimSpace(text)))
	if err != nil {
		return nil, err
	}
	return &Waveform{Header: *h, Container: c}, nil
}
