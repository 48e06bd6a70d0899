package parser

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/l-johnston/toolbag/pkg/toolbag/models"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"gonum.org/v1/gonum/mat"
)

const binaryMarker = "\nBinary:"

// Waveform header keys. The vocabulary is closed.
const (
	keyTitle          = "Title"
	keyDate           = "Date"
	keyPlotname       = "Plotname"
	keyFlags          = "Flags"
	keyNumVariables   = "No. Variables"
	keyNumPoints      = "No. Points"
	keyOffset         = "Offset"
	keyCommand        = "Command"
	keyBackannotation = "Backannotation"
	keyVariables      = "Variables"
)

type headerEncoding struct {
	name string
	// enc encodes the marker lines; dec decodes the header text.
	enc encoding.Encoding
	dec encoding.Encoding
}

// waveformEncodings are tried in order; the second is the single retry.
var waveformEncodings = []headerEncoding{
	{
		name: EncodingUTF16LE,
		enc:  unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
		dec:  unicode.UTF16(unicode.LittleEndian, unicode.UseBOM),
	},
	{name: EncodingWindows1252, enc: charmap.Windows1252, dec: charmap.Windows1252},
}

// SplitWaveform finds the "Binary:" line and returns the decoded header text,
// the byte offset of the payload and the name of the header encoding.
func SplitWaveform(b []byte) (string, int, string, error) {
	for _, he := range waveformEncodings {
		header, offset, ok := splitWaveform(b, he)
		if ok {
			return header, offset, he.name, nil
		}
	}
	return "", 0, "", ErrNoBinaryMarker
}

func splitWaveform(b []byte, he headerEncoding) (string, int, bool) {
	encode := func(s string) []byte {
		out, err := he.enc.NewEncoder().Bytes([]byte(s))
		if err != nil {
			panic(err)
		}
		return out
	}
	marker := encode(binaryMarker)
	unit := len(encode("\n"))

	idx := bytes.Index(b, marker)
	for idx >= 0 && idx%unit != 0 {
		next := bytes.Index(b[idx+1:], marker)
		if next < 0 {
			idx = -1
			break
		}
		idx += next + 1
	}
	if idx < 0 {
		return "", 0, false
	}

	pos := idx + len(marker)
	if cr := encode("\r"); bytes.HasPrefix(b[pos:], cr) {
		pos += len(cr)
	}
	if !bytes.HasPrefix(b[pos:], encode("\n")) {
		return "", 0, false
	}
	header, err := he.dec.NewDecoder().Bytes(b[:idx])
	if err != nil {
		return "", 0, false
	}
	return string(header), pos + unit, true
}

// ParseWaveformHeader parses the header text that precedes "Binary:". Header
// parsing stops after the declared variables.
func ParseWaveformHeader(text string) (*models.WaveformHeader, error) {
	h := &models.WaveformHeader{}
	lines := strings.Split(text, "\n")
	for i := 0; i < len(lines); i++ {
		line := strings.TrimRight(lines[i], "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			return nil, &UnexpectedHeaderKeyError{Key: strings.TrimSpace(line), Line: i + 1}
		}
		value = strings.TrimSpace(value)
		switch key {
		case keyTitle:
			h.Title = value
		case keyDate:
			h.Date = value
		case keyPlotname:
			h.Plotname = value
		case keyCommand:
			h.Command = value
		case keyBackannotation:
			h.Backannotations = append(h.Backannotations, value)
		case keyFlags:
			h.Flags = strings.Fields(value)
		case keyNumVariables, keyNumPoints:
			n, err := strconv.Atoi(value)
			if err != nil || n < 0 {
				return nil, &HeaderError{Key: key, Line: i + 1, Err: fmt.Errorf("%q is not a count", value)}
			}
			if key == keyNumVariables {
				h.NumVariables = n
			} else {
				h.NumPoints = n
			}
		case keyOffset:
			v, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return nil, &HeaderError{Key: key, Line: i + 1, Err: err}
			}
			h.Offset = v
		case keyVariables:
			vars, err := parseVariables(lines[i+1:], h.NumVariables, i+2)
			if err != nil {
				return nil, err
			}
			h.Variables = vars
			return h, nil
		default:
			return nil, &UnexpectedHeaderKeyError{Key: key, Line: i + 1}
		}
	}
	return nil, &HeaderError{Key: keyVariables, Line: len(lines), Err: fmt.Errorf("missing")}
}

func parseVariables(lines []string, n, firstLine int) ([]models.Variable, error) {
	if n == 0 {
		return nil, &HeaderError{Key: keyNumVariables, Line: firstLine - 1, Err: fmt.Errorf("must be declared before variables")}
	}
	if len(lines) < n {
		return nil, &HeaderError{Key: keyVariables, Line: firstLine, Err: fmt.Errorf("expected %d variables, found %d lines", n, len(lines))}
	}
	vars := make([]models.Variable, n)
	for i := 0; i < n; i++ {
		fields := strings.Fields(lines[i])
		if len(fields) < 3 {
			return nil, &HeaderError{Key: keyVariables, Line: firstLine + i, Err: fmt.Errorf("%q is not '<index> <name> <type>'", strings.TrimSpace(lines[i]))}
		}
		idx, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, &HeaderError{Key: keyVariables, Line: firstLine + i, Err: err}
		}
		vars[i] = models.Variable{Index: idx, Name: fields[1], Type: fields[2]}
	}
	return vars, nil
}

// RecordLayout gives the byte width of the sweep variable and of every other
// variable in one record.
func RecordLayout(h *models.WaveformHeader) (first, other int) {
	switch {
	case h.HasFlag("complex"):
		return 16, 16
	case h.HasFlag("double"):
		return 8, 8
	default:
		return 8, 4
	}
}

// DecodeWaveform unpacks the little-endian records of payload. The result has
// one matrix row per declared variable. The sweep variable's first component
// is forced non-negative because the writer can set a spurious sign bit on it.
func DecodeWaveform(h *models.WaveformHeader, payload []byte) (*models.ParsedBlock, error) {
	n := len(h.Variables)
	if n == 0 {
		return nil, ErrNoData
	}
	first, other := RecordLayout(h)
	size := first + (n-1)*other
	if rem := len(payload) % size; rem != 0 {
		return nil, &TruncatedPayloadError{RecordSize: size, Remainder: rem}
	}
	points := len(payload) / size
	if points == 0 {
		return nil, ErrNoData
	}

	labels := make([]string, n)
	for i, v := range h.Variables {
		labels[i] = v.Name
	}
	pb := &models.ParsedBlock{Orientation: models.Column, Labels: labels}

	if h.HasFlag("complex") {
		data := make([]complex128, n*points)
		for p := 0; p < points; p++ {
			rec := payload[p*size : (p+1)*size]
			for v := 0; v < n; v++ {
				re := float64At(rec, 16*v)
				im := float64At(rec, 16*v+8)
				if v == 0 {
					re = math.Abs(re)
				}
				data[v*points+p] = complex(re, im)
			}
		}
		pb.Complex = mat.NewCDense(n, points, data)
		return pb, nil
	}

	data := make([]float64, n*points)
	for p := 0; p < points; p++ {
		rec := payload[p*size : (p+1)*size]
		data[p] = math.Abs(float64At(rec, 0))
		for v := 1; v < n; v++ {
			off := first + (v-1)*other
			if other == 8 {
				data[v*points+p] = float64At(rec, off)
			} else {
				data[v*points+p] = float64(math.Float32frombits(binary.LittleEndian.Uint32(rec[off : off+4])))
			}
		}
	}
	pb.Data = mat.NewDense(n, points, data)
	return pb, nil
}

func float64At(b []byte, off int) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(b[off : off+8]))
}
