package parser

import (
	"encoding/binary"
	"math"
	"strings"
	"testing"

	"github.com/l-johnston/toolbag/pkg/toolbag/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const transientHeader = `Title: * rc.asc
Date: Thu Jan 15 10:00:00 2026
Plotname: Transient Analysis
Flags: real forward
No. Variables: 2
No. Points:            2
Offset:   0.0000000000000000e+000
Command: Linear Technology Corporation LTspice XVII
Variables:
	0	time	time
	1	V(out)	voltage
Binary:
`

// utf16le encodes ASCII text the way LTspice writes raw headers.
func utf16le(s string) []byte {
	out := make([]byte, 0, 2*len(s))
	for _, r := range s {
		out = append(out, byte(r), byte(r>>8))
	}
	return out
}

func putFloat64(b []byte, v float64) []byte {
	return binary.LittleEndian.AppendUint64(b, math.Float64bits(v))
}

func putFloat32(b []byte, v float32) []byte {
	return binary.LittleEndian.AppendUint32(b, math.Float32bits(v))
}

func TestSplitWaveformUTF16(t *testing.T) {
	payload := putFloat64(nil, 1)
	payload = putFloat32(payload, 2)
	b := append(utf16le(transientHeader), payload...)

	header, offset, enc, err := SplitWaveform(b)
	require.NoError(t, err)
	assert.Equal(t, EncodingUTF16LE, enc)
	assert.Equal(t, len(utf16le(transientHeader)), offset)
	assert.True(t, strings.HasPrefix(header, "Title: * rc.asc\n"))
	assert.True(t, strings.HasSuffix(header, "V(out)\tvoltage"))
}

func TestSplitWaveformASCIIFallback(t *testing.T) {
	text := strings.ReplaceAll(transientHeader, "\n", "\r\n")
	b := append([]byte(text), make([]byte, 12)...)

	header, offset, enc, err := SplitWaveform(b)
	require.NoError(t, err)
	assert.Equal(t, EncodingWindows1252, enc)
	assert.Equal(t, len(text), offset)

	h, err := ParseWaveformHeader(header)
	require.NoError(t, err)
	assert.Equal(t, 2, h.NumVariables)
}

func TestSplitWaveformNoMarker(t *testing.T) {
	_, _, _, err := SplitWaveform(utf16le("Title: x\nNo. Points: 1\n"))
	assert.ErrorIs(t, err, ErrNoBinaryMarker)
	assert.ErrorIs(t, err, ErrParse)
}

func TestParseWaveformHeader(t *testing.T) {
	text := strings.TrimSuffix(transientHeader, "Binary:\n")
	h, err := ParseWaveformHeader(text)
	require.NoError(t, err)

	assert.Equal(t, "* rc.asc", h.Title)
	assert.Equal(t, "Transient Analysis", h.Plotname)
	assert.Equal(t, []string{"real", "forward"}, h.Flags)
	assert.Equal(t, 2, h.NumVariables)
	assert.Equal(t, 2, h.NumPoints)
	assert.Equal(t, 0.0, h.Offset)
	assert.Equal(t, []models.Variable{
		{Index: 0, Name: "time", Type: "time"},
		{Index: 1, Name: "V(out)", Type: "voltage"},
	}, h.Variables)
	assert.False(t, h.HasFlag("complex"))
}

func TestParseWaveformHeaderUnexpectedKey(t *testing.T) {
	_, err := ParseWaveformHeader("Title: x\nTemperature: 27\nNo. Variables: 1\n")

	var unexpected *UnexpectedHeaderKeyError
	require.ErrorAs(t, err, &unexpected)
	assert.Equal(t, "Temperature", unexpected.Key)
	assert.Equal(t, 2, unexpected.Line)
	assert.ErrorIs(t, err, ErrParse)
}

func TestParseWaveformHeaderErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
		key  string
	}{
		{"bad count", "No. Variables: two\n", keyNumVariables},
		{"variables before count", "Variables:\n\t0\ttime\ttime\n", keyNumVariables},
		{"too few variables", "No. Variables: 2\nVariables:\n\t0\ttime\ttime\n", keyVariables},
		{"malformed variable", "No. Variables: 1\nVariables:\n\ttime\n", keyVariables},
		{"no variables", "Title: x\n", keyVariables},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseWaveformHeader(tt.text)
			var headerErr *HeaderError
			require.ErrorAs(t, err, &headerErr)
			assert.Equal(t, tt.key, headerErr.Key)
			assert.ErrorIs(t, err, ErrParse)
		})
	}
}

func TestRecordLayout(t *testing.T) {
	tests := []struct {
		flags        []string
		first, other int
	}{
		{[]string{"real", "forward"}, 8, 4},
		{[]string{"complex", "forward", "log"}, 16, 16},
		{[]string{"real", "double"}, 8, 8},
	}
	for _, tt := range tests {
		first, other := RecordLayout(&models.WaveformHeader{Flags: tt.flags})
		assert.Equal(t, tt.first, first, tt.flags)
		assert.Equal(t, tt.other, other, tt.flags)
	}
}

func TestDecodeWaveformReal(t *testing.T) {
	h := &models.WaveformHeader{
		Flags:     []string{"real"},
		Variables: []models.Variable{{Index: 0, Name: "time", Type: "time"}, {Index: 1, Name: "V(out)", Type: "voltage"}, {Index: 2, Name: "I(R1)", Type: "current"}},
	}
	var payload []byte
	payload = putFloat64(payload, 0)
	payload = putFloat32(payload, 1.5)
	payload = putFloat32(payload, -0.25)
	payload = putFloat64(payload, -1e-6)
	payload = putFloat32(payload, 2.5)
	payload = putFloat32(payload, 0.5)

	block, err := DecodeWaveform(h, payload)
	require.NoError(t, err)
	assert.Equal(t, models.Column, block.Orientation)
	assert.Equal(t, []string{"time", "V(out)", "I(R1)"}, block.Labels)

	r, c := block.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 2, c)
	assert.Equal(t, 1e-6, block.Data.At(0, 1), "sweep sign bit must be cleared")
	assert.Equal(t, 2.5, block.Data.At(1, 1))
	assert.Equal(t, -0.25, block.Data.At(2, 0))
}

func TestDecodeWaveformComplex(t *testing.T) {
	h := &models.WaveformHeader{
		Flags:     []string{"complex", "forward", "log"},
		Variables: []models.Variable{{Index: 0, Name: "frequency", Type: "frequency"}, {Index: 1, Name: "V(out)", Type: "voltage"}},
	}
	var payload []byte
	for _, v := range []float64{-1000, 0, 0.5, -0.5, 2000, 0, 0.25, 0.75} {
		payload = putFloat64(payload, v)
	}

	block, err := DecodeWaveform(h, payload)
	require.NoError(t, err)
	require.True(t, block.IsComplex())
	assert.Equal(t, complex(1000, 0), block.Complex.At(0, 0))
	assert.Equal(t, complex(0.5, -0.5), block.Complex.At(1, 0))
	assert.Equal(t, complex(0.25, 0.75), block.Complex.At(1, 1))
}

func TestDecodeWaveformDouble(t *testing.T) {
	h := &models.WaveformHeader{
		Flags:     []string{"real", "double"},
		Variables: []models.Variable{{Index: 0, Name: "time", Type: "time"}, {Index: 1, Name: "V(out)", Type: "voltage"}},
	}
	payload := putFloat64(putFloat64(nil, 1e-3), 0.1)
	block, err := DecodeWaveform(h, payload)
	require.NoError(t, err)
	assert.Equal(t, 0.1, block.Data.At(1, 0))
}

func TestDecodeWaveformTruncated(t *testing.T) {
	h := &models.WaveformHeader{
		Flags:     []string{"real"},
		Variables: []models.Variable{{Index: 0, Name: "time", Type: "time"}, {Index: 1, Name: "V(out)", Type: "voltage"}},
	}
	payload := append(putFloat32(putFloat64(nil, 0), 1), 0, 0, 0)

	_, err := DecodeWaveform(h, payload)
	var truncated *TruncatedPayloadError
	require.ErrorAs(t, err, &truncated)
	assert.Equal(t, 12, truncated.RecordSize)
	assert.Equal(t, 3, truncated.Remainder)
}

func TestDecodeWaveformEmpty(t *testing.T) {
	h := &models.WaveformHeader{Variables: []models.Variable{{Index: 0, Name: "time", Type: "time"}}}
	_, err := DecodeWaveform(h, nil)
	assert.ErrorIs(t, err, ErrNoData)
}
