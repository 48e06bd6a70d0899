package toolbag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
	}{
		{"data.csv", FormatCSV},
		{"DATA.CSV", FormatCSV},
		{"book.xlsx", FormatXLSX},
		{"export.txt", FormatLTxt},
		{"sim.raw", FormatLTRaw},
	}
	for _, tt := range tests {
		f, err := DetectFormat(tt.path)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, f, tt.path)
	}

	_, err := DetectFormat("trace.dat")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("AWR")
	require.NoError(t, err)
	assert.Equal(t, FormatTraceData, f)

	_, err = ParseFormat("paf")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestReadDispatch(t *testing.T) {
	csvPath := writeFile(t, "spectrum.csv", []byte("frequency (Hz),1,2\n"))
	res, err := Read(csvPath, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, res.Format)
	require.NotNil(t, res.Table)
	assert.Same(t, res.Table.Data, res.Data)

	txtPath := writeFile(t, "export.txt", []byte("time\tV(out)\n0.0e+0\t1.0e+0\n"))
	res, err = Read(txtPath, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, FormatLTxt, res.Format)
	assert.True(t, res.Data.Contains("V(out)"))

	opts := DefaultOptions()
	opts.Format = FormatTraceData
	res, err = Read(txtPath, opts)
	require.NoError(t, err)
	assert.Equal(t, FormatTraceData, res.Format)
	assert.Equal(t, "time V(out)", res.Data.Header())

	_, err = Read(writeFile(t, "x.dat", nil), DefaultOptions())
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
