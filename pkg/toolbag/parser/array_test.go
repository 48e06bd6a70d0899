package parser

import (
	"math"
	"testing"

	"github.com/l-johnston/toolbag/pkg/toolbag/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestBuildArrayRectangular(t *testing.T) {
	rows := [][]string{{"1", "2", "3"}, {"4", "5", "6"}}
	data, lengths, err := BuildArray(rows, SI, DefaultBlockOptions(), 1, 0)
	require.NoError(t, err)
	assert.Nil(t, lengths)
	assert.True(t, mat.Equal(mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6}), data))
}

func TestBuildArrayRagged(t *testing.T) {
	rows := [][]string{{"1"}, {"2", "3"}}
	data, lengths, err := BuildArray(rows, SI, DefaultBlockOptions(), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, lengths)

	r, c := data.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, 1.0, data.At(0, 0))
	assert.True(t, math.IsNaN(data.At(0, 1)))
	assert.Equal(t, 3.0, data.At(1, 1))
}

func TestBuildArrayRaggedLegacy(t *testing.T) {
	opts := DefaultBlockOptions()
	opts.PadRagged = false
	_, _, err := BuildArray([][]string{{"1", "2"}, {"3"}}, SI, opts, 4, 0)

	var ragged *RaggedRowsError
	require.ErrorAs(t, err, &ragged)
	assert.Equal(t, 5, ragged.Line)
	assert.Equal(t, 1, ragged.Got)
	assert.Equal(t, 2, ragged.Expected)
	assert.ErrorIs(t, err, ErrParse)
}

func TestBuildArrayBlankCells(t *testing.T) {
	rows := [][]string{{"1", ""}, {"2", "3"}}
	data, _, err := BuildArray(rows, SI, DefaultBlockOptions(), 1, 0)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(data.At(0, 1)))

	opts := DefaultBlockOptions()
	opts.BlankAsNaN = false
	_, _, err = BuildArray(rows, SI, opts, 1, 0)
	var nonNumeric *NonNumericInBlockError
	require.ErrorAs(t, err, &nonNumeric)
	assert.Equal(t, "", nonNumeric.Value)
}

func TestBuildArrayNonNumeric(t *testing.T) {
	rows := [][]string{{"1", "2"}, {"3", "abc"}}
	_, _, err := BuildArray(rows, SI, DefaultBlockOptions(), 10, 1)

	var nonNumeric *NonNumericInBlockError
	require.ErrorAs(t, err, &nonNumeric)
	assert.Equal(t, "abc", nonNumeric.Value)
	assert.Equal(t, 11, nonNumeric.Line)
	assert.Equal(t, 3, nonNumeric.Column)
	assert.ErrorIs(t, err, ErrParse)
	assert.Contains(t, err.Error(), `"abc"`)
}

func TestBuildArrayEmpty(t *testing.T) {
	_, _, err := BuildArray(nil, SI, DefaultBlockOptions(), 1, 0)
	assert.ErrorIs(t, err, ErrNoData)
	assert.ErrorIs(t, err, ErrParse)
}

func TestBuildTraceBlockReal(t *testing.T) {
	axes := []models.AxisLabel{{Raw: "time"}, {Raw: "V(out)"}}
	rows := [][]string{{"0.0e+0", "1.0e+0"}, {"1.0e+0", "2.0e+0"}}
	block, err := BuildTraceBlock(rows, axes, Scientific, DefaultBlockOptions(), 2)
	require.NoError(t, err)
	assert.Equal(t, models.Column, block.Orientation)
	assert.Equal(t, []string{"time", "V(out)"}, block.Labels)
	assert.True(t, mat.Equal(mat.NewDense(2, 2, []float64{0, 1, 1, 2}), block.Data))
}

func TestBuildTraceBlockComplex(t *testing.T) {
	axes := []models.AxisLabel{
		{Raw: "frequency", Form: models.FormReal},
		{Raw: "V(out)", Form: models.FormPolar},
		{Raw: "I(R1)", Form: models.FormCartesian},
	}
	rows := [][]string{
		{"1.0e+3", "(-3.0e+0dB,-4.5e+1°)", "1.0e-3,-2.0e-3"},
		{"2.0e+3", "(-6.0e+0dB,-9.0e+1°)", "3.0e-3,4.0e-3"},
	}
	block, err := BuildTraceBlock(rows, axes, Scientific, DefaultBlockOptions(), 2)
	require.NoError(t, err)
	require.True(t, block.IsComplex())

	r, c := block.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, complex(2000, 0), block.Complex.At(0, 1))
	assert.Equal(t, complex(-3, -45), block.Complex.At(1, 0))
	assert.Equal(t, complex(3e-3, 4e-3), block.Complex.At(2, 1))
}

func TestBuildTraceBlockBadCell(t *testing.T) {
	axes := []models.AxisLabel{{Raw: "frequency"}, {Raw: "V(out)", Form: models.FormCartesian}}
	rows := [][]string{{"1.0e+3", "1.0e+0,2.0e+0"}, {"2.0e+3", "1.0e+0"}}
	_, err := BuildTraceBlock(rows, axes, Scientific, DefaultBlockOptions(), 2)

	var nonNumeric *NonNumericInBlockError
	require.ErrorAs(t, err, &nonNumeric)
	assert.Equal(t, 3, nonNumeric.Line)
	assert.Equal(t, 2, nonNumeric.Column)
}
