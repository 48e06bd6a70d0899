package toolbag

import (
	"strings"
	"testing"

	"github.com/l-johnston/toolbag/pkg/toolbag/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTraceData(t *testing.T) {
	input := "Frequency (GHz)\tDB(|S(1,1)|)[1]\tS21\n" +
		"1.0\t-20.5\t-0.1\n" +
		"2.0\t-18.25\t-0.2\n" +
		"3.5e+0\t-1.0e+1\t-3.0e-1\n"
	c, err := ReadTraceData(strings.NewReader(input), DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 3, c.Len())
	assert.Equal(t, "Frequency (GHz) DB(|S(1,1)|)[1] S21", c.Header())
	assert.Equal(t, []string{"Frequency (GHz)", "DB(|S(1,1)|)[1]", "S21"}, c.Legends())
	assert.Equal(t, []string{"S21"}, c.Names())

	v, err := c.Get("DB(|S(1,1)|)[1]")
	require.NoError(t, err)
	assert.Equal(t, []float64{-20.5, -18.25, -10}, v.Real.Values)
	assert.True(t, v.Real.Unit.IsDimensionless())

	v, err = c.Get("S21")
	require.NoError(t, err)
	assert.InDelta(t, -0.3, v.Real.Values[2], 1e-15)
}

func TestReadTraceDataRejectsSIPrefixes(t *testing.T) {
	_, err := ReadTraceData(strings.NewReader("f\tS11\n1\t2\n3k\t4\n"), DefaultOptions())
	var nonNumeric *parser.NonNumericInBlockError
	require.ErrorAs(t, err, &nonNumeric)
	assert.Equal(t, "3k", nonNumeric.Value)
}

func TestReadTraceDataUnlabeled(t *testing.T) {
	_, err := ReadTraceData(strings.NewReader("1\t2\n3\t4\n"), DefaultOptions())
	assert.ErrorIs(t, err, ErrNotLabeled)
}
