package output

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/l-johnston/toolbag/pkg/toolbag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNumberJSON(t *testing.T) {
	data, err := ToJSON([]Number{1.5, Number(math.NaN()), Number(math.Inf(1)), Number(math.Inf(-1))}, false)
	require.NoError(t, err)
	assert.Equal(t, `[1.5,"NaN","Inf","-Inf"]`, string(data))
}

func TestFromResultTable(t *testing.T) {
	table, err := toolbag.ReadCSV(strings.NewReader("time (s),voltage (V)\n0,1\n1,\n"), toolbag.DefaultOptions())
	require.NoError(t, err)
	res := &toolbag.Result{Path: "run.csv", Format: toolbag.FormatCSV, Table: table, Data: table.Data}

	doc, err := FromResult(res, true)
	require.NoError(t, err)
	assert.Equal(t, "column", doc.Orientation)
	require.Len(t, doc.Axes, 2)
	assert.Equal(t, "time", doc.Axes[0].Name)
	assert.Equal(t, []string{"V"}, doc.Axes[1].Units)
	assert.Equal(t, "real", doc.Axes[1].Form)

	data, err := ToJSON(doc, true)
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "csv", decoded["format"])
	assert.Contains(t, string(data), `"NaN"`)

	doc, err = FromResult(res, false)
	require.NoError(t, err)
	assert.Nil(t, doc.Axes[0].Values)
}

func TestFromResultFlat(t *testing.T) {
	table, err := toolbag.ReadCSV(strings.NewReader("1,2,3"), toolbag.DefaultOptions())
	require.NoError(t, err)

	doc, err := FromResult(&toolbag.Result{Format: toolbag.FormatCSV, Table: table}, true)
	require.NoError(t, err)
	assert.Equal(t, []Number{1, 2, 3}, doc.Values)
	assert.Empty(t, doc.Axes)
}

func TestToYAML(t *testing.T) {
	data, err := ToYAML(map[string]interface{}{"format": "csv", "values": []Number{1, Number(math.NaN())}})
	require.NoError(t, err)

	var decoded struct {
		Format string    `yaml:"format"`
		Values []float64 `yaml:"values"`
	}
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, "csv", decoded.Format)
	require.Len(t, decoded.Values, 2)
	assert.True(t, math.IsNaN(decoded.Values[1]))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "NaN", FormatNumber(math.NaN()))
	assert.Equal(t, "-Inf", FormatNumber(math.Inf(-1)))
	assert.Equal(t, "0.001", FormatNumber(1e-3))
}
