package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	c, err := loadConfig(filepath.Join(t.TempDir(), "missing.yml"), nil)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig().Revision, c.Revision)
	assert.Equal(t, "json", c.Encoding)
	assert.Equal(t, "warn", c.LogLevel)
}

func TestLoadConfigLayers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "toolbag.yml")
	require.NoError(t, os.WriteFile(path, []byte(`revision: legacy
delimiter: '\t'
units:
  - symbol: dBuV
    scale: 1
    base: dB
`), 0644))

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("revision", "current", "")
	flags.String("sheet", "", "")
	require.NoError(t, flags.Parse([]string{"--sheet", "Data"}))

	c, err := loadConfig(path, flags)
	require.NoError(t, err)
	assert.Equal(t, "legacy", c.Revision, "unset flag must not override the file")
	assert.Equal(t, "Data", c.Sheet)
	require.Len(t, c.Units, 1)
	assert.Equal(t, "dBuV", c.Units[0].Symbol)

	opts, err := c.Options(nil)
	require.NoError(t, err)
	assert.Equal(t, "\t", opts.Delimiter)
	assert.False(t, opts.ShouldPadRagged())
	require.NotNil(t, opts.Units)
	_, err = opts.Units.Lookup("dBuV")
	assert.NoError(t, err)
}

func TestConfigOptionsErrors(t *testing.T) {
	_, err := Config{Format: "paf"}.Options(nil)
	assert.Error(t, err)

	_, err = Config{Revision: "v0"}.Options(nil)
	assert.Error(t, err)

	_, err = Config{Units: []UnitDef{{Symbol: "s", Scale: 1, Base: "s"}}}.Options(nil)
	assert.Error(t, err)

	_, err = parseLevel("loud")
	assert.Error(t, err)
}

func TestReadCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "spectrum.csv")
	require.NoError(t, os.WriteFile(input, []byte("frequency (Hz),1,2\npower (dBm),3,4\n"), 0644))

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--config", filepath.Join(dir, "none.yml"), "axes", input})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "frequency (Hz)")
	assert.Contains(t, out.String(), "dBm")

	out.Reset()
	cmd = newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config", filepath.Join(dir, "none.yml"), "read", "--encoding", "yaml", input})
	require.NoError(t, cmd.Execute())
	assert.True(t, strings.HasPrefix(out.String(), "path: "), out.String())
	assert.Contains(t, out.String(), "orientation: row")
}

func TestTimestampCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "none.yml"), "timestamp", "2082844800"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "1970-01-01T00:00:00Z\n", out.String())
}
