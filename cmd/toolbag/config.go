package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/providers/structs"
	"github.com/l-johnston/toolbag/pkg/toolbag"
	"github.com/l-johnston/toolbag/pkg/toolbag/output"
	"github.com/l-johnston/toolbag/pkg/toolbag/units"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// DefaultConfigFile is read from the working directory when --config is not given.
const DefaultConfigFile = "toolbag.yml"

// UnitDef registers symbol as scale times base, e.g. {dBuV, 1, dB}.
type UnitDef struct {
	Symbol string  `koanf:"symbol" yaml:"symbol"`
	Scale  float64 `koanf:"scale" yaml:"scale"`
	Base   string  `koanf:"base" yaml:"base"`
}

// Config is the effective CLI configuration.
type Config struct {
	Format    string    `koanf:"format" yaml:"format"`
	Revision  string    `koanf:"revision" yaml:"revision"`
	Delimiter string    `koanf:"delimiter" yaml:"delimiter"`
	Sheet     string    `koanf:"sheet" yaml:"sheet"`
	Range     string    `koanf:"range" yaml:"range"`
	Encoding  string    `koanf:"encoding" yaml:"encoding"`
	Pretty    bool      `koanf:"pretty" yaml:"pretty"`
	LogLevel  string    `koanf:"log-level" yaml:"log-level"`
	Units     []UnitDef `koanf:"units" yaml:"units"`
}

func defaultConfig() Config {
	return Config{
		Revision: string(toolbag.RevisionCurrent),
		Encoding: "json",
		LogLevel: "warn",
		Units:    []UnitDef{},
	}
}

// loadConfig layers the defaults, the YAML config file and the flags that
// were set on the command line. A missing config file is ignored.
func loadConfig(path string, flags *pflag.FlagSet) (Config, error) {
	k := koanf.New(".")
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return Config{}, err
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if !os.IsNotExist(err) && !strings.Contains(err.Error(), "no such") {
			return Config{}, fmt.Errorf("error loading config %s: %w", path, err)
		}
	}
	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return Config{}, err
		}
	}

	var c Config
	if err := k.Unmarshal("", &c); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Options converts the configuration into reader options.
func (c Config) Options(logger *slog.Logger) (toolbag.Options, error) {
	format, err := toolbag.ParseFormat(c.Format)
	if err != nil {
		return toolbag.Options{}, fmt.Errorf("invalid format %q", c.Format)
	}

	var opts toolbag.Options
	switch toolbag.Revision(c.Revision) {
	case toolbag.RevisionCurrent, "":
		opts = toolbag.DefaultOptions()
	case toolbag.RevisionLegacy:
		opts = toolbag.LegacyOptions()
	default:
		return toolbag.Options{}, fmt.Errorf("invalid revision: %s (must be current or legacy)", c.Revision)
	}
	opts.Format = format
	opts.Delimiter = unescapeDelimiter(c.Delimiter)
	opts.Sheet = c.Sheet
	opts.Range = c.Range
	opts.Logger = logger

	if len(c.Units) > 0 {
		reg := units.NewRegistry()
		for _, u := range c.Units {
			if err := reg.Define(u.Symbol, u.Scale, u.Base); err != nil {
				return toolbag.Options{}, fmt.Errorf("unit %q: %w", u.Symbol, err)
			}
		}
		opts.Units = reg
	}
	return opts, nil
}

// unescapeDelimiter lets a tab be written as `\t` on the command line.
func unescapeDelimiter(s string) string {
	if s == `\t` {
		return "\t"
	}
	return s
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level: %s", s)
	}
	return level, nil
}

func newConfigCmd() *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := output.ToYAML(cfg)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			if write {
				if err := os.WriteFile(configPath, data, 0644); err != nil {
					return fmt.Errorf("failed to write config: %w", err)
				}
				return nil
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().BoolVar(&write, "write", false, "Write the configuration to the config file instead of stdout")
	return cmd
}
