// Package main provides the CLI entry point for toolbag.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	cfg        Config
	logger     *slog.Logger
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "toolbag",
		Short: "Read lab-instrument and EDA export files",
		Long: `toolbag reads LabVIEW spreadsheets, LTspice text and raw waveform files
and AWR trace data, and prints their labeled, unit-aware contents.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig(configPath, cmd.Flags())
			if err != nil {
				return err
			}
			level, err := parseLevel(c.LogLevel)
			if err != nil {
				return err
			}
			cfg = c
			logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", DefaultConfigFile, "Configuration file")
	pf.String("log-level", "warn", "Log level: debug, info, warn, error")
	pf.String("format", "", "Input format: csv, xlsx, ltxt, ltraw, awr (default: from extension)")
	pf.String("revision", "current", "Format revision rules: current, legacy")
	pf.String("delimiter", "", `Cell delimiter, e.g. "," or "\t"`)
	pf.String("sheet", "", "Workbook sheet (default: active sheet)")
	pf.String("range", "", "Workbook cell range, e.g. A1:D10 (default: print area or used range)")

	rootCmd.AddCommand(newReadCmd(), newAxesCmd(), newTimestampCmd(), newConfigCmd())
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
