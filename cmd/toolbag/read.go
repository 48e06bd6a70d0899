package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/l-johnston/toolbag/pkg/toolbag"
	"github.com/l-johnston/toolbag/pkg/toolbag/output"
	"github.com/spf13/cobra"
)

func readInput(path string) (*toolbag.Result, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("file not found: %s", path)
	}
	opts, err := cfg.Options(logger)
	if err != nil {
		return nil, err
	}
	res, err := toolbag.Read(path, opts)
	if err != nil {
		return nil, fmt.Errorf("read failed: %w", err)
	}
	return res, nil
}

func newReadCmd() *cobra.Command {
	var outputPath string
	cmd := &cobra.Command{
		Use:   "read [file]",
		Short: "Read a file and print its contents as JSON or YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := readInput(args[0])
			if err != nil {
				return err
			}
			doc, err := output.FromResult(res, true)
			if err != nil {
				return err
			}

			var data []byte
			switch cfg.Encoding {
			case "json", "":
				data, err = output.ToJSON(doc, cfg.Pretty)
			case "yaml":
				data, err = output.ToYAML(doc)
			default:
				return fmt.Errorf("invalid encoding: %s (must be json or yaml)", cfg.Encoding)
			}
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}

			if outputPath != "" {
				if err := os.WriteFile(outputPath, data, 0644); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(string(data), "\n"))
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().String("encoding", "json", "Output encoding: json, yaml")
	cmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
	return cmd
}

func newAxesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "axes [file]",
		Short: "List the axes of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := readInput(args[0])
			if err != nil {
				return err
			}
			if res.Data == nil {
				return fmt.Errorf("%s: %w", args[0], toolbag.ErrNotLabeled)
			}
			axes, err := output.Axes(res.Data, false)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "INDEX\tLABEL\tNAME\tUNITS\tFORM\tLEGEND")
			for i, a := range axes {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", i, a.Label, a.Name, strings.Join(a.Units, ","), a.Form, a.Legend)
			}
			return w.Flush()
		},
	}
}
