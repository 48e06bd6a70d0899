package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/l-johnston/toolbag/pkg/toolbag"
	"github.com/spf13/cobra"
)

func newTimestampCmd() *cobra.Command {
	var local bool
	cmd := &cobra.Command{
		Use:   "timestamp [seconds...]",
		Short: "Convert LabVIEW timestamps (seconds since 1904-01-01 UTC)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				s, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("invalid timestamp: %s", arg)
				}
				t := toolbag.LabVIEWTime(s)
				if local {
					t = t.Local()
				}
				fmt.Fprintln(cmd.OutOrStdout(), t.Format(time.RFC3339Nano))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&local, "local", false, "Print local time instead of UTC")
	return cmd
}
