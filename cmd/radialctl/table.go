package main

import (
	"fmt"

	"github.com/phanxgames/radial"
	"github.com/spf13/cobra"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the segment table of a config",
	Args:  cobra.NoArgs,
	RunE:  runTable,
}

func init() {
	rootCmd.AddCommand(tableCmd)
}

func runTable(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	t := buildTable(cfg)
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Segments: %d\n", cfg.Segments)
	fmt.Fprintf(out, "Width: %.2f°\n", t.Width())
	fmt.Fprintf(out, "Winding: %s\n", winding(cfg.Clockwise))
	if t.Degenerate() {
		if cfg.Segments < 1 {
			fmt.Fprintln(out, "No slots: the segment count is below 1.")
		} else {
			fmt.Fprintln(out, "No slots: the segment width is below the minimum angle.")
		}
		return nil
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%-6s %9s %9s %9s\n", "SLOT", "MIN", "MAX", "MID")
	for _, slot := range t.Slots() {
		lo, hi, _ := t.Bounds(slot)
		mid, _ := t.Mid(slot)
		fmt.Fprintf(out, "%-6d %9.2f %9.2f %9.2f\n", slot, lo, hi, mid)
	}
	return nil
}

func winding(clockwise bool) string {
	if clockwise {
		return "clockwise"
	}
	return "counter-clockwise"
}

// formatSlot renders a slot number, or "none" for radial.NoSegment.
func formatSlot(slot int) string {
	if slot == radial.NoSegment {
		return "none"
	}
	return fmt.Sprint(slot)
}
