// Command radialctl inspects radial menu configurations: it prints the
// segment table a config produces and resolves angles, pointer positions
// and stick deflections to slots.
package main

import (
	"fmt"
	"os"

	"github.com/phanxgames/radial"
	"github.com/spf13/cobra"
)

var (
	configPath string
	segments   int
)

var rootCmd = &cobra.Command{
	Use:   "radialctl",
	Short: "Inspect radial menu configurations",
	Long: `radialctl loads a radial menu YAML config and shows how it partitions the
circle, and which slot a given angle, pointer position or stick deflection
selects.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "menu config YAML file (defaults apply when empty)")
	rootCmd.PersistentFlags().IntVarP(&segments, "segments", "n", 0, "override the config's segment count")
}

// loadConfig reads --config, or the defaults, and applies --segments.
func loadConfig() (radial.Config, error) {
	cfg := radial.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = radial.LoadConfig(configPath); err != nil {
			return radial.Config{}, err
		}
	}
	if segments != 0 {
		cfg.Segments = segments
	}
	return cfg, nil
}

// buildTable partitions cfg and applies its overrides, the way Menu.Setup
// does.
func buildTable(cfg radial.Config) *radial.SegmentTable {
	t := radial.Partition(cfg.Segments, cfg.MinSegmentAngle, cfg.MaxSegmentAngle)
	for _, o := range cfg.Overrides {
		t.Override(o.Slot, o.MinAngle, o.MaxAngle)
	}
	return t
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
