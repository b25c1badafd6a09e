package main

import (
	"fmt"
	"strconv"

	"github.com/phanxgames/radial"
	"github.com/spf13/cobra"
)

var (
	viewportW float64
	viewportH float64
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <angle>",
	Short: "Resolve an angle in degrees to a slot",
	Args:  cobra.ExactArgs(1),
	RunE:  runResolve,
}

var pointCmd = &cobra.Command{
	Use:   "point <x> <y>",
	Short: "Resolve a screen position to a slot",
	Long: `Resolve a pointer position to a slot, using a screen-centered menu on a
viewport of --width by --height pixels. The config's center offset, start
rotation, winding and dead zone all apply.`,
	Args: cobra.ExactArgs(2),
	RunE: runPoint,
}

var stickCmd = &cobra.Command{
	Use:   "stick <x> <y>",
	Short: "Resolve a stick deflection to a slot",
	Args:  cobra.ExactArgs(2),
	RunE:  runStick,
}

func init() {
	pointCmd.Flags().Float64Var(&viewportW, "width", 640, "viewport width")
	pointCmd.Flags().Float64Var(&viewportH, "height", 480, "viewport height")
	rootCmd.AddCommand(resolveCmd, pointCmd, stickCmd)
}

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out[i] = v
	}
	return out, nil
}

func runResolve(cmd *cobra.Command, args []string) error {
	v, err := parseFloats(args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	slot := buildTable(cfg).Segment(v[0])
	fmt.Fprintf(cmd.OutOrStdout(), "slot: %s\n", formatSlot(slot))
	return nil
}

func runPoint(cmd *cobra.Command, args []string) error {
	v, err := parseFloats(args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	p := radial.Vec2{X: v[0], Y: v[1]}
	center := radial.ScreenCenter(viewportW, viewportH, cfg.CenterOffset)
	angle := radial.AngleFromPointer(p, center, cfg.StartRotation, cfg.Clockwise)

	fmt.Fprintf(out, "center: (%.1f, %.1f)\n", center.X, center.Y)
	fmt.Fprintf(out, "angle: %.2f\n", angle)
	if !radial.OutsideDeadZone(p, center, cfg.DeadZoneRadius) {
		fmt.Fprintln(out, "slot: none (inside dead zone)")
		return nil
	}
	fmt.Fprintf(out, "slot: %s\n", formatSlot(buildTable(cfg).Segment(angle)))
	return nil
}

func runStick(cmd *cobra.Command, args []string) error {
	v, err := parseFloats(args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	angle, ok := radial.AngleFromStick(v[0], v[1], cfg.Clockwise)
	if !ok {
		fmt.Fprintln(out, "slot: none (stick centered)")
		return nil
	}
	fmt.Fprintf(out, "angle: %.2f\n", angle)
	fmt.Fprintf(out, "slot: %s\n", formatSlot(buildTable(cfg).Segment(angle)))
	return nil
}
