package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gowall/pkg/analysis"
	"github.com/philipparndt/gowall/pkg/plan"
)

var (
	dimsAxis      string
	dimsMinLength float64
	dimsMaxLength float64
)

var dimsCmd = &cobra.Command{
	Use:   "dims <plan.yaml>",
	Short: "Print the derived geometry of every dimension",
	Long:  "For each wall with a dimension, print the dimension line end points, the label angle and the measured length.",
	Args:  cobra.ExactArgs(1),
	RunE:  runDims,
}

func init() {
	dimsCmd.Flags().StringVar(&dimsAxis, "axis", "", "measure every dimension along this axis instead of its own lock (none, x, y)")
	dimsCmd.Flags().Float64Var(&dimsMinLength, "min", 0, "only walls at least this long")
	dimsCmd.Flags().Float64Var(&dimsMaxLength, "max", math.Inf(1), "only walls at most this long")
	dimsCmd.RegisterFlagCompletionFunc("axis", axisCompletion)
	rootCmd.AddCommand(dimsCmd)
}

func runDims(cmd *cobra.Command, args []string) error {
	var override *plan.LockedAxis
	if dimsAxis != "" {
		axis, err := plan.ParseLockedAxis(dimsAxis)
		if err != nil {
			return err
		}
		override = &axis
	}

	p, err := loadPlan(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	format := cfg.Labels.Formatter()
	stats := analysis.AnalyzePlan(p)
	walls := p.Walls()

	shown := 0
	for _, info := range analysis.FindWallsByLength(stats, dimsMinLength, dimsMaxLength) {
		d := walls[info.Index].Dimension()
		if d == nil {
			continue
		}
		axis := d.LockedAxis()
		if override != nil {
			axis = *override
		}
		line := plan.ComputeDimensionLine(walls[info.Index].Geometry(), d.Offset(), axis)

		lock := styleDim.Render(axis.String())
		if axis != plan.AxisNone {
			lock = styleLocked.Render(axis.String())
		}
		fmt.Printf("%s %s  %s  lock %s  offset %s\n",
			styleNumber.Render(fmt.Sprintf("#%-4d", info.Index)),
			styleDim.Render(info.ID[:8]),
			styleValue.Render(format.Format(line.Length)),
			lock,
			analysis.FormatMeasurement(d.Offset(), ""))
		fmt.Printf("      line %s %s %s  label %s\n",
			analysis.FormatVector(line.DimStart), iconArrow, analysis.FormatVector(line.DimEnd),
			analysis.FormatAngle(line.LabelAngle))
		shown++
	}

	if shown == 0 {
		fmt.Println(styleDim.Render("no dimensions"))
	}
	return nil
}
