package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gowall/pkg/analysis"
	"github.com/philipparndt/gowall/pkg/geometry"
)

var (
	infoTop  int
	infoNear string
)

var infoCmd = &cobra.Command{
	Use:   "info <plan.yaml>",
	Short: "Display statistics about a plan",
	Long:  "Show wall and dimension counts, the plan extent and wall length statistics.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	infoCmd.Flags().IntVar(&infoTop, "top", 3, "number of longest and shortest walls to list")
	infoCmd.Flags().StringVar(&infoNear, "near", "", "also report the wall nearest to the point x,y")
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	p, err := loadPlan(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	format := cfg.Labels.Formatter()
	stats := analysis.AnalyzePlan(p)

	printTitle("Plan " + args[0])
	printKeyValue("Walls", styleNumber.Render(strconv.Itoa(stats.WallCount)))
	printKeyValue("Dimensions", fmt.Sprintf("%s %s", styleNumber.Render(strconv.Itoa(stats.DimensionCount)),
		styleDim.Render(fmt.Sprintf("(%d locked x, %d locked y)", stats.LockedX, stats.LockedY))))
	if stats.WallCount == 0 {
		return nil
	}

	printKeyValue("Extent", fmt.Sprintf("%s × %s", format.Format(stats.Extent.X), format.Format(stats.Extent.Y)))
	printKeyValue("Min", analysis.FormatVector(stats.BoundingBox.Min))
	printKeyValue("Max", analysis.FormatVector(stats.BoundingBox.Max))
	printKeyValue("Center", analysis.FormatVector(stats.BoundingBox.Center()))
	printNewline()

	printTitle("Wall lengths")
	printKeyValue("Total", format.Format(stats.TotalLength))
	printKeyValue("Minimum", format.Format(stats.MinWallLength))
	printKeyValue("Maximum", format.Format(stats.MaxWallLength))
	printKeyValue("Average", format.Format(stats.AvgWallLength))

	if infoTop > 0 {
		printNewline()
		printTitle("Longest walls")
		for _, w := range analysis.FindLongestWalls(stats, infoTop) {
			printWall(w, format.Format(w.Length))
		}
		printTitle("Shortest walls")
		for _, w := range analysis.FindShortestWalls(stats, infoTop) {
			printWall(w, format.Format(w.Length))
		}
	}

	if infoNear != "" {
		point, err := parsePoint(infoNear)
		if err != nil {
			return err
		}
		w, dist := analysis.FindNearestWall(p, point)
		printNewline()
		printTitle("Nearest to " + analysis.FormatVector(point))
		printWall(stats.AllWalls[p.Index(w.ID())], fmt.Sprintf("%s away", analysis.FormatMeasurement(dist, "")))
	}
	return nil
}

func printWall(w analysis.WallInfo, detail string) {
	fmt.Printf("  %s %s %s  %s\n",
		styleNumber.Render(fmt.Sprintf("#%-4d", w.Index)),
		styleDim.Render(w.ID[:8]),
		styleValue.Render(detail),
		styleDim.Render(analysis.FormatVector(w.Start)+" "+iconArrow+" "+analysis.FormatVector(w.End)))
}

// parsePoint parses "x,y"
func parsePoint(s string) (geometry.Vector3, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return geometry.Vector3{}, fmt.Errorf("invalid point %q, expected x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return geometry.Vector3{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return geometry.Vector3{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	return geometry.NewVector2(x, y), nil
}
