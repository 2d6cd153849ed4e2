package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gowall/internal/editor"
	"github.com/philipparndt/gowall/internal/logging"
	"github.com/philipparndt/gowall/pkg/plan"
	"github.com/philipparndt/gowall/pkg/planfile"
)

var (
	setWall   string
	setLength string
	setAxis   string
	setOutput string
)

var setLengthCmd = &cobra.Command{
	Use:   "set-length <plan.yaml>",
	Short: "Change a wall's length, or its horizontal or vertical extent",
	Long: `Move the end point of a wall so that its length, measured along the given
axis, becomes the requested value. The start point stays in place and the
wall keeps its direction. Without --axis the wall's dimension lock is used.`,
	Example: "  gowall set-length plan.yaml --wall 3 --length 48 --axis x",
	Args:    cobra.ExactArgs(1),
	RunE:    runSetLength,
}

func init() {
	setLengthCmd.Flags().StringVar(&setWall, "wall", "", "wall id or zero-based index")
	setLengthCmd.Flags().StringVar(&setLength, "length", "", "target length in plan units")
	setLengthCmd.Flags().StringVar(&setAxis, "axis", "", "none, x or y (default: the dimension's lock)")
	setLengthCmd.Flags().StringVarP(&setOutput, "output", "o", "", "write the result here instead of updating the input")
	setLengthCmd.MarkFlagRequired("wall")
	setLengthCmd.MarkFlagRequired("length")
	setLengthCmd.RegisterFlagCompletionFunc("axis", axisCompletion)
	rootCmd.AddCommand(setLengthCmd)
}

func runSetLength(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	p, err := loadPlan(ctx, args[0])
	if err != nil {
		return err
	}
	w, index, err := resolveWall(p, setWall)
	if err != nil {
		return err
	}

	axis := plan.AxisNone
	if d := w.Dimension(); d != nil {
		axis = d.LockedAxis()
	}
	if setAxis != "" {
		if axis, err = plan.ParseLockedAxis(setAxis); err != nil {
			return err
		}
	}

	before := plan.EditableLength(w, axis)
	if err := editor.SetLength(w, axis, setLength); err != nil {
		return fmt.Errorf("wall %d: %w", index, err)
	}
	logging.FromContext(ctx).Debug("length applied", "wall", w.ID(), "axis", axis, "from", before, "to", plan.EditableLength(w, axis))

	out := args[0]
	if setOutput != "" {
		out = setOutput
	}
	if err := planfile.Save(out, p); err != nil {
		return err
	}

	format := cfg.Labels.Formatter()
	printSuccess("Wall #%d %s: %s %s %s", index, axis, format.Format(before), iconArrow, format.Format(plan.EditableLength(w, axis)))
	printFile(out)
	return nil
}
