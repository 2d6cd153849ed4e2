package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gowall/internal/logging"
	"github.com/philipparndt/gowall/pkg/export"
)

var (
	renderWidth  int
	renderHeight int
	renderGrid   bool
)

var renderCmd = &cobra.Command{
	Use:   "render <plan.yaml> <out.png>",
	Short: "Render a plan to a PNG image",
	Args:  cobra.ExactArgs(2),
	RunE:  runRender,
}

func init() {
	defaults := export.DefaultOptions()
	renderCmd.Flags().IntVar(&renderWidth, "width", defaults.Width, "image width in pixels")
	renderCmd.Flags().IntVar(&renderHeight, "height", defaults.Height, "image height in pixels")
	renderCmd.Flags().BoolVar(&renderGrid, "grid", true, "draw the background grid")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	p, err := loadPlan(ctx, args[0])
	if err != nil {
		return err
	}

	opts := export.DefaultOptions()
	opts.Width = renderWidth
	opts.Height = renderHeight
	opts.FontSize = cfg.Labels.FontSize
	opts.LabelScale = cfg.Labels.LabelScaleOptions
	opts.Formatter = cfg.Labels.Formatter()
	opts.GridSpacing = 0
	if renderGrid {
		opts.GridSpacing = cfg.View.GridSpacing
	}

	progress := logging.StartProgress(logging.FromContext(ctx))
	if err := export.SavePNG(args[1], p, opts); err != nil {
		return err
	}
	progress.Done(fmt.Sprintf("Rendered %dx%d", opts.Width, opts.Height))

	printSuccess("Rendered %d walls", p.Len())
	printFile(args[1])
	return nil
}
