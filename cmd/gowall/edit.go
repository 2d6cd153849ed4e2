package main

import (
	"errors"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gowall/internal/app"
	"github.com/philipparndt/gowall/internal/logging"
)

var editEmpty bool

var editCmd = &cobra.Command{
	Use:   "edit [plan.yaml]",
	Short: "Open the plan editor",
	Long: `Open the interactive editor. Without a file, or with a file that does not
exist yet, the editor starts with generated sample walls (or an empty plan
with --empty). Ctrl+S saves; external changes to the file are reloaded.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().BoolVar(&editEmpty, "empty", false, "start new plans without sample walls")
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)
	opts := app.Options{Config: cfg}

	if len(args) == 1 {
		opts.Path = args[0]
		p, err := loadPlan(ctx, opts.Path)
		switch {
		case err == nil:
			opts.Plan = p
		case errors.Is(err, fs.ErrNotExist):
			logger.Info("new plan, Ctrl+S creates it", "file", opts.Path)
		default:
			return err
		}
	}

	if opts.Plan == nil && !editEmpty {
		p, ids, err := seedPlan(cfg.Seed.Count, cfg.Seed.Seed)
		if err != nil {
			return err
		}
		opts.Plan, opts.SeedIDs = p, ids
		logger.Debug("seeded plan", "walls", p.Len(), "seed", cfg.Seed.Seed)
	}

	return app.Run(ctx, opts)
}
