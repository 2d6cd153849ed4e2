package main

import (
	"github.com/spf13/cobra"

	"github.com/philipparndt/gowall/pkg/planfile"
)

var (
	seedCount int
	seedValue uint64
)

var seedCmd = &cobra.Command{
	Use:   "seed <out.yaml>",
	Short: "Write a plan of random walls with dimensions",
	Long:  "Generate scattered sample walls, each with a dimension on a random side. The same seed always produces the same plan.",
	Args:  cobra.ExactArgs(1),
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().IntVarP(&seedCount, "count", "n", 0, "number of walls (default from config)")
	seedCmd.Flags().Uint64Var(&seedValue, "seed", 0, "random seed (default from config)")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	count := cfg.Seed.Count
	if cmd.Flags().Changed("count") {
		count = seedCount
	}
	seed := cfg.Seed.Seed
	if cmd.Flags().Changed("seed") {
		seed = seedValue
	}

	p, _, err := seedPlan(count, seed)
	if err != nil {
		return err
	}
	if err := planfile.Save(args[0], p); err != nil {
		return err
	}

	printSuccess("Generated %d walls (seed %d)", p.Len(), seed)
	printFile(args[0])
	return nil
}
