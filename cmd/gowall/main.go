package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gowall/internal/config"
	"github.com/philipparndt/gowall/internal/logging"
	"github.com/philipparndt/gowall/version"
)

var (
	verbose    bool
	configPath string
	cfg        = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "gowall",
	Short: "Floor plan walls with axis-lockable dimensions",
	Long: `gowall edits floor plans made of straight walls. Every wall can carry a
dimension line that measures its true length or, when locked, only its
horizontal or vertical extent. Plans are stored as YAML.`,
	Version:      version.GetVersion(),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.New(os.Stderr, logging.Level(verbose))
		cmd.SetContext(logging.WithLogger(cmd.Context(), logger))

		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("gowall %s\n", version.GetFullVersion()))
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default "+config.DefaultPath()+")")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
