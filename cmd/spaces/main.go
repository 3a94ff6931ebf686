package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tessera-ai/spaces/cmd/spaces/commands"
	"github.com/tessera-ai/spaces/config"
	"github.com/tessera-ai/spaces/logger"
)

var rootCmd = &cobra.Command{
	Use:   "spaces",
	Short: "Inspect, sample, and combine value-domain descriptors",
	Long: `spaces - a type algebra for value domains.

Describes the spaces (domains and codomains) that samplers and agents draw
values from: dimensionality, cardinality, bounds, and membership.

Available commands:
  describe - Show the structure of a space
  sample   - Draw values from a space with a seeded generator
  enum     - Enumerate every value of a finite space
  combine  - Cardinality bookkeeping for unions and intersections
  version  - Print version information

A space is given as a shorthand (binary, naturals, discrete:N), an inline
JSON descriptor, or a path to a JSON/YAML descriptor file.

Examples:
  spaces describe discrete:6
  spaces sample discrete:6 -n 20 --seed 42
  spaces enum binary
  spaces combine union discrete:3 discrete:4
  spaces describe ./action-space.yaml`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		if err := logger.Initialize(cfg.Log.JSON, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")

	rootCmd.AddCommand(commands.DescribeCmd)
	rootCmd.AddCommand(commands.SampleCmd)
	rootCmd.AddCommand(commands.EnumCmd)
	rootCmd.AddCommand(commands.CombineCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
