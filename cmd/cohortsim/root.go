package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for cohortsim.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cohortsim",
		Short: "Simulate and analyze a synthetic social-media wellbeing cohort",
		Long: `cohortsim deterministically simulates a synthetic cohort correlating
social-media usage with mental-health indicators (loneliness, depression,
anxiety), writes it as a delimited dataset, and reports descriptive
statistics, Pearson correlations, and Welch t-tests.

Every record is synthetic: the generator encodes a small causal simulation
(usage drives comparison behavior and distress, distress drives break-taking)
with seeded pseudorandom noise, so identical seeds reproduce identical
cohorts bit for bit.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewGenerateCmd())
	cmd.AddCommand(NewAnalyzeCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
