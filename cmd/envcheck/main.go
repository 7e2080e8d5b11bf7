package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"

	// Global flags
	quietMode bool
	verbosity int
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "envcheck",
		Short:        "Validate environment setup for the agent demo",
		Long:         `envcheck validates that a machine is ready for the agent demo: Python version, required packages, and Google Cloud CLI configuration`,
		Version:      version,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "silence all stderr output")
	rootCmd.PersistentFlags().IntVarP(&verbosity, "verbosity", "v", 0, "debug log verbosity, higher value produces more output")

	// Add commands
	rootCmd.AddCommand(checkCmd())

	if err := rootCmd.Execute(); err != nil {
		if !quietMode {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func checkCmd() *cobra.Command {
	var (
		configFile string
		output     string
		timeout    string
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check environment prerequisites",
		Long:  `Validate that the environment meets requirements for running the agent demo.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChecks(configFile, output, timeout)
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "path to a check profile file")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "report format, one of [text, table, json]")
	cmd.Flags().StringVar(&timeout, "timeout", "", "per-probe timeout, overrides config (default 5s)")

	return cmd
}
