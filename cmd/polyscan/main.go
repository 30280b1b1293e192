package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/polyscan-dev/polyscan/internal/logging"
	"github.com/polyscan-dev/polyscan/internal/version"
)

var (
	rootVerbose bool
	rootQuiet   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "polyscan",
		Short: "polyscan - polyglot project line-count and debt analyzer",
		Long: `polyscan recursively scans a project directory, classifies every line of
each source file as code, comment, or blank, detects technical-debt markers
(TODO, FIXME, HACK, BUG, XXX), and reports per-extension and project-wide
statistics.`,
		Version: version.GetVersion(),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(rootVerbose, rootQuiet)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false,
		"Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&rootQuiet, "quiet", "q", false,
		"Suppress diagnostic logging")

	rootCmd.AddCommand(analyzeCmd())
	rootCmd.AddCommand(checkCmd())
	rootCmd.AddCommand(initCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		// Handle custom exit codes from the check command
		if exitErr, ok := err.(*CheckExitError); ok {
			if exitErr.Message != "" {
				fmt.Fprintf(os.Stderr, "Error: %s\n", exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			full, _ := cmd.Flags().GetBool("full")
			if full {
				fmt.Println(version.GetFullVersion())
			} else {
				fmt.Printf("polyscan version %s\n", version.GetVersion())
			}
		},
	}

	cmd.Flags().Bool("full", false, "Show detailed version information")
	return cmd
}
