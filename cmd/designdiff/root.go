package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "designdiff",
	Short: "Design-spec compliance review for UI components",
	Long: `Compare design specifications against component implementations.
designdiff normalizes both artifacts, resolves design tokens, and reports
classified discrepancies in styling, spacing, tokens, and accessibility.`,
	// Default behavior: run check when no subcommand is given.
	// loadConfig must be called here because PreRunE of checkCmd is not
	// triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runCheck()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", ".designdiff.yaml", "Config file path")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
