package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/designdiff"
	"github.com/yacobolo/designdiff/internal/term"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Compare design specs against component implementations",
	Long: `Load the configured components, normalize the design spec and the
implementation snippet for each, and report classified discrepancies.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return runCheck()
	},
}

func init() {
	f := checkCmd.Flags()
	f.StringSlice("component", nil, "Component names to review (default: config file)")
	f.String("spec-dir", "design/specs", "Directory containing spec artifacts (<Component>.json)")
	f.StringSlice("impl", []string{"src/**/*.{jsx,tsx,html}"}, "Glob patterns for implementation files")
	f.String("tokens", "design/tokens.json", "Design token table (JSON or YAML)")
	f.String("output-format", "", "Output format: issues|summary|full|json|markdown")
	f.String("out", "", "Also write the JSON report to this file")
}

// runCheck is shared between `designdiff check` and the bare `designdiff`
// invocation.
func runCheck() error {
	settings := buildCheckSettings()

	tokens, err := designdiff.LoadTokens(settings.TokensPath)
	if err != nil {
		return err
	}

	loader := &designdiff.FileLoader{
		SpecDir:      settings.SpecDir,
		ImplPatterns: settings.ImplPatterns,
	}

	summary, err := designdiff.Run(settings.Components, loader, tokens, designdiff.DefaultRules())
	if err != nil {
		return err
	}

	if settings.ReportPath != "" {
		if err := writeReportFile(settings.ReportPath, summary); err != nil {
			return err
		}
	}

	if settings.Quiet {
		return nil
	}

	reporter := term.NewReporter(os.Stdout, term.ShouldUseColors(settings.Color), settings.Verbose)

	switch designdiff.DetermineOutputFormat(settings.OutputFormat) {
	case designdiff.OutputJSON:
		return designdiff.WriteJSON(os.Stdout, summary)
	case designdiff.OutputMarkdown:
		return designdiff.WriteMarkdown(os.Stdout, summary)
	case designdiff.OutputSummary:
		reporter.PrintSummary(summary)
	case designdiff.OutputFull:
		reporter.PrintIssues(summary)
		reporter.PrintSummary(summary)
	default:
		reporter.PrintIssues(summary)
	}

	return nil
}

func writeReportFile(path string, summary *designdiff.RunSummary) error {
	f, err := os.Create(path) // #nosec G304 - path comes from trusted configuration
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	defer f.Close()

	if err := designdiff.WriteJSON(f, summary); err != nil {
		return fmt.Errorf("writing report file: %w", err)
	}
	return nil
}
