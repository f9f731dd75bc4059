// Package term renders review summaries for the terminal.
package term

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/yacobolo/designdiff"
)

// Reporter handles formatting and outputting review results.
type Reporter struct {
	w         io.Writer
	useColors bool
	verbose   bool
}

// NewReporter creates a reporter writing to w. When verbose is set, issue
// output is preceded by per-component scan diagnostics.
func NewReporter(w io.Writer, useColors, verbose bool) *Reporter {
	return &Reporter{w: w, useColors: useColors, verbose: verbose}
}

// ShouldUseColors determines if colors should be enabled.
func ShouldUseColors(force bool) bool {
	// Explicit flag wins
	if force {
		return true
	}

	// FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// GitHub Actions supports colors
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, _ := os.Stdout.Stat(); fileInfo != nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// PrintIssues outputs every issue grouped by component, in run order.
// Format: Component/property: message (CATEGORY)
func (r *Reporter) PrintIssues(summary *designdiff.RunSummary) {
	for _, name := range summary.Order {
		result, ok := summary.Components[name]
		if !ok {
			continue
		}
		if r.verbose {
			diag := fmt.Sprintf("scan %s: %s in spec, %s in implementation",
				name,
				pluralizeCount(result.SpecProps, "property", "properties"),
				pluralizeCount(result.ImplProps, "property", "properties"))
			fmt.Fprintln(r.w, RenderStyle(StyleGray, diag, r.useColors))
		}
		for _, issue := range result.Issues {
			location := fmt.Sprintf("%s/%s:", name, issue.Property)
			fmt.Fprintf(r.w, "%s %s %s\n",
				RenderStyle(StyleCyan, location, r.useColors),
				issue.Message,
				RenderStyle(r.severityStyle(issue.Severity), "("+string(issue.Category)+")", r.useColors))
		}
	}
}

// PrintSummary outputs per-component status and the severity breakdown.
func (r *Reporter) PrintSummary(summary *designdiff.RunSummary) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Design Review Summary", r.useColors))
	fmt.Fprintln(r.w, "------------------------")

	for _, name := range summary.Order {
		result, ok := summary.Components[name]
		if !ok {
			continue
		}
		if result.Status == designdiff.StatusPerfectMatch {
			fmt.Fprintf(r.w, "%s %s\n", RenderStyle(StyleGreen, "✓", r.useColors), name)
		} else {
			fmt.Fprintf(r.w, "%s %s (%s)\n",
				RenderStyle(StyleRed, "✗", r.useColors),
				name,
				pluralizeCount(len(result.Issues), "issue", "issues"))
		}
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintf(r.w, "%s across %s (%d major, %d minor, %d warnings)\n",
		pluralizeCount(summary.TotalIssues, "issue", "issues"),
		pluralizeCount(summary.TotalComponents, "component", "components"),
		summary.SeverityCounts[designdiff.SeverityMajor],
		summary.SeverityCounts[designdiff.SeverityMinor],
		summary.SeverityCounts[designdiff.SeverityWarning])

	if summary.TotalIssues > 0 {
		fmt.Fprintln(r.w, RenderStyle(StyleGray, "Hint: run with --output-format json to export the full report", r.useColors))
	}
}

func (r *Reporter) severityStyle(severity designdiff.Severity) lipgloss.Style {
	switch severity {
	case designdiff.SeverityMajor:
		return StyleRed
	case designdiff.SeverityMinor:
		return StyleYellow
	default:
		return StyleGray
	}
}

// pluralizeCount returns a formatted string with count and singular/plural form.
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
