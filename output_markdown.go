package designdiff

import (
	"fmt"
	"io"
	"time"
)

// WriteMarkdown writes the run summary as a shareable Markdown report.
func WriteMarkdown(w io.Writer, summary *RunSummary) error {
	var err error
	p := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	p("# Design Review Report\n\n")
	p("Generated: %s\n\n", summary.Timestamp.Format(time.RFC3339))
	p("## Summary\n\n")
	p("| Components | Issues | Major | Minor | Warnings |\n")
	p("|---|---|---|---|---|\n")
	p("| %d | %d | %d | %d | %d |\n\n",
		summary.TotalComponents,
		summary.TotalIssues,
		summary.SeverityCounts[SeverityMajor],
		summary.SeverityCounts[SeverityMinor],
		summary.SeverityCounts[SeverityWarning])

	for _, name := range summary.Order {
		result, ok := summary.Components[name]
		if !ok {
			continue
		}

		p("## %s\n\n", name)
		if result.Status == StatusPerfectMatch {
			p("Perfect match, no issues.\n\n")
			continue
		}

		p("| Severity | Category | Property | Detail |\n")
		p("|---|---|---|---|\n")
		for _, issue := range result.Issues {
			p("| %s | %s | `%s` | %s |\n",
				issue.Severity, issue.Category, issue.Property, issue.Message)
		}
		p("\n")
	}

	return err
}
