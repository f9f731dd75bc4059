package designdiff

// OutputFormat selects how a run summary is rendered.
type OutputFormat string

const (
	// OutputIssues shows only the classified issues (CI-friendly default)
	OutputIssues OutputFormat = "issues"
	// OutputSummary shows per-component status and severity counts only
	OutputSummary OutputFormat = "summary"
	// OutputFull shows issues plus the summary table
	OutputFull OutputFormat = "full"
	// OutputJSON exports the report document (tooling integration)
	OutputJSON OutputFormat = "json"
	// OutputMarkdown generates a shareable Markdown report
	OutputMarkdown OutputFormat = "markdown"
)

// DetermineOutputFormat selects the output format from the flag value.
// Invalid or empty values fall back to the issues view.
func DetermineOutputFormat(formatFlag string) OutputFormat {
	switch formatFlag {
	case "issues":
		return OutputIssues
	case "summary":
		return OutputSummary
	case "full":
		return OutputFull
	case "json":
		return OutputJSON
	case "markdown", "md":
		return OutputMarkdown
	}

	return OutputIssues
}
