package designdiff

import (
	"encoding/json"
	"io"
	"time"
)

// The JSON shapes below are the compatibility surface consumed by downstream
// report tooling. Field names and enumerated string values must be
// reproduced exactly.

type jsonReport struct {
	Metadata   jsonMetadata             `json:"metadata"`
	Components map[string]jsonComponent `json:"components"`
}

type jsonMetadata struct {
	Timestamp       string      `json:"timestamp"`
	TotalComponents int         `json:"totalComponents"`
	TotalIssues     int         `json:"totalIssues"`
	Summary         jsonSummary `json:"summary"`
}

type jsonSummary struct {
	Major    int `json:"major"`
	Minor    int `json:"minor"`
	Warnings int `json:"warnings"`
}

type jsonComponent struct {
	Status string      `json:"status"`
	Issues []jsonIssue `json:"issues"`
}

type jsonIssue struct {
	Category  string `json:"category"`
	Severity  string `json:"severity"`
	Property  string `json:"property"`
	SpecValue *Value `json:"specValue"`
	ImplValue *Value `json:"implValue"`
	Message   string `json:"message"`
}

// WriteJSON writes the run summary as the report document.
func WriteJSON(w io.Writer, summary *RunSummary) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildJSONReport(summary))
}

func buildJSONReport(summary *RunSummary) jsonReport {
	components := make(map[string]jsonComponent, len(summary.Components))
	for name, result := range summary.Components {
		issues := make([]jsonIssue, 0, len(result.Issues))
		for _, issue := range result.Issues {
			issues = append(issues, jsonIssue{
				Category:  string(issue.Category),
				Severity:  string(issue.Severity),
				Property:  issue.Property,
				SpecValue: issue.SpecValue,
				ImplValue: issue.ImplValue,
				Message:   issue.Message,
			})
		}
		components[name] = jsonComponent{
			Status: string(result.Status),
			Issues: issues,
		}
	}

	return jsonReport{
		Metadata: jsonMetadata{
			Timestamp:       summary.Timestamp.Format(time.RFC3339),
			TotalComponents: summary.TotalComponents,
			TotalIssues:     summary.TotalIssues,
			Summary: jsonSummary{
				Major:    summary.SeverityCounts[SeverityMajor],
				Minor:    summary.SeverityCounts[SeverityMinor],
				Warnings: summary.SeverityCounts[SeverityWarning],
			},
		},
		Components: components,
	}
}
