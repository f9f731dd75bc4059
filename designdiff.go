// Package designdiff compares design specifications against UI component
// implementations and reports styling, spacing, token, and accessibility
// discrepancies.
//
// designdiff normalizes two heterogeneous artifacts per component, a
// structured design spec (exported from a design tool) and a markup snippet
// (the implementation), into flat canonical property sets, resolves symbolic
// design tokens through a token table, and computes a classified diff.
//
// # Reviewing components
//
//	tokens, err := designdiff.LoadTokens("design/tokens.json")
//	loader := &designdiff.FileLoader{
//		SpecDir:      "design/specs",
//		ImplPatterns: []string{"src/components/**/*.{jsx,tsx,html}"},
//	}
//	summary, err := designdiff.Run([]string{"Button", "Card"}, loader, tokens, designdiff.DefaultRules())
//
// # Writing reports
//
//	designdiff.WriteJSON(os.Stdout, summary)
//
// # CLI Tool
//
// designdiff also provides a CLI tool. Install with:
//
//	go install github.com/yacobolo/designdiff/cmd/designdiff@latest
package designdiff
