package designdiff

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Severity classifies how important an issue is for aggregate reporting.
type Severity string

// Severity levels, ordered MAJOR > MINOR > WARNING.
const (
	SeverityMajor   Severity = "MAJOR"
	SeverityMinor   Severity = "MINOR"
	SeverityWarning Severity = "WARNING"
)

// Category identifies the kind of discrepancy an issue describes.
type Category string

// Issue categories. The string values are part of the report schema consumed
// by downstream tooling and must not change.
const (
	CategoryTokenMismatch   Category = "TOKEN_MISMATCH"
	CategoryValueDifference Category = "VALUE_DIFFERENCE"
	CategoryMissingProperty Category = "MISSING_PROPERTY"
	CategoryAccessibility   Category = "ACCESSIBILITY_VIOLATION"
	CategoryImplDifference  Category = "IMPLEMENTATION_DIFFERENCE"
)

// Status summarizes a single component comparison.
type Status string

// Component statuses. PERFECT_MATCH is used exactly when a comparison
// produced zero issues.
const (
	StatusPerfectMatch Status = "PERFECT_MATCH"
	StatusIssuesFound  Status = "ISSUES_FOUND"
)

// Source tells which side of a comparison a property set came from.
type Source string

// Artifact sides.
const (
	SourceSpec Source = "SPEC"
	SourceImpl Source = "IMPL"
)

// Unresolved is the sentinel resolved value for a token reference that has
// no entry in the token table. The reference is kept so the diff can report
// it instead of silently dropping the property.
const Unresolved = "UNRESOLVED"

// ValueKind discriminates the Value union.
type ValueKind int

// Value kinds.
const (
	KindString ValueKind = iota
	KindNumber
	KindToken
	KindFlag
)

// Value is one normalized property value: a literal string, a number, a
// resolved token reference, or a boolean presence flag for accessibility
// attributes.
type Value struct {
	Kind     ValueKind
	Raw      string  // original text as it appeared in the artifact
	Number   float64 // set when Kind == KindNumber
	Token    string  // symbolic token name when Kind == KindToken
	Resolved string  // resolved token literal, or Unresolved
	Flag     bool    // set when Kind == KindFlag
}

// StringValue returns a literal string value.
func StringValue(raw string) Value {
	return Value{Kind: KindString, Raw: raw}
}

// NumberValue returns a numeric value, keeping the original spelling
// (e.g. "8px") in Raw.
func NumberValue(raw string, n float64) Value {
	return Value{Kind: KindNumber, Raw: raw, Number: n}
}

// TokenValue returns a token reference carrying both the symbolic name and
// its resolved literal.
func TokenValue(name, resolved string) Value {
	return Value{Kind: KindToken, Raw: name, Token: name, Resolved: resolved}
}

// FlagValue returns a boolean presence flag.
func FlagValue(set bool) Value {
	return Value{Kind: KindFlag, Flag: set}
}

// IsToken reports whether the value is a token reference.
func (v Value) IsToken() bool { return v.Kind == KindToken }

// IsUnresolved reports whether the value is a token reference with no table
// entry.
func (v Value) IsUnresolved() bool {
	return v.Kind == KindToken && v.Resolved == Unresolved
}

// Equal compares two values. Tokens compare by symbolic name (two sides
// naming the same token agree regardless of resolution), numbers by value,
// strings case-sensitively after trimming.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindToken:
		return v.Token == o.Token
	case KindNumber:
		return v.Number == o.Number
	case KindFlag:
		return v.Flag == o.Flag
	default:
		return strings.TrimSpace(v.Raw) == strings.TrimSpace(o.Raw)
	}
}

// Display renders the value for issue messages.
func (v Value) Display() string {
	switch v.Kind {
	case KindToken:
		if v.Resolved == Unresolved {
			return "token(" + v.Token + ")"
		}
		return "token(" + v.Token + ") = " + v.Resolved
	case KindFlag:
		return strconv.FormatBool(v.Flag)
	case KindNumber:
		if v.Raw != "" {
			return v.Raw
		}
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	default:
		return v.Raw
	}
}

// MarshalJSON renders the value in the report schema: tokens as
// {"token": name, "resolved": value}, numbers as numbers, flags as booleans,
// strings as strings.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindToken:
		return json.Marshal(struct {
			Token    string `json:"token"`
			Resolved string `json:"resolved"`
		}{v.Token, v.Resolved})
	case KindNumber:
		return json.Marshal(v.Number)
	case KindFlag:
		return json.Marshal(v.Flag)
	default:
		return json.Marshal(v.Raw)
	}
}

// PropertySet is the normalized, canonical-keyed view of one artifact.
// Every key is a canonical property name; synonymous raw spellings are
// collapsed before construction.
type PropertySet struct {
	Component string
	Source    Source
	Props     map[string]Value
}

// Issue is a single classified discrepancy. SpecValue and ImplValue are nil
// when the property is absent on that side.
type Issue struct {
	Category  Category
	Severity  Severity
	Property  string
	SpecValue *Value
	ImplValue *Value
	Message   string
}

// ComponentResult holds the ordered issues for one component. Status is
// derived from Issues, never set independently.
type ComponentResult struct {
	Component string
	Status    Status
	Issues    []Issue

	// Scan diagnostics: how many canonical properties each side produced.
	SpecProps int
	ImplProps int
}

func newComponentResult(component string, issues []Issue) ComponentResult {
	status := StatusPerfectMatch
	if len(issues) > 0 {
		status = StatusIssuesFound
	}
	return ComponentResult{Component: component, Status: status, Issues: issues}
}

// RunSummary aggregates one review run. TotalIssues and SeverityCounts are
// always recomputed from Components; they are never authored directly.
type RunSummary struct {
	Timestamp       time.Time
	TotalComponents int
	TotalIssues     int
	SeverityCounts  map[Severity]int
	Components      map[string]ComponentResult

	// Order preserves the caller-supplied component order for console output.
	Order []string
}

// recount rederives TotalIssues and SeverityCounts from Components.
func (s *RunSummary) recount() {
	s.TotalIssues = 0
	s.SeverityCounts = map[Severity]int{
		SeverityMajor:   0,
		SeverityMinor:   0,
		SeverityWarning: 0,
	}
	for _, result := range s.Components {
		s.TotalIssues += len(result.Issues)
		for _, issue := range result.Issues {
			s.SeverityCounts[issue.Severity]++
		}
	}
}
