package designdiff

import (
	"fmt"
	"sort"
	"strings"
)

// Equivalence names a pair of values for one property that achieve the same
// visual result through different mechanisms. Matching pairs are reported as
// IMPLEMENTATION_DIFFERENCE instead of VALUE_DIFFERENCE.
type Equivalence struct {
	Property string
	A, B     string
}

// Rules is the classification policy the diff engine applies. It is passed
// in explicitly so the engine stays a pure function and the policy can be
// swapped without touching the algorithm.
type Rules struct {
	// Severity maps each category to its reported severity.
	Severity map[Category]Severity
	// AccessibilityKeys marks canonical names whose classification takes
	// precedence over token and value classification.
	AccessibilityKeys map[string]bool
	// SkipMissingPrefixes lists canonical-key prefixes (lowercased) that are
	// not reported when present only in the spec. Static snippets cannot
	// express pseudo-states like hover or focus.
	SkipMissingPrefixes []string
	// Equivalences lists known same-effect value pairs.
	Equivalences []Equivalence
}

// DefaultRules returns the fixed classification policy.
func DefaultRules() Rules {
	return Rules{
		Severity: map[Category]Severity{
			CategoryTokenMismatch:   SeverityMajor,
			CategoryAccessibility:   SeverityMajor,
			CategoryValueDifference: SeverityMinor,
			CategoryMissingProperty: SeverityMinor,
			CategoryImplDifference:  SeverityWarning,
		},
		AccessibilityKeys:   accessibilityKeys,
		SkipMissingPrefixes: []string{"hover", "focus"},
		Equivalences: []Equivalence{
			// Both produce a fully-rounded shape.
			{Property: "borderRadius", A: "9999px", B: "50%"},
		},
	}
}

func (r Rules) severityFor(cat Category) Severity {
	if sev, ok := r.Severity[cat]; ok {
		return sev
	}
	return SeverityWarning
}

func (r Rules) isAccessibility(key string) bool {
	return r.AccessibilityKeys[key]
}

func (r Rules) skipMissing(key string) bool {
	lowered := strings.ToLower(key)
	for _, prefix := range r.SkipMissingPrefixes {
		if strings.HasPrefix(lowered, prefix) {
			return true
		}
	}
	return false
}

func (r Rules) equivalent(key, a, b string) bool {
	for _, eq := range r.Equivalences {
		if eq.Property != key {
			continue
		}
		if (eq.A == a && eq.B == b) || (eq.A == b && eq.B == a) {
			return true
		}
	}
	return false
}

// Diff compares the normalized spec and implementation property sets for one
// component and returns the classified issues, ordered alphabetically by
// canonical key. It is a pure function of its inputs: identical inputs yield
// byte-identical results.
func Diff(spec, impl PropertySet, rules Rules) ComponentResult {
	keys := unionKeys(spec.Props, impl.Props)

	var issues []Issue
	for _, key := range keys {
		specVal, inSpec := spec.Props[key]
		implVal, inImpl := impl.Props[key]

		switch {
		case inSpec && inImpl:
			if issue, ok := classifyPair(key, specVal, implVal, rules); ok {
				issues = append(issues, issue)
			}
		case inSpec:
			if issue, ok := classifyMissing(key, specVal, rules); ok {
				issues = append(issues, issue)
			}
		default:
			issues = append(issues, Issue{
				Category:  CategoryImplDifference,
				Severity:  rules.severityFor(CategoryImplDifference),
				Property:  key,
				ImplValue: ref(implVal),
				Message:   fmt.Sprintf("implementation sets %s (%s) not present in the design spec", key, implVal.Display()),
			})
		}
	}

	result := newComponentResult(spec.Component, issues)
	result.SpecProps = len(spec.Props)
	result.ImplProps = len(impl.Props)
	return result
}

// classifyPair handles a property present on both sides. Precedence:
// accessibility, then token, then value.
func classifyPair(key string, specVal, implVal Value, rules Rules) (Issue, bool) {
	if specVal.Equal(implVal) {
		return Issue{}, false
	}

	if rules.isAccessibility(key) {
		// The spec not requiring the attribute is not a violation.
		if specVal.Kind == KindFlag && !specVal.Flag {
			return Issue{}, false
		}
		return Issue{
			Category:  CategoryAccessibility,
			Severity:  rules.severityFor(CategoryAccessibility),
			Property:  key,
			SpecValue: ref(specVal),
			ImplValue: ref(implVal),
			Message:   fmt.Sprintf("%s does not satisfy the accessibility requirement from the design spec (spec: %s, implementation: %s)", key, specVal.Display(), implVal.Display()),
		}, true
	}

	if specVal.IsToken() {
		return classifyTokenPair(key, specVal, implVal, rules), true
	}

	if implVal.IsToken() {
		// Implementation adopted a token the spec states literally. The
		// token system was not bypassed; only a resolved-value drift counts.
		if implVal.Resolved != Unresolved && valuesAgree(specVal, StringValue(implVal.Resolved)) {
			return Issue{}, false
		}
		return Issue{
			Category:  CategoryValueDifference,
			Severity:  rules.severityFor(CategoryValueDifference),
			Property:  key,
			SpecValue: ref(specVal),
			ImplValue: ref(implVal),
			Message:   fmt.Sprintf("%s resolves to a different value than the design spec (spec: %s, implementation: %s)", key, specVal.Display(), implVal.Display()),
		}, true
	}

	if rules.equivalent(key, specVal.Raw, implVal.Raw) {
		return Issue{
			Category:  CategoryImplDifference,
			Severity:  rules.severityFor(CategoryImplDifference),
			Property:  key,
			SpecValue: ref(specVal),
			ImplValue: ref(implVal),
			Message:   fmt.Sprintf("%s uses a different approach with the same visual effect (spec: %s, implementation: %s)", key, specVal.Display(), implVal.Display()),
		}, true
	}

	return Issue{
		Category:  CategoryValueDifference,
		Severity:  rules.severityFor(CategoryValueDifference),
		Property:  key,
		SpecValue: ref(specVal),
		ImplValue: ref(implVal),
		Message:   fmt.Sprintf("use %s to match the design spec (current: %s)", specVal.Display(), implVal.Display()),
	}, true
}

// classifyTokenPair handles a spec-side token reference. Bypassing the token
// system is itself the violation, independent of whether the resolved values
// happen to match.
func classifyTokenPair(key string, specVal, implVal Value, rules Rules) Issue {
	issue := Issue{
		Category:  CategoryTokenMismatch,
		Severity:  rules.severityFor(CategoryTokenMismatch),
		Property:  key,
		SpecValue: ref(specVal),
		ImplValue: ref(implVal),
	}

	switch {
	case specVal.IsUnresolved():
		issue.Message = fmt.Sprintf("%s references token %q which has no entry in the token table", key, specVal.Token)
	case !implVal.IsToken():
		issue.Message = fmt.Sprintf("%s uses literal %s where token %q is required", key, implVal.Display(), specVal.Token)
	case implVal.IsUnresolved():
		issue.Message = fmt.Sprintf("%s references token %q which has no entry in the token table", key, implVal.Token)
	default:
		issue.Message = fmt.Sprintf("update implementation to use token %q instead of %q", specVal.Token, implVal.Token)
	}

	return issue
}

// classifyMissing handles a property present only in the spec.
func classifyMissing(key string, specVal Value, rules Rules) (Issue, bool) {
	if rules.skipMissing(key) {
		return Issue{}, false
	}
	if rules.isAccessibility(key) && specVal.Kind == KindFlag && !specVal.Flag {
		return Issue{}, false
	}

	issue := Issue{
		Category:  CategoryMissingProperty,
		Severity:  rules.severityFor(CategoryMissingProperty),
		Property:  key,
		SpecValue: ref(specVal),
		Message:   fmt.Sprintf("add missing property: %s (spec: %s)", key, specVal.Display()),
	}
	if rules.isAccessibility(key) {
		issue.Severity = SeverityMajor
		issue.Message = fmt.Sprintf("add %s for accessibility compliance", key)
	}
	return issue, true
}

// valuesAgree compares a literal spec value against a resolved token literal.
func valuesAgree(spec, resolved Value) bool {
	if spec.Kind == KindNumber {
		other := classifyString(resolved.Raw, nil)
		return other.Kind == KindNumber && other.Number == spec.Number
	}
	return spec.Equal(resolved)
}

// unionKeys returns the sorted union of both key sets. The explicit sort is
// what makes issue order reproducible across runs.
func unionKeys(a, b map[string]Value) []string {
	seen := make(map[string]bool, len(a)+len(b))
	keys := make([]string, 0, len(a)+len(b))
	for key := range a {
		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
	}
	for key := range b {
		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

func ref(v Value) *Value {
	return &v
}
