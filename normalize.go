package designdiff

import (
	"encoding/json"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

var (
	// Patterns for extracting attribute-like key/value pairs.
	// Ordered from most specific to least specific.

	// JSX/HTML attribute: prop="value"
	attrPattern = regexp.MustCompile(`([A-Za-z_][\w-]*)="([^"]*)"`)
	// JSX numeric expression: padding={8}
	exprPattern = regexp.MustCompile(`([A-Za-z_][\w-]*)=\{\s*(-?[0-9.]+)\s*\}`)
	// JSX style object: style={{ color: "red", padding: 8 }}
	styleObjectPattern = regexp.MustCompile(`style=\{\{([^}]+)\}\}`)
	styleEntryPattern  = regexp.MustCompile(`([A-Za-z_]\w*)\s*:\s*([^,}]+)`)
	// Spec fallback: key: value lines when the document is not valid JSON
	specLinePattern = regexp.MustCompile(`^\s*"?([A-Za-z_][\w-]*)"?\s*:\s*(.+?)\s*,?\s*$`)

	// CSS custom property reference: var(--color-primary-500) / var(--primary-500)
	cssVarPattern = regexp.MustCompile(`var\(\s*--(?:color-)?([A-Za-z][\w-]*)\s*\)`)
	// Symbolic token names: lowercase hyphenated identifiers like primary-500
	tokenNamePattern = regexp.MustCompile(`^[a-z][a-z0-9]*(?:-[a-z0-9]+)+$`)

	pxPattern      = regexp.MustCompile(`^(-?\d+(?:\.\d+)?)px$`)
	numericPattern = regexp.MustCompile(`^-?\d+(?:\.\d+)?$`)
)

// attributes never treated as styling properties during the generic scan
var skippedAttrs = map[string]bool{
	"style":     true,
	"class":     true,
	"classname": true,
}

// NormalizeSpec turns a raw design-spec artifact into a canonical property
// set. The artifact is JSON-first, either {"component": ..., "props": {...}}
// or a bare props object, with a line-oriented key/value fallback scan, so
// malformed documents degrade to partial extraction instead of failing.
func NormalizeSpec(component, text string, tokens *TokenTable) PropertySet {
	set := PropertySet{
		Component: component,
		Source:    SourceSpec,
		Props:     make(map[string]Value),
	}

	raw := parseSpecDocument(text)

	// Sort raw keys so synonym collisions resolve deterministically.
	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		canonical := canonicalKey(key)
		if _, seen := set.Props[canonical]; seen {
			continue
		}
		set.Props[canonical] = normalizeScalar(canonical, raw[key], tokens)
	}

	return set
}

// parseSpecDocument extracts raw key/value pairs from a spec artifact.
func parseSpecDocument(text string) map[string]any {
	var doc map[string]any
	if err := json.Unmarshal([]byte(text), &doc); err == nil {
		if props, ok := doc["props"].(map[string]any); ok {
			return props
		}
		delete(doc, "component")
		return doc
	}

	// Best-effort line scan. Lines that match nothing are skipped.
	raw := make(map[string]any)
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed == "{" || trimmed == "}" {
			continue
		}
		match := specLinePattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		key, value := match[1], unquote(match[2])
		if _, seen := raw[key]; !seen {
			raw[key] = value
		}
	}
	return raw
}

// NormalizeImpl turns a raw implementation snippet (JSX or HTML markup) into
// a canonical property set. It scans plain attributes, JSX numeric
// expressions, JSX style objects, and HTML inline style attributes; inline
// style declarations win over same-named generic attributes, since the style
// block is the styling source of truth.
func NormalizeImpl(component, text string, tokens *TokenTable) PropertySet {
	set := PropertySet{
		Component: component,
		Source:    SourceImpl,
		Props:     make(map[string]Value),
	}

	assign := func(canonical string, v Value, override bool) {
		if _, seen := set.Props[canonical]; seen && !override {
			return
		}
		set.Props[canonical] = v
	}

	// Pass 1: plain attributes (prop="value").
	for _, match := range attrPattern.FindAllStringSubmatch(text, -1) {
		key, value := match[1], match[2]
		if skippedAttrs[strings.ToLower(key)] {
			continue
		}
		canonical := canonicalKey(key)
		if isAccessibilityKey(canonical) {
			assign(canonical, FlagValue(parsePresence(value)), false)
			continue
		}
		assign(canonical, classifyString(value, tokens), false)
	}

	// Pass 2: JSX numeric expressions (padding={8}).
	for _, match := range exprPattern.FindAllStringSubmatch(text, -1) {
		key, value := match[1], match[2]
		canonical := canonicalKey(key)
		if n, err := strconv.ParseFloat(value, 64); err == nil {
			assign(canonical, NumberValue(value, n), false)
		}
	}

	// Pass 3: JSX style objects.
	for _, styleMatch := range styleObjectPattern.FindAllStringSubmatch(text, -1) {
		for _, entry := range styleEntryPattern.FindAllStringSubmatch(styleMatch[1], -1) {
			canonical := canonicalKey(entry[1])
			assign(canonical, classifyString(unquote(entry[2]), tokens), true)
		}
	}

	// Pass 4: HTML inline style attributes, lexed as CSS declarations.
	for _, match := range attrPattern.FindAllStringSubmatch(text, -1) {
		if strings.ToLower(match[1]) != "style" {
			continue
		}
		for key, value := range scanInlineStyle(match[2]) {
			canonical := canonicalKey(key)
			assign(canonical, classifyString(value, tokens), true)
		}
	}

	return set
}

// scanInlineStyle lexes a CSS declaration list ("color: red; padding: 8px")
// into property → value text.
func scanInlineStyle(style string) map[string]string {
	props := make(map[string]string)
	lexer := css.NewLexer(parse.NewInputString(style))

	var currentProp string
	var currentVal []string

	flush := func() {
		if currentProp != "" && len(currentVal) > 0 {
			props[currentProp] = strings.TrimSpace(strings.Join(currentVal, ""))
		}
		currentProp = ""
		currentVal = nil
	}

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			// ErrorToken at EOF is normal
			flush()
			break
		}

		switch {
		case tt == css.IdentToken && currentProp == "":
			currentProp = string(text)
		case tt == css.ColonToken && currentProp != "":
			if len(currentVal) > 0 {
				currentVal = append(currentVal, string(text))
			}
		case tt == css.SemicolonToken:
			flush()
		case currentProp != "":
			currentVal = append(currentVal, string(text))
		}
	}

	return props
}

// normalizeScalar converts a decoded spec value into a Value. Accessibility
// keys become presence flags regardless of the raw type.
func normalizeScalar(canonical string, raw any, tokens *TokenTable) Value {
	if isAccessibilityKey(canonical) {
		switch v := raw.(type) {
		case bool:
			return FlagValue(v)
		case string:
			return FlagValue(parsePresence(v))
		default:
			return FlagValue(raw != nil)
		}
	}

	switch v := raw.(type) {
	case float64:
		return NumberValue(strconv.FormatFloat(v, 'f', -1, 64), v)
	case bool:
		return StringValue(strconv.FormatBool(v))
	case string:
		return classifyString(v, tokens)
	default:
		return StringValue("")
	}
}

// classifyString detects what a raw textual value is: a token reference, a
// number (bare or px-suffixed), or a literal string.
func classifyString(raw string, tokens *TokenTable) Value {
	value := strings.TrimSpace(unquote(raw))

	if match := cssVarPattern.FindStringSubmatch(value); match != nil {
		return resolveToken(match[1], tokens)
	}

	if match := pxPattern.FindStringSubmatch(value); match != nil {
		if n, err := strconv.ParseFloat(match[1], 64); err == nil {
			return NumberValue(value, n)
		}
	}

	if numericPattern.MatchString(value) {
		if n, err := strconv.ParseFloat(value, 64); err == nil {
			return NumberValue(value, n)
		}
	}

	// Bare hyphenated names are token references when the table knows them,
	// or when they belong to a known token family (primary-500 next to
	// primary-600). Anything else ("sans-serif", "8px 12px") stays a literal.
	if tokenNamePattern.MatchString(value) {
		if tokens.Has(value) || sharesTokenFamily(value, tokens) {
			return resolveToken(value, tokens)
		}
	}

	return StringValue(value)
}

// resolveToken builds a token Value, keeping the Unresolved sentinel when the
// table has no entry so the diff can still report the reference.
func resolveToken(name string, tokens *TokenTable) Value {
	resolved, err := tokens.Resolve(name)
	if err != nil {
		return TokenValue(name, Unresolved)
	}
	return TokenValue(name, resolved)
}

// sharesTokenFamily reports whether any defined token shares the value's
// first hyphen-delimited segment.
func sharesTokenFamily(name string, tokens *TokenTable) bool {
	if tokens == nil {
		return false
	}
	family, _, ok := strings.Cut(name, "-")
	if !ok {
		return false
	}
	for defined := range tokens.values {
		if strings.HasPrefix(defined, family+"-") {
			return true
		}
	}
	return false
}

// parsePresence interprets an accessibility attribute value as a presence
// flag. Any non-empty value other than "false" counts as present.
func parsePresence(raw string) bool {
	value := strings.TrimSpace(strings.ToLower(raw))
	return value != "" && value != "false"
}

// unquote strips one layer of matching single or double quotes.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
