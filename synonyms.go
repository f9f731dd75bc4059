package designdiff

import "strings"

// synonymRule maps one raw attribute spelling onto a canonical property name.
type synonymRule struct {
	raw       string
	canonical string
}

// synonymRules collapses the raw spellings found in spec and implementation
// artifacts onto canonical property names. The table is scanned in order and
// the first match wins, so results are deterministic even if a later rule
// would also match. Lookup is case-insensitive on the raw spelling.
var synonymRules = []synonymRule{
	// Color
	{"color", "textColor"},
	{"text-color", "textColor"},
	{"textcolor", "textColor"},
	{"background", "backgroundColor"},
	{"background-color", "backgroundColor"},
	{"backgroundcolor", "backgroundColor"},
	{"bg", "backgroundColor"},
	{"bg-color", "backgroundColor"},
	{"border-color", "borderColor"},
	{"bordercolor", "borderColor"},

	// Typography
	{"font-size", "fontSize"},
	{"fontsize", "fontSize"},
	{"text-size", "fontSize"},
	{"font-weight", "fontWeight"},
	{"fontweight", "fontWeight"},
	{"font-family", "fontFamily"},
	{"fontfamily", "fontFamily"},
	{"line-height", "lineHeight"},
	{"lineheight", "lineHeight"},
	{"letter-spacing", "letterSpacing"},
	{"letterspacing", "letterSpacing"},
	{"text-align", "textAlign"},
	{"textalign", "textAlign"},

	// Box
	{"border-radius", "borderRadius"},
	{"borderradius", "borderRadius"},
	{"radius", "borderRadius"},
	{"border-width", "borderWidth"},
	{"borderwidth", "borderWidth"},
	{"box-shadow", "boxShadow"},
	{"boxshadow", "boxShadow"},
	{"shadow", "boxShadow"},
	{"padding", "padding"},
	{"margin", "margin"},
	{"gap", "gap"},
	{"width", "width"},
	{"height", "height"},
	{"opacity", "opacity"},

	// Accessibility. Reserved canonical names; recorded as presence flags.
	{"aria-label", "ariaLabel"},
	{"arialabel", "ariaLabel"},
	{"aria_label", "ariaLabel"},
	{"accessible-label", "ariaLabel"},
	{"alt", "altText"},
	{"alt-text", "altText"},
	{"alttext", "altText"},
	{"image-alt", "altText"},
	{"imagealt", "altText"},
	{"imagealtrequired", "altText"},
	{"role", "role"},
}

// accessibilityKeys are the reserved canonical names whose absence (not
// value) is what downstream rules care about.
var accessibilityKeys = map[string]bool{
	"ariaLabel": true,
	"altText":   true,
	"role":      true,
}

// canonicalKey maps a raw attribute name onto its canonical property name.
// Unknown spellings pass through camelized so partially-covered artifacts
// still diff under a stable key.
func canonicalKey(raw string) string {
	lowered := strings.ToLower(strings.TrimSpace(raw))
	for _, rule := range synonymRules {
		if rule.raw == lowered {
			return rule.canonical
		}
	}

	// Vendor prefixes carry no design intent; strip before pass-through.
	for _, prefix := range []string{"-webkit-", "-moz-", "-ms-", "-o-"} {
		if strings.HasPrefix(lowered, prefix) {
			return camelize(strings.TrimPrefix(lowered, prefix))
		}
	}

	if strings.Contains(raw, "-") || strings.Contains(raw, "_") {
		return camelize(lowered)
	}
	return raw
}

// isAccessibilityKey reports whether a canonical key is accessibility-reserved.
func isAccessibilityKey(canonical string) bool {
	return accessibilityKeys[canonical]
}

// camelize converts kebab-case or snake_case to camelCase.
func camelize(name string) string {
	var b strings.Builder
	upperNext := false
	for _, r := range name {
		switch {
		case r == '-' || r == '_':
			upperNext = true
		case upperNext:
			b.WriteString(strings.ToUpper(string(r)))
			upperNext = false
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
