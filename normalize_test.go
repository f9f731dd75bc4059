package designdiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTokens() *TokenTable {
	return NewTokenTable(map[string]string{
		"primary-500": "#2563EB",
		"primary-600": "#1D4ED8",
		"spacing-sm":  "8px",
	})
}

func TestNormalizeSpecJSON(t *testing.T) {
	spec := `{
		"component": "Button",
		"props": {
			"color": "primary-500",
			"padding": 8,
			"fontFamily": "sans-serif",
			"ariaLabel": true
		}
	}`

	set := NormalizeSpec("Button", spec, testTokens())
	require.Equal(t, "Button", set.Component)
	require.Equal(t, SourceSpec, set.Source)

	color := set.Props["textColor"]
	assert.Equal(t, KindToken, color.Kind)
	assert.Equal(t, "primary-500", color.Token)
	assert.Equal(t, "#2563EB", color.Resolved)

	padding := set.Props["padding"]
	assert.Equal(t, KindNumber, padding.Kind)
	assert.Equal(t, 8.0, padding.Number)

	// Hyphenated but not token-like: stays a literal
	family := set.Props["fontFamily"]
	assert.Equal(t, KindString, family.Kind)
	assert.Equal(t, "sans-serif", family.Raw)

	aria := set.Props["ariaLabel"]
	assert.Equal(t, KindFlag, aria.Kind)
	assert.True(t, aria.Flag)
}

func TestNormalizeSpecBareObject(t *testing.T) {
	spec := `{"background": "var(--primary-600)", "font-size": "14px"}`

	set := NormalizeSpec("Card", spec, testTokens())

	bg := set.Props["backgroundColor"]
	assert.Equal(t, KindToken, bg.Kind)
	assert.Equal(t, "primary-600", bg.Token)
	assert.Equal(t, "#1D4ED8", bg.Resolved)

	size := set.Props["fontSize"]
	assert.Equal(t, KindNumber, size.Kind)
	assert.Equal(t, 14.0, size.Number)
	assert.Equal(t, "14px", size.Raw)
}

func TestNormalizeSpecFallbackScan(t *testing.T) {
	// Not valid JSON: trailing garbage. The line scan still extracts pairs
	// and skips what it cannot parse.
	spec := `
	component spec (exported)
	color: primary-500
	padding: 8px
	!!! unparseable line !!!
	role: true
	`

	set := NormalizeSpec("Badge", spec, testTokens())

	color := set.Props["textColor"]
	assert.Equal(t, KindToken, color.Kind)
	assert.Equal(t, "primary-500", color.Token)

	padding := set.Props["padding"]
	assert.Equal(t, KindNumber, padding.Kind)
	assert.Equal(t, 8.0, padding.Number)

	role := set.Props["role"]
	assert.Equal(t, KindFlag, role.Kind)
	assert.True(t, role.Flag)
}

func TestNormalizeSpecUnresolvedTokenFamily(t *testing.T) {
	// primary-900 is undefined but shares the primary- family, so it is
	// retained as an unresolvable reference rather than dropped.
	spec := `{"color": "primary-900"}`

	set := NormalizeSpec("Button", spec, testTokens())

	color := set.Props["textColor"]
	require.Equal(t, KindToken, color.Kind)
	assert.Equal(t, "primary-900", color.Token)
	assert.Equal(t, Unresolved, color.Resolved)
	assert.True(t, color.IsUnresolved())
}

func TestNormalizeSpecNoDuplicateCanonicalKeys(t *testing.T) {
	// background and backgroundColor collapse onto one canonical key; the
	// alphabetically-first raw key wins deterministically.
	spec := `{"background": "#111111", "backgroundColor": "#222222"}`

	set := NormalizeSpec("Card", spec, testTokens())

	require.Len(t, set.Props, 1)
	assert.Equal(t, "#111111", set.Props["backgroundColor"].Raw)
}

func TestNormalizeImplJSXAttributes(t *testing.T) {
	impl := `<Button variant="primary" size="lg" aria-label="Close dialog" padding={12}>`

	set := NormalizeImpl("Button", impl, testTokens())
	require.Equal(t, SourceImpl, set.Source)

	aria := set.Props["ariaLabel"]
	assert.Equal(t, KindFlag, aria.Kind)
	assert.True(t, aria.Flag)

	padding := set.Props["padding"]
	assert.Equal(t, KindNumber, padding.Kind)
	assert.Equal(t, 12.0, padding.Number)

	assert.Equal(t, "primary", set.Props["variant"].Raw)
}

func TestNormalizeImplStyleObject(t *testing.T) {
	impl := `<button className="btn" style={{ color: "var(--primary-500)", fontSize: "14px", borderRadius: "50%" }}>`

	set := NormalizeImpl("Button", impl, testTokens())

	color := set.Props["textColor"]
	require.Equal(t, KindToken, color.Kind)
	assert.Equal(t, "primary-500", color.Token)
	assert.Equal(t, "#2563EB", color.Resolved)

	size := set.Props["fontSize"]
	assert.Equal(t, 14.0, size.Number)

	radius := set.Props["borderRadius"]
	assert.Equal(t, KindString, radius.Kind)
	assert.Equal(t, "50%", radius.Raw)

	// className is not a styling property
	_, hasClass := set.Props["className"]
	assert.False(t, hasClass)
}

func TestNormalizeImplInlineStyle(t *testing.T) {
	impl := `<div style="background-color: #FFFFFF; padding: 8px 12px; font-weight: 600">`

	set := NormalizeImpl("Card", impl, testTokens())

	bg := set.Props["backgroundColor"]
	assert.Equal(t, KindString, bg.Kind)
	assert.Equal(t, "#FFFFFF", bg.Raw)

	// Compound values stay literal strings
	padding := set.Props["padding"]
	assert.Equal(t, KindString, padding.Kind)
	assert.Equal(t, "8px 12px", padding.Raw)

	weight := set.Props["fontWeight"]
	assert.Equal(t, KindNumber, weight.Kind)
	assert.Equal(t, 600.0, weight.Number)

	// The style attribute itself is not a property
	_, hasStyle := set.Props["style"]
	assert.False(t, hasStyle)
}

func TestNormalizeImplStyleOverridesAttribute(t *testing.T) {
	impl := `<div color="red" style="color: blue">`

	set := NormalizeImpl("Card", impl, testTokens())

	require.Equal(t, "blue", set.Props["textColor"].Raw)
}

func TestNormalizeImplAltPresence(t *testing.T) {
	tests := []struct {
		name string
		impl string
		want bool
	}{
		{"alt with text", `<img alt="Company logo">`, true},
		{"empty alt", `<img alt="">`, false},
		{"alt false", `<img alt="false">`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := NormalizeImpl("Logo", tt.impl, testTokens())
			alt, ok := set.Props["altText"]
			require.True(t, ok)
			require.Equal(t, KindFlag, alt.Kind)
			require.Equal(t, tt.want, alt.Flag)
		})
	}
}

func TestScanInlineStyle(t *testing.T) {
	tests := []struct {
		name  string
		style string
		want  map[string]string
	}{
		{
			name:  "two declarations",
			style: "color: red; padding: 8px",
			want:  map[string]string{"color": "red", "padding": "8px"},
		},
		{
			name:  "trailing semicolon",
			style: "font-weight: 600;",
			want:  map[string]string{"font-weight": "600"},
		},
		{
			name:  "var reference",
			style: "background: var(--primary-500)",
			want:  map[string]string{"background": "var(--primary-500)"},
		},
		{
			name:  "empty",
			style: "",
			want:  map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, scanInlineStyle(tt.style))
		})
	}
}

func TestClassifyString(t *testing.T) {
	tokens := testTokens()

	tests := []struct {
		name string
		raw  string
		want Value
	}{
		{"css var", "var(--primary-500)", TokenValue("primary-500", "#2563EB")},
		{"css var color prefix", "var(--color-primary-500)", TokenValue("primary-500", "#2563EB")},
		{"bare token in table", "spacing-sm", TokenValue("spacing-sm", "8px")},
		{"family member not in table", "primary-300", TokenValue("primary-300", Unresolved)},
		{"px value", "8px", NumberValue("8px", 8)},
		{"bare number", "600", NumberValue("600", 600)},
		{"percentage stays literal", "50%", StringValue("50%")},
		{"compound px stays literal", "8px 12px", StringValue("8px 12px")},
		{"hex literal", "#2563EB", StringValue("#2563EB")},
		{"unknown hyphenated literal", "sans-serif", StringValue("sans-serif")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, classifyString(tt.raw, tokens))
		})
	}
}
