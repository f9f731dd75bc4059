package designdiff

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanonicalKey(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"css color maps to textColor", "color", "textColor"},
		{"camelCase background", "backgroundColor", "backgroundColor"},
		{"kebab background", "background-color", "backgroundColor"},
		{"shorthand background", "background", "backgroundColor"},
		{"bg-color synonym", "bg-color", "backgroundColor"},
		{"font size kebab", "font-size", "fontSize"},
		{"font size camel", "fontSize", "fontSize"},
		{"radius shorthand", "radius", "borderRadius"},
		{"aria label kebab", "aria-label", "ariaLabel"},
		{"aria label snake", "aria_label", "ariaLabel"},
		{"alt attribute", "alt", "altText"},
		{"imageAltRequired spec key", "imageAltRequired", "altText"},
		{"case insensitive", "Background-Color", "backgroundColor"},
		{"unknown kebab passes through camelized", "grid-template-rows", "gridTemplateRows"},
		{"unknown camel passes through unchanged", "customProp", "customProp"},
		{"vendor prefix stripped", "-webkit-line-clamp", "lineClamp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, canonicalKey(tt.raw))
		})
	}
}

func TestCanonicalKeyDeterministic(t *testing.T) {
	// The synonym table is scanned in a fixed order, so repeated lookups of
	// the same raw spelling always land on the same canonical name.
	for i := 0; i < 100; i++ {
		require.Equal(t, "backgroundColor", canonicalKey("background"))
	}
}

func TestIsAccessibilityKey(t *testing.T) {
	require.True(t, isAccessibilityKey("ariaLabel"))
	require.True(t, isAccessibilityKey("altText"))
	require.True(t, isAccessibilityKey("role"))
	require.False(t, isAccessibilityKey("textColor"))
	require.False(t, isAccessibilityKey("padding"))
}
