package designdiff

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// TokenTable maps symbolic design token names to their resolved literal
// values. It is loaded once at process start and read-only thereafter, so it
// is safe to share across concurrent comparisons.
type TokenTable struct {
	values map[string]string
}

// UnknownTokenError reports a token reference with no table entry.
type UnknownTokenError struct {
	Name string
}

func (e *UnknownTokenError) Error() string {
	return fmt.Sprintf("unknown design token %q", e.Name)
}

// NewTokenTable builds a table from an in-memory mapping.
func NewTokenTable(values map[string]string) *TokenTable {
	table := &TokenTable{values: make(map[string]string, len(values))}
	for name, resolved := range values {
		table.values[name] = resolved
	}
	return table
}

// LoadTokens reads a token table from a JSON or YAML file containing a flat
// name → value mapping:
//
//	{ "primary-500": "#2563EB", "spacing-sm": "8px" }
func LoadTokens(path string) (*TokenTable, error) {
	// #nosec G304 - path comes from trusted configuration
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tokens file: %w", err)
	}

	values := make(map[string]string)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &values); err != nil {
			return nil, fmt.Errorf("parse tokens file %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(content, &values); err != nil {
			return nil, fmt.Errorf("parse tokens file %s: %w", path, err)
		}
	}

	return NewTokenTable(values), nil
}

// Resolve looks up a token name. It returns an *UnknownTokenError when the
// name has no entry; callers are expected to record the reference as
// unresolvable rather than fail.
func (t *TokenTable) Resolve(name string) (string, error) {
	if t != nil {
		if resolved, ok := t.values[name]; ok {
			return resolved, nil
		}
	}
	return "", &UnknownTokenError{Name: name}
}

// Has reports whether a token name is defined.
func (t *TokenTable) Has(name string) bool {
	if t == nil {
		return false
	}
	_, ok := t.values[name]
	return ok
}

// Len returns the number of defined tokens.
func (t *TokenTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.values)
}
