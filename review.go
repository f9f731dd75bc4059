package designdiff

import (
	"fmt"
	"time"
)

// Loader supplies raw artifacts per component name. Implementations live
// outside the core; see FileLoader for the filesystem one.
type Loader interface {
	// LoadSpec returns the raw specification artifact. An error here is
	// fatal for the whole run: a component without a spec cannot be compared.
	LoadSpec(component string) (string, error)
	// LoadImpl returns the raw implementation artifact. ok is false when no
	// artifact exists, which is a valid, non-error outcome.
	LoadImpl(component string) (text string, ok bool, err error)
}

// ConfigurationError reports an unreviewable setup: an empty component set or
// a component with no specification artifact. Other failures (I/O on an
// implementation artifact) abort the run as plain errors.
type ConfigurationError struct {
	Component string
	Reason    string
	Err       error
}

func (e *ConfigurationError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error for component %q: %s", e.Component, e.Reason)
	}
	return "configuration error: " + e.Reason
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// Run reviews the configured components in order: load both artifacts,
// normalize, diff, aggregate. A component with no implementation artifact
// degrades to an all-missing diff; a component with no spec artifact aborts
// the run before any report is produced.
func Run(components []string, loader Loader, tokens *TokenTable, rules Rules) (*RunSummary, error) {
	if len(components) == 0 {
		return nil, &ConfigurationError{Reason: "no components configured"}
	}

	summary := &RunSummary{
		Timestamp:       time.Now(),
		TotalComponents: len(components),
		Components:      make(map[string]ComponentResult, len(components)),
		Order:           append([]string(nil), components...),
	}

	for _, name := range components {
		specText, err := loader.LoadSpec(name)
		if err != nil {
			return nil, &ConfigurationError{
				Component: name,
				Reason:    "no specification artifact: " + err.Error(),
				Err:       err,
			}
		}

		specSet := NormalizeSpec(name, specText, tokens)

		implSet := PropertySet{Component: name, Source: SourceImpl, Props: map[string]Value{}}
		implText, ok, err := loader.LoadImpl(name)
		if err != nil {
			// Not a configuration problem: the artifact may exist but be
			// unreadable. Surface the I/O failure as-is.
			return nil, fmt.Errorf("loading implementation artifact for %s: %w", name, err)
		}
		if ok {
			implSet = NormalizeImpl(name, implText, tokens)
		}

		summary.Components[name] = Diff(specSet, implSet, rules)
	}

	summary.recount()
	return summary, nil
}
