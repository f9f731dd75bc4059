package designdiff

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// FileLoader loads artifacts from disk. Spec artifacts live in SpecDir as
// <Component>.json (or .yaml/.yml); implementation artifacts are discovered
// once by expanding ImplPatterns and indexing files by base name, so
// "Button" finds src/components/Button.jsx wherever it lives.
type FileLoader struct {
	SpecDir      string
	ImplPatterns []string

	once      sync.Once
	implIndex map[string]string
	indexErr  error

	gitIgnore     *ignore.GitIgnore
	gitIgnoreOnce sync.Once
}

var specExtensions = []string{".json", ".yaml", ".yml"}

// LoadSpec reads the specification artifact for a component. A missing file
// is an error; the orchestrator treats it as fatal.
func (l *FileLoader) LoadSpec(component string) (string, error) {
	var tried []string
	for _, name := range []string{component, strings.ToLower(component)} {
		for _, ext := range specExtensions {
			path := filepath.Join(l.SpecDir, name+ext)
			content, err := os.ReadFile(path) // #nosec G304 - path comes from trusted configuration
			if err == nil {
				return string(content), nil
			}
			if !os.IsNotExist(err) {
				return "", fmt.Errorf("read spec %s: %w", path, err)
			}
			tried = append(tried, path)
		}
	}
	return "", fmt.Errorf("no spec artifact in %s (tried %s)", l.SpecDir, strings.Join(tried, ", "))
}

// LoadImpl reads the implementation artifact for a component. No matching
// file is a valid outcome, reported as ok=false.
func (l *FileLoader) LoadImpl(component string) (string, bool, error) {
	l.once.Do(l.buildIndex)
	if l.indexErr != nil {
		return "", false, l.indexErr
	}

	path, found := l.implIndex[strings.ToLower(component)]
	if !found {
		return "", false, nil
	}

	content, err := os.ReadFile(path) // #nosec G304 - path discovered from configured patterns
	if err != nil {
		return "", false, fmt.Errorf("read implementation %s: %w", path, err)
	}
	return string(content), true, nil
}

// buildIndex expands the glob patterns and maps lowercase base names (minus
// extension) to paths. First match per name wins, in pattern order.
func (l *FileLoader) buildIndex() {
	l.implIndex = make(map[string]string)

	for _, pattern := range l.ImplPatterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			l.indexErr = fmt.Errorf("expanding pattern %q: %w", pattern, err)
			return
		}

		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			if l.shouldSkip(match) {
				continue
			}

			base := filepath.Base(match)
			name := strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
			if _, seen := l.implIndex[name]; !seen {
				l.implIndex[name] = match
			}
		}
	}
}

// shouldSkip excludes gitignored files from discovery. Gitignore rules only
// apply to relative paths; absolute paths (like /tmp fixtures) are kept.
// Gracefully degrades when no .gitignore exists.
func (l *FileLoader) shouldSkip(path string) bool {
	if filepath.IsAbs(path) {
		return false
	}
	l.gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			l.gitIgnore = nil
			return
		}
		l.gitIgnore = gi
	})
	return l.gitIgnore != nil && l.gitIgnore.MatchesPath(path)
}
