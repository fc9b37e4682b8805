package importer

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultPatterns are used when no include pattern is given.
var DefaultPatterns = []string{"**/*.md", "**/*.markdown"}

// DefaultExcludes are directory names skipped during traversal.
var DefaultExcludes = []string{
	".git",
	"node_modules",
	"vendor",
	"__pycache__",
	"dist",
	"build",
	".next",
	"target",
	".venv",
	".idea",
	".vscode",
}

func shouldExcludeDir(name string) bool {
	for _, excl := range DefaultExcludes {
		if strings.EqualFold(name, excl) {
			return true
		}
	}
	return false
}

// matchesAny reports whether relPath matches one of the glob patterns,
// either as a full path (with ** support) or by file name alone.
func matchesAny(relPath string, patterns []string) bool {
	normalized := filepath.ToSlash(relPath)
	base := filepath.Base(normalized)

	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)
		if matched, err := doublestar.PathMatch(pattern, normalized); err == nil && matched {
			return true
		}
		if matched, err := doublestar.PathMatch(pattern, base); err == nil && matched {
			return true
		}
	}
	return false
}

// ValidatePatterns rejects malformed glob patterns before a walk starts.
func ValidatePatterns(patterns []string) error {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(filepath.ToSlash(p)) {
			return &PatternError{Pattern: p}
		}
	}
	return nil
}

// PatternError reports an invalid include pattern.
type PatternError struct {
	Pattern string
}

func (e *PatternError) Error() string {
	return "importer: invalid pattern " + `"` + e.Pattern + `"`
}
