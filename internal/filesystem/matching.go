package filesystem

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/desertwitch/golnk/internal/schema"
)

const wildcardChars = "*?["

// HasWildcard returns true if a pattern requests wildcard expansion.
func HasWildcard(pattern string) bool {
	return strings.ContainsAny(pattern, wildcardChars)
}

// MatchName reports whether a file name matches a single-segment pattern.
// Only '*' is special, '?' and '[' match themselves. Every literal segment
// between the stars is searched for at its first occurrence in what remains
// of the name, and a pattern not ending in '*' must consume the name fully.
func MatchName(name string, pattern string) bool {
	segments := strings.Split(pattern, "*")
	if len(segments) == 1 {
		return name == pattern
	}

	if !strings.HasPrefix(name, segments[0]) {
		return false
	}
	rest := name[len(segments[0]):]

	for _, segment := range segments[1:] {
		if segment == "" {
			continue
		}

		idx := strings.Index(rest, segment)
		if idx < 0 {
			return false
		}
		rest = rest[idx+len(segment):]
	}

	return strings.HasSuffix(pattern, "*") || rest == ""
}

// Expand returns the concrete paths a source argument stands for. A literal
// path is returned unchanged and unchecked. A wildcard pattern is matched
// against the immediate entries of its parent directory, preserving their
// enumeration order; wildcards never cross path separators.
func (f *Handler) Expand(pattern string) ([]string, error) {
	if !HasWildcard(pattern) {
		return []string{pattern}, nil
	}

	dir := filepath.Dir(pattern)
	filePattern := filepath.Base(pattern)

	entries, err := f.osHandler.ReadDir(f.Resolve(dir))
	if err != nil {
		return nil, schema.NewError("fs-expand", dir, err)
	}

	matches := []string{}
	for _, entry := range entries {
		if MatchName(entry.Name(), filePattern) {
			matches = append(matches, filepath.Join(dir, entry.Name()))
		}
	}

	slog.Debug("Expanded source pattern",
		"pattern", pattern,
		"matches", len(matches),
	)

	return matches, nil
}
