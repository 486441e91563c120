package adapter

import (
	"fmt"

	"github.com/gobwas/glob"
)

// ProjectFilePattern matches every project file flavour (csproj, vbproj, vcxproj, ...).
const ProjectFilePattern = "*.*proj"

// SolutionFilePattern matches solution files.
const SolutionFilePattern = "*.sln"

// PatternMatcher matches file base names against a wildcard pattern.
type PatternMatcher interface {
	Match(name string) bool
	Pattern() string
}

type globMatcher struct {
	pattern string
	glob    glob.Glob
}

// CompilePattern compiles a wildcard pattern such as "*.sln". The pattern is
// matched against base names only, so no path separators are configured.
func CompilePattern(pattern string) (PatternMatcher, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile pattern %q: %w", pattern, err)
	}

	return &globMatcher{pattern: pattern, glob: g}, nil
}

// FileTypePattern builds the "*.<ext>" pattern for a file type token. The
// token is used as-is.
func FileTypePattern(ext string) string {
	return "*." + ext
}

func (g *globMatcher) Match(name string) bool {
	return g.glob.Match(name)
}

func (g *globMatcher) Pattern() string {
	return g.pattern
}
