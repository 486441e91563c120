package domain

import (
	"strings"
	"unicode"

	m "sccremover.dev/pkg/sccremover/internal/model"
)

// Footprint markers written by the source control integration.
const (
	ProjectMarkerPrefix = "<scc"
	SolutionBlockStart  = "GlobalSection(TeamFoundationVersionControl)"
	SolutionBlockEnd    = "EndGlobalSection"
)

// LineFilter classifies the lines of one file. Filters hold no state of
// their own; the caller threads the FootprintState from line to line,
// starting at m.Outside for every file.
type LineFilter interface {
	Name() string
	Classify(line string, state m.FootprintState) (m.LineDecision, m.FootprintState)
}

// ProjectFilter drops the single-line source control bindings of project
// files, e.g. <SccProjectName>.
type ProjectFilter struct{}

// Name implements LineFilter.
func (ProjectFilter) Name() string {
	return "project"
}

// Classify implements LineFilter. The state is passed through unchanged.
func (ProjectFilter) Classify(line string, state m.FootprintState) (m.LineDecision, m.FootprintState) {
	trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
	if strings.HasPrefix(strings.ToLower(trimmed), ProjectMarkerPrefix) {
		return m.DropMarker, state
	}

	return m.Keep, state
}

// SolutionFilter drops the TeamFoundationVersionControl global section of
// solution files, delimiter lines included.
type SolutionFilter struct{}

// Name implements LineFilter.
func (SolutionFilter) Name() string {
	return "solution"
}

// Classify implements LineFilter.
func (SolutionFilter) Classify(line string, state m.FootprintState) (m.LineDecision, m.FootprintState) {
	if strings.Contains(line, SolutionBlockStart) {
		return m.DropBlockStart, m.Inside
	}

	switch state {
	case m.Inside:
		if strings.Contains(line, SolutionBlockEnd) {
			return m.DropBlockEnd, m.Outside
		}

		return m.DropBlockLine, m.Inside
	default:
		return m.Keep, m.Outside
	}
}
