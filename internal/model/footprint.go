package model

// FootprintState tracks whether a solution file pass is inside the source
// control block. Every file starts Outside.
type FootprintState int

const (
	// Outside means lines are copied to the output.
	Outside FootprintState = iota
	// Inside means lines belong to the source control block and are dropped.
	Inside
)

func (s FootprintState) String() string {
	switch s {
	case Outside:
		return "outside"
	case Inside:
		return "inside"
	default:
		return "unknown"
	}
}

// LineDecision is the verdict of a line filter for a single line.
type LineDecision int

const (
	// Keep copies the line to the output unchanged.
	Keep LineDecision = iota
	// DropMarker drops a single-line footprint marker.
	DropMarker
	// DropBlockStart drops the line opening a footprint block.
	DropBlockStart
	// DropBlockLine drops a line inside a footprint block.
	DropBlockLine
	// DropBlockEnd drops the line closing a footprint block.
	DropBlockEnd
)

// Dropped reports whether the line is removed from the output.
func (d LineDecision) Dropped() bool {
	return d != Keep
}

func (d LineDecision) String() string {
	switch d {
	case Keep:
		return "keep"
	case DropMarker:
		return "drop marker"
	case DropBlockStart:
		return "drop block start"
	case DropBlockLine:
		return "drop block line"
	case DropBlockEnd:
		return "drop block end"
	default:
		return "unknown"
	}
}

// RewriteOutcome is the result of passing one file through a line filter.
// Content is only populated when Changed is true.
type RewriteOutcome struct {
	Path    Path
	Changed bool
	Dropped int
	Content []byte
}
