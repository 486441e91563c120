// Package model defines the data structures shared by the SCC removal layers.
package model

// Path represents a file system path.
type Path string

// String returns the path as a plain string.
func (p Path) String() string {
	return string(p)
}

// ListSeparator separates the entries of configured pattern lists.
const ListSeparator = ';'
