// internal/taskid/types.go
package taskid

// Segment is a single element of an identifier path, e.g. `compile` or `region[2]`.
type Segment struct {
	Name string
	// Index is -1 when the segment carries no `[n]` suffix.
	Index int
}

// NewSegment creates a segment without an index.
func NewSegment(name string) Segment {
	return Segment{Name: name, Index: -1}
}

// NewSegmentWithIndex creates a segment with an index suffix.
func NewSegmentWithIndex(name string, index int) Segment {
	return Segment{Name: name, Index: index}
}

// ID is the structured form of a task identifier.
type ID struct {
	Segments []Segment
}
