// internal/taskid/parser.go
package taskid

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// segmentRegex matches a single segment of an identifier, e.g. `name` or `name[1]`.
var segmentRegex = regexp.MustCompile(`^([a-zA-Z0-9_-]+)(?:\[(\d+)\])?$`)

// isValidSegmentName rejects names that are technically matched but read as separators.
func isValidSegmentName(name string) bool {
	return strings.Trim(name, "-_") != ""
}

// Parse creates an ID by parsing its canonical string representation.
func Parse(raw string) (*ID, error) {
	if raw == "" {
		return nil, fmt.Errorf("task identifier cannot be empty")
	}

	id := &ID{}
	for _, part := range strings.Split(raw, ".") {
		if part == "" {
			return nil, fmt.Errorf("task identifier %q contains an empty segment", raw)
		}

		matches := segmentRegex.FindStringSubmatch(part)
		if matches == nil {
			return nil, fmt.Errorf("task identifier %q has invalid segment %q", raw, part)
		}

		name := matches[1]
		if !isValidSegmentName(name) {
			return nil, fmt.Errorf("task identifier %q has invalid segment name %q", raw, name)
		}

		segment := NewSegment(name)
		if matches[2] != "" {
			index, err := strconv.Atoi(matches[2])
			if err != nil {
				return nil, fmt.Errorf("task identifier %q has invalid index: %w", raw, err)
			}
			segment = NewSegmentWithIndex(name, index)
		}
		id.Segments = append(id.Segments, segment)
	}

	return id, nil
}

// Canonical parses raw and returns its canonical string form. Index
// suffixes lose leading zeros, so `shard[01]` becomes `shard[1]`.
func Canonical(raw string) (string, error) {
	id, err := Parse(raw)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
