// internal/taskid/id.go
package taskid

import (
	"strconv"
	"strings"
)

// String serializes the ID into its canonical string representation.
func (id *ID) String() string {
	if id == nil {
		return ""
	}

	var sb strings.Builder
	for i, segment := range id.Segments {
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(segment.Name)
		if segment.Index != -1 {
			sb.WriteByte('[')
			sb.WriteString(strconv.Itoa(segment.Index))
			sb.WriteByte(']')
		}
	}
	return sb.String()
}
