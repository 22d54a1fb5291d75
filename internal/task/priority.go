package task

import (
	"cmp"
	"encoding/json"
	"strconv"
)

// Priority is an optional integer priority. The zero value is NoPriority.
type Priority struct {
	value int
	set   bool
}

// NoPriority marks a task without a declared priority. It orders after every
// declared priority.
var NoPriority = Priority{}

// PriorityOf returns a declared priority with the given value.
func PriorityOf(v int) Priority {
	return Priority{value: v, set: true}
}

// Compare returns -1, 0 or 1. Declared priorities compare by value, and an
// absent priority is greater than any declared one. Two absent priorities
// are equal.
func (p Priority) Compare(other Priority) int {
	switch {
	case p.set && other.set:
		return cmp.Compare(p.value, other.value)
	case p.set:
		return -1
	case other.set:
		return 1
	default:
		return 0
	}
}

// String returns the value, or "none" when the priority is absent.
func (p Priority) String() string {
	if !p.set {
		return "none"
	}
	return strconv.Itoa(p.value)
}

// MarshalJSON encodes an absent priority as null.
func (p Priority) MarshalJSON() ([]byte, error) {
	if !p.set {
		return []byte("null"), nil
	}
	return json.Marshal(p.value)
}
