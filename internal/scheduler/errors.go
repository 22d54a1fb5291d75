package scheduler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vk/taskorder/internal/topology"
)

var (
	// ErrCycleDetected is returned when the dependencies contain a cycle.
	ErrCycleDetected = errors.New("cycle detected")

	// ErrUnknownDependency is returned when a task depends on an ID that is not
	// part of the input.
	ErrUnknownDependency = topology.ErrUnknownDependency
	// ErrDuplicateTask is returned when two tasks share an ID.
	ErrDuplicateTask = topology.ErrDuplicateTask
	// ErrInvalidTask is returned for nil tasks and tasks without an ID.
	ErrInvalidTask = topology.ErrInvalidTask
)

// DependencyError names the task and the missing dependency behind an
// ErrUnknownDependency.
type DependencyError = topology.DependencyError

// CycleError reports tasks that could not be ordered because of a cycle.
type CycleError struct {
	// Unresolved lists every task that never became eligible, in task ID
	// order. It includes tasks that are not on a cycle themselves but depend
	// on one.
	Unresolved []string
	// Cycle is one cycle found among the unresolved tasks, with the first ID
	// repeated at the end, e.g. [A B A]. A self-dependency reads [M M].
	// Each ID is a prerequisite of the one after it.
	Cycle []string
}

func (e *CycleError) Error() string {
	if len(e.Cycle) == 0 {
		return fmt.Sprintf("%s: unresolved tasks %s", ErrCycleDetected, strings.Join(e.Unresolved, ", "))
	}
	msg := fmt.Sprintf("%s involving '%s': %s", ErrCycleDetected, e.Cycle[0], strings.Join(e.Cycle, " -> "))
	if blocked := len(e.Unresolved) - (len(e.Cycle) - 1); blocked > 0 {
		msg += fmt.Sprintf(" (%d more blocked)", blocked)
	}
	return msg
}

func (e *CycleError) Unwrap() error { return ErrCycleDetected }
