package topology

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTask is returned for nil tasks and tasks with an empty ID.
	ErrInvalidTask = errors.New("invalid task")
	// ErrDuplicateTask is returned when two tasks share an ID.
	ErrDuplicateTask = errors.New("duplicate task")
	// ErrUnknownDependency is returned when a task depends on an ID that is
	// not part of the graph.
	ErrUnknownDependency = errors.New("unknown dependency")
)

// DependencyError reports a dependency edge that references a missing task.
type DependencyError struct {
	// Task is the ID of the task that declares the dependency.
	Task string
	// Dependency is the referenced ID that could not be found.
	Dependency string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("task '%s' depends on unknown task '%s'", e.Task, e.Dependency)
}

func (e *DependencyError) Unwrap() error { return ErrUnknownDependency }
