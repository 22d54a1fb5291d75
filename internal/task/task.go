// Package task defines the unit of work shared by the hierarchy flattener and
// the dependency scheduler.
package task

// Task is a single schedulable unit. Both ordering components treat tasks as
// read-only: they return new slices and never modify the tasks they are given.
type Task struct {
	// ID uniquely identifies the task within one ordering run.
	ID string
	// Name is an optional human-readable label. It plays no part in ordering.
	Name string
	// Priority orders tasks that are eligible at the same time; lower runs first.
	Priority Priority
	// DependsOn lists the IDs of tasks that must be ordered before this one.
	// Only the dependency scheduler reads it.
	DependsOn []string
	// Subtasks are the ordered children of this task in a hierarchy.
	// Only the hierarchy flattener reads it.
	Subtasks []*Task
}

// New creates a task with the given ID and priority.
func New(id string, priority Priority, dependsOn ...string) *Task {
	return &Task{ID: id, Priority: priority, DependsOn: dependsOn}
}
