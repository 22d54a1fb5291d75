// Package topology holds the static structure of a dependency graph: the
// tasks of one scheduling run keyed by ID and the directed edges between
// them.
//
// A Graph is built once per run and then only read. It gives the scheduler
// constant-time lookup of a task by ID and of the tasks that depend on it,
// and it rejects malformed input (duplicate IDs, references to tasks that
// are not part of the run) while it is being populated.
//
// A Graph is not safe for concurrent mutation. It is meant to be private to
// the call that built it.
package topology
