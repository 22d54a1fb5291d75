package topology

import (
	"fmt"
	"slices"

	"github.com/vk/taskorder/internal/task"
	"github.com/vk/taskorder/internal/taskid"
)

// Graph stores tasks and their dependency edges using maps for constant-time
// lookup.
type Graph struct {
	tasks      map[string]*task.Task
	order      []string                       // IDs in insertion order
	deps       map[string]map[string]struct{} // Key: task ID, Value: set of prerequisite IDs
	dependents map[string]map[string]struct{} // Key: task ID, Value: set of dependent IDs
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		tasks:      make(map[string]*task.Task),
		deps:       make(map[string]map[string]struct{}),
		dependents: make(map[string]map[string]struct{}),
	}
}

// Build creates a graph containing every task and an edge for every declared
// dependency. Tasks are added first so that dependencies may reference tasks
// that appear later in the slice.
func Build(tasks []*task.Task) (*Graph, error) {
	g := New()
	for i, t := range tasks {
		if err := g.AddTask(t); err != nil {
			return nil, fmt.Errorf("task at index %d: %w", i, err)
		}
	}
	for _, t := range tasks {
		for _, dep := range t.DependsOn {
			if err := g.AddDependency(dep, t.ID); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// AddTask registers a task. Unlike edges, adding the same ID twice is an error,
// because IDs must be unique within a run.
func (g *Graph) AddTask(t *task.Task) error {
	if t == nil {
		return fmt.Errorf("%w: task is nil", ErrInvalidTask)
	}
	if t.ID == "" {
		return fmt.Errorf("%w: task ID is empty", ErrInvalidTask)
	}
	if _, exists := g.tasks[t.ID]; exists {
		return fmt.Errorf("%w: '%s'", ErrDuplicateTask, t.ID)
	}
	g.tasks[t.ID] = t
	g.order = append(g.order, t.ID)
	return nil
}

// AddDependency records that `to` depends on `from`, meaning `from` must be
// ordered first. Both tasks must already exist. Adding an existing edge again
// is a no-op, and a task may depend on itself; such an edge can never be
// satisfied and is reported by the scheduler as a cycle.
func (g *Graph) AddDependency(from, to string) error {
	if _, exists := g.tasks[to]; !exists {
		return fmt.Errorf("dependency target task '%s' not found in graph", to)
	}
	if _, exists := g.tasks[from]; !exists {
		return &DependencyError{Task: to, Dependency: from}
	}

	if g.deps[to] == nil {
		g.deps[to] = make(map[string]struct{})
	}
	g.deps[to][from] = struct{}{}

	if g.dependents[from] == nil {
		g.dependents[from] = make(map[string]struct{})
	}
	g.dependents[from][to] = struct{}{}
	return nil
}

// Task returns the task registered under id.
func (g *Graph) Task(id string) (*task.Task, bool) {
	t, ok := g.tasks[id]
	return t, ok
}

// Len returns the number of tasks in the graph.
func (g *Graph) Len() int {
	return len(g.tasks)
}

// IDs returns all task IDs in the order they were added.
func (g *Graph) IDs() []string {
	return slices.Clone(g.order)
}

// Indegree returns the number of distinct prerequisites of id.
func (g *Graph) Indegree(id string) int {
	return len(g.deps[id])
}

// DependenciesOf returns the prerequisites of id in taskid order.
func (g *Graph) DependenciesOf(id string) []string {
	return sortedKeys(g.deps[id])
}

// DependentsOf returns the tasks that depend on id in taskid order.
func (g *Graph) DependentsOf(id string) []string {
	return sortedKeys(g.dependents[id])
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, taskid.Compare)
	return keys
}
