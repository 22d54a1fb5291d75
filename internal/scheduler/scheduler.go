package scheduler

import (
	"context"
	"fmt"

	"github.com/vk/taskorder/internal/ctxlog"
	"github.com/vk/taskorder/internal/task"
	"github.com/vk/taskorder/internal/topology"
)

// Schedule returns the IDs of tasks in an order that places every task after
// all of its dependencies. Among tasks that are eligible at the same time the
// lowest priority value goes first, with ties broken by task ID.
//
// It returns a *CycleError when the dependencies contain a cycle, and an error
// wrapping ErrUnknownDependency, ErrDuplicateTask or ErrInvalidTask for
// malformed input.
func Schedule(ctx context.Context, tasks []*task.Task) ([]string, error) {
	ordered, err := Order(ctx, tasks)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(ordered))
	for i, t := range ordered {
		ids[i] = t.ID
	}
	return ids, nil
}

// Order is Schedule returning the task references instead of their IDs.
func Order(ctx context.Context, tasks []*task.Task) ([]*task.Task, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Schedule: Starting graph construction.", "task_count", len(tasks))

	g, err := topology.Build(tasks)
	if err != nil {
		return nil, fmt.Errorf("error building dependency graph: %w", err)
	}

	// Indegrees are copied out of the graph so the graph itself stays read-only.
	indegree := make(map[string]int, g.Len())
	ready := newFrontier(g.Len())
	for _, id := range g.IDs() {
		n := g.Indegree(id)
		indegree[id] = n
		if n == 0 {
			t, _ := g.Task(id)
			ready.push(t)
		}
	}
	logger.Debug("Schedule: Frontier seeded.", "ready_count", ready.Len())

	ordered := make([]*task.Task, 0, g.Len())
	for ready.Len() > 0 {
		current := ready.pop()
		ordered = append(ordered, current)

		for _, id := range g.DependentsOf(current.ID) {
			indegree[id]--
			if indegree[id] == 0 {
				logger.Debug("Schedule: Unlocking dependent task.", "task", id, "after", current.ID)
				t, _ := g.Task(id)
				ready.push(t)
			}
		}
	}

	if len(ordered) < g.Len() {
		cycleErr := newCycleError(g, indegree)
		logger.Debug("Schedule: Cycle detected.", "unresolved", cycleErr.Unresolved, "cycle", cycleErr.Cycle)
		return nil, cycleErr
	}

	logger.Debug("Schedule: Ordering complete.", "task_count", len(ordered))
	return ordered, nil
}
