package scheduler

import (
	"slices"

	"github.com/vk/taskorder/internal/taskid"
	"github.com/vk/taskorder/internal/topology"
)

// newCycleError collects the tasks left with a nonzero indegree and extracts
// one cycle among them.
func newCycleError(g *topology.Graph, indegree map[string]int) *CycleError {
	var unresolved []string
	for id, n := range indegree {
		if n > 0 {
			unresolved = append(unresolved, id)
		}
	}
	slices.SortFunc(unresolved, taskid.Compare)

	return &CycleError{
		Unresolved: unresolved,
		Cycle:      findCycle(g, unresolved, indegree),
	}
}

// findCycle walks prerequisites backwards from the first unresolved task,
// always stepping to the first unresolved prerequisite. Every unresolved task
// has at least one unresolved prerequisite, so the walk must revisit a task;
// the path from that task's first visit is a cycle. It is returned in
// dependency order (each ID is a prerequisite of the next), starting at its
// smallest ID and closed by repeating that ID.
func findCycle(g *topology.Graph, unresolved []string, indegree map[string]int) []string {
	if len(unresolved) == 0 {
		return nil
	}

	position := make(map[string]int)
	var path []string
	current := unresolved[0]
	for {
		if at, seen := position[current]; seen {
			cycle := slices.Clone(path[at:])
			slices.Reverse(cycle)
			cycle = rotateToMin(cycle)
			return append(cycle, cycle[0])
		}
		position[current] = len(path)
		path = append(path, current)

		next := ""
		for _, dep := range g.DependenciesOf(current) {
			if indegree[dep] > 0 {
				next = dep
				break
			}
		}
		if next == "" {
			return nil
		}
		current = next
	}
}

func rotateToMin(cycle []string) []string {
	start := 0
	for i, id := range cycle {
		if taskid.Compare(id, cycle[start]) < 0 {
			start = i
		}
	}
	rotated := make([]string, 0, len(cycle)+1)
	rotated = append(rotated, cycle[start:]...)
	return append(rotated, cycle[:start]...)
}
