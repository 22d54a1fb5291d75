// Package hierarchy flattens a tree of tasks and their subtasks into a single
// execution order in which every task follows all of its descendants.
package hierarchy

import (
	"slices"

	"github.com/vk/taskorder/internal/task"
)

// Flatten returns every task in the tree rooted at root, descendants before
// ancestors, stably sorted by priority. Tasks without a priority sort after
// all tasks that declare one, and tasks with equal priority keep their
// post-order position.
//
// The returned slice holds the caller's task pointers; the tasks themselves
// are not modified. A nil root yields an empty slice.
func Flatten(root *task.Task) []*task.Task {
	flat := PostOrder(root)
	slices.SortStableFunc(flat, func(a, b *task.Task) int {
		return a.Priority.Compare(b.Priority)
	})
	return flat
}

// PostOrder returns the tasks of the tree in post-order: the full output for
// the first subtask, then the second, and so on, followed by the task itself.
// It walks the tree with an explicit stack, so deep hierarchies do not grow
// the goroutine stack. Nil subtasks are skipped.
func PostOrder(root *task.Task) []*task.Task {
	if root == nil {
		return []*task.Task{}
	}

	type frame struct {
		node *task.Task
		next int // index of the next subtask to visit
	}

	var out []*task.Task
	stack := []frame{{node: root}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(top.node.Subtasks) {
			child := top.node.Subtasks[top.next]
			top.next++
			if child != nil {
				stack = append(stack, frame{node: child})
			}
			continue
		}
		out = append(out, top.node)
		stack = stack[:len(stack)-1]
	}
	return out
}
