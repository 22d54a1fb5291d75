package scheduler

import (
	"container/heap"

	"github.com/vk/taskorder/internal/task"
	"github.com/vk/taskorder/internal/taskid"
)

// frontier is the set of tasks whose prerequisites are all ordered, kept as a
// min-heap on (priority, ID).
type frontier struct {
	items taskHeap
}

func newFrontier(capacity int) *frontier {
	return &frontier{items: make(taskHeap, 0, capacity)}
}

func (f *frontier) Len() int { return f.items.Len() }

func (f *frontier) push(t *task.Task) { heap.Push(&f.items, t) }

func (f *frontier) pop() *task.Task { return heap.Pop(&f.items).(*task.Task) }

type taskHeap []*task.Task

func (h taskHeap) Len() int { return len(h) }

func (h taskHeap) Less(i, j int) bool {
	if c := h[i].Priority.Compare(h[j].Priority); c != 0 {
		return c < 0
	}
	return taskid.Compare(h[i].ID, h[j].ID) < 0
}

func (h taskHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *taskHeap) Push(x any) { *h = append(*h, x.(*task.Task)) }

func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return x
}
