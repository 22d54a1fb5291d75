package hierarchy

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/taskorder/internal/task"
)

func node(id string, prio task.Priority, subtasks ...*task.Task) *task.Task {
	return &task.Task{ID: id, Priority: prio, Subtasks: subtasks}
}

func ids(tasks []*task.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func TestFlatten_ChildrenBeforeParent(t *testing.T) {
	t.Parallel()

	root := node("R", task.PriorityOf(3),
		node("X", task.PriorityOf(1)),
		node("Y", task.PriorityOf(2)),
	)

	got := ids(Flatten(root))
	if diff := cmp.Diff([]string{"X", "Y", "R"}, got); diff != "" {
		t.Errorf("unexpected order (-want +got):\n%s", diff)
	}
}

func TestFlatten_SingleTask(t *testing.T) {
	t.Parallel()

	leaf := node("solo", task.NoPriority)
	got := Flatten(leaf)
	require.Len(t, got, 1)
	assert.Same(t, leaf, got[0])
}

func TestFlatten_NilRoot(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Flatten(nil))
	assert.NotNil(t, Flatten(nil))
}

func TestFlatten_MissingPrioritySortsLast(t *testing.T) {
	t.Parallel()

	// The root carries no priority, as in a "Main Task" that only groups work.
	root := node("main", task.NoPriority,
		node("a", task.PriorityOf(1)),
		node("b", task.PriorityOf(2)),
	)
	assert.Equal(t, []string{"a", "b", "main"}, ids(Flatten(root)))

	root = node("main", task.PriorityOf(0),
		node("a", task.NoPriority),
		node("b", task.PriorityOf(5)),
	)
	assert.Equal(t, []string{"main", "b", "a"}, ids(Flatten(root)))
}

func TestFlatten_Stable(t *testing.T) {
	t.Parallel()

	root := node("root", task.PriorityOf(1),
		node("p", task.PriorityOf(1),
			node("p1", task.NoPriority),
			node("p2", task.PriorityOf(1)),
		),
		node("q", task.NoPriority,
			node("q1", task.PriorityOf(1)),
		),
	)

	assert.Equal(t, []string{"p1", "p2", "p", "q1", "q", "root"}, ids(PostOrder(root)))
	// Priority 1 keeps post-order among itself, then the absent ones keep theirs.
	assert.Equal(t, []string{"p2", "p", "q1", "root", "p1", "q"}, ids(Flatten(root)))
}

func TestPostOrder_DescendantsPrecedeAncestors(t *testing.T) {
	t.Parallel()

	root := node("1", task.NoPriority,
		node("2", task.NoPriority,
			node("4", task.NoPriority),
			node("5", task.NoPriority,
				node("7", task.NoPriority),
			),
		),
		node("3", task.NoPriority,
			node("6", task.NoPriority),
		),
	)

	got := PostOrder(root)
	assert.Equal(t, []string{"4", "7", "5", "2", "6", "3", "1"}, ids(got))

	position := make(map[*task.Task]int, len(got))
	for i, tk := range got {
		position[tk] = i
	}
	var check func(parent *task.Task)
	check = func(parent *task.Task) {
		for _, child := range parent.Subtasks {
			assert.Less(t, position[child], position[parent])
			check(child)
		}
	}
	check(root)
}

func TestPostOrder_SkipsNilSubtasks(t *testing.T) {
	t.Parallel()

	root := node("r", task.NoPriority, nil, node("a", task.NoPriority), nil)
	assert.Equal(t, []string{"a", "r"}, ids(PostOrder(root)))
}

func TestPostOrder_DeepTree(t *testing.T) {
	t.Parallel()

	const depth = 100000
	root := node("n0", task.NoPriority)
	current := root
	for i := 1; i < depth; i++ {
		child := node("n", task.NoPriority)
		current.Subtasks = []*task.Task{child}
		current = child
	}

	got := PostOrder(root)
	require.Len(t, got, depth)
	assert.Same(t, current, got[0])
	assert.Same(t, root, got[depth-1])
}

func TestFlatten_DoesNotModifyTree(t *testing.T) {
	t.Parallel()

	x := node("X", task.PriorityOf(2))
	y := node("Y", task.PriorityOf(1))
	root := node("R", task.PriorityOf(0), x, y)

	_ = Flatten(root)
	require.Len(t, root.Subtasks, 2)
	assert.Same(t, x, root.Subtasks[0])
	assert.Same(t, y, root.Subtasks[1])
	assert.Equal(t, task.PriorityOf(2), x.Priority)
}
