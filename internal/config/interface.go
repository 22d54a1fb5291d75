package config

import (
	"context"
	"fmt"

	"github.com/vk/taskorder/internal/ctxlog"
	"github.com/vk/taskorder/internal/task"
)

// Model is the unified representation of all tasks read from configuration.
type Model struct {
	// Tasks holds the top-level tasks in the order they were read. Subtasks
	// hang off their parents.
	Tasks []*task.Task
}

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads every file it understands under the given paths and
	// translates them into the format-agnostic model. Paths holding no files
	// of its format produce an empty model, not an error.
	Load(ctx context.Context, paths ...string) (*Model, error)
}

// Matcher is implemented by loaders that can tell whether they read a
// given file.
type Matcher interface {
	Matches(path string) bool
}

// Loaders combines several loaders into one. Models are merged in loader
// order.
type Loaders []Loader

// Load implements Loader.
func (ls Loaders) Load(ctx context.Context, paths ...string) (*Model, error) {
	logger := ctxlog.FromContext(ctx)
	merged := &Model{}
	for i, l := range ls {
		m, err := l.Load(ctx, paths...)
		if err != nil {
			return nil, err
		}
		if m == nil {
			return nil, fmt.Errorf("loader %d returned no model", i)
		}
		logger.Debug("Loader finished.", "loader", fmt.Sprintf("%T", l), "tasks", len(m.Tasks))
		merged.Tasks = append(merged.Tasks, m.Tasks...)
	}
	return merged, nil
}

// Matches reports whether any of the loaders reads path. A loader that does
// not implement Matcher is assumed to read every file.
func (ls Loaders) Matches(path string) bool {
	for _, l := range ls {
		m, ok := l.(Matcher)
		if !ok || m.Matches(path) {
			return true
		}
	}
	return false
}

// Count returns the number of tasks in the model including all subtasks.
func (m *Model) Count() int {
	if m == nil {
		return 0
	}
	n := 0
	stack := append([]*task.Task(nil), m.Tasks...)
	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if t == nil {
			continue
		}
		n++
		stack = append(stack, t.Subtasks...)
	}
	return n
}
