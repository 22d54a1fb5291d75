package app

import (
	"context"
	"fmt"
	"os"

	"github.com/vk/taskorder/internal/config"
	"github.com/vk/taskorder/internal/ctxlog"
	"github.com/vk/taskorder/internal/hierarchy"
	"github.com/vk/taskorder/internal/scheduler"
	"github.com/vk/taskorder/internal/task"
)

// Run loads the task files, computes the order selected by the configured
// mode and writes it to the app's output.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "mode", a.config.Mode, "input", a.config.InputPath)

	info, err := os.Stat(a.config.InputPath)
	if err != nil {
		return fmt.Errorf("cannot read input path: %w", err)
	}
	if !info.IsDir() {
		if m, ok := a.loader.(config.Matcher); ok && !m.Matches(a.config.InputPath) {
			return fmt.Errorf("unsupported task file %s: expected a .hcl, .yaml or .yml file", a.config.InputPath)
		}
	}

	model, err := a.loader.Load(ctx, a.config.InputPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	a.logger.Debug("Configuration loaded.", "top_level_tasks", len(model.Tasks), "total_tasks", model.Count())

	var ordered []*task.Task
	switch a.config.Mode {
	case ModeFlatten:
		ordered, err = a.flatten(model)
	default:
		ordered, err = a.schedule(ctx, model)
	}
	if err != nil {
		return err
	}

	if len(ordered) == 0 {
		a.logger.Warn("No tasks found, nothing to order.", "input", a.config.InputPath)
	}

	if err := render(a.outW, a.config.OutputFormat, a.config.Mode, ordered); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	a.logger.Debug("App.Run method finished.", "tasks", len(ordered))
	return nil
}

func (a *App) schedule(ctx context.Context, model *config.Model) ([]*task.Task, error) {
	if nested := model.Count() - len(model.Tasks); nested > 0 {
		a.logger.Warn("Subtasks are ignored in schedule mode.", "subtasks", nested)
	}

	ordered, err := scheduler.Order(ctx, model.Tasks)
	if err != nil {
		return nil, fmt.Errorf("failed to schedule tasks: %w", err)
	}
	a.logger.Info("Tasks scheduled.", "count", len(ordered))
	return ordered, nil
}

func (a *App) flatten(model *config.Model) ([]*task.Task, error) {
	if len(model.Tasks) != 1 {
		return nil, fmt.Errorf("flatten mode requires exactly one top-level task, found %d", len(model.Tasks))
	}

	ordered := hierarchy.Flatten(model.Tasks[0])
	a.logger.Info("Task hierarchy flattened.", "root", model.Tasks[0].ID, "count", len(ordered))
	return ordered, nil
}
