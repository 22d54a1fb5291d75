// Package yamlconfig loads task definitions written in YAML and translates
// them into the format-agnostic config.Model.
//
//	tasks:
//	  - id: deploy
//	    name: Deploy
//	    priority: 2
//	    depends_on: [build]
//	    subtasks:
//	      - id: deploy.notify
//	        priority: 5
package yamlconfig

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vk/taskorder/internal/config"
	"github.com/vk/taskorder/internal/ctxlog"
	"github.com/vk/taskorder/internal/fsutil"
	"github.com/vk/taskorder/internal/task"
	"github.com/vk/taskorder/internal/taskid"
	"gopkg.in/yaml.v3"
)

// Extensions are the file extensions read by the Loader.
var Extensions = []string{".yaml", ".yml"}

type fileRoot struct {
	Tasks []yamlTask `yaml:"tasks"`
}

type yamlTask struct {
	ID        string       `yaml:"id"`
	Name      string       `yaml:"name"`
	Priority  yamlPriority `yaml:"priority"`
	DependsOn []string     `yaml:"depends_on"`
	Subtasks  []yamlTask   `yaml:"subtasks"`
}

// yamlPriority accepts only integer and null scalars. Decoding straight into
// an int would truncate values such as 1.5.
type yamlPriority struct {
	value task.Priority
}

func (p *yamlPriority) UnmarshalYAML(node *yaml.Node) error {
	switch node.ShortTag() {
	case "!!null":
		p.value = task.NoPriority
		return nil
	case "!!int":
		var v int
		if err := node.Decode(&v); err != nil {
			return fmt.Errorf("line %d: invalid priority %q: %w", node.Line, node.Value, err)
		}
		p.value = task.PriorityOf(v)
		return nil
	default:
		return fmt.Errorf("line %d: priority must be a whole number, got %q", node.Line, node.Value)
	}
}

var errEmptyPayload = errors.New("task payload is empty")

// Loader is the YAML implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Matches reports whether path has one of the YAML extensions.
func (l *Loader) Matches(path string) bool {
	return fsutil.HasExtension(path, Extensions...)
}

// Load parses every .yaml and .yml file under the given paths.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path_count", len(paths))

	files, err := fsutil.FindFiles(paths, Extensions...)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered YAML files.", "count", len(files))

	model := &config.Model{}
	for _, file := range files {
		m, err := LoadFile(file)
		if err != nil {
			return nil, err
		}
		model.Tasks = append(model.Tasks, m.Tasks...)
	}

	logger.Debug("YAML loading complete.", "files", len(files), "tasks", len(model.Tasks))
	return model, nil
}

// LoadFile loads the tasks from an explicit file path.
func LoadFile(path string) (*config.Model, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("yamlconfig: read %s: %w", path, err)
	}
	m, parseErr := Parse(content)
	if parseErr != nil {
		return nil, fmt.Errorf("yamlconfig: %s: %w", path, parseErr)
	}
	return m, nil
}

// Parse decodes task definitions from YAML bytes. Unknown keys are rejected.
// A stream of several documents yields the tasks of all of them in order.
func Parse(data []byte) (*config.Model, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errEmptyPayload
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var raw []yamlTask
	for doc := 1; ; doc++ {
		var root fileRoot
		err := dec.Decode(&root)
		if errors.Is(err, io.EOF) {
			if doc == 1 {
				return nil, errEmptyPayload
			}
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode tasks in document %d: %w", doc, err)
		}
		raw = append(raw, root.Tasks...)
	}

	model := &config.Model{Tasks: make([]*task.Task, 0, len(raw))}
	for i := range raw {
		t, err := translateTask(&raw[i])
		if err != nil {
			return nil, err
		}
		model.Tasks = append(model.Tasks, t)
	}
	return model, nil
}

func translateTask(raw *yamlTask) (*task.Task, error) {
	id, err := taskid.Canonical(raw.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid task: %w", err)
	}
	deps := make([]string, 0, len(raw.DependsOn))
	for _, dep := range raw.DependsOn {
		canonical, err := taskid.Canonical(dep)
		if err != nil {
			return nil, fmt.Errorf("task %q has invalid dependency: %w", raw.ID, err)
		}
		deps = append(deps, canonical)
	}

	t := task.New(id, raw.Priority.value, deps...)
	t.Name = raw.Name
	for i := range raw.Subtasks {
		sub, err := translateTask(&raw.Subtasks[i])
		if err != nil {
			return nil, err
		}
		t.Subtasks = append(t.Subtasks, sub)
	}
	return t, nil
}
