package app

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vk/taskorder/internal/task"
)

type orderDocument struct {
	Mode  string         `json:"mode"`
	Tasks []taskDocument `json:"tasks"`
}

type taskDocument struct {
	ID       string        `json:"id"`
	Name     string        `json:"name,omitempty"`
	Priority task.Priority `json:"priority"`
}

func render(w io.Writer, format, mode string, tasks []*task.Task) error {
	if format == OutputJSON {
		doc := orderDocument{Mode: mode, Tasks: make([]taskDocument, 0, len(tasks))}
		for _, t := range tasks {
			doc.Tasks = append(doc.Tasks, taskDocument{ID: t.ID, Name: t.Name, Priority: t.Priority})
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	}

	for i, t := range tasks {
		line := fmt.Sprintf("%d. %s", i+1, t.ID)
		if t.Name != "" {
			line += fmt.Sprintf(" (%s)", t.Name)
		}
		if _, err := fmt.Fprintf(w, "%s priority %s\n", line, t.Priority); err != nil {
			return err
		}
	}
	return nil
}
