package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot decodes all top-level blocks of a task file.
type fileRoot struct {
	Tasks  []*hclTask   `hcl:"task,block"`
	Locals []*hclLocals `hcl:"locals,block"`
}

// hclLocals holds the raw attributes of a `locals` block.
type hclLocals struct {
	Body hcl.Body `hcl:",remain"`
}

// hclTask is the HCL form of a task. Subtasks use the same schema under the
// `subtask` block type.
type hclTask struct {
	ID        string         `hcl:"id,label"`
	Name      string         `hcl:"name,optional"`
	Priority  hcl.Expression `hcl:"priority,optional"`
	DependsOn []string       `hcl:"depends_on,optional"`
	Subtasks  []*hclTask     `hcl:"subtask,block"`
	DefRange  hcl.Range      `hcl:",def_range"`
}
