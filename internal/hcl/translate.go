package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/taskorder/internal/task"
	"github.com/vk/taskorder/internal/taskid"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// translateTask converts the HCL-specific task schema, including its
// subtasks, into the agnostic model.
func translateTask(raw *hclTask, evalCtx *hcl.EvalContext) (*task.Task, hcl.Diagnostics) {
	var diags hcl.Diagnostics

	id, err := taskid.Canonical(raw.ID)
	if err != nil {
		diags = append(diags, invalidID(raw.DefRange, err))
	}
	deps := make([]string, 0, len(raw.DependsOn))
	for _, dep := range raw.DependsOn {
		canonical, err := taskid.Canonical(dep)
		if err != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid depends_on entry",
				Detail:   fmt.Sprintf("Task %q depends on a malformed identifier: %s.", raw.ID, err),
				Subject:  raw.DefRange.Ptr(),
			})
			continue
		}
		deps = append(deps, canonical)
	}

	priority, prioDiags := evalPriority(raw.Priority, evalCtx)
	diags = append(diags, prioDiags...)

	t := task.New(id, priority, deps...)
	t.Name = raw.Name
	for _, rawSub := range raw.Subtasks {
		sub, subDiags := translateTask(rawSub, evalCtx)
		diags = append(diags, subDiags...)
		t.Subtasks = append(t.Subtasks, sub)
	}
	return t, diags
}

// evalPriority evaluates a priority expression. A missing attribute or a null
// value means the task has no priority.
func evalPriority(expr hcl.Expression, evalCtx *hcl.EvalContext) (task.Priority, hcl.Diagnostics) {
	if expr == nil {
		return task.NoPriority, nil
	}

	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return task.NoPriority, diags
	}
	if val.IsNull() {
		return task.NoPriority, diags
	}

	num, err := convert.Convert(val, cty.Number)
	if err != nil {
		return task.NoPriority, append(diags, invalidPriority(expr, err))
	}
	if num.IsNull() || !num.IsKnown() {
		return task.NoPriority, diags
	}

	var v int
	if err := gocty.FromCtyValue(num, &v); err != nil {
		return task.NoPriority, append(diags, invalidPriority(expr, err))
	}
	return task.PriorityOf(v), diags
}

func invalidPriority(expr hcl.Expression, err error) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  "Invalid priority",
		Detail:   fmt.Sprintf("The priority must be a whole number: %s.", err),
		Subject:  expr.Range().Ptr(),
	}
}

func invalidID(rng hcl.Range, err error) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  "Invalid task identifier",
		Detail:   err.Error() + ".",
		Subject:  rng.Ptr(),
	}
}
