package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/taskorder/internal/config"
	"github.com/vk/taskorder/internal/ctxlog"
	"github.com/vk/taskorder/internal/fsutil"
	"github.com/zclconf/go-cty/cty"
)

// Extension is the file extension read by the Loader.
const Extension = ".hcl"

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Matches reports whether path has the HCL extension.
func (l *Loader) Matches(path string) bool {
	return fsutil.HasExtension(path, Extension)
}

type parsedFile struct {
	path string
	root fileRoot
}

// Load parses every .hcl file under the given paths. All files are decoded
// before any task is translated, so locals declared in one file can be used
// by priority expressions in another.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.FindFiles(paths, Extension)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	parsed := make([]parsedFile, 0, len(files))
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}
		parsed = append(parsed, parsedFile{path: file, root: root})
	}

	locals := make(map[string]cty.Value)
	for _, pf := range parsed {
		if diags := collectLocals(pf.root.Locals, locals); diags.HasErrors() {
			return nil, fmt.Errorf("failed to evaluate locals in %s: %w", pf.path, diags)
		}
	}
	evalCtx := newEvalContext(locals)
	logger.Debug("Locals collected.", "count", len(locals))

	model := &config.Model{}
	for _, pf := range parsed {
		for _, raw := range pf.root.Tasks {
			t, diags := translateTask(raw, evalCtx)
			if diags.HasErrors() {
				return nil, fmt.Errorf("invalid task in %s: %w", pf.path, diags)
			}
			model.Tasks = append(model.Tasks, t)
		}
	}

	logger.Debug("HCL loading complete.", "files", len(parsed), "tasks", len(model.Tasks))
	return model, nil
}

// collectLocals evaluates the attributes of every locals block into dst.
// Local values are constants; they may not reference each other.
func collectLocals(blocks []*hclLocals, dst map[string]cty.Value) hcl.Diagnostics {
	var diags hcl.Diagnostics
	for _, block := range blocks {
		attrs, attrDiags := block.Body.JustAttributes()
		diags = append(diags, attrDiags...)
		for name, attr := range attrs {
			if _, exists := dst[name]; exists {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Duplicate local value",
					Detail:   fmt.Sprintf("A local value named %q was already declared.", name),
					Subject:  attr.NameRange.Ptr(),
				})
				continue
			}
			val, valDiags := attr.Expr.Value(nil)
			diags = append(diags, valDiags...)
			if valDiags.HasErrors() {
				continue
			}
			dst[name] = val
		}
	}
	return diags
}

func newEvalContext(locals map[string]cty.Value) *hcl.EvalContext {
	localVal := cty.EmptyObjectVal
	if len(locals) > 0 {
		localVal = cty.ObjectVal(locals)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"local": localVal},
	}
}
