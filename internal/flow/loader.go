package flow

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/flowgrid/internal/ctxlog"
	"github.com/vk/flowgrid/internal/fsutil"
)

// Loader parses flow files from disk into the merged Flow model.
type Loader struct{}

// NewLoader creates a flow loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load discovers and parses all .hcl files under the given paths. Each path
// may be a single file or a directory searched recursively. The resulting
// blocks are merged in file order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*Flow, error) {
	logger := ctxlog.FromContext(ctx)

	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to access flow path %q: %w", path, err)
		}
		if info.IsDir() {
			found, err := fsutil.FindFilesByExtension(path, ".hcl")
			if err != nil {
				return nil, fmt.Errorf("failed to scan flow directory %q: %w", path, err)
			}
			files = append(files, found...)
		} else {
			files = append(files, path)
		}
	}
	logger.Debug("Flow files discovered.", "count", len(files))

	parser := hclparse.NewParser()
	merged := &Flow{}
	for _, name := range files {
		hclFile, diags := parser.ParseHCLFile(name)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse %q: %w", name, diags)
		}

		var f file
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &f); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode %q: %w", name, diags)
		}
		merged.Variables = append(merged.Variables, f.Variables...)
		merged.Nodes = append(merged.Nodes, f.Nodes...)
	}

	if err := validate(merged); err != nil {
		return nil, err
	}

	logger.Debug("Flow loaded.", "variables", len(merged.Variables), "nodes", len(merged.Nodes))
	return merged, nil
}

// validate rejects duplicate bindings and duplicate node identifiers, which
// would otherwise shadow each other silently after a merge.
func validate(f *Flow) error {
	varNames := make(map[string]struct{}, len(f.Variables))
	for _, v := range f.Variables {
		if _, dup := varNames[v.Name]; dup {
			return fmt.Errorf("duplicate variable %q", v.Name)
		}
		varNames[v.Name] = struct{}{}
	}

	nodeIDs := make(map[string]struct{}, len(f.Nodes))
	for _, n := range f.Nodes {
		if _, dup := nodeIDs[n.ID()]; dup {
			return fmt.Errorf("duplicate node %q", n.ID())
		}
		nodeIDs[n.ID()] = struct{}{}
	}
	return nil
}
