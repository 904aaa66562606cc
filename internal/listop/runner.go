// Package listop implements the list_operator node: a configurable
// filter → extract → order → limit pipeline over an array variable,
// producing a new array plus references to its first and last element.
package listop

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"

	"github.com/vk/flowgrid/internal/ctxlog"
	"github.com/vk/flowgrid/internal/flow"
	"github.com/vk/flowgrid/internal/registry"
	"github.com/vk/flowgrid/internal/segment"
	"github.com/vk/flowgrid/internal/selector"
	"github.com/vk/flowgrid/internal/varpool"
)

// NodeType is the flow node type implemented by this package.
const NodeType = "list_operator"

// Module implements registry.Module.
type Module struct{}

// Register registers the list_operator runner with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterRunner(NodeType, New())
}

// Runner evaluates list_operator nodes. It is stateless; a single instance
// serves concurrent evaluations.
type Runner struct{}

// New creates a list_operator runner.
func New() *Runner {
	return &Runner{}
}

// Run resolves the node's input variable and applies the stage pipeline.
// Domain errors become a failed result carrying the inputs captured so far;
// only unexpected faults (undecodable configuration, unresolvable
// expressions) are returned as errors.
func (r *Runner) Run(ctx context.Context, node *flow.Node, pool *varpool.Pool) (*registry.Result, error) {
	logger := ctxlog.FromContext(ctx).With("node", node.ID())

	var cfg Config
	if diags := gohcl.DecodeBody(node.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode node configuration: %w", diags)
	}

	inputs := map[string]any{}
	processData := map[string]any{}

	sel, err := selector.Parse(cfg.Variable)
	if err != nil {
		return registry.Failed(fmt.Sprintf("invalid variable selector %q: %v", cfg.Variable, err), inputs, processData), nil
	}

	seg, ok := pool.Get(sel)
	if !ok {
		return registry.Failed(fmt.Sprintf("variable not found for selector: %s", sel), inputs, processData), nil
	}

	// Empty input short-circuits before the kind guard and before any stage
	// runs, so an empty array always succeeds no matter what is configured.
	if arr, isArray := seg.(segment.Array); isArray && arr.Len() == 0 {
		logger.Debug("Input array is empty, skipping all stages.")
		inputs["variable"] = []any{}
		processData["variable"] = []any{}
		outputs := map[string]any{
			"result":       emptyLike(arr),
			"first_record": nil,
			"last_record":  nil,
		}
		return registry.Succeeded(inputs, processData, outputs), nil
	}

	var arr segment.Array
	switch typed := seg.(type) {
	case *segment.StringArray:
		arr = typed
	case *segment.NumberArray:
		arr = typed
	case *segment.FileArray:
		arr = typed
	default:
		msg := fmt.Sprintf("variable %s is not an array[string], array[number] or array[file] segment", sel)
		return registry.Failed(msg, inputs, processData), nil
	}

	inputs["variable"] = arr.Records()
	processData["variable"] = arr.Records()

	// The stage order is fixed: filter, extract, order, limit.
	if cfg.FilterBy.enabled() {
		arr, err = applyFilter(pool, cfg.FilterBy, arr)
		if res, hardErr := r.classify(err, inputs, processData); res != nil || hardErr != nil {
			return res, hardErr
		}
	}
	if cfg.ExtractBy.enabled() {
		arr, err = applyExtract(pool, cfg.ExtractBy, arr)
		if res, hardErr := r.classify(err, inputs, processData); res != nil || hardErr != nil {
			return res, hardErr
		}
	}
	if cfg.OrderBy.enabled() {
		arr, err = applyOrder(cfg.OrderBy, arr)
		if res, hardErr := r.classify(err, inputs, processData); res != nil || hardErr != nil {
			return res, hardErr
		}
	}
	if cfg.Limit.enabled() {
		arr = applyLimit(cfg.Limit, arr)
	}

	records := arr.Records()
	outputs := map[string]any{
		"result":       arr,
		"first_record": nil,
		"last_record":  nil,
	}
	if len(records) > 0 {
		outputs["first_record"] = records[0]
		outputs["last_record"] = records[len(records)-1]
	}

	logger.Debug("Pipeline finished.", "records", len(records))
	return registry.Succeeded(inputs, processData, outputs), nil
}

// classify routes a stage error to the right failure channel: domain errors
// become a failed result, everything else stays a hard fault. A nil error
// yields (nil, nil) and the pipeline continues.
func (r *Runner) classify(err error, inputs, processData map[string]any) (*registry.Result, error) {
	if err == nil {
		return nil, nil
	}
	if isDomainError(err) {
		return registry.Failed(err.Error(), inputs, processData), nil
	}
	return nil, err
}

// emptyLike returns an empty array segment of the same element kind as the
// input, or an array[any] segment when the input declares no element kind.
func emptyLike(arr segment.Array) segment.Array {
	switch seg := arr.(type) {
	case *segment.StringArray:
		return seg.WithValues(nil)
	case *segment.NumberArray:
		return seg.WithValues(nil)
	case *segment.FileArray:
		return seg.WithValues(nil)
	default:
		return &segment.AnyArray{}
	}
}
