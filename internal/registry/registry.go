package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/flowgrid/internal/flow"
	"github.com/vk/flowgrid/internal/varpool"
)

// Runner evaluates one node of a flow against a variable pool.
//
// A Runner distinguishes two failure channels: domain failures are reported
// inside the Result with StatusFailed, while the returned error is reserved
// for hard faults (corrupt configuration, unresolvable expressions) that the
// invoking runtime should surface as an execution failure.
type Runner interface {
	Run(ctx context.Context, node *flow.Node, pool *varpool.Pool) (*Result, error)
}

// Module is the interface all core modules implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds the runners registered for a single application instance.
type Registry struct {
	runners map[string]Runner
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{runners: make(map[string]Runner)}
}

// RegisterRunner binds a runner to a node type. Registering the same type
// twice is a programmer error and panics.
func (r *Registry) RegisterRunner(nodeType string, runner Runner) {
	if _, dup := r.runners[nodeType]; dup {
		panic(fmt.Sprintf("registry: node type %q registered twice", nodeType))
	}
	r.runners[nodeType] = runner
}

// Runner looks up the runner for a node type.
func (r *Registry) Runner(nodeType string) (Runner, bool) {
	runner, ok := r.runners[nodeType]
	return runner, ok
}

// Types returns the registered node types, for logging.
func (r *Registry) Types() []string {
	types := make([]string, 0, len(r.runners))
	for t := range r.runners {
		types = append(types, t)
	}
	return types
}

// Validate checks that every node in the flow names a registered type.
func (r *Registry) Validate(f *flow.Flow) error {
	var errs []string
	for _, n := range f.Nodes {
		if _, ok := r.runners[n.Type]; !ok {
			errs = append(errs, fmt.Sprintf("node %q: unknown node type %q", n.ID(), n.Type))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}
