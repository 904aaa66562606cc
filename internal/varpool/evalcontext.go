package varpool

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// EvalContext builds the HCL evaluation context for expressions embedded in
// node configuration. Every pool binding is exposed under the `var.` root,
// with dotted selector paths expanded into nested objects, so a binding for
// `upload.files` is addressed as `var.upload.files`.
func (p *Pool) EvalContext() *hcl.EvalContext {
	entries := make(map[string]cty.Value)
	p.segments.Range(func(k, v any) bool {
		entries[k.(string)] = v.(segmentValue).ToCty()
		return true
	})

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"var": nestEntries(entries),
		},
	}
}

// segmentValue is the subset of segment.Segment the context builder needs.
// Declared locally to keep the conversion site explicit.
type segmentValue interface {
	ToCty() cty.Value
}

// node is one level of the variable tree under `var.`.
type node struct {
	children map[string]*node
	leaf     *cty.Value
}

// nestEntries expands dotted keys into nested cty objects. Keys are inserted
// in sorted order so shadowing is deterministic: a nested binding replaces a
// scalar one at the same path.
func nestEntries(entries map[string]cty.Value) cty.Value {
	root := &node{children: map[string]*node{}}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		cur := root
		for _, part := range strings.Split(key, ".") {
			child, ok := cur.children[part]
			if !ok {
				child = &node{children: map[string]*node{}}
				cur.children[part] = child
			}
			cur = child
		}
		val := entries[key]
		cur.leaf = &val
	}

	return root.toCty()
}

func (n *node) toCty() cty.Value {
	if len(n.children) == 0 {
		if n.leaf != nil {
			return *n.leaf
		}
		return cty.EmptyObjectVal
	}
	attrs := make(map[string]cty.Value, len(n.children))
	for name, child := range n.children {
		attrs[name] = child.toCty()
	}
	return cty.ObjectVal(attrs)
}

// ResolveValue evaluates an expression against the pool's context and
// returns the raw value. A diagnostic failure here is not a domain error;
// callers surface it as a hard fault.
func (p *Pool) ResolveValue(expr hcl.Expression) (cty.Value, error) {
	val, diags := expr.Value(p.EvalContext())
	if diags.HasErrors() {
		return cty.NilVal, fmt.Errorf("failed to resolve expression: %w", diags)
	}
	return val, nil
}

// ResolveString evaluates a template expression against the pool's context
// and converts the result to its string form.
func (p *Pool) ResolveString(expr hcl.Expression) (string, error) {
	val, err := p.ResolveValue(expr)
	if err != nil {
		return "", err
	}
	if val.IsNull() {
		return "", fmt.Errorf("expression resolved to null")
	}
	converted, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", fmt.Errorf("expression is not convertible to string: %w", err)
	}
	return converted.AsString(), nil
}
