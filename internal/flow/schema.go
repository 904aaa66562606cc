// Package flow defines the HCL surface of a flow file and the loader that
// turns flow files into a typed model: declared variables plus the nodes
// configured to evaluate over them.
package flow

import (
	"github.com/hashicorp/hcl/v2"
)

// Variable represents a `variable` block from a flow file. The label is the
// selector path the value is bound to in the pool; dotted labels are allowed
// (e.g. `variable "upload.files"`). Value must be a literal expression.
type Variable struct {
	Name  string         `hcl:"name,label"`
	Kind  string         `hcl:"kind,optional"`
	Value hcl.Expression `hcl:"value"`
}

// Node represents a `node` block from a flow file. The body is left
// undecoded here; the registered runner for the node's type owns its schema.
type Node struct {
	Type        string   `hcl:"type,label"`
	Name        string   `hcl:"name,label"`
	Title       string   `hcl:"title,optional"`
	Description string   `hcl:"description,optional"`
	Body        hcl.Body `hcl:",remain"`
}

// ID returns the canonical identifier of the node within a flow.
func (n *Node) ID() string {
	return n.Type + "." + n.Name
}

// Flow is the merged content of all loaded flow files.
type Flow struct {
	Variables []*Variable
	Nodes     []*Node
}

// file mirrors the top-level structure of a single flow file.
type file struct {
	Variables []*Variable `hcl:"variable,block"`
	Nodes     []*Node     `hcl:"node,block"`
}
