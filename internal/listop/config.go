package listop

import (
	"github.com/hashicorp/hcl/v2"
)

// Config is the body schema of a `node "list_operator"` block. Operand and
// serial attributes stay as expressions so they can resolve against the
// variable pool at evaluation time.
//
// The stage pipeline always applies in the fixed order filter, extract,
// order, limit, regardless of how the blocks are arranged in the file.
type Config struct {
	Variable  string       `hcl:"variable"`
	FilterBy  *FilterSpec  `hcl:"filter_by,block"`
	ExtractBy *ExtractSpec `hcl:"extract_by,block"`
	OrderBy   *OrderSpec   `hcl:"order_by,block"`
	Limit     *LimitSpec   `hcl:"limit,block"`
}

// Condition is a single filter condition. Key is only meaningful for
// array[file] inputs, where it selects the attribute under comparison.
type Condition struct {
	Key      string         `hcl:"key,optional"`
	Operator string         `hcl:"operator"`
	Value    hcl.Expression `hcl:"value"`
}

// FilterSpec configures the filter stage. Conditions apply in sequence, each
// narrowing the previous stage's output.
type FilterSpec struct {
	Enabled    *bool        `hcl:"enabled,optional"`
	Conditions []*Condition `hcl:"condition,block"`
}

// ExtractSpec configures the extract stage. Serial resolves to a 1-based
// element index.
type ExtractSpec struct {
	Enabled *bool          `hcl:"enabled,optional"`
	Serial  hcl.Expression `hcl:"serial"`
}

// OrderSpec configures the order stage. Key is only meaningful for
// array[file] inputs.
type OrderSpec struct {
	Enabled   *bool  `hcl:"enabled,optional"`
	Direction string `hcl:"direction"`
	Key       string `hcl:"key,optional"`
}

// LimitSpec configures the limit stage.
type LimitSpec struct {
	Enabled *bool `hcl:"enabled,optional"`
	Size    int   `hcl:"size"`
}

// A stage block that is present is enabled unless it says otherwise.

func (s *FilterSpec) enabled() bool  { return s != nil && (s.Enabled == nil || *s.Enabled) }
func (s *ExtractSpec) enabled() bool { return s != nil && (s.Enabled == nil || *s.Enabled) }
func (s *OrderSpec) enabled() bool   { return s != nil && (s.Enabled == nil || *s.Enabled) }
func (s *LimitSpec) enabled() bool   { return s != nil && (s.Enabled == nil || *s.Enabled) }
