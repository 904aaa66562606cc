// Package selector models the dotted-path addresses used to resolve
// variables out of a pool, e.g. `upload.files`.
package selector

import (
	"strings"
)

// Selector is the structured representation of a variable address. It is
// modeled as a path, broken into named parts.
type Selector struct {
	Parts []string
}

// New builds a Selector directly from its parts. It does not validate; use
// Parse for untrusted input.
func New(parts ...string) Selector {
	return Selector{Parts: parts}
}

// String serializes the Selector into its canonical dotted representation,
// which is also the key used by the variable pool.
func (s Selector) String() string {
	return strings.Join(s.Parts, ".")
}

// Equal checks for equality between two selectors.
func (s Selector) Equal(other Selector) bool {
	if len(s.Parts) != len(other.Parts) {
		return false
	}
	for i, p := range s.Parts {
		if p != other.Parts[i] {
			return false
		}
	}
	return true
}
