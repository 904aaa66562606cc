// Package varpool provides an ephemeral, thread-safe, in-memory variable
// pool for one flow evaluation session.
//
// The pool maps selector paths to typed segments. It is populated once from
// the flow's variable blocks (or programmatically in tests) and is treated as
// a read-mostly snapshot while nodes evaluate: node evaluations never write
// back into the pool, so concurrent evaluations over the same pool need no
// coordination beyond sync.Map's own guarantees.
package varpool

import (
	"sync"

	"github.com/vk/flowgrid/internal/segment"
	"github.com/vk/flowgrid/internal/selector"
)

// Pool is an in-memory variable pool keyed by canonical selector strings.
type Pool struct {
	segments sync.Map // Key: selector string, Value: segment.Segment
}

// New creates a new, empty variable pool.
func New() *Pool {
	return &Pool{}
}

// Set binds a segment to the given selector, replacing any previous binding.
func (p *Pool) Set(sel selector.Selector, seg segment.Segment) {
	p.segments.Store(sel.String(), seg)
}

// Get resolves a selector against the pool. The second return value reports
// whether a binding exists.
func (p *Pool) Get(sel selector.Selector) (segment.Segment, bool) {
	v, ok := p.segments.Load(sel.String())
	if !ok {
		return nil, false
	}
	return v.(segment.Segment), true
}

// Len reports the number of bindings in the pool.
func (p *Pool) Len() int {
	n := 0
	p.segments.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
