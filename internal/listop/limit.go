package listop

import (
	"slices"

	"github.com/vk/flowgrid/internal/segment"
)

// applyLimit truncates the array to its first size elements. A size of at
// least the array length is a no-op; limit never fails.
func applyLimit(spec *LimitSpec, arr segment.Array) segment.Array {
	n := spec.Size
	if n < 0 {
		n = 0
	}
	if n > arr.Len() {
		n = arr.Len()
	}

	switch seg := arr.(type) {
	case *segment.StringArray:
		return seg.WithValues(slices.Clone(seg.Values[:n]))
	case *segment.NumberArray:
		return seg.WithValues(slices.Clone(seg.Values[:n]))
	case *segment.FileArray:
		return seg.WithValues(slices.Clone(seg.Values[:n]))
	default:
		return arr
	}
}
