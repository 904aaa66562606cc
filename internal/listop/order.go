package listop

import (
	"fmt"
	"slices"
	"sort"

	"github.com/vk/flowgrid/internal/segment"
)

// Sort directions.
const (
	DirectionAsc  = "asc"
	DirectionDesc = "desc"
)

// applyOrder sorts the array by natural value ordering, or for files by the
// configured attribute key. The sort is stable: elements that compare equal
// keep their relative pre-sort order.
func applyOrder(spec *OrderSpec, arr segment.Array) (segment.Array, error) {
	var desc bool
	switch spec.Direction {
	case DirectionAsc:
	case DirectionDesc:
		desc = true
	default:
		return nil, fmt.Errorf("%w: invalid order direction %q", ErrInvalidCondition, spec.Direction)
	}

	switch seg := arr.(type) {
	case *segment.StringArray:
		values := slices.Clone(seg.Values)
		sort.SliceStable(values, func(i, j int) bool {
			if desc {
				return values[i] > values[j]
			}
			return values[i] < values[j]
		})
		return seg.WithValues(values), nil

	case *segment.NumberArray:
		values := slices.Clone(seg.Values)
		sort.SliceStable(values, func(i, j int) bool {
			if desc {
				return values[i] > values[j]
			}
			return values[i] < values[j]
		})
		return seg.WithValues(values), nil

	case *segment.FileArray:
		return orderFiles(spec, seg, desc)

	default:
		// Unreachable for inputs that passed the runner's kind guard.
		return nil, fmt.Errorf("%w: unsupported segment kind %s", ErrInvalidCondition, arr.Kind())
	}
}

// orderFiles sorts a file array by an extracted attribute. Every string
// attribute key may order files; size orders numerically.
func orderFiles(spec *OrderSpec, seg *segment.FileArray, desc bool) (segment.Array, error) {
	values := slices.Clone(seg.Values)

	switch {
	case isStringFileKey(spec.Key) || isEnumFileKey(spec.Key):
		attr, err := fileStringAttr(spec.Key)
		if err != nil {
			return nil, err
		}
		sort.SliceStable(values, func(i, j int) bool {
			if desc {
				return attr(values[i]) > attr(values[j])
			}
			return attr(values[i]) < attr(values[j])
		})

	case spec.Key == "size":
		attr, err := fileNumberAttr(spec.Key)
		if err != nil {
			return nil, err
		}
		sort.SliceStable(values, func(i, j int) bool {
			if desc {
				return attr(values[i]) > attr(values[j])
			}
			return attr(values[i]) < attr(values[j])
		})

	default:
		return nil, fmt.Errorf("%w: invalid order key %q", ErrInvalidKey, spec.Key)
	}

	return seg.WithValues(values), nil
}
