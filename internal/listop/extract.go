package listop

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vk/flowgrid/internal/segment"
	"github.com/vk/flowgrid/internal/varpool"
)

// applyExtract resolves the serial template to a 1-based index and produces
// a one-element array holding the selected element, preserving the element
// kind. A serial outside [1, length] is a domain error; a serial that does
// not resolve to an integer at all is a hard fault.
func applyExtract(pool *varpool.Pool, spec *ExtractSpec, arr segment.Array) (segment.Array, error) {
	text, err := pool.ResolveString(spec.Serial)
	if err != nil {
		return nil, err
	}
	serial, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return nil, fmt.Errorf("extract serial %q is not an integer: %w", text, err)
	}

	if serial < 1 || serial > arr.Len() {
		return nil, fmt.Errorf("%w: serial must be between 1 and %d, got %d", ErrSerialOutOfRange, arr.Len(), serial)
	}
	i := serial - 1

	switch seg := arr.(type) {
	case *segment.StringArray:
		return seg.WithValues([]string{seg.Values[i]}), nil
	case *segment.NumberArray:
		return seg.WithValues([]float64{seg.Values[i]}), nil
	case *segment.FileArray:
		return seg.WithValues([]*segment.File{seg.Values[i]}), nil
	default:
		// Unreachable for inputs that passed the runner's kind guard.
		return nil, fmt.Errorf("%w: unsupported segment kind %s", ErrInvalidCondition, arr.Kind())
	}
}
