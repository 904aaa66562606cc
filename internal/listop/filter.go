package listop

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/flowgrid/internal/segment"
	"github.com/vk/flowgrid/internal/varpool"
)

// operand is a resolved condition value: either a single string (typically
// produced by a template) or a sequence of strings.
type operand struct {
	text  string
	seq   []string
	isSeq bool
}

// resolveOperand evaluates a condition's value expression against the pool.
// Evaluation failures are hard faults; a resolved value of an unusable type
// is a domain error.
func resolveOperand(pool *varpool.Pool, expr hcl.Expression) (operand, error) {
	val, err := pool.ResolveValue(expr)
	if err != nil {
		return operand{}, err
	}
	if val.IsNull() {
		return operand{}, fmt.Errorf("%w: value resolved to null", ErrInvalidFilterValue)
	}

	ty := val.Type()
	if ty.IsTupleType() || ty.IsListType() || ty.IsSetType() {
		var seq []string
		for it := val.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			s, convErr := convert.Convert(elem, cty.String)
			if convErr != nil {
				return operand{}, fmt.Errorf("%w: sequence element is not a string", ErrInvalidFilterValue)
			}
			seq = append(seq, s.AsString())
		}
		return operand{seq: seq, isSeq: true}, nil
	}

	s, convErr := convert.Convert(val, cty.String)
	if convErr != nil {
		return operand{}, fmt.Errorf("%w: %s", ErrInvalidFilterValue, ty.FriendlyName())
	}
	return operand{text: s.AsString()}, nil
}

// applyFilter runs each condition in sequence over the array; condition i+1
// filters the output of condition i, so the set of conditions behaves as a
// conjunction.
func applyFilter(pool *varpool.Pool, spec *FilterSpec, arr segment.Array) (segment.Array, error) {
	for _, cond := range spec.Conditions {
		op := normalizeOperator(cond.Operator)
		opnd, err := resolveOperand(pool, cond.Value)
		if err != nil {
			return nil, err
		}

		switch seg := arr.(type) {
		case *segment.StringArray:
			if opnd.isSeq {
				return nil, fmt.Errorf("%w: expected a string operand for string elements, got a sequence", ErrInvalidFilterValue)
			}
			match, err := stringFilterFunc(op, opnd.text)
			if err != nil {
				return nil, err
			}
			filtered := make([]string, 0, len(seg.Values))
			for _, v := range seg.Values {
				if match(v) {
					filtered = append(filtered, v)
				}
			}
			arr = seg.WithValues(filtered)

		case *segment.NumberArray:
			if opnd.isSeq {
				return nil, fmt.Errorf("%w: expected a numeric operand for number elements, got a sequence", ErrInvalidFilterValue)
			}
			n, parseErr := strconv.ParseFloat(strings.TrimSpace(opnd.text), 64)
			if parseErr != nil {
				return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidFilterValue, opnd.text)
			}
			match, err := numberFilterFunc(op, n)
			if err != nil {
				return nil, err
			}
			filtered := make([]float64, 0, len(seg.Values))
			for _, v := range seg.Values {
				if match(v) {
					filtered = append(filtered, v)
				}
			}
			arr = seg.WithValues(filtered)

		case *segment.FileArray:
			match, err := fileFilterFunc(cond.Key, op, opnd)
			if err != nil {
				return nil, err
			}
			filtered := make([]*segment.File, 0, len(seg.Values))
			for _, f := range seg.Values {
				if match(f) {
					filtered = append(filtered, f)
				}
			}
			arr = seg.WithValues(filtered)

		default:
			// Unreachable for inputs that passed the runner's kind guard.
			return nil, fmt.Errorf("%w: unsupported segment kind %s", ErrInvalidFilterValue, arr.Kind())
		}
	}
	return arr, nil
}

// stringFilterFunc builds the per-element predicate for a string condition
// with an already-resolved operand.
//
// Note the asymmetry of OpIn/OpNotIn on string elements: the resolved operand
// is the membership container, so the check degenerates to "element is a
// substring of the operand".
func stringFilterFunc(op Operator, operand string) (func(string) bool, error) {
	switch op {
	case OpContains:
		return func(x string) bool { return strings.Contains(x, operand) }, nil
	case OpNotContains:
		return func(x string) bool { return !strings.Contains(x, operand) }, nil
	case OpStartWith:
		return func(x string) bool { return strings.HasPrefix(x, operand) }, nil
	case OpEndWith:
		return func(x string) bool { return strings.HasSuffix(x, operand) }, nil
	case OpIs:
		return func(x string) bool { return x == operand }, nil
	case OpIsNot:
		return func(x string) bool { return x != operand }, nil
	case OpIn:
		return func(x string) bool { return strings.Contains(operand, x) }, nil
	case OpNotIn:
		return func(x string) bool { return !strings.Contains(operand, x) }, nil
	case OpEmpty:
		return func(x string) bool { return x == "" }, nil
	case OpNotEmpty:
		return func(x string) bool { return x != "" }, nil
	default:
		return nil, fmt.Errorf("%w: unsupported operator %q for string values", ErrInvalidCondition, op)
	}
}

// numberFilterFunc builds the per-element predicate for a numeric condition.
func numberFilterFunc(op Operator, operand float64) (func(float64) bool, error) {
	switch op {
	case OpEq:
		return func(x float64) bool { return x == operand }, nil
	case OpNe:
		return func(x float64) bool { return x != operand }, nil
	case OpLt:
		return func(x float64) bool { return x < operand }, nil
	case OpLe:
		return func(x float64) bool { return x <= operand }, nil
	case OpGt:
		return func(x float64) bool { return x > operand }, nil
	case OpGe:
		return func(x float64) bool { return x >= operand }, nil
	default:
		return nil, fmt.Errorf("%w: unsupported operator %q for numeric values", ErrInvalidCondition, op)
	}
}

// sequenceFilterFunc builds the per-element predicate for membership in a
// sequence operand. Only in/not in are defined.
func sequenceFilterFunc(op Operator, operand []string) (func(string) bool, error) {
	switch op {
	case OpIn:
		return func(x string) bool { return slices.Contains(operand, x) }, nil
	case OpNotIn:
		return func(x string) bool { return !slices.Contains(operand, x) }, nil
	default:
		return nil, fmt.Errorf("%w: unsupported operator %q for sequence operands", ErrInvalidCondition, op)
	}
}

// fileFilterFunc builds the per-element predicate for a file condition. The
// attribute key chooses the comparison category; a key/operand mismatch is
// an invalid key.
func fileFilterFunc(key string, op Operator, opnd operand) (func(*segment.File) bool, error) {
	switch {
	case isStringFileKey(key) && !opnd.isSeq:
		attr, err := fileStringAttr(key)
		if err != nil {
			return nil, err
		}
		match, err := stringFilterFunc(op, opnd.text)
		if err != nil {
			return nil, err
		}
		return func(f *segment.File) bool { return match(attr(f)) }, nil

	case isEnumFileKey(key) && opnd.isSeq:
		attr, err := fileStringAttr(key)
		if err != nil {
			return nil, err
		}
		match, err := sequenceFilterFunc(op, opnd.seq)
		if err != nil {
			return nil, err
		}
		return func(f *segment.File) bool { return match(attr(f)) }, nil

	case key == "size" && !opnd.isSeq:
		n, parseErr := strconv.ParseFloat(strings.TrimSpace(opnd.text), 64)
		if parseErr != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidFilterValue, opnd.text)
		}
		match, err := numberFilterFunc(op, n)
		if err != nil {
			return nil, err
		}
		return func(f *segment.File) bool { return match(float64(f.Size)) }, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
}
