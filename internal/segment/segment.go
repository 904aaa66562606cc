// Package segment models the typed value containers held by a variable
// pool. A segment pairs a value with a declared kind; array segments hold an
// ordered sequence of homogeneous elements.
//
// Segments are read-only once constructed. Every transformation produces a
// fresh segment via the WithValues constructors; the backing slices are never
// mutated in place, so segments can be shared across concurrent evaluations
// without coordination.
package segment

import (
	"github.com/zclconf/go-cty/cty"
)

// Kind identifies the declared type of a segment.
type Kind string

const (
	KindString      Kind = "string"
	KindNumber      Kind = "number"
	KindFile        Kind = "file"
	KindArrayString Kind = "array[string]"
	KindArrayNumber Kind = "array[number]"
	KindArrayFile   Kind = "array[file]"
	KindArrayAny    Kind = "array[any]"
)

// Segment is a typed value container.
type Segment interface {
	// Kind reports the declared type of the contained value.
	Kind() Kind
	// ToCty converts the contained value for use in an HCL evaluation context.
	ToCty() cty.Value
}

// Array is a segment holding an ordered sequence of elements.
type Array interface {
	Segment
	// Len reports the number of contained elements.
	Len() int
	// Records returns the contained elements as opaque values, used for
	// result capture. File elements are rendered as attribute maps.
	Records() []any
}

// StringValue is a scalar string segment.
type StringValue struct {
	Value string
}

func (s *StringValue) Kind() Kind       { return KindString }
func (s *StringValue) ToCty() cty.Value { return cty.StringVal(s.Value) }

// NumberValue is a scalar numeric segment.
type NumberValue struct {
	Value float64
}

func (s *NumberValue) Kind() Kind       { return KindNumber }
func (s *NumberValue) ToCty() cty.Value { return cty.NumberFloatVal(s.Value) }

// StringArray is an array segment of strings.
type StringArray struct {
	Values []string
}

func (s *StringArray) Kind() Kind { return KindArrayString }
func (s *StringArray) Len() int   { return len(s.Values) }

// WithValues returns a new segment of the same kind holding the given values.
func (s *StringArray) WithValues(values []string) *StringArray {
	return &StringArray{Values: values}
}

func (s *StringArray) Records() []any {
	records := make([]any, len(s.Values))
	for i, v := range s.Values {
		records[i] = v
	}
	return records
}

func (s *StringArray) ToCty() cty.Value {
	if len(s.Values) == 0 {
		return cty.ListValEmpty(cty.String)
	}
	vals := make([]cty.Value, len(s.Values))
	for i, v := range s.Values {
		vals[i] = cty.StringVal(v)
	}
	return cty.ListVal(vals)
}

// NumberArray is an array segment of numbers.
type NumberArray struct {
	Values []float64
}

func (s *NumberArray) Kind() Kind { return KindArrayNumber }
func (s *NumberArray) Len() int   { return len(s.Values) }

// WithValues returns a new segment of the same kind holding the given values.
func (s *NumberArray) WithValues(values []float64) *NumberArray {
	return &NumberArray{Values: values}
}

func (s *NumberArray) Records() []any {
	records := make([]any, len(s.Values))
	for i, v := range s.Values {
		records[i] = v
	}
	return records
}

func (s *NumberArray) ToCty() cty.Value {
	if len(s.Values) == 0 {
		return cty.ListValEmpty(cty.Number)
	}
	vals := make([]cty.Value, len(s.Values))
	for i, v := range s.Values {
		vals[i] = cty.NumberFloatVal(v)
	}
	return cty.ListVal(vals)
}

// FileArray is an array segment of file descriptors.
type FileArray struct {
	Values []*File
}

func (s *FileArray) Kind() Kind { return KindArrayFile }
func (s *FileArray) Len() int   { return len(s.Values) }

// WithValues returns a new segment of the same kind holding the given values.
func (s *FileArray) WithValues(values []*File) *FileArray {
	return &FileArray{Values: values}
}

func (s *FileArray) Records() []any {
	records := make([]any, len(s.Values))
	for i, f := range s.Values {
		records[i] = f.ToMap()
	}
	return records
}

func (s *FileArray) ToCty() cty.Value {
	if len(s.Values) == 0 {
		return cty.ListValEmpty(fileCtyType)
	}
	vals := make([]cty.Value, len(s.Values))
	for i, f := range s.Values {
		vals[i] = f.ToCty()
	}
	return cty.ListVal(vals)
}

// AnyArray is an array segment with no declared element kind. It is produced
// when an operation short-circuits on input that carries no elements to
// inspect.
type AnyArray struct {
	Values []cty.Value
}

func (s *AnyArray) Kind() Kind { return KindArrayAny }
func (s *AnyArray) Len() int   { return len(s.Values) }

func (s *AnyArray) Records() []any {
	records := make([]any, len(s.Values))
	for i, v := range s.Values {
		records[i] = v
	}
	return records
}

func (s *AnyArray) ToCty() cty.Value {
	if len(s.Values) == 0 {
		return cty.EmptyTupleVal
	}
	return cty.TupleVal(s.Values)
}
