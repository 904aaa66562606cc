package flow

import (
	"context"
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/flowgrid/internal/ctxlog"
	"github.com/vk/flowgrid/internal/segment"
	"github.com/vk/flowgrid/internal/selector"
	"github.com/vk/flowgrid/internal/varpool"
)

// BuildPool materializes the flow's variable blocks into a variable pool.
// Variable values are literals: they are evaluated without any context, so a
// variable cannot reference another variable.
func BuildPool(ctx context.Context, f *Flow) (*varpool.Pool, error) {
	logger := ctxlog.FromContext(ctx)
	pool := varpool.New()

	for _, v := range f.Variables {
		sel, err := selector.Parse(v.Name)
		if err != nil {
			return nil, fmt.Errorf("variable %q: %w", v.Name, err)
		}

		val, diags := v.Value.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("variable %q: failed to evaluate value: %w", v.Name, diags)
		}

		seg, err := segmentFromValue(val, segment.Kind(v.Kind))
		if err != nil {
			return nil, fmt.Errorf("variable %q: %w", v.Name, err)
		}
		pool.Set(sel, seg)
	}

	logger.Debug("Variable pool built.", "bindings", pool.Len())
	return pool, nil
}

// segmentFromValue converts a literal cty value into a typed segment. When
// kind is empty it is inferred from the value's type; an explicit kind wins
// and the value is converted to it.
func segmentFromValue(val cty.Value, kind segment.Kind) (segment.Segment, error) {
	if val.IsNull() {
		return nil, fmt.Errorf("value cannot be null")
	}
	if kind == "" {
		var err error
		kind, err = inferKind(val)
		if err != nil {
			return nil, err
		}
	}

	switch kind {
	case segment.KindString:
		s, err := convert.Convert(val, cty.String)
		if err != nil {
			return nil, fmt.Errorf("value is not a string: %w", err)
		}
		return &segment.StringValue{Value: s.AsString()}, nil

	case segment.KindNumber:
		n, err := convert.Convert(val, cty.Number)
		if err != nil {
			return nil, fmt.Errorf("value is not a number: %w", err)
		}
		f, _ := n.AsBigFloat().Float64()
		return &segment.NumberValue{Value: f}, nil

	case segment.KindArrayString:
		var values []string
		for it := val.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			s, err := convert.Convert(elem, cty.String)
			if err != nil {
				return nil, fmt.Errorf("array[string] element is not a string: %w", err)
			}
			values = append(values, s.AsString())
		}
		return &segment.StringArray{Values: values}, nil

	case segment.KindArrayNumber:
		var values []float64
		for it := val.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			n, err := convert.Convert(elem, cty.Number)
			if err != nil {
				return nil, fmt.Errorf("array[number] element is not a number: %w", err)
			}
			f, _ := n.AsBigFloat().Float64()
			values = append(values, f)
		}
		return &segment.NumberArray{Values: values}, nil

	case segment.KindArrayFile:
		var values []*segment.File
		for it := val.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			f, err := fileFromValue(elem)
			if err != nil {
				return nil, err
			}
			values = append(values, f)
		}
		return &segment.FileArray{Values: values}, nil

	case segment.KindArrayAny:
		var values []cty.Value
		for it := val.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			values = append(values, elem)
		}
		return &segment.AnyArray{Values: values}, nil

	default:
		return nil, fmt.Errorf("unknown variable kind %q", kind)
	}
}

// inferKind derives the segment kind from a literal's cty type.
func inferKind(val cty.Value) (segment.Kind, error) {
	ty := val.Type()
	switch {
	case ty == cty.String:
		return segment.KindString, nil
	case ty == cty.Number:
		return segment.KindNumber, nil
	case ty.IsTupleType() || ty.IsListType():
		if val.LengthInt() == 0 {
			return segment.KindArrayAny, nil
		}
		it := val.ElementIterator()
		it.Next()
		_, first := it.Element()
		switch {
		case first.Type() == cty.String:
			return segment.KindArrayString, nil
		case first.Type() == cty.Number:
			return segment.KindArrayNumber, nil
		case first.Type().IsObjectType():
			return segment.KindArrayFile, nil
		default:
			return segment.KindArrayAny, nil
		}
	default:
		return "", fmt.Errorf("cannot infer variable kind from %s", ty.FriendlyName())
	}
}

// fileFromValue decodes a file descriptor from an HCL object literal. All
// attributes are optional.
func fileFromValue(val cty.Value) (*segment.File, error) {
	if !val.Type().IsObjectType() {
		return nil, fmt.Errorf("array[file] element must be an object, got %s", val.Type().FriendlyName())
	}

	f := &segment.File{}
	strAttr := func(name string) (string, error) {
		if !val.Type().HasAttribute(name) {
			return "", nil
		}
		attr := val.GetAttr(name)
		if attr.IsNull() {
			return "", nil
		}
		s, err := convert.Convert(attr, cty.String)
		if err != nil {
			return "", fmt.Errorf("file attribute %q is not a string: %w", name, err)
		}
		return s.AsString(), nil
	}

	var err error
	if f.Filename, err = strAttr("name"); err != nil {
		return nil, err
	}
	if f.Type, err = strAttr("type"); err != nil {
		return nil, err
	}
	if f.Extension, err = strAttr("extension"); err != nil {
		return nil, err
	}
	if f.MimeType, err = strAttr("mime_type"); err != nil {
		return nil, err
	}
	if f.RemoteURL, err = strAttr("url"); err != nil {
		return nil, err
	}
	method, err := strAttr("transfer_method")
	if err != nil {
		return nil, err
	}
	f.TransferMethod = segment.TransferMethod(method)

	if val.Type().HasAttribute("size") {
		attr := val.GetAttr("size")
		if !attr.IsNull() {
			n, err := convert.Convert(attr, cty.Number)
			if err != nil {
				return nil, fmt.Errorf("file attribute \"size\" is not a number: %w", err)
			}
			size, _ := n.AsBigFloat().Int64()
			f.Size = size
		}
	}

	return f, nil
}
