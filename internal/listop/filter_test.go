package listop

import (
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/flowgrid/internal/segment"
	"github.com/vk/flowgrid/internal/selector"
	"github.com/vk/flowgrid/internal/varpool"
)

func parseExpr(t *testing.T, src string) hcl.Expression {
	t.Helper()
	expr, diags := hclsyntax.ParseExpression([]byte(src), "test.hcl", hcl.InitialPos)
	require.False(t, diags.HasErrors(), "parse diagnostics: %s", diags)
	return expr
}

func cond(t *testing.T, key, operator, valueSrc string) *Condition {
	t.Helper()
	return &Condition{Key: key, Operator: operator, Value: parseExpr(t, valueSrc)}
}

func filterSpec(conds ...*Condition) *FilterSpec {
	return &FilterSpec{Conditions: conds}
}

func TestApplyFilter_StringOperators(t *testing.T) {
	pool := varpool.New()
	input := []string{"apple", "banana", "cherry", ""}

	testCases := []struct {
		name     string
		operator string
		value    string
		want     []string
	}{
		{"contains", "contains", `"an"`, []string{"banana"}},
		{"not contains", "not contains", `"an"`, []string{"apple", "cherry", ""}},
		{"start with", "start with", `"ch"`, []string{"cherry"}},
		{"end with", "end with", `"e"`, []string{"apple"}},
		{"is", "is", `"banana"`, []string{"banana"}},
		{"is not", "is not", `"banana"`, []string{"apple", "cherry", ""}},
		// Membership against a string operand degenerates to a substring
		// check on the element.
		{"in", "in", `"apple pie"`, []string{"apple", ""}},
		{"not in", "not in", `"apple pie"`, []string{"banana", "cherry"}},
		{"empty", "empty", `""`, []string{""}},
		{"not empty", "not empty", `""`, []string{"apple", "banana", "cherry"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			arr := &segment.StringArray{Values: input}
			out, err := applyFilter(pool, filterSpec(cond(t, "", tc.operator, tc.value)), arr)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out.(*segment.StringArray).Values)
			// The input segment must be untouched.
			assert.Equal(t, []string{"apple", "banana", "cherry", ""}, arr.Values)
		})
	}
}

func TestApplyFilter_NumberOperators(t *testing.T) {
	pool := varpool.New()
	input := []float64{3, 1, 4, 1, 5}

	testCases := []struct {
		name     string
		operator string
		value    string
		want     []float64
	}{
		{"eq", "=", `"1"`, []float64{1, 1}},
		{"ne", "!=", `"1"`, []float64{3, 4, 5}},
		{"lt", "<", `"4"`, []float64{3, 1, 1}},
		{"le", "<=", `"4"`, []float64{3, 1, 4, 1}},
		{"gt", ">", `"3"`, []float64{4, 5}},
		{"ge", ">=", `"3"`, []float64{3, 4, 5}},
		{"unicode ne alias", "≠", `"1"`, []float64{3, 4, 5}},
		{"unicode le alias", "≤", `"4"`, []float64{3, 1, 4, 1}},
		{"unicode ge alias", "≥", `"3"`, []float64{3, 4, 5}},
		{"numeric literal operand", ">", `3`, []float64{4, 5}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			arr := &segment.NumberArray{Values: input}
			out, err := applyFilter(pool, filterSpec(cond(t, "", tc.operator, tc.value)), arr)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out.(*segment.NumberArray).Values)
		})
	}
}

func TestApplyFilter_TemplatedOperand(t *testing.T) {
	pool := varpool.New()
	pool.Set(selector.New("needle"), &segment.StringValue{Value: "an"})

	arr := &segment.StringArray{Values: []string{"apple", "banana", "cherry"}}
	out, err := applyFilter(pool, filterSpec(cond(t, "", "contains", `"${var.needle}"`)), arr)
	require.NoError(t, err)
	assert.Equal(t, []string{"banana"}, out.(*segment.StringArray).Values)
}

func TestApplyFilter_ConditionsNarrowCumulatively(t *testing.T) {
	pool := varpool.New()
	arr := &segment.StringArray{Values: []string{"apple", "apricot", "banana"}}

	spec := filterSpec(
		cond(t, "", "start with", `"ap"`),
		cond(t, "", "end with", `"e"`),
	)
	out, err := applyFilter(pool, spec, arr)
	require.NoError(t, err)
	assert.Equal(t, []string{"apple"}, out.(*segment.StringArray).Values)
}

func TestApplyFilter_Idempotent(t *testing.T) {
	pool := varpool.New()
	spec := filterSpec(cond(t, "", "contains", `"an"`))

	once, err := applyFilter(pool, spec, &segment.StringArray{Values: []string{"apple", "banana", "cherry"}})
	require.NoError(t, err)
	twice, err := applyFilter(pool, spec, once)
	require.NoError(t, err)

	assert.Equal(t, once.(*segment.StringArray).Values, twice.(*segment.StringArray).Values)
}

func TestApplyFilter_Files(t *testing.T) {
	pool := varpool.New()
	files := []*segment.File{
		{Filename: "a.png", Type: "image", TransferMethod: segment.TransferRemoteURL, Size: 10},
		{Filename: "b.pdf", Type: "document", TransferMethod: segment.TransferLocalFile, Size: 20},
		{Filename: "c.png", Type: "image", TransferMethod: segment.TransferLocalFile, Size: 5},
	}

	t.Run("numeric size key", func(t *testing.T) {
		arr := &segment.FileArray{Values: files}
		out, err := applyFilter(pool, filterSpec(cond(t, "size", ">", `"8"`)), arr)
		require.NoError(t, err)
		got := out.(*segment.FileArray).Values
		require.Len(t, got, 2)
		// Original relative order is preserved.
		assert.Equal(t, "a.png", got[0].Filename)
		assert.Equal(t, "b.pdf", got[1].Filename)
	})

	t.Run("string name key", func(t *testing.T) {
		arr := &segment.FileArray{Values: files}
		out, err := applyFilter(pool, filterSpec(cond(t, "name", "end with", `".png"`)), arr)
		require.NoError(t, err)
		require.Len(t, out.(*segment.FileArray).Values, 2)
	})

	t.Run("enum key with sequence operand", func(t *testing.T) {
		arr := &segment.FileArray{Values: files}
		out, err := applyFilter(pool, filterSpec(cond(t, "type", "in", `["image"]`)), arr)
		require.NoError(t, err)
		require.Len(t, out.(*segment.FileArray).Values, 2)

		out, err = applyFilter(pool, filterSpec(cond(t, "transfer_method", "not in", `["remote_url"]`)), arr)
		require.NoError(t, err)
		require.Len(t, out.(*segment.FileArray).Values, 2)
	})
}

func TestApplyFilter_DomainErrors(t *testing.T) {
	pool := varpool.New()

	testCases := []struct {
		name    string
		arr     segment.Array
		cond    *Condition
		wantErr error
	}{
		{
			name:    "unknown string operator",
			arr:     &segment.StringArray{Values: []string{"a"}},
			cond:    cond(t, "", "between", `"x"`),
			wantErr: ErrInvalidCondition,
		},
		{
			name:    "unknown numeric operator",
			arr:     &segment.NumberArray{Values: []float64{1}},
			cond:    cond(t, "", "contains", `"1"`),
			wantErr: ErrInvalidCondition,
		},
		{
			name:    "sequence operand for string elements",
			arr:     &segment.StringArray{Values: []string{"a"}},
			cond:    cond(t, "", "in", `["a", "b"]`),
			wantErr: ErrInvalidFilterValue,
		},
		{
			name:    "non-numeric operand for number elements",
			arr:     &segment.NumberArray{Values: []float64{1}},
			cond:    cond(t, "", "=", `"many"`),
			wantErr: ErrInvalidFilterValue,
		},
		{
			name:    "unknown file key",
			arr:     &segment.FileArray{Values: []*segment.File{{}}},
			cond:    cond(t, "owner", "is", `"me"`),
			wantErr: ErrInvalidKey,
		},
		{
			name:    "enum key with string operand",
			arr:     &segment.FileArray{Values: []*segment.File{{}}},
			cond:    cond(t, "type", "in", `"image"`),
			wantErr: ErrInvalidKey,
		},
		{
			name:    "string key with sequence operand",
			arr:     &segment.FileArray{Values: []*segment.File{{}}},
			cond:    cond(t, "name", "is", `["a.png"]`),
			wantErr: ErrInvalidKey,
		},
		{
			name:    "enum key with unsupported operator",
			arr:     &segment.FileArray{Values: []*segment.File{{}}},
			cond:    cond(t, "type", "is", `["image"]`),
			wantErr: ErrInvalidCondition,
		},
		{
			name:    "size key with non-numeric operand",
			arr:     &segment.FileArray{Values: []*segment.File{{}}},
			cond:    cond(t, "size", ">", `"big"`),
			wantErr: ErrInvalidFilterValue,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := applyFilter(pool, filterSpec(tc.cond), tc.arr)
			require.ErrorIs(t, err, tc.wantErr)
			assert.True(t, isDomainError(err))
		})
	}
}

func TestApplyFilter_UnresolvableOperandIsHardFault(t *testing.T) {
	pool := varpool.New()
	arr := &segment.StringArray{Values: []string{"a"}}

	_, err := applyFilter(pool, filterSpec(cond(t, "", "is", `"${var.missing}"`)), arr)
	require.Error(t, err)
	assert.False(t, isDomainError(err))
}
