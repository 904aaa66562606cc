package listop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/flowgrid/internal/segment"
)

func TestApplyOrder_Strings(t *testing.T) {
	arr := &segment.StringArray{Values: []string{"cherry", "apple", "banana"}}

	asc, err := applyOrder(&OrderSpec{Direction: "asc"}, arr)
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "banana", "cherry"}, asc.(*segment.StringArray).Values)

	desc, err := applyOrder(&OrderSpec{Direction: "desc"}, arr)
	require.NoError(t, err)
	assert.Equal(t, []string{"cherry", "banana", "apple"}, desc.(*segment.StringArray).Values)

	// The input segment must be untouched.
	assert.Equal(t, []string{"cherry", "apple", "banana"}, arr.Values)
}

func TestApplyOrder_Numbers(t *testing.T) {
	arr := &segment.NumberArray{Values: []float64{3, 1, 4, 1, 5}}

	asc, err := applyOrder(&OrderSpec{Direction: "asc"}, arr)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 3, 4, 5}, asc.(*segment.NumberArray).Values)
}

func TestApplyOrder_FilesBySize(t *testing.T) {
	arr := &segment.FileArray{Values: []*segment.File{
		{Filename: "mid.bin", Size: 10},
		{Filename: "big.bin", Size: 20},
		{Filename: "small.bin", Size: 5},
	}}

	out, err := applyOrder(&OrderSpec{Direction: "desc", Key: "size"}, arr)
	require.NoError(t, err)

	got := out.(*segment.FileArray).Values
	require.Len(t, got, 3)
	assert.Equal(t, "big.bin", got[0].Filename)
	assert.Equal(t, "mid.bin", got[1].Filename)
	assert.Equal(t, "small.bin", got[2].Filename)
}

func TestApplyOrder_StableOnEqualKeys(t *testing.T) {
	arr := &segment.FileArray{Values: []*segment.File{
		{Filename: "first.png", Type: "image", Size: 7},
		{Filename: "second.png", Type: "image", Size: 7},
		{Filename: "third.pdf", Type: "document", Size: 7},
	}}

	out, err := applyOrder(&OrderSpec{Direction: "asc", Key: "size"}, arr)
	require.NoError(t, err)

	got := out.(*segment.FileArray).Values
	assert.Equal(t, "first.png", got[0].Filename)
	assert.Equal(t, "second.png", got[1].Filename)
	assert.Equal(t, "third.pdf", got[2].Filename)
}

func TestApplyOrder_FilesByEnumKey(t *testing.T) {
	arr := &segment.FileArray{Values: []*segment.File{
		{Filename: "b.png", Type: "image"},
		{Filename: "a.pdf", Type: "document"},
	}}

	out, err := applyOrder(&OrderSpec{Direction: "asc", Key: "type"}, arr)
	require.NoError(t, err)
	assert.Equal(t, "a.pdf", out.(*segment.FileArray).Values[0].Filename)
}

func TestApplyOrder_Errors(t *testing.T) {
	t.Run("invalid order key", func(t *testing.T) {
		arr := &segment.FileArray{Values: []*segment.File{{}}}
		_, err := applyOrder(&OrderSpec{Direction: "asc", Key: "owner"}, arr)
		require.ErrorIs(t, err, ErrInvalidKey)
	})

	t.Run("invalid direction", func(t *testing.T) {
		arr := &segment.NumberArray{Values: []float64{1}}
		_, err := applyOrder(&OrderSpec{Direction: "sideways"}, arr)
		require.ErrorIs(t, err, ErrInvalidCondition)
	})
}
