package segment

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestStringArray_WithValuesDoesNotAlias(t *testing.T) {
	original := &StringArray{Values: []string{"a", "b", "c"}}
	derived := original.WithValues([]string{"b"})

	assert.Equal(t, KindArrayString, derived.Kind())
	assert.Equal(t, []string{"b"}, derived.Values)
	// The source segment must be untouched.
	assert.Equal(t, []string{"a", "b", "c"}, original.Values)
}

func TestToCty_EmptyArrays(t *testing.T) {
	testCases := []struct {
		name string
		seg  Array
	}{
		{"strings", &StringArray{}},
		{"numbers", &NumberArray{}},
		{"files", &FileArray{}},
		{"any", &AnyArray{}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			val := tc.seg.ToCty()
			require.True(t, val.CanIterateElements())
			assert.Equal(t, 0, val.LengthInt())
		})
	}
}

func TestNumberArray_ToCty(t *testing.T) {
	seg := &NumberArray{Values: []float64{3, 1, 4}}
	val := seg.ToCty()
	require.Equal(t, 3, val.LengthInt())

	first := val.Index(cty.NumberIntVal(0))
	f, _ := first.AsBigFloat().Float64()
	assert.Equal(t, 3.0, f)
}

func TestFile_ToMap(t *testing.T) {
	f := &File{
		Filename:       "report.pdf",
		Extension:      ".pdf",
		MimeType:       "application/pdf",
		Type:           "document",
		TransferMethod: TransferLocalFile,
		RemoteURL:      "",
		Size:           1024,
	}

	want := map[string]any{
		"name":            "report.pdf",
		"type":            "document",
		"extension":       ".pdf",
		"mime_type":       "application/pdf",
		"transfer_method": "local_file",
		"url":             "",
		"size":            int64(1024),
	}
	if diff := cmp.Diff(want, f.ToMap()); diff != "" {
		t.Errorf("ToMap() mismatch (-want +got):\n%s", diff)
	}
}

func TestFileArray_ToCtyIsHomogeneous(t *testing.T) {
	seg := &FileArray{Values: []*File{
		{Filename: "a.png", Type: "image", TransferMethod: TransferRemoteURL, RemoteURL: "https://example.com/a.png", Size: 10},
		{Filename: "b.pdf", Type: "document", TransferMethod: TransferLocalFile, Size: 20},
	}}
	val := seg.ToCty()
	require.Equal(t, 2, val.LengthInt())

	first := val.Index(cty.NumberIntVal(0))
	assert.Equal(t, "a.png", first.GetAttr("name").AsString())
	assert.Equal(t, "remote_url", first.GetAttr("transfer_method").AsString())
}

func TestFileArray_Records(t *testing.T) {
	seg := &FileArray{Values: []*File{{Filename: "a.png", Size: 10}}}
	records := seg.Records()
	require.Len(t, records, 1)

	m, ok := records[0].(map[string]any)
	require.True(t, ok, "file records should be attribute maps")
	assert.Equal(t, "a.png", m["name"])
}
