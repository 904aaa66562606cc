package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name        string
		raw         string
		expectErr   bool
		expectedSel Selector
	}{
		{
			name:        "single part",
			raw:         "files",
			expectErr:   false,
			expectedSel: New("files"),
		},
		{
			name:        "multi-level path",
			raw:         "upload.files",
			expectErr:   false,
			expectedSel: New("upload", "files"),
		},
		{
			name:        "underscores and digits",
			raw:         "node_1.output_2",
			expectErr:   false,
			expectedSel: New("node_1", "output_2"),
		},
		{
			name:      "error - empty path part",
			raw:       "a..b",
			expectErr: true,
		},
		{
			name:      "error - empty string",
			raw:       "",
			expectErr: true,
		},
		{
			name:      "error - invalid characters",
			raw:       "a.b[0]",
			expectErr: true,
		},
		{
			name:      "error - just hyphen",
			raw:       "-",
			expectErr: true,
		},
		{
			name:      "error - trailing dot",
			raw:       "a.b.",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sel, err := Parse(tc.raw)
			if tc.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.expectedSel.Equal(sel), "parsed selector mismatch: got %v", sel)
		})
	}
}

func TestString_RoundTrip(t *testing.T) {
	for _, raw := range []string{"files", "upload.files", "a.b.c"} {
		sel, err := Parse(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, sel.String())
	}
}
