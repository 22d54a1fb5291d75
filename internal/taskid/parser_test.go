// internal/taskid/parser_test.go
package taskid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name       string
		raw        string
		expectErr  string
		expectedID *ID
	}{
		{
			name:       "single segment",
			raw:        "A",
			expectedID: &ID{Segments: []Segment{NewSegment("A")}},
		},
		{
			name:       "dotted path",
			raw:        "build.compile",
			expectedID: &ID{Segments: []Segment{NewSegment("build"), NewSegment("compile")}},
		},
		{
			name:       "numeric id",
			raw:        "42",
			expectedID: &ID{Segments: []Segment{NewSegment("42")}},
		},
		{
			name:       "indexed segment",
			raw:        "deploy.region[2]",
			expectedID: &ID{Segments: []Segment{NewSegment("deploy"), NewSegmentWithIndex("region", 2)}},
		},
		{name: "empty", raw: "", expectErr: "cannot be empty"},
		{name: "empty segment", raw: "a..b", expectErr: "empty segment"},
		{name: "trailing dot", raw: "a.", expectErr: "empty segment"},
		{name: "space", raw: "a b", expectErr: "invalid segment"},
		{name: "unclosed index", raw: "a[1", expectErr: "invalid segment"},
		{name: "separator only", raw: "-", expectErr: "invalid segment name"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := Parse(tc.raw)
			if tc.expectErr != "" {
				require.Error(t, err)
				assert.ErrorContains(t, err, tc.expectErr)
				_, canonErr := Canonical(tc.raw)
				assert.Error(t, canonErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedID, id)
			canonical, err := Canonical(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.raw, canonical)
		})
	}
}

func TestID_RoundTrip(t *testing.T) {
	for _, raw := range []string{"a", "a.b.c", "deploy.region[0].zone[15]", "task_1-x"} {
		t.Run(raw, func(t *testing.T) {
			id, err := Parse(raw)
			require.NoError(t, err)
			assert.Equal(t, raw, id.String())

			again, err := Parse(id.String())
			require.NoError(t, err)
			assert.Equal(t, id, again)
		})
	}
	assert.Equal(t, "", (*ID)(nil).String())
}

func TestCanonical_NormalizesIndex(t *testing.T) {
	got, err := Canonical("deploy.shard[007]")
	require.NoError(t, err)
	assert.Equal(t, "deploy.shard[7]", got)
}
