// internal/taskid/compare_test.go
package taskid

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	testCases := []struct {
		a, b string
		want int
	}{
		{"A", "B", -1},
		{"B", "A", 1},
		{"A", "A", 0},
		{"9", "10", -1},
		{"task2", "task10", -1},
		{"task10", "task2", 1},
		{"a", "ab", -1},
		{"01", "1", -1},
		{"1", "01", 1},
		{"Task1", "task1", -1},
		{"", "a", -1},
	}

	for _, tc := range testCases {
		t.Run(tc.a+"_vs_"+tc.b, func(t *testing.T) {
			assert.Equal(t, tc.want, Compare(tc.a, tc.b))
		})
	}
}

func TestCompare_SortsNaturally(t *testing.T) {
	ids := []string{"task10", "b", "task2", "10", "a", "task1", "2"}
	slices.SortFunc(ids, Compare)

	want := []string{"2", "10", "a", "b", "task1", "task2", "task10"}
	if diff := cmp.Diff(want, ids); diff != "" {
		t.Errorf("unexpected order (-want +got):\n%s", diff)
	}
}
