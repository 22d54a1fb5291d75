// internal/taskid/compare.go
package taskid

import (
	"cmp"
	"strings"
)

// Compare orders two identifiers naturally: runs of digits compare by their
// numeric value and everything else compares bytewise, so "task2" sorts
// before "task10" and "9" before "10". Identifiers that are equal under that
// rule (e.g. "01" and "1") fall back to a plain string comparison, which keeps
// the order total.
func Compare(a, b string) int {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if isDigit(a[i]) && isDigit(b[j]) {
			si, sj := i, j
			for i < len(a) && isDigit(a[i]) {
				i++
			}
			for j < len(b) && isDigit(b[j]) {
				j++
			}
			if c := compareNumeric(a[si:i], b[sj:j]); c != 0 {
				return c
			}
			continue
		}
		if c := cmp.Compare(a[i], b[j]); c != 0 {
			return c
		}
		i++
		j++
	}

	switch {
	case i < len(a):
		return 1
	case j < len(b):
		return -1
	}
	return strings.Compare(a, b)
}

func compareNumeric(x, y string) int {
	x = strings.TrimLeft(x, "0")
	y = strings.TrimLeft(y, "0")
	if len(x) != len(y) {
		return cmp.Compare(len(x), len(y))
	}
	return strings.Compare(x, y)
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
