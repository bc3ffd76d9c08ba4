package strspan

import (
	"bytes"
	"strings"

	"github.com/rawbytedev/strspan/internal/common"
)

// Equal reports whether a and b hold the same characters. Where the characters live
// does not matter.
func Equal[T Char](a, b CSpan[T]) bool {
	x, y := a.raw(), b.raw()
	if len(x) != len(y) {
		return false
	}
	if bx, ok := asBytes(x); ok {
		by, _ := asBytes(y)
		return bytes.Equal(bx, by)
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

// Compare orders a and b lexicographically by element and returns -1, 0 or +1.
// A strict prefix orders before its extensions.
func Compare[T Char](a, b CSpan[T]) int {
	x, y := a.raw(), b.raw()
	if bx, ok := asBytes(x); ok {
		by, _ := asBytes(y)
		return bytes.Compare(bx, by)
	}
	for i := 0; i < min(len(x), len(y)); i++ {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	switch {
	case len(x) < len(y):
		return -1
	case len(x) > len(y):
		return 1
	}
	return 0
}

// Less reports whether a orders before b.
func Less[T Char](a, b CSpan[T]) bool { return Compare(a, b) < 0 }

// EqualString compares a against s without copying s.
func EqualString(a CSpan[byte], s string) bool { return common.BytesString(a.raw()) == s }

// CompareString orders a against s without copying s.
func CompareString(a CSpan[byte], s string) int {
	return strings.Compare(common.BytesString(a.raw()), s)
}
