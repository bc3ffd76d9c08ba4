package strspan

import (
	"github.com/rawbytedev/strspan/internal/common"
	"github.com/rawbytedev/strspan/pkg/span"
)

// Scan returns the number of characters before the first terminator in data and
// whether one was found. Without a terminator the whole of data is content.
func Scan[T Char](data []T) (n int, found bool) {
	if i := common.IndexZero(data); i >= 0 {
		return i, true
	}
	return len(data), false
}

// ScanPtr walks from p until the terminator, like strlen. p must point at terminated
// storage; a nil p has length 0.
func ScanPtr[T Char](p *T) int {
	n, _ := common.PtrLen(p, -1)
	return n
}

// ScanPtrN walks at most max characters from p, like strnlen.
func ScanPtrN[T Char](p *T, max int) (n int, found bool) {
	if max < 0 {
		panic(&span.RangeError{Op: "scan bound", Off: max, Count: -1})
	}
	return common.PtrLen(p, max)
}

// EnsureZ views the characters of s before its first terminator. found is false when s
// holds no terminator, in which case all of s is returned. Nothing is written to s.
func EnsureZ[S ~[]T, T Char](s S) (Span[T], bool) {
	n, found := Scan([]T(s))
	return New(s[:n]), found
}

// ConstEnsureZ is the read-only form of EnsureZ.
func ConstEnsureZ[S ~[]T, T Char](s S) (CSpan[T], bool) {
	n, found := Scan([]T(s))
	return NewConst(s[:n]), found
}

// EnsureZPtr views the terminated characters at p, excluding the terminator.
func EnsureZPtr[T Char](p *T) Span[T] {
	return FromPtr(p, ScanPtr(p))
}

// ConstEnsureZPtr is the read-only form of EnsureZPtr.
func ConstEnsureZPtr[T Char](p *T) CSpan[T] {
	return ConstFromPtr(p, ScanPtr(p))
}

// EnsureZPtrN is EnsureZPtr bounded to max characters.
func EnsureZPtrN[T Char](p *T, max int) (Span[T], bool) {
	n, found := ScanPtrN(p, max)
	return FromPtr(p, n), found
}

// ConstEnsureZPtrN is the read-only form of EnsureZPtrN.
func ConstEnsureZPtrN[T Char](p *T, max int) (CSpan[T], bool) {
	n, found := ScanPtrN(p, max)
	return ConstFromPtr(p, n), found
}

// EnsureZSpan scans s and, when a terminator is found, returns the terminated view
// ending at it. The scan is the proof, so this cannot fail the way MakeZ can.
func EnsureZSpan[T Char](s Span[T]) (ZSpan[T], bool) {
	n, found := Scan(s.Slice())
	if !found {
		return ZSpan[T]{}, false
	}
	return ZSpan[T]{raw: s.First(n + 1)}, true
}

// ConstEnsureZSpan is the only way to build a CZSpan from read-only characters.
func ConstEnsureZSpan[T Char](s CSpan[T]) (CZSpan[T], bool) {
	n, found := Scan(s.raw())
	if !found {
		return CZSpan[T]{}, false
	}
	return CZSpan[T]{raw: s.First(n + 1)}, true
}
