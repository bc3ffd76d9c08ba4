// Package span provides bounds-checked, non-owning views over contiguous elements.
//
// A Span grants read and write access to its elements, a View grants read access only.
// Both are small value types holding a pointer and a length; copying one never copies
// the elements. Every index and sub-range is validated and an invalid one panics with a
// *RangeError, the same way indexing a Go slice out of range does.
package span

import (
	"errors"
	"fmt"
	"iter"

	"github.com/rawbytedev/strspan/internal/common"
)

var ErrOutOfRange = errors.New("span: out of range")

// RangeError describes a rejected index or sub-range.
type RangeError struct {
	Op    string
	Off   int
	Count int
	Len   int
}

func (e *RangeError) Error() string {
	if e.Count < 0 {
		return fmt.Sprintf("span: %s index %d with length %d", e.Op, e.Off, e.Len)
	}
	return fmt.Sprintf("span: %s [%d:%d] with length %d", e.Op, e.Off, e.Off+e.Count, e.Len)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

func checkIndex(op string, i, n int) {
	if i < 0 || i >= n {
		panic(&RangeError{Op: op, Off: i, Count: -1, Len: n})
	}
}

func checkRange(op string, off, count, n int) {
	if off < 0 || count < 0 || off > n || count > n-off {
		panic(&RangeError{Op: op, Off: off, Count: count, Len: n})
	}
}

// Span is a view with writable elements.
type Span[T any] struct {
	data []T
}

// New views data. The span shares data's backing array.
func New[T any](data []T) Span[T] {
	return Span[T]{data: data[:len(data):len(data)]}
}

// FromPtr views n elements starting at p. The caller guarantees p addresses at least
// n valid elements for the lifetime of the span.
func FromPtr[T any](p *T, n int) Span[T] {
	if n < 0 || (p == nil && n > 0) {
		panic(&RangeError{Op: "from pointer", Count: n, Len: 0})
	}
	return Span[T]{data: common.Slice(p, n)}
}

func (s Span[T]) Len() int    { return len(s.data) }
func (s Span[T]) Empty() bool { return len(s.data) == 0 }

func (s Span[T]) At(i int) T {
	checkIndex("at", i, len(s.data))
	return s.data[i]
}

func (s Span[T]) Set(i int, v T) {
	checkIndex("set", i, len(s.data))
	s.data[i] = v
}

// Ptr returns the address of element i.
func (s Span[T]) Ptr(i int) *T {
	checkIndex("ptr", i, len(s.data))
	return &s.data[i]
}

// Data returns the address of the first element, or nil for an empty span.
func (s Span[T]) Data() *T {
	if len(s.data) == 0 {
		return nil
	}
	return &s.data[0]
}

func (s Span[T]) Subspan(off, count int) Span[T] {
	checkRange("subspan", off, count, len(s.data))
	return Span[T]{data: s.data[off : off+count : off+count]}
}

func (s Span[T]) First(count int) Span[T] { return s.Subspan(0, count) }

func (s Span[T]) Last(count int) Span[T] {
	checkRange("last", len(s.data)-count, count, len(s.data))
	return s.Subspan(len(s.data)-count, count)
}

// Slice exposes the elements as a Go slice. Its capacity is capped at its length so
// appending to it never writes past the span.
func (s Span[T]) Slice() []T { return s.data }

func (s Span[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range s.data {
			if !yield(i, v) {
				return
			}
		}
	}
}

// View narrows s to read-only access over the same elements.
func (s Span[T]) View() View[T] { return View[T]{data: s.data} }

// View is a read-only view. There is no way back from a View to a Span.
type View[T any] struct {
	data []T
}

// FromPtrView views n read-only elements starting at p.
func FromPtrView[T any](p *T, n int) View[T] {
	return FromPtr(p, n).View()
}

func (v View[T]) Len() int    { return len(v.data) }
func (v View[T]) Empty() bool { return len(v.data) == 0 }

func (v View[T]) At(i int) T {
	checkIndex("at", i, len(v.data))
	return v.data[i]
}

// Data returns the address of the first element, or nil for an empty view. The
// elements must not be written through it.
func (v View[T]) Data() *T {
	if len(v.data) == 0 {
		return nil
	}
	return &v.data[0]
}

func (v View[T]) Subspan(off, count int) View[T] {
	checkRange("subspan", off, count, len(v.data))
	return View[T]{data: v.data[off : off+count : off+count]}
}

func (v View[T]) First(count int) View[T] { return v.Subspan(0, count) }

func (v View[T]) Last(count int) View[T] {
	checkRange("last", len(v.data)-count, count, len(v.data))
	return v.Subspan(len(v.data)-count, count)
}

func (v View[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, e := range v.data {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Clone copies the elements into a new slice.
func (v View[T]) Clone() []T {
	if len(v.data) == 0 {
		return nil
	}
	out := make([]T, len(v.data))
	copy(out, v.data)
	return out
}
