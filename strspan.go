package strspan

import (
	"bytes"
	"iter"
	"strings"

	"github.com/rawbytedev/strspan/internal/common"
	"github.com/rawbytedev/strspan/pkg/span"
)

// Char is the set of character element types a view can hold.
type Char interface {
	~byte | ~uint16 | ~rune
}

// Span is a writable character view.
type Span[T Char] struct {
	s span.Span[T]
}

// CSpan is a read-only character view.
type CSpan[T Char] struct {
	v span.View[T]
}

type (
	StringSpan     = Span[byte]
	CStringSpan    = CSpan[byte]
	WStringSpan    = Span[rune]
	CWStringSpan   = CSpan[rune]
	U16StringSpan  = Span[uint16]
	CU16StringSpan = CSpan[uint16]
)

// New views every element of s, interior terminators included.
func New[S ~[]T, T Char](s S) Span[T] {
	return Span[T]{s: span.New([]T(s))}
}

// NewConst is the read-only form of New.
func NewConst[S ~[]T, T Char](s S) CSpan[T] {
	return CSpan[T]{v: span.New([]T(s)).View()}
}

// FromPtr views n characters at p. n is authoritative: a terminator inside the range
// counts as data.
func FromPtr[T Char](p *T, n int) Span[T] {
	return Span[T]{s: span.FromPtr(p, n)}
}

// ConstFromPtr is the read-only form of FromPtr.
func ConstFromPtr[T Char](p *T, n int) CSpan[T] {
	return CSpan[T]{v: span.FromPtrView(p, n)}
}

// FromString views the bytes of s without copying.
func FromString(s string) CSpan[byte] {
	return NewConst(common.StringBytes(s))
}

// FromLiteral views a string literal written with its C terminator, "Hello\x00",
// dropping that one trailing terminator. Any other content is kept as-is.
func FromLiteral(s string) CSpan[byte] {
	s = strings.TrimSuffix(s, "\x00")
	return FromString(s)
}

// FromBuffer views the unread bytes of b. The view goes stale as soon as b is written
// to or read from, which is why no writable form exists.
func FromBuffer(b *bytes.Buffer) CSpan[byte] {
	if b == nil {
		return CSpan[byte]{}
	}
	return NewConst(b.Bytes())
}

// FromBuilder views the bytes accumulated in b so far.
func FromBuilder(b *strings.Builder) CSpan[byte] {
	if b == nil {
		return CSpan[byte]{}
	}
	return FromString(b.String())
}

// FromSpan wraps a generic span of characters without copying.
func FromSpan[T Char](s span.Span[T]) Span[T] {
	return Span[T]{s: s}
}

// ConstFromSpan narrows a generic span to a read-only character view.
func ConstFromSpan[T Char](s span.Span[T]) CSpan[T] {
	return CSpan[T]{v: s.View()}
}

// ConstFromView wraps a generic read-only view of characters.
func ConstFromView[T Char](v span.View[T]) CSpan[T] {
	return CSpan[T]{v: v}
}

func (s Span[T]) Len() int    { return s.s.Len() }
func (s Span[T]) Empty() bool { return s.s.Empty() }
func (s Span[T]) At(i int) T  { return s.s.At(i) }

func (s Span[T]) Set(i int, c T) { s.s.Set(i, c) }

func (s Span[T]) Subspan(off, count int) Span[T] { return Span[T]{s: s.s.Subspan(off, count)} }
func (s Span[T]) First(count int) Span[T]        { return Span[T]{s: s.s.First(count)} }
func (s Span[T]) Last(count int) Span[T]         { return Span[T]{s: s.s.Last(count)} }

// Data returns the address of the first character, or nil when empty.
func (s Span[T]) Data() *T { return s.s.Data() }

func (s Span[T]) Slice() []T { return s.s.Slice() }

func (s Span[T]) All() iter.Seq2[int, T] { return s.s.All() }

// Generic returns the underlying element view.
func (s Span[T]) Generic() span.Span[T] { return s.s }

// Const narrows s to a read-only view of the same characters.
func (s Span[T]) Const() CSpan[T] { return CSpan[T]{v: s.s.View()} }

// String copies the characters into a Go string, decoding UTF-16 and wide characters.
func (s Span[T]) String() string { return toString(s.s.Slice()) }

func (s Span[T]) Clone() []T { return s.s.View().Clone() }

func (s Span[T]) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s Span[T]) Equal(o CSpan[T]) bool  { return Equal(s.Const(), o) }
func (s Span[T]) Compare(o CSpan[T]) int { return Compare(s.Const(), o) }
func (s Span[T]) Less(o CSpan[T]) bool   { return Less(s.Const(), o) }

func (s CSpan[T]) Len() int    { return s.v.Len() }
func (s CSpan[T]) Empty() bool { return s.v.Empty() }
func (s CSpan[T]) At(i int) T  { return s.v.At(i) }

func (s CSpan[T]) Subspan(off, count int) CSpan[T] { return CSpan[T]{v: s.v.Subspan(off, count)} }
func (s CSpan[T]) First(count int) CSpan[T]        { return CSpan[T]{v: s.v.First(count)} }
func (s CSpan[T]) Last(count int) CSpan[T]         { return CSpan[T]{v: s.v.Last(count)} }

// Data returns the address of the first character, or nil when empty. Nothing may be
// written through it.
func (s CSpan[T]) Data() *T { return s.v.Data() }

func (s CSpan[T]) All() iter.Seq2[int, T] { return s.v.All() }

func (s CSpan[T]) Generic() span.View[T] { return s.v }

func (s CSpan[T]) String() string { return toString(s.raw()) }

func (s CSpan[T]) Clone() []T { return s.v.Clone() }

func (s CSpan[T]) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s CSpan[T]) Equal(o CSpan[T]) bool  { return Equal(s, o) }
func (s CSpan[T]) Compare(o CSpan[T]) int { return Compare(s, o) }
func (s CSpan[T]) Less(o CSpan[T]) bool   { return Less(s, o) }

func (s CSpan[T]) raw() []T {
	return common.Slice(s.v.Data(), s.v.Len())
}
