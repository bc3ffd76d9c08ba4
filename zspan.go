package strspan

import (
	"github.com/rawbytedev/strspan/pkg/span"
)

// ZSpan is a writable view whose last character is a terminator. The zero value holds
// no proof and has length 0.
type ZSpan[T Char] struct {
	raw Span[T]
}

// CZSpan is the read-only form of ZSpan.
type CZSpan[T Char] struct {
	raw CSpan[T]
}

type (
	ZStringSpan     = ZSpan[byte]
	CZStringSpan    = CZSpan[byte]
	WZStringSpan    = ZSpan[rune]
	CWZStringSpan   = CZSpan[rune]
	U16ZStringSpan  = ZSpan[uint16]
	CU16ZStringSpan = CZSpan[uint16]
)

// MakeZ proves that the first n characters of s end with a terminator and returns the
// terminated view over them. n counts the terminator.
func MakeZ[T Char](s Span[T], n int) (ZSpan[T], error) {
	if n < 1 {
		return ZSpan[T]{}, &ConstraintError{Len: n, Err: ErrEmptyZ}
	}
	if n > s.Len() {
		return ZSpan[T]{}, &ConstraintError{Len: n, Err: span.ErrOutOfRange}
	}
	var zero T
	if s.At(n-1) != zero {
		return ZSpan[T]{}, &ConstraintError{Len: n, Err: ErrNotTerminated}
	}
	return ZSpan[T]{raw: s.First(n)}, nil
}

// NewZ is MakeZ over the whole of s.
func NewZ[T Char](s Span[T]) (ZSpan[T], error) {
	return MakeZ(s, s.Len())
}

// ZFromPtr proves that the n characters at p end with a terminator.
func ZFromPtr[T Char](p *T, n int) (ZSpan[T], error) {
	if n < 1 {
		return ZSpan[T]{}, &ConstraintError{Len: n, Err: ErrEmptyZ}
	}
	return MakeZ(FromPtr(p, n), n)
}

// MustZ is NewZ that panics with the *ConstraintError instead of returning it.
func MustZ[T Char](s Span[T]) ZSpan[T] {
	z, err := NewZ(s)
	if err != nil {
		panic(err)
	}
	return z
}

// Len returns the number of characters before the terminator.
func (z ZSpan[T]) Len() int {
	if z.raw.Empty() {
		return 0
	}
	return z.raw.Len() - 1
}

func (z ZSpan[T]) Empty() bool { return z.Len() == 0 }

// AsSpan returns the characters without the terminator.
func (z ZSpan[T]) AsSpan() Span[T] { return z.raw.First(z.Len()) }

// Raw returns the characters including the terminator. It is read-only so the
// terminator stays in place for AssumeZ.
func (z ZSpan[T]) Raw() CSpan[T] { return z.raw.Const() }

// AssumeZ returns the address of the first character, followed in memory by Len
// characters and the terminator. It is nil for the zero ZSpan.
func (z ZSpan[T]) AssumeZ() *T { return z.raw.Data() }

func (z ZSpan[T]) Const() CZSpan[T] { return CZSpan[T]{raw: z.raw.Const()} }

func (z ZSpan[T]) String() string { return z.AsSpan().String() }

func (z ZSpan[T]) MarshalText() ([]byte, error) { return z.AsSpan().MarshalText() }

func (z ZSpan[T]) Equal(o CSpan[T]) bool  { return Equal(z.AsSpan().Const(), o) }
func (z ZSpan[T]) Compare(o CSpan[T]) int { return Compare(z.AsSpan().Const(), o) }
func (z ZSpan[T]) Less(o CSpan[T]) bool   { return Less(z.AsSpan().Const(), o) }

func (z CZSpan[T]) Len() int {
	if z.raw.Empty() {
		return 0
	}
	return z.raw.Len() - 1
}

func (z CZSpan[T]) Empty() bool { return z.Len() == 0 }

func (z CZSpan[T]) AsSpan() CSpan[T] { return z.raw.First(z.Len()) }

func (z CZSpan[T]) Raw() CSpan[T] { return z.raw }

// AssumeZ returns the address of the terminated characters. Nothing may be written
// through it.
func (z CZSpan[T]) AssumeZ() *T { return z.raw.Data() }

func (z CZSpan[T]) String() string { return z.AsSpan().String() }

func (z CZSpan[T]) MarshalText() ([]byte, error) { return z.AsSpan().MarshalText() }

func (z CZSpan[T]) Equal(o CSpan[T]) bool  { return Equal(z.AsSpan(), o) }
func (z CZSpan[T]) Compare(o CSpan[T]) int { return Compare(z.AsSpan(), o) }
func (z CZSpan[T]) Less(o CSpan[T]) bool   { return Less(z.AsSpan(), o) }
