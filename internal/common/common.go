package common

import (
	"bytes"
	"unsafe"
)

// Slice aliases n elements starting at p without copying.
// A nil p or n == 0 yields a nil slice.
func Slice[T any](p *T, n int) []T {
	if p == nil || n == 0 {
		return nil
	}
	return unsafe.Slice(p, n)
}

// StringBytes aliases the bytes of s without copying. The result must never be written.
func StringBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// BytesString aliases b as a string without copying; b must not change while the string is in use.
func BytesString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// Add returns the address of the i-th element after p.
func Add[T any](p *T, i int) *T {
	var zero T
	return (*T)(unsafe.Add(unsafe.Pointer(p), uintptr(i)*unsafe.Sizeof(zero)))
}

// IndexZero returns the offset of the first zero element of data, or -1.
func IndexZero[T comparable](data []T) int {
	var zero T
	if len(data) == 0 {
		return -1
	}
	// one-byte elements go through the assembly IndexByte
	if unsafe.Sizeof(zero) == 1 {
		return bytes.IndexByte(unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)), 0)
	}
	for i, c := range data {
		if c == zero {
			return i
		}
	}
	return -1
}

// PtrLen walks forward from p until a zero element. With max >= 0 the walk stops
// after max elements and reports found == false; a negative max walks until the
// terminator, like strlen.
func PtrLen[T comparable](p *T, max int) (n int, found bool) {
	if p == nil {
		return 0, false
	}
	var zero T
	for max < 0 || n < max {
		if *Add(p, n) == zero {
			return n, true
		}
		n++
	}
	return n, false
}
