package strspan

import (
	"unicode/utf16"
	"unsafe"
)

// toString copies data into a Go string. One-byte characters are taken as UTF-8,
// two-byte characters as UTF-16 and four-byte characters as code points.
func toString[T Char](data []T) string {
	if len(data) == 0 {
		return ""
	}
	var zero T
	switch unsafe.Sizeof(zero) {
	case 1:
		return string(unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)))
	case 2:
		return string(utf16.Decode(unsafe.Slice((*uint16)(unsafe.Pointer(&data[0])), len(data))))
	default:
		return string(unsafe.Slice((*rune)(unsafe.Pointer(&data[0])), len(data)))
	}
}

// asBytes reinterprets one-byte characters as []byte so they can use the bytes package.
func asBytes[T Char](data []T) ([]byte, bool) {
	var zero T
	if unsafe.Sizeof(zero) != 1 {
		return nil, false
	}
	if len(data) == 0 {
		return nil, true
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)), true
}
