package strspan

import (
	"bytes"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

func TestScan(t *testing.T) {
	tests := []struct {
		name  string
		data  []byte
		n     int
		found bool
	}{
		{"empty", nil, 0, false},
		{"terminator only", []byte{0}, 0, true},
		{"terminated", []byte("abc\x00"), 3, true},
		{"interior", []byte("He\x00lo"), 2, true},
		{"unterminated", []byte("Hello"), 5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, found := Scan(tt.data)
			require.Equal(t, tt.n, n)
			require.Equal(t, tt.found, found)
		})
	}
}

func TestScanWide(t *testing.T) {
	n, found := Scan([]rune("wi\x00de"))
	require.True(t, found)
	require.Equal(t, 2, n)

	type wchar uint16
	n, found = Scan([]wchar{'a', 'b'})
	require.False(t, found)
	require.Equal(t, 2, n)
}

func TestScanMatchesIndexByte(t *testing.T) {
	condition := func(data []byte) bool {
		n, found := Scan(data)
		i := bytes.IndexByte(data, 0)
		if i < 0 {
			return !found && n == len(data)
		}
		return found && n == i
	}
	require.NoError(t, quick.Check(condition, &quick.Config{}))
}

func TestViewOfUnterminatedArrayKeepsLength(t *testing.T) {
	condition := func(data []byte, wide []rune) bool {
		for i, c := range data {
			if c == 0 {
				data[i] = 1
			}
		}
		for i, c := range wide {
			if c == 0 {
				wide[i] = 1
			}
		}
		if NewConst(data).Len() != len(data) || New(data).Len() != len(data) {
			return false
		}
		if v, found := ConstEnsureZ(data); found || v.Len() != len(data) {
			return false
		}
		return NewConst(wide).Len() == len(wide)
	}
	require.NoError(t, quick.Check(condition, &quick.Config{}))
}

func TestScanPtr(t *testing.T) {
	buf := []byte("ab\x00cd\x00")
	require.Equal(t, 2, ScanPtr(&buf[0]))
	require.Equal(t, 2, ScanPtr(&buf[3]))
	require.Equal(t, 0, ScanPtr[byte](nil))

	wide := []rune("wide\x00")
	require.Equal(t, 4, ScanPtr(&wide[0]))

	n, found := ScanPtrN(&buf[0], 2)
	require.False(t, found)
	require.Equal(t, 2, n)
	n, found = ScanPtrN(&buf[0], 3)
	require.True(t, found)
	require.Equal(t, 2, n)

	require.Panics(t, func() { ScanPtrN(&buf[0], -1) })
}

func TestEnsureZ(t *testing.T) {
	ptr := []byte{'a', 'b', 0}
	v, found := EnsureZ(ptr)
	require.True(t, found)
	require.Equal(t, 2, v.Len())

	require.Equal(t, 2, EnsureZPtr(&ptr[0]).Len())
	require.Equal(t, 2, ConstEnsureZPtr(&ptr[0]).Len())

	// nothing is written when the terminator is missing
	raw := []byte("abc")
	v, found = EnsureZ(raw)
	require.False(t, found)
	require.Equal(t, 3, v.Len())
	require.Equal(t, []byte("abc"), raw)
}

func TestEnsureZBounded(t *testing.T) {
	buf := []byte("He\x00lo")

	v, found := EnsureZPtrN(&buf[0], 5)
	require.True(t, found)
	require.Equal(t, 2, v.Len())

	c, found := ConstEnsureZ(buf[:5])
	require.True(t, found)
	require.Equal(t, 2, c.Len())

	c, found = ConstEnsureZPtrN(&buf[0], 2)
	require.False(t, found)
	require.Equal(t, 2, c.Len())

	c, found = ConstEnsureZ(buf[3:])
	require.False(t, found)
	require.Equal(t, 2, c.Len())
}

func TestEnsureZSpan(t *testing.T) {
	buf := []byte("He\x00lo")
	z, found := EnsureZSpan(New(buf))
	require.True(t, found)
	require.Equal(t, 2, z.Len())
	require.Equal(t, 3, z.Raw().Len())
	require.Same(t, &buf[0], z.AssumeZ())
	require.Equal(t, "He", z.String())

	_, found = EnsureZSpan(New([]byte("Hello")))
	require.False(t, found)

	cz, found := ConstEnsureZSpan(FromString("Hello\x00"))
	require.True(t, found)
	require.Equal(t, 5, cz.Len())

	cz, found = ConstEnsureZSpan(FromString("Hello"))
	require.False(t, found)
	require.Nil(t, cz.AssumeZ())
	require.Equal(t, 0, cz.Len())
}

func TestEnsureZSpanAgreesWithMakeZ(t *testing.T) {
	condition := func(data []byte) bool {
		z, found := EnsureZSpan(New(data))
		if !found {
			return bytes.IndexByte(data, 0) < 0
		}
		proved, err := MakeZ(New(data), z.Raw().Len())
		return err == nil && proved.Len() == z.Len()
	}
	require.NoError(t, quick.Check(condition, &quick.Config{}))
}

func FuzzScan(f *testing.F) {
	f.Add([]byte("He\x00lo"), 5)
	f.Add([]byte{}, 0)
	f.Fuzz(func(t *testing.T, data []byte, bound int) {
		if bound < 0 || bound > len(data) {
			bound = len(data)
		}
		n, found := Scan(data[:bound])
		require.LessOrEqual(t, n, bound)
		if found {
			require.Equal(t, byte(0), data[n])
		}
		require.NotContains(t, data[:n], byte(0))

		if bound > 0 {
			pn, pfound := ScanPtrN(&data[0], bound)
			require.Equal(t, n, pn)
			require.Equal(t, found, pfound)
		}
	})
}
