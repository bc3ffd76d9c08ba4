package strspan

import (
	"bytes"
	"testing"
)

var benchText = bytes.Repeat([]byte("the quick brown fox "), 64)

func BenchmarkScanZeroAllocs(b *testing.B) {
	buf := append(bytes.Clone(benchText), 0)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = Scan(buf)
	}
}

func BenchmarkScanPtr(b *testing.B) {
	buf := append(bytes.Clone(benchText), 0)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = ScanPtr(&buf[0])
	}
}

func BenchmarkScanWide(b *testing.B) {
	buf := append([]rune(string(benchText)), 0)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = Scan(buf)
	}
}

func BenchmarkMakeZ(b *testing.B) {
	buf := append(bytes.Clone(benchText), 0)
	s := New(buf)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = NewZ(s)
	}
}

func BenchmarkCompare(b *testing.B) {
	x := NewConst(benchText)
	y := NewConst(bytes.Clone(benchText))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Compare(x, y)
	}
}

func BenchmarkCompareWide(b *testing.B) {
	x := NewConst([]rune(string(benchText)))
	y := NewConst([]rune(string(benchText)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Compare(x, y)
	}
}

func BenchmarkEqualString(b *testing.B) {
	x := NewConst(benchText)
	s := string(benchText)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = EqualString(x, s)
	}
}

func TestOperationsDoNotAllocate(t *testing.T) {
	buf := append(bytes.Clone(benchText), 0)
	s := New(buf)
	x := NewConst(benchText)
	y := NewConst(bytes.Clone(benchText))
	wide := NewConst([]rune("wide text"))

	ops := map[string]func(){
		"scan":    func() { Scan(buf) },
		"scanptr": func() { ScanPtr(&buf[0]) },
		"makez":   func() { NewZ(s) },
		"ensure":  func() { EnsureZSpan(s) },
		"compare": func() { Compare(x, y) },
		"equal":   func() { Equal(x, y) },
		"wide":    func() { Compare(wide, wide) },
		"const":   func() { s.Const().Subspan(1, 3).At(0) },
	}
	for name, op := range ops {
		if allocs := testing.AllocsPerRun(100, op); allocs != 0 {
			t.Errorf("%s: %v allocations per run", name, allocs)
		}
	}
}
