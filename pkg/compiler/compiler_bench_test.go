package compiler

import (
	"runtime"
	"strings"
	"testing"
)

// simpleSource is a single short expression used for benchmarking the fast path.
const simpleSource = `x = max(10, 1309, x * 2 + y)`

// complexSource exercises nested calls, every precedence level, strings,
// floats and comments across several lines.
const complexSource = `
// running total
total += sin(max(a, b) / 3.25 * x) << 2 | mask & ~flags ^ (c - d) % 7
	&& !(lo <= hi || hi >= lo) == (n != 0) // trailing
	|| name == "a\tb\"c" && max(sin(1.5), max(2, max(3, 4 * y >> 1)))
`

func benchSymbols() *SymbolTable {
	return NewSymbolTable(
		[]string{"max", "sin"},
		[]string{"x", "y", "a", "b", "c", "d", "n", "lo", "hi", "total", "mask", "flags", "name"},
	)
}

// deepSource nests depth parenthesis groups to show the parser's explicit
// stack handles nesting without recursion.
func deepSource(depth int) string {
	return strings.Repeat("(1 + ", depth) + "1" + strings.Repeat(")", depth)
}

func BenchmarkLex_Simple(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Lex(simpleSource); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLex_Complex(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Lex(complexSource); err != nil {
			b.Fatal(err)
		}
	}
}

func benchParse(b *testing.B, src string) {
	tokens, err := Lex(src)
	if err != nil {
		b.Fatal(err)
	}
	syms := benchSymbols()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(tokens, syms); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParse_Simple(b *testing.B) { benchParse(b, simpleSource) }
func BenchmarkParse_Complex(b *testing.B) { benchParse(b, complexSource) }

// Compare the two deep benchmarks: ns/op should roughly double.
func BenchmarkParse_Deep5000(b *testing.B) { benchParse(b, deepSource(5000)) }
func BenchmarkParse_Deep10000(b *testing.B) { benchParse(b, deepSource(10000)) }

func BenchmarkTranslate_Complex(b *testing.B) {
	syms := benchSymbols()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Translate(complexSource, syms); err != nil {
			b.Fatal(err)
		}
	}
}

func TestParse_DeepNesting(t *testing.T) {
	depth := 50000
	if testing.Short() {
		depth = 5000
	}
	tokens, err := Lex(deepSource(depth))
	if err != nil {
		t.Fatal(err)
	}
	out, err := Parse(tokens, nil)
	if err != nil {
		t.Fatal(err)
	}
	// depth+1 operands and depth operators.
	if got, want := len(out), 2*depth+1; got != want {
		t.Errorf("Wrong output length: Got %v Want %v", got, want)
	}
}

// parseBytes returns the bytes allocated while parsing src.
func parseBytes(t *testing.T, src string) uint64 {
	t.Helper()
	tokens, err := Lex(src)
	if err != nil {
		t.Fatal(err)
	}
	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	if _, err := Parse(tokens, nil); err != nil {
		t.Fatal(err)
	}
	runtime.ReadMemStats(&after)
	return after.TotalAlloc - before.TotalAlloc
}

// TestParse_LinearCost doubles the nesting depth and expects the parse to
// allocate roughly twice as much. Per-token work that grows with the stack
// or output shows up as a ratio near 4.
func TestParse_LinearCost(t *testing.T) {
	const depth = 10000
	small := parseBytes(t, deepSource(depth))
	large := parseBytes(t, deepSource(2*depth))
	if small == 0 {
		t.Fatal("no allocations measured")
	}
	if ratio := float64(large) / float64(small); ratio > 3 {
		t.Errorf("Parse cost grows superlinearly: depth %d allocated %d bytes, depth %d allocated %d bytes (ratio %.2f)",
			depth, small, 2*depth, large, ratio)
	}
}

func TestComplexSource(t *testing.T) {
	out, err := Translate(complexSource, benchSymbols())
	if err != nil {
		t.Fatal(err)
	}
	if len(out) == 0 {
		t.Fatal("no output")
	}
	for _, tok := range out {
		switch tok.Type {
		case LPAREN, RPAREN, COMMA:
			t.Errorf("grouping token %s leaked into output", tok.Type)
		}
	}
}
