package parser

import (
	"context"
	"strings"
	"testing"
)

func benchmarkInput(terms int) []byte {
	ops := []string{" + ", " * ", " - ", " / "}
	var sb strings.Builder
	sb.WriteString("1")
	for i := 0; i < terms; i++ {
		sb.WriteString(ops[i%len(ops)])
		sb.WriteString("12345")
	}
	return []byte(sb.String())
}

func BenchmarkParseShort(b *testing.B) {
	data := []byte("1 + 2 * 3 - 4")
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ParseBytes(ctx, "bench.why", data); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseLong(b *testing.B) {
	data := benchmarkInput(10000)
	ctx := context.Background()

	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ParseBytes(ctx, "bench.why", data); err != nil {
			b.Fatal(err)
		}
	}
}
