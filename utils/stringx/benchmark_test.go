// File: benchmark_test.go
// Title: Performance Benchmarks for StringX Functions
// Description: Benchmarks for the replacement, case and padding functions.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial benchmark implementation
// - 2025-10-17 v0.2.0: Benchmarks for the transformation primitives

package stringx

import (
	"strings"
	"testing"
)

var benchText = strings.Repeat("The Quick Brown Fox jumps over the lazy dog. ", 200)

func BenchmarkReplaceEveryNonrecursiveCI(b *testing.B) {
	r := NewReplacements("the", "a", "quick", "slow", "fox", "cat", "o", "0", "over", "under")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ReplaceEveryNonrecursiveCI(benchText, r)
	}
}

func BenchmarkReplaceEveryNonrecursive(b *testing.B) {
	r := NewReplacements("The", "A", "Quick", "Slow", "Fox", "Cat")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ReplaceEveryNonrecursive(benchText, r)
	}
}

func BenchmarkReplaceEveryCI(b *testing.B) {
	r := NewReplacements("the", "a", "quick", "slow", "fox", "cat")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ReplaceEveryCI(benchText, r)
	}
}

func BenchmarkLowercase(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Lowercase(benchText)
	}
}

func BenchmarkCapitalizeWords(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = CapitalizeWords(benchText)
	}
}

func BenchmarkPadLeft(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = PadLeft("42", 64, "0-")
	}
}

func BenchmarkFormatNumber(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = FormatNumber(1234567.891, 2)
	}
}
