package sequence_test

import (
	"testing"

	"github.com/katalvlaran/metonic/sequence"
)

// BenchmarkGenerate measures raw enumeration of all 2^19 candidates —
// the expensive stage of the pipeline.
// Complexity: O(n·2^n)
func BenchmarkGenerate(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := sequence.Generate(19); err != nil {
			b.Fatalf("Generate failed: %v", err)
		}
	}
}

// BenchmarkCombinations measures the full default-rule pipeline:
// generation plus count and run filtering down to 57 survivors.
func BenchmarkCombinations(b *testing.B) {
	rule := sequence.DefaultRule()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sequence.Combinations(rule); err != nil {
			b.Fatalf("Combinations failed: %v", err)
		}
	}
}

// BenchmarkFilterByMaxRun measures the cyclic run filter alone over the
// full 2^19 candidate list.
func BenchmarkFilterByMaxRun(b *testing.B) {
	seqs, err := sequence.Generate(19)
	if err != nil {
		b.Fatalf("setup Generate failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = sequence.FilterByMaxRun(seqs, sequence.Intercalary, 1); err != nil {
			b.Fatalf("FilterByMaxRun failed: %v", err)
		}
	}
}
