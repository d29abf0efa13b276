// File: sequence/example_test.go
package sequence_test

import (
	"fmt"

	"github.com/katalvlaran/metonic/sequence"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Generate
////////////////////////////////////////////////////////////////////////////////

// ExampleGenerate demonstrates exhaustive enumeration for n=3: all eight
// sequences, ascending by binary value.
func ExampleGenerate() {
	seqs, _ := sequence.Generate(3)
	fmt.Println(seqs)

	// Output:
	// [000 001 010 011 100 101 110 111]
}

////////////////////////////////////////////////////////////////////////////////
// Example: Combinations
////////////////////////////////////////////////////////////////////////////////

// ExampleCombinations demonstrates the composed pipeline on a toy rule set:
// length 5, exactly 2 intercalary years, never adjacent, at most 4 ordinary
// years in a row.
//
// Scenario:
//
//   - 2^5 = 32 raw candidates
//   - count filter keeps the 10 with exactly two 1s
//   - run filters drop the arrangements where the 1s touch (cyclically)
func ExampleCombinations() {
	rule := sequence.Rule{Length: 5, Counts: []int{2}, MaxI: 1, MaxO: 4}
	seqs, _ := sequence.Combinations(rule)
	for _, s := range seqs {
		fmt.Println(s)
	}

	// Output:
	// 00101
	// 01001
	// 01010
	// 10010
	// 10100
}

////////////////////////////////////////////////////////////////////////////////
// Example: AsString
////////////////////////////////////////////////////////////////////////////////

// ExampleAsString demonstrates the letter rendering of the Athenian cycle.
func ExampleAsString() {
	s, _ := sequence.AsString("0100100101001001010")
	fmt.Println(s)

	// Output:
	// OIOOIOOIOIOOIOOIOIO
}
