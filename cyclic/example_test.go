// File: cyclic/example_test.go
package cyclic_test

import (
	"fmt"

	"github.com/katalvlaran/metonic/cyclic"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Segments
////////////////////////////////////////////////////////////////////////////////

// ExampleSegments demonstrates extracting every distinct 5-year stretch
// from the intercalation cycle attested for classical Athens.
// Scenario:
//
//   - The ring has 19 positions, so 19 windows are read, one per position,
//     with the final windows wrapping past the seam.
//   - Only 6 of the 19 windows are distinct; they come back sorted.
//
// Complexity: O(L·m + L·log L)
func ExampleSegments() {
	segs, _ := cyclic.Segments("0100100101001001010", 5)
	for _, s := range segs {
		fmt.Println(s)
	}

	// Output:
	// 00100
	// 00101
	// 01001
	// 01010
	// 10010
	// 10100
}

////////////////////////////////////////////////////////////////////////////////
// Example: InCycle
////////////////////////////////////////////////////////////////////////////////

// ExampleInCycle demonstrates seam-spanning substring search: "100" occurs
// on the ring "001" even though it never occurs in the linear string.
func ExampleInCycle() {
	fmt.Println(cyclic.InCycle("100", "001"))
	fmt.Println(cyclic.InCycle("11", "001"))

	// Output:
	// true
	// false
}

////////////////////////////////////////////////////////////////////////////////
// Example: FindInCycles
////////////////////////////////////////////////////////////////////////////////

// ExampleFindInCycles demonstrates filtering a collection of rings down to
// those containing a probe sequence, in input order.
func ExampleFindInCycles() {
	cycles := []string{"00101", "00011", "01011"}
	fmt.Println(cyclic.FindInCycles("11", cycles))

	// Output:
	// [00011 01011]
}
