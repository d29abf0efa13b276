// File: calendar/example_test.go
package calendar_test

import (
	"fmt"

	"github.com/katalvlaran/metonic/calendar"
	"github.com/katalvlaran/metonic/sequence"
)

////////////////////////////////////////////////////////////////////////////////
// Example: ToMetonic
////////////////////////////////////////////////////////////////////////////////

// ExampleToMetonic demonstrates locating the battle of Marathon
// (490 BCE, astronomical year -489) within the Metonic grid.
func ExampleToMetonic() {
	cycle, pos := calendar.ToMetonic(-489)
	fmt.Printf("cycle %d, year %d\n", cycle, pos)

	// Output:
	// cycle -3, year 19
}

////////////////////////////////////////////////////////////////////////////////
// Example: Cycles
////////////////////////////////////////////////////////////////////////////////

// ExampleCycles demonstrates the default cycle set in its letter form:
// O for ordinary years, I for intercalary ones.
func ExampleCycles() {
	cycles, _ := calendar.Cycles()
	for _, c := range cycles {
		s, _ := sequence.AsString(c)
		fmt.Println(s)
	}

	// Output:
	// OOIOOIOOIOOIOOIOIOI
	// OOIOOIOOIOOIOIOOIOI
	// OOIOOIOOIOIOOIOOIOI
}
