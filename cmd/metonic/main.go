// Command metonic explores rule-constrained intercalation cycles from the
// command line.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/metonic/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
