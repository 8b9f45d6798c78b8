// Command splitdemo runs a terminal demo of the splitview engine, driven
// through the bubblesplit reference binding.
package main

import (
	"fmt"
	"os"

	"github.com/resonantlabs/splitview/cmd/splitdemo/internal/demo"
)

func main() {
	if err := demo.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
