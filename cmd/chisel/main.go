// Command chisel assembles, disassembles and runs programs for the 32-bit
// fixed-width instruction set.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/tebeka/atexit"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "chisel: %v\n", err)
		}
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
