// main is the entry point for the analytics-engine CLI.
package main

import (
	"fmt"
	"os"

	"github.com/organvm/analytics-engine/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}
