// SPDX-License-Identifier: MIT

// Command intmatrix loads integer matrices from YAML files and combines them.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/intmatrix/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fatal("intmatrix", err)
	}
}

func fatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
}
