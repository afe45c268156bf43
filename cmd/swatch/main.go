// Command swatch is a color set theming playground for the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/opencode-ai/swatch/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
