package main

import (
	"fmt"
	"os"

	"github.com/vaultforge/argon2/pkg/tui"
)

func main() {
	if err := tui.RunBubbleTea(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
