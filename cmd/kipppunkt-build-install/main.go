package main

import (
	"os"
)

func main() {
	// failures are already reported by the installer summary
	if err := NewCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
