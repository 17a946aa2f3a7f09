package main

import (
	"os"

	"github.com/door66/sigil/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
