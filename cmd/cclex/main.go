package main

import (
	"os"

	"github.com/clexlang/cclex/cmd/cclex/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
