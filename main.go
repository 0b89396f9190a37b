package main

import (
	"os"

	"github.com/wesboland/bolandindex/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
