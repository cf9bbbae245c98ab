package main

import (
	"os"

	"github.com/codelane/coderoom/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
