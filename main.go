package main

import (
	"os"

	"github.com/landline-sh/landline/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
