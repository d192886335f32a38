package main

import (
	"os"

	"github.com/rosterkeeper/rosterkeeper/cmd/rosterkeeper/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
