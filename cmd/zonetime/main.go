package main

import (
	"os"

	"github.com/msto63/zonetime/cmd/zonetime/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
