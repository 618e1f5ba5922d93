package main

import (
	"os"

	"github.com/eopatcher/eopatcher/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
