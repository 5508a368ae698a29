package main

import (
	"os"

	"github.com/mhoffm/limerickbox/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
