package main

import (
	"os"

	"skyline/internal/cli"
)

func main() {
	// Same as `skyline serve`; SKYLINE_* env vars and ./config.yaml apply.
	if err := cli.NewServeCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
