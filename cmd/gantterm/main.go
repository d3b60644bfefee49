package main

import (
	"fmt"
	"os"
	"strings"

	"gantterm/internal/cli"
	"gantterm/internal/config"
	"gantterm/internal/tui"
)

func main() {
	// No args launches the interactive editor on an empty chart; a single
	// CSV path opens it in the editor; anything else routes to the CLI.
	switch {
	case len(os.Args) == 1:
		runTUI("")
	case len(os.Args) == 2 && strings.HasSuffix(os.Args[1], ".csv"):
		runTUI(os.Args[1])
	default:
		if err := cli.Execute(); err != nil {
			os.Exit(1)
		}
	}
}

func runTUI(path string) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := tui.Run(path, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
