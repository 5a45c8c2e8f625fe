package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/WillyV3/todoflow/internal/cli"
)

func main() {
	app := &cli.App{
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	if err := cli.NewRootCmd(app).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
