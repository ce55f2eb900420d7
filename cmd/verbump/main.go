package main

import (
	"context"
	"os"

	"github.com/fgm/verbump/internal/cli"
	"github.com/fgm/verbump/internal/printer"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		printer.PrintError(err.Error())
		os.Exit(1)
	}
}

func runCLI(args []string) error {
	return cli.New().Run(context.Background(), args)
}
