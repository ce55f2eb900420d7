// Package clix holds small helpers shared by the CLI commands.
package clix

import (
	"errors"

	"github.com/fgm/verbump/internal/config"
	"github.com/urfave/cli/v3"
)

// ErrNoFiles is returned when neither command arguments nor the config
// file name any files to operate on.
var ErrNoFiles = errors.New("no files given; pass file paths or list them in " + config.ConfigFileYAML)

// Files resolves the files a command operates on: positional arguments
// win, otherwise the files listed in the config are used.
func Files(args []string, cfg *config.Config) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if paths := cfg.Paths(); len(paths) > 0 {
		return paths, nil
	}
	return nil, ErrNoFiles
}

// TailArgs returns the positional arguments of cmd after the first n.
func TailArgs(cmd *cli.Command, n int) []string {
	args := cmd.Args().Slice()
	if len(args) <= n {
		return nil
	}
	return args[n:]
}
