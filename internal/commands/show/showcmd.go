// Package show implements the "show" command, printing the current
// version of each managed file.
package show

import (
	"context"
	"fmt"

	"github.com/fgm/verbump/internal/clix"
	"github.com/fgm/verbump/internal/config"
	"github.com/fgm/verbump/internal/core"
	"github.com/fgm/verbump/internal/printer"
	"github.com/fgm/verbump/internal/updater"
	"github.com/urfave/cli/v3"
)

// Run returns the "show" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show the current version of managed files",
		UsageText: "verbump show [file...]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runShowCmd(ctx, cmd.Args().Slice(), cfg)
		},
	}
}

func runShowCmd(ctx context.Context, args []string, cfg *config.Config) error {
	files, err := clix.Files(args, cfg)
	if err != nil {
		return err
	}

	fs := core.NewOSFileSystem()
	failed := 0
	for _, path := range files {
		u := updater.New(fs, path, updater.Options{})
		v, err := u.Extract(ctx)
		if err != nil {
			printer.PrintError(fmt.Sprintf("%s: %v", path, err))
			failed++
			continue
		}
		fmt.Printf("%s  %s\n", printer.Bold(v), printer.Faint(path))
	}

	if failed > 0 {
		return fmt.Errorf("%d file(s) failed", failed)
	}
	return nil
}
