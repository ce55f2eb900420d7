// Package bump implements the "bump" command, applying a semantic
// version increment to managed files.
package bump

import (
	"context"
	"fmt"

	"github.com/fgm/verbump/internal/clix"
	"github.com/fgm/verbump/internal/config"
	"github.com/fgm/verbump/internal/core"
	"github.com/fgm/verbump/internal/printer"
	"github.com/fgm/verbump/internal/semver"
	"github.com/fgm/verbump/internal/updater"
	"github.com/urfave/cli/v3"
)

// Run returns the "bump" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "bump",
		Usage:     "Apply an increment command (major, minor, patch, premajor, preminor, prepatch, prerelease) to managed files",
		UsageText: "verbump bump <command> [file...]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runBumpCmd(ctx, cmd, cfg)
		},
	}
}

func runBumpCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	bumpCmd := semver.Command(cmd.Args().First())
	if bumpCmd == "" {
		// Without an explicit command, each config entry uses its own.
		if len(cfg.Files) == 0 {
			return fmt.Errorf("an increment command is required")
		}
		return bumpEntries(ctx, cfg)
	}
	if !bumpCmd.IsValid() {
		return fmt.Errorf("unknown bump command: %s", bumpCmd)
	}

	files, err := clix.Files(clix.TailArgs(cmd, 1), cfg)
	if err != nil {
		return err
	}

	fs := core.NewOSFileSystem()
	failed := 0
	for _, path := range files {
		if !bumpFile(ctx, fs, path, bumpCmd) {
			failed++
		}
	}
	return bumpResult(failed)
}

// bumpEntries applies each config entry's own increment command.
func bumpEntries(ctx context.Context, cfg *config.Config) error {
	fs := core.NewOSFileSystem()
	failed := 0
	for _, entry := range cfg.Files {
		if !bumpFile(ctx, fs, entry.Path, cfg.CmdFor(entry)) {
			failed++
		}
	}
	return bumpResult(failed)
}

// bumpFile changes one file and reports the outcome, returning success.
func bumpFile(ctx context.Context, fs core.FileSystem, path string, cmd semver.Command) bool {
	u := updater.New(fs, path, updater.Options{Cmd: cmd})
	if err := u.Change(ctx); err != nil {
		printer.PrintError(fmt.Sprintf("%s: %v", path, err))
		return false
	}
	printer.PrintSuccess(fmt.Sprintf("%s -> %s", path, u.Version()))
	return true
}

func bumpResult(failed int) error {
	if failed > 0 {
		return fmt.Errorf("%d file(s) failed", failed)
	}
	return nil
}
