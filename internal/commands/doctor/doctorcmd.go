// Package doctor implements the "doctor" command, verifying that every
// managed file yields a valid semantic version.
package doctor

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

// Run returns the "doctor" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "doctor",
		Usage:     "Check that every managed file has an extractable, valid version",
		UsageText: "verbump doctor [file...]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runDoctorCmd(ctx, cmd.Args().Slice(), cfg)
		},
	}
}

func runDoctorCmd(ctx context.Context, args []string, cfg *config.Config) error {
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
			printer.PrintError(fmt.Sprintf("✗ %s: %v", path, err))
			failed++
			continue
		}
		printer.PrintSuccess(fmt.Sprintf("✓ %s (%s, %s)", path, v, u.Kind()))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) failed the check", failed, len(files))
	}
	printer.PrintInfo(fmt.Sprintf("All %d file(s) look good", len(files)))
	return nil
}
