// Package set implements the "set" command, applying one explicit
// version to many files with bounded concurrency.
package set

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/fgm/verbump/internal/batch"
	"github.com/fgm/verbump/internal/clix"
	"github.com/fgm/verbump/internal/config"
	"github.com/fgm/verbump/internal/core"
	"github.com/fgm/verbump/internal/printer"
	"github.com/fgm/verbump/internal/semver"
	"github.com/fgm/verbump/internal/tui"
	"github.com/urfave/cli/v3"
)

// Run returns the "set" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "set",
		Usage:     "Set an explicit version across managed files",
		UsageText: "verbump set <version> [file...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "yes",
				Aliases: []string{"y"},
				Usage:   "Skip the confirmation prompt",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runSetCmd(ctx, cmd, cfg)
		},
	}
}

func runSetCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	target := cmd.Args().First()
	if target == "" {
		return batch.ErrNoVersion
	}
	if _, err := semver.ParseVersion(target); err != nil {
		return fmt.Errorf("invalid version %q: %w", target, err)
	}

	files, err := clix.Files(clix.TailArgs(cmd, 1), cfg)
	if err != nil {
		return err
	}

	interactive := tui.IsInteractive()

	if !cmd.Bool("yes") && interactive && len(files) > 1 {
		var proceed bool
		prompt := huh.NewConfirm().
			Title(fmt.Sprintf("Set version %s in %d files?", target, len(files))).
			Value(&proceed)
		if err := prompt.Run(); err != nil {
			return err
		}
		if !proceed {
			printer.PrintWarning("Aborted")
			return nil
		}
	}

	var failed []string
	if interactive {
		failed, err = runWithSpinner(ctx, files, target)
	} else {
		failed, err = runPlain(ctx, files, target)
	}
	if err != nil {
		return err
	}

	printSummary(len(files), failed)
	if len(failed) > 0 {
		return fmt.Errorf("%d file(s) failed", len(failed))
	}
	return nil
}

// runWithSpinner runs the batch under a spinner and reports afterwards.
func runWithSpinner(ctx context.Context, files []string, target string) ([]string, error) {
	var failed []string
	var runErr error

	runner := batch.NewRunner(core.NewOSFileSystem())
	action := func() {
		failed, runErr = runner.ChangeFiles(ctx, files, target)
	}

	if err := spinner.New().
		Title(fmt.Sprintf("Updating %d files...", len(files))).
		Action(action).
		Run(); err != nil {
		return nil, err
	}
	return failed, runErr
}

// runPlain runs the batch printing each file's outcome as it completes.
func runPlain(ctx context.Context, files []string, target string) ([]string, error) {
	runner := batch.NewRunner(
		core.NewOSFileSystem(),
		batch.WithResultFunc(func(path string, err error) {
			if err != nil {
				printer.PrintError(fmt.Sprintf("%s: %v", path, err))
				return
			}
			printer.PrintSuccess(fmt.Sprintf("%s -> %s", path, target))
		}),
	)
	return runner.ChangeFiles(ctx, files, target)
}

// printSummary renders a completion bar plus a one-line result.
func printSummary(total int, failed []string) {
	ok := total - len(failed)
	bar := progress.New(progress.WithDefaultGradient(), progress.WithWidth(30))
	fmt.Println(bar.ViewAs(float64(ok) / float64(total)))

	if len(failed) == 0 {
		printer.PrintSuccess(fmt.Sprintf("Updated %d file(s)", ok))
		return
	}
	printer.PrintWarning(fmt.Sprintf("Updated %d file(s), %d failed:", ok, len(failed)))
	for _, path := range failed {
		printer.PrintError("  " + path)
	}
}
