// Package discover implements the "discover" command, scanning the
// project for version-bearing files and optionally generating a config.
package discover

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/fgm/verbump/internal/config"
	"github.com/fgm/verbump/internal/core"
	"github.com/fgm/verbump/internal/discovery"
	"github.com/fgm/verbump/internal/printer"
	"github.com/fgm/verbump/internal/tui"
	"github.com/goccy/go-yaml"
	"github.com/urfave/cli/v3"
)

// Run returns the "discover" command.
func Run() *cli.Command {
	return &cli.Command{
		Name:      "discover",
		Usage:     "Scan the project for version-bearing files",
		UsageText: "verbump discover [--init] [path]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "init",
				Usage: "Write the discovered files to " + config.ConfigFileYAML,
			},
			&cli.IntFlag{
				Name:  "max-depth",
				Usage: "Maximum directory depth to scan",
				Value: discovery.DefaultMaxDepth,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runDiscoverCmd(ctx, cmd)
		},
	}
}

func runDiscoverCmd(ctx context.Context, cmd *cli.Command) error {
	root := cmd.Args().First()
	if root == "" {
		root = "."
	}

	svc := discovery.NewService(core.NewOSFileSystem(), int(cmd.Int("max-depth")))
	candidates, err := svc.Scan(ctx, root)
	if err != nil {
		return fmt.Errorf("discovery failed: %w", err)
	}

	if len(candidates) == 0 {
		printer.PrintWarning("No version-bearing files found")
		return nil
	}

	for _, c := range candidates {
		fmt.Printf("%s  %s %s\n", printer.Bold(c.Path), printer.Info(c.Version), printer.Faint("("+c.Kind.String()+")"))
	}

	if !cmd.Bool("init") {
		return nil
	}

	selected := candidates
	if tui.IsInteractive() {
		selected, err = selectCandidates(candidates)
		if err != nil {
			return err
		}
	}
	if len(selected) == 0 {
		printer.PrintWarning("Nothing selected, config not written")
		return nil
	}

	return writeConfig(selected)
}

// selectCandidates asks which discovered files to manage.
func selectCandidates(candidates []discovery.Candidate) ([]discovery.Candidate, error) {
	options := make([]huh.Option[string], len(candidates))
	for i, c := range candidates {
		options[i] = huh.NewOption(fmt.Sprintf("%s (%s)", c.Path, c.Version), c.Path).Selected(true)
	}

	var selectedPaths []string
	prompt := huh.NewMultiSelect[string]().
		Title("Select files to manage:").
		Options(options...).
		Value(&selectedPaths)
	if err := prompt.Run(); err != nil {
		return nil, err
	}

	var selected []discovery.Candidate
	for _, path := range selectedPaths {
		for _, c := range candidates {
			if c.Path == path {
				selected = append(selected, c)
				break
			}
		}
	}
	return selected, nil
}

// writeConfig generates .verbump.yaml from the selected candidates.
func writeConfig(selected []discovery.Candidate) error {
	cfg := config.Config{Files: make([]config.FileEntry, len(selected))}
	for i, c := range selected {
		cfg.Files[i] = config.FileEntry{Path: c.Path}
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("failed to generate config: %w", err)
	}

	if err := os.WriteFile(config.ConfigFileYAML, data, config.ConfigFilePerm); err != nil {
		return fmt.Errorf("failed to write %s: %w", config.ConfigFileYAML, err)
	}

	printer.PrintSuccess(fmt.Sprintf("Wrote %s with %d file(s)", config.ConfigFileYAML, len(selected)))
	return nil
}
