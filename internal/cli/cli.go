// Package cli builds the verbump command tree.
package cli

import (
	"context"
	"fmt"

	"github.com/fgm/verbump/internal/commands/bump"
	"github.com/fgm/verbump/internal/commands/discover"
	"github.com/fgm/verbump/internal/commands/doctor"
	"github.com/fgm/verbump/internal/commands/set"
	"github.com/fgm/verbump/internal/commands/show"
	"github.com/fgm/verbump/internal/config"
	"github.com/fgm/verbump/internal/printer"
	"github.com/fgm/verbump/internal/version"
	urfavecli "github.com/urfave/cli/v3"
)

// New builds and returns the root CLI command,
// configuring all subcommands and flags for the verbump cli.
func New() *urfavecli.Command {
	cfg := config.Default()

	return &urfavecli.Command{
		Name:                  "verbump",
		Version:               fmt.Sprintf("v%s", version.GetVersion()),
		Usage:                 "Find and update version strings across manifest and source files",
		EnableShellCompletion: true,
		Flags: []urfavecli.Flag{
			&urfavecli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to the config file",
				DefaultText: config.ConfigFileYAML,
			},
			&urfavecli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored output",
			},
		},
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			printer.SetNoColor(cmd.Bool("no-color"))

			loaded, err := config.Load(cmd.String("config"))
			if err != nil {
				return ctx, err
			}
			*cfg = *loaded
			return ctx, nil
		},
		Commands: []*urfavecli.Command{
			show.Run(cfg),
			set.Run(cfg),
			bump.Run(cfg),
			doctor.Run(cfg),
			discover.Run(),
		},
	}
}
