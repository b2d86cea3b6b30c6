package main

import (
	"context"

	"github.com/urfave/cli/v3"
)

// Applicator defines the interface for the core application logic.
// This allows the CLI to be tested independently of the main app implementation.
type Applicator interface {
	Direct(ctx context.Context, author, year, licenseKey string) error
	Interactive(ctx context.Context, author, year, licenseKey string) error
}

// BuildCLI creates the full CLI command structure for the application.
// It injects the core application logic (the Applicator) into the command action.
func BuildCLI(app Applicator) *cli.Command {
	return &cli.Command{
		Name:    "lic",
		Usage:   "Initialize a LICENSE file using the GitHub licenses API",
		Version: "0.1.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "author",
				Aliases: []string{"a"},
				Usage:   "copyright holder name (defaults to git config user.name)",
			},
			&cli.StringFlag{
				Name:    "year",
				Aliases: []string{"y"},
				Usage:   "copyright year (defaults to the current year)",
			},
			&cli.StringFlag{
				Name:    "license",
				Aliases: []string{"l"},
				Usage:   "license key, e.g. mit, apache-2.0, gpl-3.0 (defaults to 'mit' in direct mode)",
			},
			&cli.BoolFlag{
				Name:    "interactive",
				Aliases: []string{"i"},
				Usage:   "choose the license and details interactively",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Bool("interactive") {
				return app.Interactive(ctx, c.String("author"), c.String("year"), c.String("license"))
			}
			return app.Direct(ctx, c.String("author"), c.String("year"), c.String("license"))
		},
	}
}
