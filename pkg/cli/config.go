/*
Copyright © 2025 PtyRAD authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/ptyrad/ptyenv/pkg/logging"
	"github.com/ptyrad/ptyenv/pkg/nested"
	"github.com/ptyrad/ptyenv/pkg/serializer"
)

func configCmd() *cli.Command {
	return &cli.Command{
		Name:                  "config",
		EnableShellCompletion: true,
		Usage:                 "Pretty-print a reconstruction parameter file",
		Description: `Load a YAML or JSON parameter file and print it as an indented tree.
Nested groups whose entries are all scalars collapse onto one line when
they have at most --inline-threshold entries.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Usage:    "Path to the parameter file (.yaml, .yml, or .json)",
				Required: true,
			},
			&cli.IntFlag{
				Name:  "inline-threshold",
				Usage: "Maximum entries for a flat group to print on one line",
				Value: nested.DefaultInlineThreshold,
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			path := cmd.String("file")
			params, err := serializer.FromFile[map[string]any](path)
			if err != nil {
				return fmt.Errorf("failed to load parameter file: %w", err)
			}

			printer := logging.NewPrinter(nil)
			printer.Verbose = cmd.Bool("verbose")
			printer.Out = cmd.Root().Writer

			printer.Printf("### Listing params from %s ###", path)
			nested.Print(printer, *params,
				nested.WithInlineThreshold(int(cmd.Int("inline-threshold"))))
			printer.Print(" ")
			return nil
		},
	}
}
