/*
Copyright © 2025 PtyRAD authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/ptyrad/ptyenv/pkg/serializer"
)

const (
	name           = "ptyenv"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Shared output flags, reused by every command that serializes results.
var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Write serialized output to this file (default: stdout)",
	}
	formatFlag = &cli.StringFlag{
		Name: "format",
		Usage: fmt.Sprintf("Output format (supported values: %v)",
			serializer.SupportedFormats()),
		Value: string(serializer.FormatYAML),
	}
)

// globalFlags mirror the logger options of the reconstruction driver, so a
// report captured alongside a run lands in the same log file layout.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		// No short alias: -v belongs to the built-in version flag.
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "Enable status output (suppressed on non-zero ranks regardless)",
			Value: true,
		},
		&cli.StringFlag{
			Name:  "log-file",
			Usage: "Base log file name; empty disables file logging",
			Value: "output.log",
		},
		&cli.StringFlag{
			Name:  "log-dir",
			Usage: "Directory for the flushed log file ('auto' resolves to ./logs)",
			Value: "auto",
		},
		&cli.BoolFlag{
			Name:  "prefix-date",
			Usage: "Prefix the log file name with the current date (YYYYMMDD_)",
			Value: true,
		},
		&cli.IntFlag{
			Name:  "job-id",
			Usage: "Hypertune worker id; non-zero values prefix the log file name (NN_)",
		},
		&cli.BoolFlag{
			Name:  "append",
			Usage: "Append to an existing log file instead of truncating it",
			Value: true,
		},
		&cli.BoolFlag{
			Name:  "timestamps",
			Usage: "Include a timestamp on every log line",
			Value: true,
		},
	}
}

func rootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "Ptychography environment inspection and logging utilities",
		Version:               version,
		EnableShellCompletion: true,
		Flags:                 globalFlags(),
		Commands: []*cli.Command{
			infoCmd(),
			deviceCmd(),
			configCmd(),
			versionCmd(),
		},
	}
}

// Execute runs the CLI. It is called by main.main() and only returns after
// the selected command completes or the process is interrupted.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
