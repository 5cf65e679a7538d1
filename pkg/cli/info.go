/*
Copyright © 2025 PtyRAD authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/ptyrad/ptyenv/pkg/defaults"
	"github.com/ptyrad/ptyenv/pkg/device"
	"github.com/ptyrad/ptyenv/pkg/logging"
	"github.com/ptyrad/ptyenv/pkg/probe"
	"github.com/ptyrad/ptyenv/pkg/serializer"
	"github.com/ptyrad/ptyenv/pkg/sysinfo"
)

func infoCmd() *cli.Command {
	return &cli.Command{
		Name:                  "info",
		EnableShellCompletion: true,
		Usage:                 "Report system information and select the compute device",
		Description: `Collect and print a report of the host environment:
  - Operating system, kernel, and processor
  - CPU and memory budgets (job scheduler aware)
  - CUDA devices, driver, and compute capability
  - Tracked package versions and GPU service states

Status lines are buffered and flushed to the configured log file, the way
a reconstruction run logs. The report can additionally be serialized to
JSON, YAML, or table format with --output/--format.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "gpu-id",
				Usage: "CUDA device id to select (omit to stay on CPU)",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			logger := logging.New(loggerConfigFrom(cmd))
			defer func() {
				if err := logger.Close(); err != nil {
					slog.Warn("failed to close logger", "error", err)
				}
			}()
			logger.LogConfiguration()

			printer := logging.NewPrinter(logger)
			printer.Verbose = cmd.Bool("verbose")

			selector := device.NewSelector(printer)
			selector.Select(gpuIDFrom(cmd))

			ctx, cancel := context.WithTimeout(ctx, defaults.CLIReportTimeout)
			defer cancel()

			reporter := &sysinfo.Reporter{
				Factory: probe.NewDefaultFactory(version),
				Printer: printer,
				Version: version,
				Logger:  logger.Slog(),
			}
			rep, err := reporter.Report(ctx)
			if err != nil {
				return fmt.Errorf("failed to collect system report: %w", err)
			}

			if cmd.String("output") != "" || cmd.IsSet("format") {
				ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
				defer func() {
					if closer, ok := ser.(serializer.Closer); ok {
						if err := closer.Close(); err != nil {
							slog.Warn("failed to close serializer", "error", err)
						}
					}
				}()
				if err := ser.Serialize(ctx, rep); err != nil {
					return fmt.Errorf("failed to serialize report: %w", err)
				}
			}

			return logger.FlushToFile("", nil)
		},
	}
}
