/*
Copyright © 2025 PtyRAD authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/ptyrad/ptyenv/pkg/device"
	"github.com/ptyrad/ptyenv/pkg/logging"
)

func deviceCmd() *cli.Command {
	return &cli.Command{
		Name:                  "device",
		EnableShellCompletion: true,
		Usage:                 "Select and print the compute device",
		Description: `Select the compute device the way a reconstruction run would:
a CUDA device when --gpu-id is given and in range, the unified-memory
accelerator on Apple silicon, and CPU otherwise. Selection never fails;
unavailable backends downgrade with a printed warning.

The chosen device handle is printed on the last line.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "gpu-id",
				Usage: "CUDA device id to select (omit to stay on CPU)",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			printer := logging.NewPrinter(nil)
			printer.Verbose = cmd.Bool("verbose")
			printer.Out = cmd.Root().Writer

			d := device.NewSelector(printer).Select(gpuIDFrom(cmd))
			fmt.Fprintln(cmd.Root().Writer, d)
			return nil
		},
	}
}
