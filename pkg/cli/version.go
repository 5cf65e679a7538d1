/*
Copyright © 2025 PtyRAD authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

func versionCmd() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print version information",
		Action: func(_ context.Context, cmd *cli.Command) error {
			out := cmd.Root().Writer
			fmt.Fprintf(out, "%s version %s\n", name, version)
			fmt.Fprintf(out, "commit:  %s\n", commit)
			fmt.Fprintf(out, "built:   %s\n", date)
			return nil
		},
	}
}
