/*
Copyright © 2025 PtyRAD authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/ptyrad/ptyenv/pkg/logging"
	"github.com/ptyrad/ptyenv/pkg/serializer"
)

// parseOutputFormat validates the --format flag value.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q (supported values: %v)",
			f, serializer.SupportedFormats())
	}
	return f, nil
}

// loggerConfigFrom builds the logger configuration from the global flags.
// An empty --log-file disables file flushing, matching a nil log file in
// the reconstruction parameter files.
func loggerConfigFrom(cmd *cli.Command) logging.Config {
	cfg := logging.Config{
		LogDir:        cmd.String("log-dir"),
		PrefixDate:    cmd.Bool("prefix-date"),
		PrefixJobID:   int(cmd.Int("job-id")),
		AppendToFile:  cmd.Bool("append"),
		ShowTimestamp: cmd.Bool("timestamps"),
	}
	if logFile := cmd.String("log-file"); logFile != "" {
		cfg.LogFile = &logFile
	}
	return cfg
}

// gpuIDFrom returns the requested device id, or nil when --gpu-id was not
// given. Nil requests CPU.
func gpuIDFrom(cmd *cli.Command) *int {
	if !cmd.IsSet("gpu-id") {
		return nil
	}
	id := int(cmd.Int("gpu-id"))
	return &id
}
