// Copyright (c) 2025, PtyRAD authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"context"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/ptyrad/ptyenv/pkg/serializer"
)

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		name       string
		format     string
		wantFormat serializer.Format
		wantErr    bool
	}{
		{
			name:       "valid yaml format",
			format:     "yaml",
			wantFormat: serializer.FormatYAML,
			wantErr:    false,
		},
		{
			name:       "valid json format",
			format:     "json",
			wantFormat: serializer.FormatJSON,
			wantErr:    false,
		},
		{
			name:       "valid table format",
			format:     "table",
			wantFormat: serializer.FormatTable,
			wantErr:    false,
		},
		{
			name:       "invalid format xml",
			format:     "xml",
			wantFormat: "",
			wantErr:    true,
		},
		{
			name:       "empty format",
			format:     "",
			wantFormat: "",
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cli.Command{
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Value: tt.format,
					},
				},
				Action: func(_ context.Context, c *cli.Command) error {
					got, err := parseOutputFormat(c)
					if (err != nil) != tt.wantErr {
						t.Errorf("parseOutputFormat() error = %v, wantErr %v", err, tt.wantErr)
						return nil
					}
					if !tt.wantErr && got != tt.wantFormat {
						t.Errorf("parseOutputFormat() = %v, want %v", got, tt.wantFormat)
					}
					return nil
				},
			}

			if err := cmd.Run(context.Background(), []string{"test"}); err != nil {
				t.Fatalf("failed to run command: %v", err)
			}
		})
	}
}

func TestLoggerConfigFrom(t *testing.T) {
	cmd := &cli.Command{
		Flags: globalFlags(),
		Action: func(_ context.Context, c *cli.Command) error {
			cfg := loggerConfigFrom(c)
			if cfg.LogFile == nil || *cfg.LogFile != "run.log" {
				t.Errorf("LogFile = %v, want run.log", cfg.LogFile)
			}
			if cfg.LogDir != "out" {
				t.Errorf("LogDir = %q, want out", cfg.LogDir)
			}
			if cfg.PrefixJobID != 3 {
				t.Errorf("PrefixJobID = %d, want 3", cfg.PrefixJobID)
			}
			if cfg.PrefixDate {
				t.Error("PrefixDate = true, want false")
			}
			if !cfg.AppendToFile || !cfg.ShowTimestamp {
				t.Error("append/timestamps defaults should remain true")
			}
			return nil
		},
	}

	args := []string{"test",
		"--log-file", "run.log",
		"--log-dir", "out",
		"--job-id", "3",
		"--prefix-date=false",
	}
	if err := cmd.Run(context.Background(), args); err != nil {
		t.Fatalf("failed to run command: %v", err)
	}
}

func TestLoggerConfigFromEmptyLogFileDisablesFlushing(t *testing.T) {
	cmd := &cli.Command{
		Flags: globalFlags(),
		Action: func(_ context.Context, c *cli.Command) error {
			if cfg := loggerConfigFrom(c); cfg.LogFile != nil {
				t.Errorf("LogFile = %v, want nil", cfg.LogFile)
			}
			return nil
		},
	}

	if err := cmd.Run(context.Background(), []string{"test", "--log-file", ""}); err != nil {
		t.Fatalf("failed to run command: %v", err)
	}
}

func TestGPUIDFrom(t *testing.T) {
	run := func(t *testing.T, args []string, want *int) {
		t.Helper()
		cmd := &cli.Command{
			Flags: []cli.Flag{&cli.IntFlag{Name: "gpu-id"}},
			Action: func(_ context.Context, c *cli.Command) error {
				got := gpuIDFrom(c)
				switch {
				case want == nil && got != nil:
					t.Errorf("gpuIDFrom() = %d, want nil", *got)
				case want != nil && got == nil:
					t.Errorf("gpuIDFrom() = nil, want %d", *want)
				case want != nil && got != nil && *got != *want:
					t.Errorf("gpuIDFrom() = %d, want %d", *got, *want)
				}
				return nil
			},
		}
		if err := cmd.Run(context.Background(), args); err != nil {
			t.Fatalf("failed to run command: %v", err)
		}
	}

	run(t, []string{"test"}, nil)
	zero := 0
	run(t, []string{"test", "--gpu-id", "0"}, &zero)
	two := 2
	run(t, []string{"test", "--gpu-id", "2"}, &two)
}
