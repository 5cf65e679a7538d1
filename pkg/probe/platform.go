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

package probe

import (
	"context"
	"os"
	"runtime"

	"github.com/ptyrad/ptyenv/pkg/kvfile"
	"github.com/ptyrad/ptyenv/pkg/report"
)

var (
	filePathReleasePrimary  = "/etc/os-release"
	filePathReleaseFallback = "/usr/lib/os-release"
	filePathKernelRelease   = "/proc/sys/kernel/osrelease"
	filePathCPUInfo         = "/proc/cpuinfo"
)

// PlatformProbe reports OS name, version, machine architecture, and
// processor model.
type PlatformProbe struct{}

// Name implements the Probe interface.
func (p *PlatformProbe) Name() string { return "platform" }

// Collect gathers platform readings. Keys that cannot be resolved on the
// current platform are left out rather than reported as errors; macOS and
// Windows hosts simply get a shorter section.
func (p *PlatformProbe) Collect(ctx context.Context) (*report.Section, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s := report.NewSection(p.Name())
	s.Set(report.KeyOSName, report.Str(runtime.GOOS))
	s.Set(report.KeyMachine, report.Str(runtime.GOARCH))

	if hostname, err := os.Hostname(); err == nil {
		s.Set(report.KeyHostname, report.Str(hostname))
	}

	if kernel, ok := readKernelRelease(); ok {
		s.Set(report.KeyKernel, report.Str(kernel))
	}

	if pretty, ok := readOSRelease(); ok {
		s.Set(report.KeyOSVersion, report.Str(pretty))
	}

	if model, ok := readProcessorModel(); ok {
		s.Set(report.KeyProcessor, report.Str(model))
	}

	return s, nil
}

func readKernelRelease() (string, bool) {
	parser := kvfile.NewParser()
	lines, err := parser.GetLines(filePathKernelRelease)
	if err != nil || len(lines) == 0 {
		return "", false
	}
	return lines[0], true
}

// readOSRelease returns the PRETTY_NAME from os-release. Per the
// freedesktop.org spec the primary location falls back to /usr/lib.
func readOSRelease() (string, bool) {
	root := filePathReleasePrimary
	if _, err := os.Stat(root); os.IsNotExist(err) {
		root = filePathReleaseFallback
	}

	parser := kvfile.NewParser(
		kvfile.WithVTrimChars(`"'`),
		kvfile.WithSkipEmptyValues(true),
	)
	params, err := parser.GetMap(root)
	if err != nil {
		return "", false
	}

	if pretty, ok := params["PRETTY_NAME"]; ok {
		return pretty, true
	}
	if name, ok := params["NAME"]; ok {
		return name, true
	}
	return "", false
}

func readProcessorModel() (string, bool) {
	parser := kvfile.NewParser(kvfile.WithKVDelimiter(":"))
	params, err := parser.GetMap(filePathCPUInfo)
	if err != nil {
		return "", false
	}

	// x86 exposes "model name", arm64 typically only "CPU implementer".
	for _, key := range []string{"model name", "Model name", "Hardware"} {
		if model, ok := params[key]; ok {
			return model, true
		}
	}
	return "", false
}
