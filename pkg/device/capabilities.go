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

package device

import (
	"context"
	"os/exec"
	"runtime"
	"strings"
	"sync"
)

// Capabilities probes which compute backends the host offers. Injectable
// so selection logic can be tested without hardware.
type Capabilities interface {
	// CUDADeviceCount returns the number of visible CUDA devices.
	CUDADeviceCount() int

	// CUDADeviceName returns the product name of the indexed device, or
	// "" when the index is out of range.
	CUDADeviceName(index int) string

	// UnifiedAvailable reports whether a unified-memory accelerator is
	// present.
	UnifiedAvailable() bool
}

// SMICapabilities probes CUDA devices through nvidia-smi and detects the
// unified-memory backend from the build platform. Results are cached for
// the lifetime of the value; device topology does not change mid-run.
type SMICapabilities struct {
	once  sync.Once
	names []string

	// hooks for tests
	runner   func(ctx context.Context, name string, args ...string) ([]byte, error)
	lookPath func(file string) (string, error)
	goos     string
	goarch   string
}

// NewSMICapabilities creates a production capability prober.
func NewSMICapabilities() *SMICapabilities {
	return &SMICapabilities{}
}

func (c *SMICapabilities) probe() {
	lookPath := c.lookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	if _, err := lookPath("nvidia-smi"); err != nil {
		return
	}

	run := c.runner
	if run == nil {
		run = func(ctx context.Context, name string, args ...string) ([]byte, error) {
			return exec.CommandContext(ctx, name, args...).Output()
		}
	}

	out, err := run(context.Background(), "nvidia-smi",
		"--query-gpu=name", "--format=csv,noheader")
	if err != nil {
		return
	}

	for _, line := range strings.Split(string(out), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			c.names = append(c.names, line)
		}
	}
}

// CUDADeviceCount implements the Capabilities interface.
func (c *SMICapabilities) CUDADeviceCount() int {
	c.once.Do(c.probe)
	return len(c.names)
}

// CUDADeviceName implements the Capabilities interface.
func (c *SMICapabilities) CUDADeviceName(index int) string {
	c.once.Do(c.probe)
	if index < 0 || index >= len(c.names) {
		return ""
	}
	return c.names[index]
}

// UnifiedAvailable implements the Capabilities interface.
func (c *SMICapabilities) UnifiedAvailable() bool {
	goos, goarch := c.goos, c.goarch
	if goos == "" {
		goos = runtime.GOOS
	}
	if goarch == "" {
		goarch = runtime.GOARCH
	}
	return goos == "darwin" && goarch == "arm64"
}
