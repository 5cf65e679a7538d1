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
	"log/slog"

	"github.com/ptyrad/ptyenv/pkg/report"
)

// Probe gathers one named section of environment readings.
type Probe interface {
	// Name returns the section name the probe reports under.
	Name() string

	// Collect gathers the readings. Implementations must respect ctx.
	Collect(ctx context.Context) (*report.Section, error)
}

// Safe runs a probe and converts any failure into a section holding a
// single notice line. Reporting must keep going when a probe breaks.
func Safe(ctx context.Context, p Probe) *report.Section {
	s, err := p.Collect(ctx)
	if err != nil {
		slog.Debug("probe failed", "probe", p.Name(), "error", err)
		return report.NewSection(p.Name()).
			Set(report.KeyNotice, report.Str(err.Error()))
	}
	return s
}

// Factory creates probes with their dependencies.
// This interface enables dependency injection for testing.
type Factory interface {
	CreatePlatformProbe() Probe
	CreateCPUProbe() Probe
	CreateMemoryProbe() Probe
	CreateGPUProbe() Probe
	CreateAccelProbe() Probe
	CreateRuntimeProbe() Probe
	CreatePackagesProbe() Probe
	CreateAppProbe() Probe
	CreateServicesProbe() Probe

	// Probes returns all probes in render order.
	Probes() []Probe
}

// DefaultFactory creates probes with production dependencies.
type DefaultFactory struct {
	// Version is the tool version reported by the app probe.
	Version string

	// Services are the systemd units inspected by the services probe.
	Services []string
}

// NewDefaultFactory creates a factory with default settings.
func NewDefaultFactory(version string) *DefaultFactory {
	return &DefaultFactory{
		Version: version,
		Services: []string{
			"nvidia-persistenced.service",
			"nvidia-fabricmanager.service",
		},
	}
}

// CreatePlatformProbe creates an OS and hardware platform probe.
func (f *DefaultFactory) CreatePlatformProbe() Probe {
	return &PlatformProbe{}
}

// CreateCPUProbe creates a CPU count probe.
func (f *DefaultFactory) CreateCPUProbe() Probe {
	return &CPUProbe{}
}

// CreateMemoryProbe creates a memory probe.
func (f *DefaultFactory) CreateMemoryProbe() Probe {
	return &MemoryProbe{}
}

// CreateGPUProbe creates an nvidia-smi probe.
func (f *DefaultFactory) CreateGPUProbe() Probe {
	return &GPUProbe{}
}

// CreateAccelProbe creates a unified-memory accelerator probe.
func (f *DefaultFactory) CreateAccelProbe() Probe {
	return &AccelProbe{}
}

// CreateRuntimeProbe creates a Go runtime probe.
func (f *DefaultFactory) CreateRuntimeProbe() Probe {
	return &RuntimeProbe{}
}

// CreatePackagesProbe creates a dependency version probe.
func (f *DefaultFactory) CreatePackagesProbe() Probe {
	return &PackagesProbe{}
}

// CreateAppProbe creates a probe for the tool's own version and path.
func (f *DefaultFactory) CreateAppProbe() Probe {
	return &AppProbe{Version: f.Version}
}

// CreateServicesProbe creates a systemd service state probe.
func (f *DefaultFactory) CreateServicesProbe() Probe {
	return &ServicesProbe{Services: f.Services}
}

// Probes returns all production probes in render order.
func (f *DefaultFactory) Probes() []Probe {
	return []Probe{
		f.CreatePlatformProbe(),
		f.CreateCPUProbe(),
		f.CreateMemoryProbe(),
		f.CreateGPUProbe(),
		f.CreateAccelProbe(),
		f.CreateRuntimeProbe(),
		f.CreatePackagesProbe(),
		f.CreateAppProbe(),
		f.CreateServicesProbe(),
	}
}
