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

package defaults

import "time"

// Probe timeouts for environment introspection.
const (
	// ProbeTimeout is the default timeout for a single probe.
	// Probes should respect parent context deadlines when shorter.
	ProbeTimeout = 10 * time.Second

	// GPUProbeTimeout is the timeout for nvidia-smi invocations. The tool
	// can stall for several seconds when a device is in a reset cycle.
	GPUProbeTimeout = 30 * time.Second

	// ServiceProbeTimeout is the timeout for systemd D-Bus queries.
	ServiceProbeTimeout = 10 * time.Second
)

// CLI timeouts for command-line operations.
const (
	// CLIReportTimeout is the default timeout for a full report run.
	CLIReportTimeout = 2 * time.Minute
)
