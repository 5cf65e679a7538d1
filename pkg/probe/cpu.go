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
	"strconv"

	"github.com/ptyrad/ptyenv/pkg/report"
)

const envCPUsPerNode = "SLURM_JOB_CPUS_PER_NODE"

// CPUProbe reports the CPU core count available to the process. A scheduler
// allocation takes precedence over the host core count so that reports from
// cluster jobs reflect the actual allocation.
type CPUProbe struct{}

// Name implements the Probe interface.
func (p *CPUProbe) Name() string { return "cpu" }

// Collect implements the Probe interface.
func (p *CPUProbe) Collect(ctx context.Context) (*report.Section, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cpus, source := availableCPUs()

	s := report.NewSection(p.Name())
	s.Set(report.KeyCPUCount, report.Int(cpus))
	s.Set(report.KeyCPUSource, report.Str(source))
	return s, nil
}

// availableCPUs returns the usable CPU count and where it came from.
func availableCPUs() (int, string) {
	if v, ok := os.LookupEnv(envCPUsPerNode); ok {
		if cpus, err := strconv.Atoi(v); err == nil && cpus > 0 {
			return cpus, envCPUsPerNode
		}
	}
	return runtime.NumCPU(), "runtime"
}
