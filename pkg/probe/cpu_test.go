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
	"runtime"
	"testing"
)

func TestCPUCollect_SchedulerAllocation(t *testing.T) {
	t.Setenv(envCPUsPerNode, "16")

	p := &CPUProbe{}
	s, err := p.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}

	cpus, err := s.GetInt("cpu-count")
	if err != nil || cpus != 16 {
		t.Errorf("expected cpu-count=16, got %v (err %v)", cpus, err)
	}
	if src, _ := s.GetString("cpu-source"); src != envCPUsPerNode {
		t.Errorf("expected source %q, got %q", envCPUsPerNode, src)
	}
}

func TestCPUCollect_HostFallback(t *testing.T) {
	t.Setenv(envCPUsPerNode, "")

	p := &CPUProbe{}
	s, err := p.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}

	cpus, err := s.GetInt("cpu-count")
	if err != nil || cpus != runtime.NumCPU() {
		t.Errorf("expected cpu-count=%d, got %v (err %v)", runtime.NumCPU(), cpus, err)
	}
	if src, _ := s.GetString("cpu-source"); src != "runtime" {
		t.Errorf("expected source runtime, got %q", src)
	}
}

func TestCPUCollect_UnparseableAllocation(t *testing.T) {
	// SLURM can report shapes like "16(x2)" for heterogeneous nodes; those
	// fall back to the host count rather than failing the probe.
	t.Setenv(envCPUsPerNode, "16(x2)")

	cpus, source := availableCPUs()
	if cpus != runtime.NumCPU() || source != "runtime" {
		t.Errorf("expected host fallback, got %d from %q", cpus, source)
	}
}
