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

// Package probe implements best-effort environment probes: platform, CPU,
// memory, GPU, unified-memory accelerator, runtime, dependency versions,
// and systemd service state.
//
// Each probe gathers one named report.Section. Probes are best-effort by
// contract: a broken or absent backend (no nvidia-smi, no systemd, no
// procfs) produces a section with a notice line rather than an error.
// Wrap probes with Safe to get that behavior for unexpected failures too.
//
// Scheduler allocations win over host introspection: the CPU and memory
// probes prefer SLURM_JOB_CPUS_PER_NODE, SLURM_MEM_PER_NODE, and
// SLURM_MEM_PER_CPU over runtime.NumCPU and /proc/meminfo so cluster jobs
// report their actual allocation.
//
// The Factory creates probes with production dependencies; tests inject
// fakes through the probes' unexported hooks.
package probe
