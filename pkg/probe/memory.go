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
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/ptyrad/ptyenv/pkg/kvfile"
	"github.com/ptyrad/ptyenv/pkg/report"
)

const (
	envMemPerNode = "SLURM_MEM_PER_NODE"
	envMemPerCPU  = "SLURM_MEM_PER_CPU"
)

var filePathMeminfo = "/proc/meminfo"

// MemoryProbe reports total (and, when known, available) memory in GB.
// Scheduler allocations take precedence: per-node first, then per-CPU
// multiplied by the allocated CPU count, then the host's /proc/meminfo.
type MemoryProbe struct{}

// Name implements the Probe interface.
func (p *MemoryProbe) Name() string { return "memory" }

// Collect implements the Probe interface.
func (p *MemoryProbe) Collect(ctx context.Context) (*report.Section, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s := report.NewSection(p.Name())

	// SLURM reports memory allocations in MB.
	if mb, ok := envInt(envMemPerNode); ok {
		s.Set(report.KeyMemTotalGB, report.Float64(roundGB(float64(mb)/1024)))
		s.Set(report.KeyMemSource, report.Str(envMemPerNode))
		return s, nil
	}

	if mb, ok := envInt(envMemPerCPU); ok {
		cpus, _ := availableCPUs()
		s.Set(report.KeyMemTotalGB, report.Float64(roundGB(float64(mb)*float64(cpus)/1024)))
		s.Set(report.KeyMemSource, report.Str(envMemPerCPU))
		return s, nil
	}

	if total, avail, ok := readMeminfo(); ok {
		s.Set(report.KeyMemTotalGB, report.Float64(total))
		s.Set(report.KeyMemAvailGB, report.Float64(avail))
		s.Set(report.KeyMemSource, report.Str(filePathMeminfo))
		return s, nil
	}

	s.Set(report.KeyNotice, report.Str("memory information is not available on this platform"))
	return s, nil
}

func envInt(name string) (int, bool) {
	v, ok := os.LookupEnv(name)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// readMeminfo returns MemTotal and MemAvailable in GB.
func readMeminfo() (total, avail float64, ok bool) {
	parser := kvfile.NewParser(kvfile.WithKVDelimiter(":"))
	params, err := parser.GetMap(filePathMeminfo)
	if err != nil {
		return 0, 0, false
	}

	total, tok := meminfoGB(params["MemTotal"])
	avail, aok := meminfoGB(params["MemAvailable"])
	return total, avail, tok && aok
}

// meminfoGB parses a /proc/meminfo value like "527946000 kB" into GB.
func meminfoGB(v string) (float64, bool) {
	fields := strings.Fields(v)
	if len(fields) == 0 {
		return 0, false
	}
	kb, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, false
	}
	return roundGB(kb / (1024 * 1024)), true
}

// roundGB keeps two decimal places, matching the report's "%.2f GB" style.
func roundGB(gb float64) float64 {
	return math.Round(gb*100) / 100
}
