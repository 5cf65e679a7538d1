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
	"encoding/xml"
	"os/exec"
	"strconv"
	"strings"

	"github.com/ptyrad/ptyenv/pkg/errors"
	"github.com/ptyrad/ptyenv/pkg/report"
)

const nvidiaSMICommand = "nvidia-smi"

// TritonMinComputeCapability is the minimum CUDA compute capability
// required by Triton-backed kernel compilation.
const TritonMinComputeCapability = 7.0

// NVSMIDevice is the root of the nvidia-smi -q -x XML output.
type NVSMIDevice struct {
	XMLName       xml.Name   `xml:"nvidia_smi_log"`
	Timestamp     string     `xml:"timestamp"`
	DriverVersion string     `xml:"driver_version"`
	CudaVersion   string     `xml:"cuda_version"`
	AttachedGPUs  string     `xml:"attached_gpus"`
	GPUs          []NVSMIGPU `xml:"gpu"`
}

// NVSMIGPU is a single GPU entry in the nvidia-smi XML output.
type NVSMIGPU struct {
	ProductName         string `xml:"product_name"`
	ProductArchitecture string `xml:"product_architecture"`
	Serial              string `xml:"serial"`
	UUID                string `xml:"uuid"`
	FbMemoryUsage       struct {
		Total string `xml:"total"`
	} `xml:"fb_memory_usage"`
	MigMode struct {
		CurrentMig string `xml:"current_mig"`
		PendingMig string `xml:"pending_mig"`
	} `xml:"mig_mode"`
}

// GPUProbe reports CUDA device information via nvidia-smi. A host without
// the binary is not an error: it reports a zero-GPU section with a notice.
type GPUProbe struct {
	// runner executes a command and returns its stdout. Injectable for
	// tests; nil uses exec.CommandContext.
	runner func(ctx context.Context, name string, args ...string) ([]byte, error)

	// lookPath resolves a binary on PATH. Injectable for tests.
	lookPath func(file string) (string, error)
}

// Name implements the Probe interface.
func (p *GPUProbe) Name() string { return "gpu" }

// Collect implements the Probe interface.
func (p *GPUProbe) Collect(ctx context.Context) (*report.Section, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lookPath := p.lookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	if _, err := lookPath(nvidiaSMICommand); err != nil {
		return noGPUSection("nvidia-smi not found, assuming no CUDA devices"), nil
	}

	out, err := p.run(ctx, nvidiaSMICommand, "-q", "-x")
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return noGPUSection("nvidia-smi failed: " + err.Error()), nil
	}

	s, err := smiSection(out)
	if err != nil {
		return nil, err
	}

	// Compute capability needs a separate query; older drivers do not
	// support the field, so failure just drops the key.
	if caps, capErr := p.run(ctx, nvidiaSMICommand,
		"--query-gpu=compute_cap", "--format=csv,noheader"); capErr == nil {
		if cc := parseComputeCaps(caps); cc != "" {
			s.Set(report.KeyGPUCapability, report.Str(cc))
		}
	}

	return s, nil
}

func (p *GPUProbe) run(ctx context.Context, name string, args ...string) ([]byte, error) {
	if p.runner != nil {
		return p.runner(ctx, name, args...)
	}
	return exec.CommandContext(ctx, name, args...).Output()
}

// noGPUSection builds the section reported when no CUDA stack is present.
func noGPUSection(notice string) *report.Section {
	return report.NewSection("gpu").
		Set(report.KeyGPUCount, report.Int(0)).
		Set(report.KeyNotice, report.Str(notice))
}

// smiSection converts nvidia-smi XML output into a report section.
func smiSection(data []byte) (*report.Section, error) {
	device, err := parseSMIDevice(data)
	if err != nil {
		return nil, err
	}

	s := report.NewSection("gpu")
	s.Set(report.KeyGPUCount, report.Int(len(device.GPUs)))
	if device.DriverVersion != "" {
		s.Set(report.KeyGPUDriver, report.Str(device.DriverVersion))
	}
	if device.CudaVersion != "" {
		s.Set(report.KeyCUDAVersion, report.Str(device.CudaVersion))
	}

	if len(device.GPUs) == 0 {
		return s, nil
	}

	names := make([]string, 0, len(device.GPUs))
	for _, gpu := range device.GPUs {
		names = append(names, gpu.ProductName)
	}
	s.Set(report.KeyGPUNames, report.Str(strings.Join(names, ", ")))
	s.Set("architecture", report.Str(device.GPUs[0].ProductArchitecture))
	s.Set("memory", report.Str(device.GPUs[0].FbMemoryUsage.Total))
	return s, nil
}

func parseSMIDevice(data []byte) (*NVSMIDevice, error) {
	if len(data) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "empty nvidia-smi output")
	}
	var device NVSMIDevice
	if err := xml.Unmarshal(data, &device); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, "failed to parse nvidia-smi XML", err)
	}
	return &device, nil
}

// parseComputeCaps joins per-GPU compute capability lines like "9.0".
func parseComputeCaps(data []byte) string {
	var caps []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if _, err := strconv.ParseFloat(line, 64); err != nil {
			continue
		}
		caps = append(caps, line)
	}
	return strings.Join(caps, ", ")
}

// MinComputeCapability returns the lowest capability in a joined list
// produced by parseComputeCaps, or 0 when the list is empty or malformed.
func MinComputeCapability(joined string) float64 {
	min := 0.0
	for _, part := range strings.Split(joined, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			continue
		}
		if min == 0 || v < min {
			min = v
		}
	}
	return min
}
