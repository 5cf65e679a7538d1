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
	"github.com/ptyrad/ptyenv/pkg/logging"
)

// Selector picks a compute device from a requested identifier and what the
// host offers.
type Selector struct {
	Capabilities Capabilities
	Printer      *logging.Printer
}

// NewSelector creates a selector with production capabilities.
func NewSelector(p *logging.Printer) *Selector {
	return &Selector{
		Capabilities: NewSMICapabilities(),
		Printer:      p,
	}
}

// Select chooses a device and sets it as the process default. A nil id
// means CPU regardless of hardware. With an id, an in-range CUDA index is
// honored; out of range falls back to the generic CUDA device; a host
// without CUDA uses the unified-memory accelerator when present (the
// numeric id is ignored for that backend) and otherwise CPU. Downgrades
// print a warning. Select never fails.
func (s *Selector) Select(id *int) Device {
	p := s.Printer
	if p == nil {
		p = &logging.Printer{Verbose: true}
	}
	caps := s.Capabilities
	if caps == nil {
		caps = NewSMICapabilities()
	}

	p.Print("### Setting compute device ###")

	d := s.pick(id, caps, p)
	SetDefault(d)
	p.Print(" ")
	return d
}

func (s *Selector) pick(id *int, caps Capabilities, p *logging.Printer) Device {
	if id == nil {
		p.Print("Specified to use CPU (no device id).")
		return Device{Kind: CPU}
	}

	if count := caps.CUDADeviceCount(); count > 0 {
		if *id < count && *id >= 0 {
			d := Device{Kind: CUDA, Index: *id, Name: caps.CUDADeviceName(*id)}
			p.Printf("Selected GPU device: %s (%s)", d, d.Name)
			return d
		}
		d := Device{Kind: CUDA, Index: -1}
		p.Printf("Requested CUDA device cuda:%d is out of range (only %d available). "+
			"Fall back to GPU device: %s", *id, count, d)
		return d
	}

	if caps.UnifiedAvailable() {
		p.Print("Selected GPU device: unified memory (Apple silicon)")
		return Device{Kind: Unified, Name: "Apple silicon"}
	}

	p.Printf("GPU id specified as %d but no GPU found. Using CPU instead.", *id)
	return Device{Kind: CPU}
}
