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

// Package device selects the compute device used for reconstruction runs:
// CPU, an indexed CUDA GPU, or the unified-memory accelerator on Apple
// silicon. Selection never fails; unavailable backends downgrade with a
// printed warning.
package device

import (
	"fmt"
	"sync"
)

// Kind identifies a compute backend.
type Kind int

// Compute backend kinds. CUDA and Unified are mutually exclusive on any
// given host.
const (
	CPU Kind = iota
	CUDA
	Unified
)

// String returns the backend name.
func (k Kind) String() string {
	switch k {
	case CUDA:
		return "cuda"
	case Unified:
		return "unified"
	default:
		return "cpu"
	}
}

// Device is an opaque handle for a selected compute backend.
type Device struct {
	Kind  Kind
	Index int
	Name  string
}

// String renders the handle like "cuda:1", "cpu", or "unified". A CUDA
// device without a meaningful index renders as plain "cuda".
func (d Device) String() string {
	if d.Kind == CUDA && d.Index >= 0 {
		return fmt.Sprintf("cuda:%d", d.Index)
	}
	return d.Kind.String()
}

var (
	defaultMu     sync.RWMutex
	defaultDevice = Device{Kind: CPU}
)

// SetDefault sets the process-wide default device. Subsequent allocation
// decisions elsewhere read it through Default.
func SetDefault(d Device) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultDevice = d
}

// Default returns the process-wide default device. CPU until a selection
// has been made.
func Default() Device {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultDevice
}
