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

// Package report defines the data model for environment reports: named
// sections of type-safe readings collected from the platform, accelerator,
// and runtime probes.
//
// # Core Types
//
//   - Section: Named collection of key-value data (e.g., "gpu", "memory")
//   - Reading: Interface for type-safe scalar values (int, float64, string, bool, etc.)
//   - Scalar[T]: Generic wrapper that keeps compile-time type constraints
//     behind the runtime Reading interface
//
// # Creating Sections
//
// Use the convenience constructors to build a section:
//
//	s := NewSection("gpu").
//	    Set(KeyGPUCount, Int(2)).
//	    Set(KeyGPUDriver, Str("550.54.15")).
//	    Set(KeyCUDAVersion, Str("12.4"))
//
// # Accessing Data
//
// Use type-safe getters to retrieve values:
//
//	driver, err := s.GetString(KeyGPUDriver)
//	count, err := s.GetInt(KeyGPUCount)
//
// # Filtering Data
//
// Select wanted keys using wildcard patterns:
//
//	// Keep only the service state fields
//	kept := FilterIn(readings, []string{"*State", "SubState"})
//
// # Serialization
//
// Sections support JSON and YAML marshaling/unmarshaling:
//
//	data, _ := json.Marshal(s)
//	yaml, _ := yaml.Marshal(s)
//
// The Reading interface is automatically marshaled to its underlying value,
// avoiding wrapper structures in the output.
package report
