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

package report

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Common section keys exported for consistency and type safety.
const (
	// Platform section keys
	KeyOSName    = "os"
	KeyOSVersion = "os-version"
	KeyMachine   = "machine"
	KeyProcessor = "processor"
	KeyKernel    = "kernel"
	KeyHostname  = "hostname"

	// CPU / memory section keys
	KeyCPUCount   = "cpu-count"
	KeyCPUSource  = "cpu-source"
	KeyMemTotalGB = "memory-total-gb"
	KeyMemAvailGB = "memory-available-gb"
	KeyMemSource  = "memory-source"

	// GPU section keys
	KeyGPUCount      = "gpu-count"
	KeyGPUDriver     = "driver"
	KeyCUDAVersion   = "cuda-version"
	KeyGPUNames      = "devices"
	KeyGPUCapability = "compute-capability"

	// Runtime / package section keys
	KeyExecutable = "executable"
	KeyVersion    = "version"
	KeyPath       = "path"

	// Notice is the key used for best-effort diagnostic lines.
	KeyNotice = "notice"
)

// Section is a named group of readings within a system report, e.g. the
// "gpu" section with driver and device keys. Context carries metadata about
// how the readings were obtained.
type Section struct {
	Name    string             `json:"section,omitempty" yaml:"section,omitempty"`
	Data    map[string]Reading `json:"data" yaml:"data"`
	Context map[string]string  `json:"context,omitempty" yaml:"context,omitempty"`
}

// NewSection creates an empty named section.
func NewSection(name string) *Section {
	return &Section{
		Name: name,
		Data: make(map[string]Reading),
	}
}

// Set stores a reading under key and returns the section for chaining.
func (s *Section) Set(key string, r Reading) *Section {
	if s.Data == nil {
		s.Data = make(map[string]Reading)
	}
	s.Data[key] = r
	return s
}

// UnmarshalJSON custom unmarshaler for Section to handle the Reading
// interface.
func (s *Section) UnmarshalJSON(data []byte) error {
	var tmp struct {
		Name    string            `json:"section"`
		Data    map[string]any    `json:"data"`
		Context map[string]string `json:"context"`
	}

	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}

	s.Name = tmp.Name
	s.Context = tmp.Context
	s.Data = make(map[string]Reading)
	for k, v := range tmp.Data {
		s.Data[k] = ToReading(v)
	}
	return nil
}

// UnmarshalYAML custom unmarshaler for Section to handle the Reading
// interface.
func (s *Section) UnmarshalYAML(node *yaml.Node) error {
	var tmp struct {
		Name    string            `yaml:"section"`
		Data    map[string]any    `yaml:"data"`
		Context map[string]string `yaml:"context"`
	}

	if err := node.Decode(&tmp); err != nil {
		return err
	}

	s.Name = tmp.Name
	s.Context = tmp.Context
	s.Data = make(map[string]Reading)
	for k, v := range tmp.Data {
		s.Data[k] = ToReading(v)
	}
	return nil
}

// Validate checks if the section is properly formed.
func (s *Section) Validate() error {
	if s.Name == "" {
		return errors.New("section name cannot be empty")
	}
	if len(s.Data) == 0 {
		return errors.New("section data cannot be empty")
	}
	return nil
}

// Has checks if a key exists in the section data.
func (s *Section) Has(key string) bool {
	_, exists := s.Data[key]
	return exists
}

// Get retrieves a reading by key, returning nil if not found.
func (s *Section) Get(key string) Reading {
	return s.Data[key]
}

// GetString attempts to retrieve a string value, returning an error if not
// found or wrong type.
func (s *Section) GetString(key string) (string, error) {
	reading := s.Data[key]
	if reading == nil {
		return "", fmt.Errorf("key %q not found", key)
	}
	v, ok := reading.Any().(string)
	if !ok {
		return "", fmt.Errorf("key %q is not a string", key)
	}
	return v, nil
}

// GetInt attempts to retrieve an integer value, returning an error if not
// found or wrong type.
func (s *Section) GetInt(key string) (int, error) {
	reading := s.Data[key]
	if reading == nil {
		return 0, fmt.Errorf("key %q not found", key)
	}
	switch v := reading.Any().(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	default:
		return 0, fmt.Errorf("key %q is not an integer", key)
	}
}

// AllowedScalar is a constraint (compile-time) for what we allow as
// readings.
type AllowedScalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 |
		~bool |
		~string
}

// Reading is a *runtime* interface (so it can be stored in a map with mixed
// types).
type Reading interface {
	isReading()
	Any() any
	String() string

	json.Marshaler
	json.Unmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
}

// Scalar wraps an allowed scalar type. This is how we keep compile-time
// constraints while still using a runtime interface.
type Scalar[T AllowedScalar] struct {
	V T
}

func (Scalar[T]) isReading() {}

func (s Scalar[T]) Any() any { return s.V }

// String returns the string representation of the underlying scalar value.
func (s Scalar[T]) String() string {
	return fmt.Sprintf("%v", s.V)
}

// MarshalJSON makes the JSON value be the underlying scalar (not an object
// wrapper).
func (s Scalar[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.V)
}

// MarshalYAML makes the YAML value be the underlying scalar (not an object
// wrapper).
func (s Scalar[T]) MarshalYAML() (any, error) {
	return s.V, nil
}

// UnmarshalJSON unmarshals a JSON value into the underlying scalar.
func (s *Scalar[T]) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &s.V)
}

// UnmarshalYAML unmarshals a YAML value into the underlying scalar.
func (s *Scalar[T]) UnmarshalYAML(node *yaml.Node) error {
	return node.Decode(&s.V)
}

// ToReading creates a Reading from any allowed scalar type. If the type is
// not allowed, it returns a string representation.
func ToReading(v any) Reading {
	switch val := v.(type) {
	case int:
		return Int(val)
	case int64:
		return Int64(val)
	case uint:
		return Uint(val)
	case uint64:
		return Uint64(val)
	case float64:
		return Float64(val)
	case bool:
		return Bool(val)
	case string:
		return Str(val)
	default:
		return Str(fmt.Sprintf("%v", val))
	}
}

// Convenience constructors for each allowed scalar type.
func Int(v int) Reading         { return &Scalar[int]{V: v} }
func Int64(v int64) Reading     { return &Scalar[int64]{V: v} }
func Uint(v uint) Reading       { return &Scalar[uint]{V: v} }
func Uint64(v uint64) Reading   { return &Scalar[uint64]{V: v} }
func Float64(v float64) Reading { return &Scalar[float64]{V: v} }
func Bool(v bool) Reading       { return &Scalar[bool]{V: v} }
func Str(v string) Reading      { return &Scalar[string]{V: v} }
