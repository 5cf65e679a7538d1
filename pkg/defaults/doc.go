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

// Package defaults provides centralized timeout constants.
//
// Centralizing these values ensures consistency across probes and makes
// tuning easier.
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/ptyrad/ptyenv/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.ProbeTimeout)
//	defer cancel()
//
// # Timeout Guidelines
//
//   - Probes: 10s default, respects parent context deadline
//   - GPU probe: 30s, nvidia-smi can stall during device resets
//   - Full report run: 2m
package defaults
