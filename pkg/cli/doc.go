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

// Package cli implements the ptyenv command line interface.
//
// # Commands
//
// info: collects the system information report, selects the compute
// device, and flushes the buffered status lines to the configured log
// file. The report can additionally be serialized with --output/--format.
//
// device: selects the compute device and prints the chosen handle.
//
// config: loads a YAML or JSON reconstruction parameter file and
// pretty-prints it as an indented tree.
//
// version: prints version information.
//
// # Global Flags
//
// The logger flags (--log-file, --log-dir, --prefix-date, --job-id,
// --append, --timestamps) mirror the logger options of the
// reconstruction driver, and --verbose gates all status output. Output
// is additionally suppressed on non-zero ranks of a distributed run.
package cli
