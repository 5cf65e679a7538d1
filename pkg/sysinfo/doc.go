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

// Package sysinfo collects and renders the environment report.
//
// Reporter fans the probes out concurrently, converts every probe failure
// into a notice line, renders the sections through a logging.Printer under
// a "### System information ###" banner, and returns the structured
// report.Report for serialization. Per-probe durations and report counts
// are exported as prometheus metrics.
package sysinfo
