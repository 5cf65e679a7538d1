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
	"os"
	"runtime"

	"github.com/ptyrad/ptyenv/pkg/report"
)

// RuntimeProbe reports the executable path and Go runtime version.
type RuntimeProbe struct{}

// Name implements the Probe interface.
func (p *RuntimeProbe) Name() string { return "runtime" }

// Collect implements the Probe interface.
func (p *RuntimeProbe) Collect(ctx context.Context) (*report.Section, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s := report.NewSection(p.Name())
	s.Set(report.KeyVersion, report.Str(runtime.Version()))

	if exe, err := os.Executable(); err == nil {
		s.Set(report.KeyExecutable, report.Str(exe))
	}

	return s, nil
}
