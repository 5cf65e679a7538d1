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
	"runtime"

	"github.com/ptyrad/ptyenv/pkg/report"
)

// AccelProbe reports whether a unified-memory accelerator (Apple silicon)
// is present. Mutually exclusive with the CUDA backend.
type AccelProbe struct {
	// GOOS and GOARCH override the build platform. Injectable for tests;
	// empty uses runtime values.
	GOOS   string
	GOARCH string
}

// Name implements the Probe interface.
func (p *AccelProbe) Name() string { return "accel" }

// Collect implements the Probe interface.
func (p *AccelProbe) Collect(ctx context.Context) (*report.Section, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	goos, goarch := p.GOOS, p.GOARCH
	if goos == "" {
		goos = runtime.GOOS
	}
	if goarch == "" {
		goarch = runtime.GOARCH
	}

	unified := goos == "darwin" && goarch == "arm64"

	s := report.NewSection(p.Name())
	s.Set("unified-memory", report.Bool(unified))
	if unified {
		s.Set(report.KeyGPUNames, report.Str("Apple silicon"))
	}
	return s, nil
}
