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

	"github.com/ptyrad/ptyenv/pkg/report"
)

// AppProbe reports the tool's own version and module path. The linker-set
// version takes precedence over module build info, which reports "(devel)"
// for source builds.
type AppProbe struct {
	Version string
}

// Name implements the Probe interface.
func (p *AppProbe) Name() string { return "app" }

// Collect implements the Probe interface.
func (p *AppProbe) Collect(ctx context.Context) (*report.Section, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s := report.NewSection(p.Name())

	version := p.Version
	path := ""
	if bi, ok := readBuildInfo(); ok {
		path = bi.Main.Path
		if version == "" {
			version = bi.Main.Version
		}
	}

	if version == "" {
		s.Set(report.KeyNotice, report.Str("version not recorded in this build"))
	} else {
		s.Set(report.KeyVersion, report.Str(version))
	}
	if path != "" {
		s.Set(report.KeyPath, report.Str(path))
	}

	return s, nil
}
