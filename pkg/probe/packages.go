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
	"runtime/debug"

	"github.com/ptyrad/ptyenv/pkg/report"
)

// trackedPackages are the dependencies whose versions appear in the report.
var trackedPackages = []struct {
	Display string
	Module  string
}{
	{"YAML", "gopkg.in/yaml.v3"},
	{"Prometheus", "github.com/prometheus/client_golang"},
	{"CLI", "github.com/urfave/cli/v3"},
	{"SystemD", "github.com/coreos/go-systemd/v22"},
}

// readBuildInfo is injectable for tests.
var readBuildInfo = debug.ReadBuildInfo

// PackagesProbe reports the resolved versions of tracked dependencies from
// the build info embedded in the binary. A missing module is informational,
// not an error.
type PackagesProbe struct{}

// Name implements the Probe interface.
func (p *PackagesProbe) Name() string { return "packages" }

// Collect implements the Probe interface.
func (p *PackagesProbe) Collect(ctx context.Context) (*report.Section, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s := report.NewSection(p.Name())

	bi, ok := readBuildInfo()
	if !ok {
		s.Set(report.KeyNotice, report.Str("build info not embedded in this binary"))
		return s, nil
	}

	versions := make(map[string]string, len(bi.Deps))
	for _, dep := range bi.Deps {
		versions[dep.Path] = dep.Version
	}

	for _, pkg := range trackedPackages {
		if v, found := versions[pkg.Module]; found {
			s.Set(pkg.Display, report.Str(v))
		} else {
			s.Set(pkg.Display, report.Str("not installed"))
		}
	}

	return s, nil
}
