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
	"fmt"
	"log/slog"

	"github.com/coreos/go-systemd/v22/dbus"

	"github.com/ptyrad/ptyenv/pkg/report"
)

// serviceStateKeys are the unit properties worth reporting; everything
// else systemd exposes is noise here.
var serviceStateKeys = []string{
	"ActiveState",
	"SubState",
	"LoadState",
	"UnitFileState",
}

// ServicesProbe reports the state of GPU-related systemd units such as
// nvidia-persistenced. Hosts without systemd get a notice, not an error.
type ServicesProbe struct {
	Services []string

	// connect is injectable for tests; nil uses the system D-Bus.
	connect func(ctx context.Context) (systemdConn, error)
}

// systemdConn is the slice of the dbus connection the probe uses.
type systemdConn interface {
	GetUnitPropertiesContext(ctx context.Context, unit string) (map[string]any, error)
	Close()
}

// Name implements the Probe interface.
func (p *ServicesProbe) Name() string { return "services" }

// Collect implements the Probe interface.
func (p *ServicesProbe) Collect(ctx context.Context) (*report.Section, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	slog.Debug("collecting systemd service states", "services", p.Services)

	connect := p.connect
	if connect == nil {
		connect = func(ctx context.Context) (systemdConn, error) {
			return dbus.NewSystemdConnectionContext(ctx)
		}
	}

	s := report.NewSection(p.Name())

	conn, err := connect(ctx)
	if err != nil {
		s.Set(report.KeyNotice, report.Str("systemd is not available on this host"))
		return s, nil
	}
	defer conn.Close()

	for _, service := range p.Services {
		props, err := conn.GetUnitPropertiesContext(ctx, service)
		if err != nil {
			s.Set(service, report.Str("state unknown: "+err.Error()))
			continue
		}

		readings := make(map[string]report.Reading, len(props))
		for k, v := range props {
			readings[k] = report.ToReading(v)
		}
		for k, v := range report.FilterIn(readings, serviceStateKeys) {
			s.Set(fmt.Sprintf("%s.%s", service, k), v)
		}
	}

	return s, nil
}
