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

package sysinfo

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ptyrad/ptyenv/pkg/defaults"
	"github.com/ptyrad/ptyenv/pkg/logging"
	"github.com/ptyrad/ptyenv/pkg/probe"
	"github.com/ptyrad/ptyenv/pkg/report"
)

// Reporter runs all environment probes, renders the readings through the
// printer, and returns the structured report for serialization.
type Reporter struct {
	Factory probe.Factory
	Printer *logging.Printer
	Version string
	Logger  *slog.Logger
}

// Report collects all probe sections concurrently and renders them. Probe
// failures never surface as errors; only context cancellation aborts.
func (r *Reporter) Report(ctx context.Context) (*report.Report, error) {
	if r.Logger == nil {
		r.Logger = slog.Default()
	}
	if r.Factory == nil {
		r.Factory = probe.NewDefaultFactory(r.Version)
	}
	if r.Printer == nil {
		r.Printer = &logging.Printer{Verbose: true}
	}

	r.Logger.Debug("starting environment report")
	start := time.Now()

	probes := r.Factory.Probes()
	sections := make([]*report.Section, len(probes))

	g, gctx := errgroup.WithContext(ctx)
	for i, p := range probes {
		g.Go(func() error {
			defer func(t time.Time) {
				probeDuration.WithLabelValues(p.Name()).Observe(time.Since(t).Seconds())
			}(time.Now())

			pctx, cancel := context.WithTimeout(gctx, probeTimeout(p.Name()))
			defer cancel()

			sections[i] = probe.Safe(pctx, p)
			return gctx.Err()
		})
	}

	if err := g.Wait(); err != nil {
		reportCollectionTotal.WithLabelValues("canceled").Inc()
		return nil, err
	}

	rep := report.New(r.Version)
	for _, s := range sections {
		rep.Add(s)
	}

	reportCollectionDuration.Observe(time.Since(start).Seconds())
	reportCollectionTotal.WithLabelValues("success").Inc()
	reportSectionCount.Set(float64(len(rep.Sections)))
	r.Logger.Debug("environment report complete",
		slog.Int("sections", len(rep.Sections)),
		slog.Duration("elapsed", time.Since(start)))

	r.render(rep)
	return rep, nil
}

// render prints the report as indented key-value lines per section, in
// probe order with keys sorted for determinism.
func (r *Reporter) render(rep *report.Report) {
	r.Printer.Print("### System information ###")

	for _, s := range rep.Sections {
		r.Printer.Printf("%s:", s.Name)
		for _, key := range sortedKeys(s.Data) {
			r.Printer.Printf("    %s: %s", key, s.Data[key].String())
		}
		if s.Name == "gpu" {
			renderGPUAdvisory(r.Printer, s)
		}
	}

	r.Printer.Print(" ")
}

// renderGPUAdvisory prints the Triton compilation requirement whenever
// CUDA devices are present.
func renderGPUAdvisory(p *logging.Printer, s *report.Section) {
	count, err := s.GetInt(report.KeyGPUCount)
	if err != nil || count == 0 {
		return
	}

	p.Printf("    INFO: Triton-backed compilation requires CUDA compute capability >= %.1f.",
		probe.TritonMinComputeCapability)

	if cc, err := s.GetString(report.KeyGPUCapability); err == nil {
		if min := probe.MinComputeCapability(cc); min > 0 && min < probe.TritonMinComputeCapability {
			p.Printf("    WARNING: lowest detected compute capability is %.1f.", min)
		}
	}
}

// probeTimeout returns the collection budget for a probe. The GPU probe
// shells out to nvidia-smi and the services probe talks to systemd over
// dbus, both slower than file reads.
func probeTimeout(name string) time.Duration {
	switch name {
	case "gpu":
		return defaults.GPUProbeTimeout
	case "services":
		return defaults.ServiceProbeTimeout
	default:
		return defaults.ProbeTimeout
	}
}

func sortedKeys(m map[string]report.Reading) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
