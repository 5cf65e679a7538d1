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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Report collection metrics
	reportCollectionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ptyenv_report_collection_duration_seconds",
			Help:    "Time taken to collect a complete environment report",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60},
		},
	)

	reportCollectionTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ptyenv_report_collection_total",
			Help: "Total number of report collection attempts",
		},
		[]string{"status"}, // success or canceled
	)

	probeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ptyenv_probe_duration_seconds",
			Help:    "Time taken by individual probes",
			Buckets: []float64{0.01, 0.1, 0.5, 1, 5, 10, 30},
		},
		[]string{"probe"}, // platform, cpu, memory, gpu, accel, runtime, packages, app, services
	)

	reportSectionCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ptyenv_report_sections",
			Help: "Number of sections in the last collected report",
		},
	)
)
