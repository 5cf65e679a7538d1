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

package format

import (
	"testing"
	"time"
)

func TestDuration(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    string
	}{
		{
			name:    "zero",
			seconds: 0,
			want:    "0.000 sec",
		},
		{
			name:    "seconds only",
			seconds: 2.5,
			want:    "2.500 sec",
		},
		{
			name:    "minutes and seconds",
			seconds: 65,
			want:    "1 min 5.000 sec",
		},
		{
			name:    "five minutes",
			seconds: 302.5,
			want:    "5 min 2.500 sec",
		},
		{
			name:    "hours",
			seconds: 3661,
			want:    "1 hr 1 min 1.000 sec",
		},
		{
			name:    "days",
			seconds: 90061.5,
			want:    "1 day 1 hr 1 min 1.500 sec",
		},
		{
			name:    "exact minute boundary",
			seconds: 60,
			want:    "1 min 0.000 sec",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Duration(tt.seconds); got != tt.want {
				t.Errorf("Duration(%v) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestDate(t *testing.T) {
	// Date-only layout must equal today's date.
	want := time.Now().Format(DateLayout)
	if got := Date(DateLayout); got != want {
		t.Errorf("Date(%q) = %q, want %q", DateLayout, got, want)
	}

	// Empty layout falls back to the default.
	if got := Date(""); got != want {
		t.Errorf("Date(\"\") = %q, want %q", got, want)
	}

	// Layout with time directives must include a plausible clock component.
	got := Date("2006-01-02 15:04")
	if len(got) != len("2006-01-02 15:04") {
		t.Errorf("Date with time layout = %q, unexpected length", got)
	}
	if _, err := time.Parse("2006-01-02 15:04", got); err != nil {
		t.Errorf("Date with time layout produced unparseable output %q: %v", got, err)
	}
}

func TestHasTimeDirective(t *testing.T) {
	tests := []struct {
		layout string
		want   bool
	}{
		{"20060102", false},
		{"2006-01-02", false},
		{"2006-01-02 15:04:05", true},
		{"15:04", true},
		{"04", true},
		{"Jan 2 2006", false},
		{"3PM", true},
	}

	for _, tt := range tests {
		if got := hasTimeDirective(tt.layout); got != tt.want {
			t.Errorf("hasTimeDirective(%q) = %v, want %v", tt.layout, got, tt.want)
		}
	}
}

func TestHypertuneLabel(t *testing.T) {
	tests := []struct {
		name   string
		params []Param
		want   string
	}{
		{
			name: "lr and batch",
			params: []Param{
				{Key: "lr", Value: 0.0001},
				{Key: "batch", Value: 32},
			},
			want: "_lr_1.0e-04_batch_32",
		},
		{
			name: "suffix lr is scientific",
			params: []Param{
				{Key: "obj_lr", Value: 0.005},
			},
			want: "_obj_lr_5.0e-03",
		},
		{
			name: "uppercase LR suffix",
			params: []Param{
				{Key: "probeLR", Value: 0.01},
			},
			want: "_probeLR_1.0e-02",
		},
		{
			name: "numeric three significant digits",
			params: []Param{
				{Key: "sigma", Value: 0.123456},
			},
			want: "_sigma_0.123",
		},
		{
			name: "string passes through",
			params: []Param{
				{Key: "optimizer", Value: "adam"},
			},
			want: "_optimizer_adam",
		},
		{
			name:   "empty",
			params: nil,
			want:   "",
		},
		{
			name: "order preserved",
			params: []Param{
				{Key: "batch", Value: 16},
				{Key: "lr", Value: 0.0001},
			},
			want: "_batch_16_lr_1.0e-04",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HypertuneLabel(tt.params); got != tt.want {
				t.Errorf("HypertuneLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}
