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

package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// unitProperties mimics the property map a systemd unit query returns.
func unitProperties() map[string]Reading {
	return map[string]Reading{
		"ActiveState":            Str("active"),
		"SubState":               Str("running"),
		"LoadState":              Str("loaded"),
		"UnitFileState":          Str("enabled"),
		"ExecMainStartTimestamp": Str("Mon 2025-08-18 09:12:03 UTC"),
		"FragmentPath":           Str("/lib/systemd/system/nvidia-persistenced.service"),
		"MemoryCurrent":          Uint64(18446744073709551615),
	}
}

func TestFilterIn(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		want     []string
	}{
		{
			name:     "exact matches",
			patterns: []string{"ActiveState", "SubState"},
			want:     []string{"ActiveState", "SubState"},
		},
		{
			name:     "suffix wildcard",
			patterns: []string{"*State"},
			want:     []string{"ActiveState", "SubState", "LoadState", "UnitFileState"},
		},
		{
			name:     "prefix wildcard",
			patterns: []string{"Exec*"},
			want:     []string{"ExecMainStartTimestamp"},
		},
		{
			name:     "multiple patterns",
			patterns: []string{"*State", "FragmentPath"},
			want:     []string{"ActiveState", "SubState", "LoadState", "UnitFileState", "FragmentPath"},
		},
		{
			name:     "no patterns selects nothing",
			patterns: nil,
			want:     []string{},
		},
		{
			name:     "unmatched pattern selects nothing",
			patterns: []string{"CPUShares"},
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterIn(unitProperties(), tt.patterns)
			keys := make([]string, 0, len(got))
			for k := range got {
				keys = append(keys, k)
			}
			assert.ElementsMatch(t, tt.want, keys)
		})
	}
}

func TestFilterInKeepsReadings(t *testing.T) {
	got := FilterIn(unitProperties(), []string{"ActiveState"})
	assert.Equal(t, "active", got["ActiveState"].String())
}

func TestMatchKey(t *testing.T) {
	tests := []struct {
		key     string
		pattern string
		want    bool
	}{
		{"ActiveState", "ActiveState", true},
		{"ActiveState", "activestate", false},
		{"ActiveEnterTimestamp", "Active*", true},
		{"LoadState", "*State", true},
		{"LoadState", "*state", false},
		{"ExecMainStartTimestamp", "*Main*", true},
		{"ExecMainStartTimestamp", "Exec*Start*", true},
		{"aXbYc", "a*b*c", true},
		{"aXcYb", "a*b*c", false},
		{"anything", "*", true},
		{"", "*", true},
		{"ab", "a*b", true},
		{"aaa", "a*aa", true},
	}

	for _, tt := range tests {
		t.Run(tt.key+"/"+tt.pattern, func(t *testing.T) {
			assert.Equal(t, tt.want, matchKey(tt.key, tt.pattern))
		})
	}
}
