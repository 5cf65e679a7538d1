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

import "strings"

// FilterIn returns the readings whose keys match at least one of the
// patterns. The services probe uses it to keep only the unit state
// properties worth reporting out of the full dbus property map.
//
// A pattern without a wildcard matches exactly. "*" matches any run of
// characters, including none, and may appear more than once
// ("Active*", "*State", "Exec*Start*").
func FilterIn(readings map[string]Reading, patterns []string) map[string]Reading {
	kept := make(map[string]Reading, len(patterns))
	for key, r := range readings {
		if matchesAny(key, patterns) {
			kept[key] = r
		}
	}
	return kept
}

func matchesAny(key string, patterns []string) bool {
	for _, p := range patterns {
		if matchKey(key, p) {
			return true
		}
	}
	return false
}

// matchKey reports whether key matches pattern. Matching is case
// sensitive; segments between wildcards must appear in order.
func matchKey(key, pattern string) bool {
	if !strings.Contains(pattern, "*") {
		return key == pattern
	}

	segments := strings.Split(pattern, "*")
	first, last := segments[0], segments[len(segments)-1]

	if !strings.HasPrefix(key, first) {
		return false
	}
	rest := key[len(first):]

	for _, seg := range segments[1 : len(segments)-1] {
		if seg == "" {
			continue
		}
		idx := strings.Index(rest, seg)
		if idx < 0 {
			return false
		}
		rest = rest[idx+len(seg):]
	}

	return strings.HasSuffix(rest, last)
}
