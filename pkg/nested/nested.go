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

// Package nested provides safe traversal and pretty printing of nested
// string-keyed maps, the shape produced by decoding YAML or JSON parameter
// files into map[string]any.
package nested

// Get walks keys through m and returns the value found at the end of the
// path. It returns fallback as soon as an intermediate value is not a map,
// a key is missing, or a looked-up value is explicitly nil. It never
// panics on malformed structure.
func Get(m map[string]any, keys []string, fallback any) any {
	var current any = m
	for _, key := range keys {
		node, ok := current.(map[string]any)
		if !ok {
			return fallback
		}
		value, ok := node[key]
		if !ok || value == nil {
			return fallback
		}
		current = value
	}
	return current
}

// GetString is Get constrained to string values; non-string results yield
// fallback.
func GetString(m map[string]any, keys []string, fallback string) string {
	if v, ok := Get(m, keys, fallback).(string); ok {
		return v
	}
	return fallback
}

// GetBool is Get constrained to bool values; non-bool results yield
// fallback.
func GetBool(m map[string]any, keys []string, fallback bool) bool {
	if v, ok := Get(m, keys, fallback).(bool); ok {
		return v
	}
	return fallback
}

// GetInt is Get constrained to integer values. JSON decoding yields
// float64 for numbers, YAML yields int, both are accepted.
func GetInt(m map[string]any, keys []string, fallback int) int {
	switch v := Get(m, keys, fallback).(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return fallback
	}
}

// GetFloat is Get constrained to numeric values returned as float64.
func GetFloat(m map[string]any, keys []string, fallback float64) float64 {
	switch v := Get(m, keys, fallback).(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return fallback
	}
}
