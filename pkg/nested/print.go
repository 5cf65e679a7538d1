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

package nested

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/ptyrad/ptyenv/pkg/logging"
)

// DefaultInlineThreshold is the maximum entry count for a flat sub-map to
// be rendered on a single line.
const DefaultInlineThreshold = 6

// PrintOption configures Print.
type PrintOption func(*printOptions)

type printOptions struct {
	inlineThreshold int
	indent          int
}

// WithInlineThreshold overrides the flat sub-map inline threshold.
func WithInlineThreshold(n int) PrintOption {
	return func(o *printOptions) {
		o.inlineThreshold = n
	}
}

// WithIndent sets the starting indentation depth.
func WithIndent(depth int) PrintOption {
	return func(o *printOptions) {
		o.indent = depth
	}
}

// Print renders m through the printer, one "key: value" line per entry with
// four spaces of indentation per nesting level. Flat sub-maps holding at
// most the inline threshold of scalar entries are compacted onto a single
// line; scalar-only sequences render inline as well. Keys are sorted so the
// output is deterministic.
func Print(p *logging.Printer, m map[string]any, opts ...PrintOption) {
	o := &printOptions{
		inlineThreshold: DefaultInlineThreshold,
	}
	for _, opt := range opts {
		opt(o)
	}
	printMap(p, m, o.indent, o.inlineThreshold)
}

func printMap(p *logging.Printer, m map[string]any, depth, inlineThreshold int) {
	indent := strings.Repeat("    ", depth)
	for _, key := range sortedKeys(m) {
		value := m[key]
		switch {
		case isMap(value):
			sub := asMap(value)
			if isFlatLeaf(sub) && len(sub) <= inlineThreshold {
				p.Printf("%s%s: {%s}", indent, key, inlineEntries(sub))
				continue
			}
			p.Printf("%s%s:", indent, key)
			printMap(p, sub, depth+1, inlineThreshold)
		case isScalarSequence(value):
			p.Printf("%s%s: %s", indent, key, sequenceLiteral(value))
		default:
			p.Printf("%s%s: %s", indent, key, literal(value))
		}
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// isFlatLeaf reports whether every value in m is a non-container scalar.
func isFlatLeaf(m map[string]any) bool {
	for _, v := range m {
		if isContainer(v) {
			return false
		}
	}
	return true
}

func inlineEntries(m map[string]any) string {
	keys := sortedKeys(m)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, literal(m[k])))
	}
	return strings.Join(parts, ", ")
}

// isScalarSequence reports whether value is a sequence containing only
// non-container elements. Sequences holding nested containers fall back to
// the plain literal rendering.
func isScalarSequence(value any) bool {
	rv := reflect.ValueOf(value)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return false
	}
	for i := 0; i < rv.Len(); i++ {
		if isContainer(rv.Index(i).Interface()) {
			return false
		}
	}
	return true
}

func sequenceLiteral(value any) string {
	rv := reflect.ValueOf(value)
	parts := make([]string, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		parts = append(parts, literal(rv.Index(i).Interface()))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func isMap(value any) bool {
	if _, ok := value.(map[string]any); ok {
		return true
	}
	rv := reflect.ValueOf(value)
	return rv.IsValid() && rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String
}

func asMap(value any) map[string]any {
	if m, ok := value.(map[string]any); ok {
		return m
	}
	rv := reflect.ValueOf(value)
	m := make(map[string]any, rv.Len())
	for _, k := range rv.MapKeys() {
		m[k.String()] = rv.MapIndex(k).Interface()
	}
	return m
}

func isContainer(value any) bool {
	rv := reflect.ValueOf(value)
	if !rv.IsValid() {
		return false
	}
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}

// literal renders a scalar the way it would appear in a parameter file:
// strings quoted, everything else in its default form.
func literal(value any) string {
	if value == nil {
		return "null"
	}
	if s, ok := value.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("%v", value)
}
