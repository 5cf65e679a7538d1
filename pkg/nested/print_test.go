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
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ptyrad/ptyenv/pkg/logging"
)

func capturePrint(m map[string]any, opts ...PrintOption) string {
	var out bytes.Buffer
	p := &logging.Printer{
		Verbose: true,
		Out:     &out,
		Rank:    logging.RankProviderFunc(func() int { return 0 }),
	}
	Print(p, m, opts...)
	return out.String()
}

func TestPrintScalars(t *testing.T) {
	got := capturePrint(map[string]any{
		"iterations": 500,
		"name":       "run-01",
	})
	want := "iterations: 500\n" +
		"name: \"run-01\"\n"
	assert.Equal(t, want, got)
}

func TestPrintInlinesSmallFlatMaps(t *testing.T) {
	got := capturePrint(map[string]any{
		"probe": map[string]any{
			"modes": 4,
			"lr":    0.0001,
		},
	})
	assert.Equal(t, "probe: {lr: 0.0001, modes: 4}\n", got)
}

func TestPrintRecursesPastThreshold(t *testing.T) {
	got := capturePrint(map[string]any{
		"probe": map[string]any{
			"a": 1,
			"b": 2,
		},
	}, WithInlineThreshold(1))
	want := "probe:\n" +
		"    a: 1\n" +
		"    b: 2\n"
	assert.Equal(t, want, got)
}

func TestPrintRecursesIntoNestedMaps(t *testing.T) {
	got := capturePrint(map[string]any{
		"model": map[string]any{
			"probe": map[string]any{
				"modes": 4,
			},
		},
	})
	// model is not a flat leaf (it holds a map), so it opens a block; probe
	// is flat and small, so it inlines at depth 1.
	want := "model:\n" +
		"    probe: {modes: 4}\n"
	assert.Equal(t, want, got)
}

func TestPrintScalarSequenceInline(t *testing.T) {
	got := capturePrint(map[string]any{
		"shape": []any{128, 128},
		"tags":  []any{"fast", "gpu"},
	})
	want := "shape: [128, 128]\n" +
		"tags: [\"fast\", \"gpu\"]\n"
	assert.Equal(t, want, got)
}

func TestPrintSequenceWithContainersFallsBack(t *testing.T) {
	got := capturePrint(map[string]any{
		"grid": []any{[]any{1, 2}, []any{3, 4}},
	})
	// Not a scalar sequence: rendered as the plain literal form.
	assert.Equal(t, "grid: [[1 2] [3 4]]\n", got)
}

func TestPrintNilValue(t *testing.T) {
	got := capturePrint(map[string]any{
		"object": nil,
	})
	assert.Equal(t, "object: null\n", got)
}

func TestPrintDeterministicOrder(t *testing.T) {
	m := map[string]any{"c": 1, "a": 2, "b": 3}
	first := capturePrint(m)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, capturePrint(m))
	}
	assert.Equal(t, "a: 2\nb: 3\nc: 1\n", first)
}

func TestPrintRespectsPrinterGating(t *testing.T) {
	var out bytes.Buffer
	p := &logging.Printer{Verbose: false, Out: &out}
	Print(p, map[string]any{"a": 1})
	assert.Empty(t, out.String())
}
