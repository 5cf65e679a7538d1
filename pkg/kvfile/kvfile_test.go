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

package kvfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestGetMapOSRelease(t *testing.T) {
	path := writeTemp(t, `# /etc/os-release
NAME="Ubuntu"
VERSION_ID="22.04"
PRETTY_NAME="Ubuntu 22.04.4 LTS"
ID=ubuntu
`)

	p := NewParser(WithVTrimChars(`"`))
	got, err := p.GetMap(path)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"NAME":        "Ubuntu",
		"VERSION_ID":  "22.04",
		"PRETTY_NAME": "Ubuntu 22.04.4 LTS",
		"ID":          "ubuntu",
	}, got)
}

func TestGetMapMeminfo(t *testing.T) {
	path := writeTemp(t, `MemTotal:       527946000 kB
MemFree:        101057356 kB
MemAvailable:   418778052 kB
`)

	p := NewParser(WithKVDelimiter(":"))
	got, err := p.GetMap(path)
	require.NoError(t, err)

	assert.Equal(t, "527946000 kB", got["MemTotal"])
	assert.Equal(t, "418778052 kB", got["MemAvailable"])
}

func TestGetMapDefaults(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		opts     []Option
		expected map[string]string
	}{
		{
			name:    "lines without delimiter get the default",
			content: "valid=1\nflag\nvalid2=2",
			opts:    []Option{WithVDefault("on")},
			expected: map[string]string{
				"valid":  "1",
				"flag":   "on",
				"valid2": "2",
			},
		},
		{
			name:    "value keeps embedded delimiter",
			content: "key=value=with=equals",
			expected: map[string]string{
				"key": "value=with=equals",
			},
		},
		{
			name:    "skip empty values drops key-only entries",
			content: "key1=value1\nkey2=\nkey3",
			opts:    []Option{WithSkipEmptyValues(true)},
			expected: map[string]string{
				"key1": "value1",
			},
		},
		{
			name:    "duplicate keys last wins",
			content: "key=first\nkey=second",
			expected: map[string]string{
				"key": "second",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParser(tt.opts...)
			got, err := p.GetMap(writeTemp(t, tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestGetLines(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		opts     []Option
		expected []string
	}{
		{
			name:     "trailing newlines filtered",
			content:  "line1\nline2\n\n\n",
			expected: []string{"line1", "line2"},
		},
		{
			name:     "comments skipped by default",
			content:  "# header\nline1\n   # indented\nline2",
			expected: []string{"line1", "line2"},
		},
		{
			name:     "comments kept when disabled",
			content:  "# header\nline1",
			opts:     []Option{WithSkipComments(false)},
			expected: []string{"# header", "line1"},
		},
		{
			name:     "custom delimiter",
			content:  "ro quiet root=/dev/sda1",
			opts:     []Option{WithDelimiter(" ")},
			expected: []string{"ro", "quiet", "root=/dev/sda1"},
		},
		{
			name:     "empty file",
			content:  "",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParser(tt.opts...)
			got, err := p.GetLines(writeTemp(t, tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestGetLinesErrors(t *testing.T) {
	p := NewParser()

	_, err := p.GetLines("")
	assert.ErrorContains(t, err, "file path cannot be empty")

	_, err = p.GetLines(filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorContains(t, err, "failed to read file")

	_, err = p.GetLines(writeTemp(t, "valid\xff\xfeinvalid"))
	assert.ErrorContains(t, err, "not valid UTF-8")

	small := NewParser(WithMaxSize(10))
	_, err = small.GetMap(writeTemp(t, strings.Repeat("a", 100)))
	assert.ErrorContains(t, err, "exceeds maximum size")
}

func TestCountKey(t *testing.T) {
	path := writeTemp(t, `processor	: 0
model name	: AMD EPYC 7763
processor	: 1
model name	: AMD EPYC 7763
`)

	p := NewParser(WithKVDelimiter(":"))
	count, err := p.CountKey(path, "processor")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = p.CountKey(path, "absent")
	require.NoError(t, err)
	assert.Zero(t, count)
}
