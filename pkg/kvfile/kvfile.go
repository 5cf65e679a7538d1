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

// Package kvfile parses line-oriented key-value files such as
// /etc/os-release, /proc/cpuinfo, and /proc/meminfo.
package kvfile

import (
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/ptyrad/ptyenv/pkg/errors"
)

// Option configures the Parser.
type Option func(*Parser)

// Parser parses key-value files with customizable settings.
type Parser struct {
	delimiter       string
	maxSize         int
	skipComments    bool
	kvDelimiter     string
	vDefault        string
	vTrimChars      string
	skipEmptyValues bool
}

// WithDelimiter sets the delimiter used to split entries in the file.
// Default is newline ("\n").
func WithDelimiter(delim string) Option {
	return func(p *Parser) {
		p.delimiter = delim
	}
}

// WithMaxSize sets the maximum size (in bytes) of the file to be parsed.
// Default is 1MB.
func WithMaxSize(size int) Option {
	return func(p *Parser) {
		p.maxSize = size
	}
}

// WithSkipComments sets whether to skip comment lines in the file.
// Default is true.
func WithSkipComments(skip bool) Option {
	return func(p *Parser) {
		p.skipComments = skip
	}
}

// WithKVDelimiter sets the key-value delimiter used in GetMap.
// Default is "=".
func WithKVDelimiter(kvDelim string) Option {
	return func(p *Parser) {
		p.kvDelimiter = kvDelim
	}
}

// WithVDefault sets the value used when a line has a key but no delimiter.
// Default is an empty string.
func WithVDefault(vDefault string) Option {
	return func(p *Parser) {
		p.vDefault = vDefault
	}
}

// WithVTrimChars sets characters to trim from values in GetMap, e.g. the
// quotes around os-release values. Default is no trimming.
func WithVTrimChars(trimChars string) Option {
	return func(p *Parser) {
		p.vTrimChars = trimChars
	}
}

// WithSkipEmptyValues sets whether entries whose value is empty after
// trimming are dropped. Default is false.
func WithSkipEmptyValues(skip bool) Option {
	return func(p *Parser) {
		p.skipEmptyValues = skip
	}
}

// NewParser creates a new key-value file parser with the provided options.
// Default settings: newline delimiter ("\n"), "=" key-value delimiter,
// comments skipped, 1MB max file size.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		delimiter:    "\n",
		maxSize:      1 << 20, // 1MB default
		skipComments: true,
		kvDelimiter:  "=",
	}

	for _, opt := range opts {
		opt(p)
	}
	return p
}

// GetMap reads the file at the given path and parses its content into a map.
// Each entry is split into a key-value pair on the configured delimiter;
// entries without the delimiter map their key to the configured default.
func (p *Parser) GetMap(path string) (map[string]string, error) {
	parts, err := p.GetLines(path)
	if err != nil {
		return nil, err
	}

	result := make(map[string]string)
	for _, part := range parts {
		kv := strings.SplitN(part, p.kvDelimiter, 2)

		if len(kv) != 2 {
			key := strings.TrimSpace(kv[0])

			if p.skipEmptyValues && p.vDefault == "" {
				slog.Debug("skipping key-only entry with empty default", "key", key)
				continue
			}

			result[key] = p.vDefault
			continue
		}

		key := strings.TrimSpace(kv[0])
		value := strings.TrimSpace(kv[1])

		if p.vTrimChars != "" {
			value = strings.Trim(value, p.vTrimChars)
		}

		if p.skipEmptyValues && value == "" {
			slog.Debug("skipping entry with empty value", "key", key)
			continue
		}

		result[key] = value
	}

	return result, nil
}

// GetLines reads the file at the given path and splits its content into
// entries on the configured delimiter, dropping empty entries and, when
// configured, comment lines.
func (p *Parser) GetLines(path string) ([]string, error) {
	if path == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "file path cannot be empty")
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeIO, "failed to read file", err,
			map[string]any{"path": path})
	}

	if !utf8.Valid(b) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "file content is not valid UTF-8")
	}

	if len(b) > p.maxSize {
		return nil, errors.WrapWithContext(errors.ErrCodeInvalidInput, "file exceeds maximum size", nil,
			map[string]any{"path": path, "max-bytes": p.maxSize})
	}

	parts := strings.Split(string(b), p.delimiter)

	result := make([]string, 0, len(parts))
	for _, part := range parts {
		cleanPart := strings.TrimSpace(part)
		if cleanPart == "" {
			continue
		}

		if p.skipComments && strings.HasPrefix(cleanPart, "#") {
			continue
		}

		result = append(result, cleanPart)
	}

	return result, nil
}

// CountKey reads the file at the given path and counts the entries whose key
// equals the given key, e.g. "processor" records in /proc/cpuinfo.
func (p *Parser) CountKey(path, key string) (int, error) {
	lines, err := p.GetLines(path)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, line := range lines {
		kv := strings.SplitN(line, p.kvDelimiter, 2)
		if strings.TrimSpace(kv[0]) == key {
			count++
		}
	}
	return count, nil
}
