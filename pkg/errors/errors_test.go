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

package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeUnavailable, "log backend not available")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Code != ErrCodeUnavailable {
		t.Errorf("expected code %s, got %s", ErrCodeUnavailable, err.Code)
	}
	if err.Message != "log backend not available" {
		t.Errorf("expected message 'log backend not available', got %s", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeIO, "flush failed", cause)

	if err.Code != ErrCodeIO {
		t.Errorf("expected code %s, got %s", ErrCodeIO, err.Code)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be wrapped")
	}
}

func TestWrapWithContext(t *testing.T) {
	cause := errors.New("permission denied")
	ctx := map[string]any{
		"path": "/var/log/ptyenv",
		"mode": "append",
	}

	err := WrapWithContext(ErrCodeIO, "failed to open log file", cause, ctx)

	if err.Code != ErrCodeIO {
		t.Errorf("expected code %s, got %s", ErrCodeIO, err.Code)
	}
	if err.Context == nil {
		t.Fatal("expected context to be set")
	}
	if err.Context["path"] != "/var/log/ptyenv" {
		t.Errorf("expected path to be /var/log/ptyenv")
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      *StructuredError
		expected string
	}{
		{
			name:     "without cause",
			err:      New(ErrCodeInvalidInput, "bad device id"),
			expected: "[INVALID_INPUT] bad device id",
		},
		{
			name:     "with cause",
			err:      Wrap(ErrCodeIO, "write failed", errors.New("disk full")),
			expected: "[IO] write failed: disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(ErrCodeInternal, "wrapper", cause)

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}
}
