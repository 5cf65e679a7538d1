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

package probe

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestPlatformCollect(t *testing.T) {
	restore := func(primary, fallback, kernel, cpuinfo string) {
		filePathReleasePrimary = primary
		filePathReleaseFallback = fallback
		filePathKernelRelease = kernel
		filePathCPUInfo = cpuinfo
	}
	defer restore(filePathReleasePrimary, filePathReleaseFallback, filePathKernelRelease, filePathCPUInfo)

	filePathReleasePrimary = writeFixture(t, "os-release", `NAME="Ubuntu"
PRETTY_NAME="Ubuntu 22.04.4 LTS"
VERSION_ID="22.04"
`)
	filePathKernelRelease = writeFixture(t, "osrelease", "5.15.0-105-generic\n")
	filePathCPUInfo = writeFixture(t, "cpuinfo", `processor	: 0
model name	: AMD EPYC 7763 64-Core Processor
`)

	p := &PlatformProbe{}
	s, err := p.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}

	if osName, _ := s.GetString("os"); osName != runtime.GOOS {
		t.Errorf("expected os %q, got %q", runtime.GOOS, osName)
	}
	if v, _ := s.GetString("os-version"); v != "Ubuntu 22.04.4 LTS" {
		t.Errorf("expected PRETTY_NAME, got %q", v)
	}
	if k, _ := s.GetString("kernel"); k != "5.15.0-105-generic" {
		t.Errorf("unexpected kernel: %q", k)
	}
	if proc, _ := s.GetString("processor"); proc != "AMD EPYC 7763 64-Core Processor" {
		t.Errorf("unexpected processor: %q", proc)
	}
	if !s.Has("machine") {
		t.Error("expected machine key")
	}
}

func TestPlatformCollect_MissingFiles(t *testing.T) {
	restore := func(primary, fallback, kernel, cpuinfo string) {
		filePathReleasePrimary = primary
		filePathReleaseFallback = fallback
		filePathKernelRelease = kernel
		filePathCPUInfo = cpuinfo
	}
	defer restore(filePathReleasePrimary, filePathReleaseFallback, filePathKernelRelease, filePathCPUInfo)

	missing := filepath.Join(t.TempDir(), "nope")
	filePathReleasePrimary = missing
	filePathReleaseFallback = missing
	filePathKernelRelease = missing
	filePathCPUInfo = missing

	p := &PlatformProbe{}
	s, err := p.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect should not fail on missing files: %v", err)
	}

	// os and machine always resolve from the runtime.
	if !s.Has("os") || !s.Has("machine") {
		t.Error("expected os and machine keys even without procfs")
	}
	if s.Has("os-version") || s.Has("kernel") {
		t.Error("expected no release keys without fixture files")
	}
}

func TestPlatformCollect_ReleaseFallback(t *testing.T) {
	restore := func(primary, fallback string) {
		filePathReleasePrimary = primary
		filePathReleaseFallback = fallback
	}
	defer restore(filePathReleasePrimary, filePathReleaseFallback)

	filePathReleasePrimary = filepath.Join(t.TempDir(), "missing")
	filePathReleaseFallback = writeFixture(t, "os-release", "NAME=\"Debian GNU/Linux\"\n")

	if v, ok := readOSRelease(); !ok || v != "Debian GNU/Linux" {
		t.Errorf("expected fallback NAME, got %q (ok=%v)", v, ok)
	}
}
