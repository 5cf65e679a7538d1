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
	"runtime"
	"testing"
)

func TestRuntimeCollect(t *testing.T) {
	p := &RuntimeProbe{}
	s, err := p.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}

	v, err := s.GetString("version")
	if err != nil {
		t.Fatalf("missing version key: %v", err)
	}
	if v != runtime.Version() {
		t.Errorf("expected %q, got %q", runtime.Version(), v)
	}

	// The test binary always has an executable path.
	exe, err := s.GetString("executable")
	if err != nil || exe == "" {
		t.Errorf("expected executable path, got %q (err %v)", exe, err)
	}
}
