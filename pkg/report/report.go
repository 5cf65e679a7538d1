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

import "github.com/ptyrad/ptyenv/pkg/header"

// Report is the serializable environment report: a header envelope plus
// the probe sections in render order.
type Report struct {
	Header   *header.Header `json:"header,omitempty" yaml:"header,omitempty"`
	Sections []*Section     `json:"sections" yaml:"sections"`
}

// New creates a report with an initialized header carrying the tool
// version.
func New(version string) *Report {
	h := &header.Header{}
	h.Init(header.KindSystemReport, "v1", version)
	return &Report{
		Header:   h,
		Sections: make([]*Section, 0),
	}
}

// Add appends a section, ignoring nils so callers can pass probe results
// through unconditionally.
func (r *Report) Add(s *Section) {
	if s == nil {
		return
	}
	r.Sections = append(r.Sections, s)
}

// SectionByName returns the named section, or nil if absent.
func (r *Report) SectionByName(name string) *Section {
	for _, s := range r.Sections {
		if s.Name == name {
			return s
		}
	}
	return nil
}
