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

package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Printer is the verbosity-gated status printer used throughout the
// application. Output is suppressed when Verbose is false or when the
// current process is not rank 0 of a distributed run (so multi-process jobs
// log once, not once per worker).
//
// When a Logger is attached, lines go through it (console, buffer, and any
// flushed file); otherwise they go straight to Out.
type Printer struct {
	// Verbose enables output. The zero Printer prints nothing.
	Verbose bool

	// Rank reports the distributed rank of this process. Nil means
	// EnvRank (reads the job scheduler environment, absent = rank 0).
	Rank RankProvider

	// Logger routes output when non-nil.
	Logger *Logger

	// Out is the fallback writer when no Logger is attached.
	// Nil means os.Stdout.
	Out io.Writer
}

// NewPrinter returns a verbose Printer routing through the given logger
// (which may be nil) with the default rank provider.
func NewPrinter(logger *Logger) *Printer {
	return &Printer{
		Verbose: true,
		Logger:  logger,
	}
}

// Print emits the space-joined string representation of values as one line.
// No output and no side effect when Verbose is false or this process is not
// rank 0. A missing Logger is not an error, output falls back to Out.
func (p *Printer) Print(values ...any) {
	if !p.enabled() {
		return
	}
	if p.Logger != nil {
		p.Logger.Log(values...)
		return
	}
	out := p.Out
	if out == nil {
		out = os.Stdout
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%v", v)
	}
	fmt.Fprintln(out, strings.Join(parts, " "))
}

// Printf is a convenience wrapper around Print for formatted lines.
func (p *Printer) Printf(formatStr string, args ...any) {
	p.Print(fmt.Sprintf(formatStr, args...))
}

func (p *Printer) enabled() bool {
	if !p.Verbose {
		return false
	}
	rank := p.Rank
	if rank == nil {
		rank = EnvRank()
	}
	return rank.Rank() == 0
}
