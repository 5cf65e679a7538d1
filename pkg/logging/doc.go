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

// Package logging provides the run logger and verbosity-gated printer used
// by the reconstruction driver.
//
// # Overview
//
// Reconstruction runs start logging before the output directory is known:
// the Logger buffers every line in memory alongside console output, and
// FlushToFile later drains the buffer to a timestamped, optionally
// job-id-prefixed file. After the flush, lines are written straight through
// to the file.
//
// The Printer gates status output on a verbose flag and on the distributed
// rank of the process, so multi-GPU runs emit a single copy of the log.
//
// # Usage
//
//	logger := logging.New(logging.DefaultConfig())
//	logger.LogConfiguration()
//	defer logger.Close()
//
//	p := logging.NewPrinter(logger)
//	p.Print("### Initializing reconstruction ###")
//
//	// once the output directory is resolved:
//	if err := logger.FlushToFile("", nil); err != nil {
//	    return err
//	}
//
// Structured logging is available through Slog for code that follows the
// standard library conventions:
//
//	logger.Slog().Info("probe finished", "name", "gpu", "duration", d)
//
// # Lifecycle
//
// A Logger has two states. Unflushed: lines land on the console and in the
// in-memory buffer. Flushed: lines land on the console and in the log file.
// FlushToFile performs the transition and may be called again to re-resolve
// the target path and mode. Close detaches the file sink; it is a no-op
// when no file was ever flushed.
//
// # Concurrency
//
// A Logger serializes sink writes internally. The buffer and file handle
// are exclusively owned by one Logger instance; coordinate across processes
// with the job-id prefix, which yields distinct files per worker.
package logging
