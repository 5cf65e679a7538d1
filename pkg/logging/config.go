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

// LogDirAuto is the sentinel value for Config.LogDir meaning "resolve the
// directory at flush time" (currently to DefaultLogDir).
const LogDirAuto = "auto"

// DefaultLogDir is the directory used when Config.LogDir is LogDirAuto and
// no explicit directory is passed to FlushToFile.
const DefaultLogDir = "logs"

// Config holds the logger options. All fields are read at construction and
// flush time and never mutated afterward.
type Config struct {
	// LogFile is the base log file name. A nil LogFile disables file
	// flushing entirely (FlushToFile becomes a no-op with a notice).
	LogFile *string

	// LogDir is the directory for the flushed log file, or LogDirAuto to
	// resolve it at flush time.
	LogDir string

	// PrefixDate prepends the current date (YYYYMMDD_) to the file name.
	PrefixDate bool

	// PrefixJobID prepends a zero-padded two-digit job id (NN_) when
	// non-zero. Used by hypertune runs on multiple GPUs to keep one file
	// per worker.
	PrefixJobID int

	// AppendToFile appends to an existing file instead of truncating it.
	AppendToFile bool

	// ShowTimestamp includes a timestamp in every emitted line.
	ShowTimestamp bool
}

// DefaultConfig returns the configuration used by the application driver:
// output.log in an auto-resolved directory, date prefix, append mode, and
// timestamps on.
func DefaultConfig() Config {
	name := "output.log"
	return Config{
		LogFile:       &name,
		LogDir:        LogDirAuto,
		PrefixDate:    true,
		PrefixJobID:   0,
		AppendToFile:  true,
		ShowTimestamp: true,
	}
}
