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
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/ptyrad/ptyenv/pkg/errors"
	"github.com/ptyrad/ptyenv/pkg/format"
)

// timestampLayout matches the original reconstruction logs:
// "2006-01-02 15:04:05,000".
const timestampLayout = "2006-01-02 15:04:05,000"

// Logger emits plain text log lines to a console sink and an in-memory
// buffer. FlushToFile drains the buffer to a file and attaches a file sink
// so later lines land on disk as they are logged.
//
// A Logger is explicitly owned: constructing a new one replaces nothing
// globally, each instance carries its own sinks and buffer.
type Logger struct {
	cfg Config

	mu      sync.Mutex
	console io.Writer
	buffer  bytes.Buffer
	file    *os.File

	slogger *slog.Logger

	// now is swappable for tests.
	now func() time.Time
}

// Option configures a Logger at construction time.
type Option func(*Logger)

// WithConsole overrides the console sink (default os.Stderr).
func WithConsole(w io.Writer) Option {
	return func(l *Logger) {
		l.console = w
	}
}

// WithClock overrides the time source used for timestamps and date prefixes.
func WithClock(now func() time.Time) Option {
	return func(l *Logger) {
		l.now = now
	}
}

// New creates a Logger from the given configuration.
func New(cfg Config, opts ...Option) *Logger {
	l := &Logger{
		cfg:     cfg,
		console: os.Stderr,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.slogger = slog.New(&lineHandler{logger: l})
	return l
}

// LogConfiguration logs the effective configuration through the logger
// itself, so the settings land in the buffer and show up in the flushed
// file. The application driver calls this right after construction.
func (l *Logger) LogConfiguration() {
	cfg := l.cfg
	logFile := "<nil>"
	if cfg.LogFile != nil {
		logFile = *cfg.LogFile
	}
	l.Log("### Logger configuration ###")
	l.Log(fmt.Sprintf("log_file       = %q. If log_file is nil, no log file will be created.", logFile))
	l.Log(fmt.Sprintf("log_dir        = %q. If log_dir is %q, the log is saved under %q.", cfg.LogDir, LogDirAuto, DefaultLogDir))
	l.Log(fmt.Sprintf("prefix_date    = %v. If true, a date string is prefixed to the log file name.", cfg.PrefixDate))
	l.Log(fmt.Sprintf("prefix_jobid   = %d. If not 0, it is prefixed to the log file name. Used for hypertune mode with multiple GPUs.", cfg.PrefixJobID))
	l.Log(fmt.Sprintf("append_to_file = %v. If true, logs are appended to an existing file, otherwise the file is overwritten.", cfg.AppendToFile))
	l.Log(fmt.Sprintf("show_timestamp = %v. If true, every line carries a timestamp.", cfg.ShowTimestamp))
	l.Log(" ")
}

// Config returns the logger configuration.
func (l *Logger) Config() Config {
	return l.cfg
}

// Slog returns a *slog.Logger backed by this Logger so library code can log
// through the standard structured interface.
func (l *Logger) Slog() *slog.Logger {
	return l.slogger
}

// Log emits one line built from the space-joined string representation of
// values.
func (l *Logger) Log(values ...any) {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%v", v)
	}
	l.emit(strings.Join(parts, " "))
}

// emit formats and writes one line to every attached sink.
func (l *Logger) emit(msg string) {
	line := msg + "\n"
	if l.cfg.ShowTimestamp {
		line = l.now().Format(timestampLayout) + " - " + msg + "\n"
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprint(l.console, line)
	if l.file != nil {
		// Flushed state: lines go straight to the file, the buffer's job
		// (capturing records logged before the file existed) is done.
		fmt.Fprint(l.file, line)
		return
	}
	l.buffer.WriteString(line)
}

// Buffered returns the current contents of the in-memory buffer. The buffer
// holds, in order, every line logged while no file sink was attached; it is
// drained by FlushToFile.
func (l *Logger) Buffered() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buffer.String()
}

// FileName resolves the effective log file name including the job-id and
// date prefixes. Returns "" when file flushing is disabled.
func (l *Logger) FileName() string {
	if l.cfg.LogFile == nil {
		return ""
	}
	name := *l.cfg.LogFile
	if l.cfg.PrefixJobID != 0 {
		name = fmt.Sprintf("%02d_%s", l.cfg.PrefixJobID, name)
	}
	if l.cfg.PrefixDate {
		name = l.now().Format(format.DateLayout) + "_" + name
	}
	return name
}

// FlushToFile drains the buffered lines to the configured log file and
// attaches a file sink so subsequent lines are written straight through.
//
// dir overrides the configured log directory when non-empty; appendMode
// overrides the configured append flag when non-nil. When the configured
// LogFile is nil this is a no-op aside from an explanatory notice.
//
// Filesystem failures (directory creation, file open, write) are returned
// as ErrCodeIO structured errors; they are never swallowed.
func (l *Logger) FlushToFile(dir string, appendMode *bool) error {
	if l.cfg.LogFile == nil {
		l.Log("### Log file is not flushed (created) because log_file is nil ###")
		l.Log(" ")
		return nil
	}

	if dir == "" {
		dir = l.cfg.LogDir
		if dir == LogDirAuto {
			dir = DefaultLogDir
		}
	}

	appendToFile := l.cfg.AppendToFile
	if appendMode != nil {
		appendToFile = *appendMode
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.WrapWithContext(errors.ErrCodeIO, "failed to create log directory", err,
			map[string]any{"dir": dir})
	}

	path := filepath.Join(dir, l.FileName())
	flags := os.O_CREATE | os.O_WRONLY
	if appendToFile {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}

	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return errors.WrapWithContext(errors.ErrCodeIO, "failed to open log file", err,
			map[string]any{"path": path, "append": appendToFile})
	}

	l.mu.Lock()
	_, werr := f.Write(l.buffer.Bytes())
	if werr != nil {
		l.mu.Unlock()
		f.Close()
		return errors.WrapWithContext(errors.ErrCodeIO, "failed to write buffered logs", werr,
			map[string]any{"path": path})
	}
	l.buffer.Reset()

	// Replace any previously attached file sink. Re-flushing re-resolves
	// the path and mode, it is not a guarded single-shot operation.
	if l.file != nil {
		l.file.Close()
	}
	l.file = f
	l.mu.Unlock()

	l.Log(fmt.Sprintf("### Log file is flushed (created) as %s ###", path))
	l.Log(" ")
	return nil
}

// Close detaches and closes the file sink if one is attached. Safe to call
// when no file sink exists, and safe to call more than once.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, "failed to close log file", err)
	}
	return nil
}

// lineHandler adapts the Logger to slog.Handler. Records at info level and
// above are rendered as "<message> key=value ..." lines.
type lineHandler struct {
	logger *Logger
	attrs  []slog.Attr
	groups []string
}

func (h *lineHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelInfo
}

func (h *lineHandler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder
	sb.WriteString(r.Message)
	emit := func(a slog.Attr) {
		key := a.Key
		if len(h.groups) > 0 {
			key = strings.Join(h.groups, ".") + "." + key
		}
		fmt.Fprintf(&sb, " %s=%v", key, a.Value.Any())
	}
	for _, a := range h.attrs {
		emit(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		emit(a)
		return true
	})
	h.logger.emit(sb.String())
	return nil
}

func (h *lineHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &nh
}

func (h *lineHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.groups = append(append([]string{}, h.groups...), name)
	return &nh
}
