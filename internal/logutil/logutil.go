// Copyright 2026 go-wrap Authors
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

// Package logutil configures the structured logger used by the generator.
package logutil

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"time"
)

// LevelTrace is below Debug and is used for per-file emission tracing.
const LevelTrace slog.Level = -8

// NewLogger returns a text logger writing to w at the given level. TRACE is
// rendered by name. Source locations are only attached at Debug and below,
// reduced to the file name.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: level <= slog.LevelDebug,
		ReplaceAttr: func(_ []string, attr slog.Attr) slog.Attr {
			switch attr.Key {
			case slog.LevelKey:
				if attr.Value.Any().(slog.Level) == LevelTrace {
					attr.Value = slog.StringValue("TRACE")
				}
			case slog.SourceKey:
				source := attr.Value.Any().(*slog.Source)
				source.File = filepath.Base(source.File)
			}
			return attr
		},
	}))
}

// File groups the attributes of a generated file:
//
//	file.path=toolbox/+m/foo.m file.bytes=312
func File(path string, size int) slog.Attr {
	return slog.Group("file", slog.String("path", path), slog.Int("bytes", size))
}

// Trace logs msg at LevelTrace on the default logger.
func Trace(msg string, args ...any) {
	logAt(context.Background(), LevelTrace, msg, args...)
}

// TraceContext is Trace with a caller supplied context.
func TraceContext(ctx context.Context, msg string, args ...any) {
	logAt(ctx, LevelTrace, msg, args...)
}

// Progress reports a step of a generation pass: at Info when the user asked
// for verbose output, otherwise at Trace.
func Progress(verbose bool, msg string, args ...any) {
	level := LevelTrace
	if verbose {
		level = slog.LevelInfo
	}
	logAt(context.Background(), level, msg, args...)
}

// logAt attributes the record to the caller of the exported helper.
func logAt(ctx context.Context, level slog.Level, msg string, args ...any) {
	logger := slog.Default()
	if !logger.Enabled(ctx, level) {
		return
	}
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:]) // runtime.Callers, logAt, helper
	record := slog.NewRecord(time.Now(), level, msg, pcs[0])
	record.Add(args...)
	_ = logger.Handler().Handle(ctx, record)
}
