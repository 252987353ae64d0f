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

package logutil

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrace(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	slog.SetDefault(NewLogger(&buf, LevelTrace))
	Trace("wrote file", File("+m/foo.m", 312))

	out := buf.String()
	assert.Contains(t, out, "level=TRACE")
	assert.Contains(t, out, "source=logutil_test.go:")
	assert.Contains(t, out, `msg="wrote file"`)
	assert.Contains(t, out, "file.path=+m/foo.m file.bytes=312")
}

func TestTraceDisabled(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	slog.SetDefault(NewLogger(&buf, slog.LevelDebug))
	Trace("hidden")
	slog.Debug("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "level=DEBUG")
}

func TestProgress(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	cases := []struct {
		name    string
		level   slog.Level
		verbose bool
		want    string
	}{
		{name: "verbose at info", level: slog.LevelInfo, verbose: true, want: "level=INFO"},
		{name: "quiet at info", level: slog.LevelInfo, verbose: false, want: ""},
		{name: "quiet at trace", level: LevelTrace, verbose: false, want: "level=TRACE"},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			slog.SetDefault(NewLogger(&buf, tt.level))
			Progress(tt.verbose, "writing file", File("geometry_wrapper.cpp", 10))

			if tt.want == "" {
				assert.Empty(t, buf.String())
				return
			}
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "file.path=geometry_wrapper.cpp")
		})
	}
}

func TestSourceOnlyWhenDebugging(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, slog.LevelInfo).Info("generated")
	assert.NotContains(t, buf.String(), "source=")

	buf.Reset()
	NewLogger(&buf, slog.LevelDebug).Info("generated")
	assert.Contains(t, buf.String(), "source=logutil_test.go:")
}
