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

package main

import (
	"log/slog"
	"testing"

	"github.com/ajroetker/go-wrap/internal/logutil"
)

func TestLogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":        slog.LevelInfo,
		"false":   slog.LevelInfo,
		"0":       slog.LevelInfo,
		"1":       slog.LevelDebug,
		"true":    slog.LevelDebug,
		"\"1\"":   slog.LevelDebug,
		" 'true'": slog.LevelDebug,
		"2":       logutil.LevelTrace,
		"3":       logutil.LevelTrace,
		"yes":     slog.LevelDebug,
	}

	for k, v := range cases {
		t.Run(k, func(t *testing.T) {
			t.Setenv("WRAP_DEBUG", k)
			if got := logLevel(); got != v {
				t.Errorf("%s: expected %v, got %v", k, v, got)
			}
		})
	}
}

func TestDefaultToolbox(t *testing.T) {
	cases := map[string]string{
		"":               ".",
		"toolbox":        "toolbox",
		"\"/opt/gtsam\"": "/opt/gtsam",
		"  ":             ".",
	}

	for k, v := range cases {
		t.Run(k, func(t *testing.T) {
			t.Setenv("WRAP_TOOLBOX", k)
			if got := defaultToolbox(); got != v {
				t.Errorf("%s: expected %q, got %q", k, v, got)
			}
		})
	}
}
