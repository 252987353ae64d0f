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
	"os"
	"strconv"
	"strings"

	"github.com/ajroetker/go-wrap/internal/logutil"
)

// Clean quotes and spaces from the value
func clean(key string) string {
	return strings.Trim(os.Getenv(key), "\"' ")
}

// logLevel is set via WRAP_DEBUG in the environment. Any true value enables
// debug logging, 2 enables per-file tracing.
func logLevel() slog.Level {
	debug := clean("WRAP_DEBUG")
	if debug == "" {
		return slog.LevelInfo
	}
	if n, err := strconv.Atoi(debug); err == nil {
		switch {
		case n >= 2:
			return logutil.LevelTrace
		case n == 1:
			return slog.LevelDebug
		default:
			return slog.LevelInfo
		}
	}
	if b, err := strconv.ParseBool(debug); err == nil && !b {
		return slog.LevelInfo
	}
	return slog.LevelDebug
}

// defaultToolbox is set via WRAP_TOOLBOX in the environment.
func defaultToolbox() string {
	if dir := clean("WRAP_TOOLBOX"); dir != "" {
		return dir
	}
	return "."
}
