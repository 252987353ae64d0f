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

//go:build !unix

package wrap

import (
	"fmt"
	"os"
)

// LockToolbox only creates toolboxPath on platforms without flock.
func LockToolbox(toolboxPath string) (func() error, error) {
	if err := os.MkdirAll(toolboxPath, 0o755); err != nil {
		return nil, fmt.Errorf("lock toolbox: %w", err)
	}
	return func() error { return nil }, nil
}
