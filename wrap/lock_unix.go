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

//go:build unix

package wrap

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

const lockFileName = ".wrap.lock"

// LockToolbox takes an exclusive advisory lock on toolboxPath so that two
// generation passes never interleave writes into the same toolbox. The
// returned function releases the lock.
func LockToolbox(toolboxPath string) (func() error, error) {
	if err := os.MkdirAll(toolboxPath, 0o755); err != nil {
		return nil, fmt.Errorf("lock toolbox: %w", err)
	}
	name := filepath.Join(toolboxPath, lockFileName)
	f, err := os.OpenFile(name, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, fmt.Errorf("lock toolbox: %w", err)
	}
	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		f.Close()
		if errors.Is(err, unix.EWOULDBLOCK) {
			return nil, fmt.Errorf("lock %s: %w", name, ErrToolboxLocked)
		}
		return nil, fmt.Errorf("lock %s: %w", name, err)
	}
	return func() error {
		if err := unix.Flock(int(f.Fd()), unix.LOCK_UN); err != nil {
			f.Close()
			return fmt.Errorf("unlock %s: %w", name, err)
		}
		return f.Close()
	}, nil
}
