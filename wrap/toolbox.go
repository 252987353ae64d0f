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

package wrap

import (
	"fmt"
	"os"
	"path/filepath"
)

// CreateNamespaceStructure creates the MATLAB package folders
// toolboxPath/+ns1/+ns2/... for namespaces, outermost first.
func CreateNamespaceStructure(namespaces []string, toolboxPath string) error {
	cur := toolboxPath
	for _, ns := range namespaces {
		cur = filepath.Join(cur, "+"+ns)
		info, err := os.Stat(cur)
		switch {
		case err == nil && !info.IsDir():
			return fmt.Errorf("create %s: %w", cur, ErrNamespaceNotDir)
		case err == nil:
			continue
		case !os.IsNotExist(err):
			return fmt.Errorf("stat %s: %w", cur, err)
		}
		if err := os.Mkdir(cur, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", cur, err)
		}
	}
	return nil
}
