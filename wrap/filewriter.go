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
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ajroetker/go-wrap/internal/logutil"
)

// FileWriter buffers one generated file and writes it on Emit. Files whose
// content did not change are left untouched so that MATLAB and make do not
// see spurious modifications.
type FileWriter struct {
	filename   string
	verbose    bool
	commentStr string
	buf        bytes.Buffer
	emitted    bool
}

// NewFileWriter returns a writer for filename. commentStr starts the
// generated-file banner ("%" for MATLAB, "//" for C++).
func NewFileWriter(filename string, verbose bool, commentStr string) *FileWriter {
	return &FileWriter{filename: filename, verbose: verbose, commentStr: commentStr}
}

func (f *FileWriter) Write(p []byte) (int, error) {
	return f.buf.Write(p)
}

func (f *FileWriter) Filename() string { return f.filename }

// String returns the buffered content, without the banner.
func (f *FileWriter) String() string { return f.buf.String() }

// Emit writes the buffered content, preceded by the banner line when
// addHeader is set. A FileWriter can only be emitted once.
func (f *FileWriter) Emit(addHeader bool) error {
	if f.emitted {
		return fmt.Errorf("emit %s: %w", f.filename, ErrAlreadyEmitted)
	}
	f.emitted = true

	var out bytes.Buffer
	if addHeader {
		fmt.Fprintf(&out, "%s automatically generated by wrap\n", f.commentStr)
	}
	out.Write(f.buf.Bytes())

	existing, err := os.ReadFile(f.filename)
	switch {
	case err == nil && bytes.Equal(existing, out.Bytes()):
		logutil.Trace("file unchanged", logutil.File(f.filename, out.Len()))
		return nil
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("read %s: %w", f.filename, err)
	}

	logutil.Progress(f.verbose, "writing file", logutil.File(f.filename, out.Len()))
	if err := os.WriteFile(f.filename, out.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", f.filename, err)
	}
	return nil
}
