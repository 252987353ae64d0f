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
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/ajroetker/go-wrap/wrap"
)

// extractInputs writes the non-"want/" files of an archive to dir and
// returns their paths plus the expected outputs keyed by slash path.
func extractInputs(t *testing.T, archive string, dir string) ([]string, map[string]string) {
	t.Helper()
	ar, err := txtar.ParseFile(archive)
	require.NoError(t, err)

	var inputs []string
	want := make(map[string]string)
	for _, f := range ar.Files {
		if rel, ok := strings.CutPrefix(f.Name, "want/"); ok {
			want[rel] = string(f.Data)
			continue
		}
		name := filepath.Join(dir, filepath.FromSlash(f.Name))
		require.NoError(t, os.WriteFile(name, f.Data, 0o644))
		inputs = append(inputs, name)
	}
	return inputs, want
}

// generatedFiles reads every generated file below toolbox, keyed by slash path.
func generatedFiles(t *testing.T, toolbox string) map[string]string {
	t.Helper()
	got := make(map[string]string)
	err := filepath.WalkDir(toolbox, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || d.Name() == ".wrap.lock" {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(toolbox, path)
		if err != nil {
			return err
		}
		got[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	require.NoError(t, err)
	return got
}

func TestGeneratorEndToEnd(t *testing.T) {
	archives, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	require.NoError(t, err)
	require.NotEmpty(t, archives)

	for _, archive := range archives {
		t.Run(strings.TrimSuffix(filepath.Base(archive), ".txtar"), func(t *testing.T) {
			tmpDir := t.TempDir()
			inputs, want := extractInputs(t, archive, tmpDir)

			gen := &Generator{
				InputFiles: inputs,
				OutputDir:  filepath.Join(tmpDir, "toolbox"),
			}
			_, err := gen.Run()
			require.NoError(t, err)

			got := generatedFiles(t, gen.OutputDir)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("generated toolbox mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGeneratorRegistryAndScripts(t *testing.T) {
	tmpDir := t.TempDir()
	inputs, _ := extractInputs(t, filepath.Join("testdata", "geometry.txtar"), tmpDir)

	gen := &Generator{InputFiles: inputs, OutputDir: filepath.Join(tmpDir, "toolbox")}
	reg, err := gen.Run()
	require.NoError(t, err)

	names := reg.Names()
	assert.Equal(t, []string{"mfoo_0", "mfoo_1", "abar_0", "bbar_0", "gtsammidpoint_0"}, names)
	assert.Len(t, lo.Uniq(names), len(names), "wrapper identifiers must be unique")

	var scripts []string
	for name := range generatedFiles(t, gen.OutputDir) {
		if strings.HasSuffix(name, ".m") {
			scripts = append(scripts, name)
		}
	}
	sort.Strings(scripts)
	assert.Equal(t, []string{"+a/bar.m", "+b/bar.m", "+gtsam/midpoint.m", "+m/foo.m"}, scripts)
}

func TestGeneratorMultipleFiles(t *testing.T) {
	tmpDir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(tmpDir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}
	first := write("first.yaml", `
includes: [a.h]
functions:
  - {name: "n::f", args: ["int i"], returns: int}
`)
	second := write("second.yaml", `
module: second
includes: [a.h, b.h]
functions:
  - {name: "n::f", args: ["double d"], returns: double}
  - {name: "g"}
`)

	gen := &Generator{InputFiles: []string{first, second}, OutputDir: filepath.Join(tmpDir, "toolbox")}
	m, _, err := gen.Load()
	require.NoError(t, err)
	assert.Equal(t, "second", m.Name)
	assert.Equal(t, []string{"a.h", "b.h"}, m.Includes)

	fns := m.Functions()
	require.Len(t, fns, 2)
	assert.Equal(t, "f", fns[0].Name())
	assert.Equal(t, 2, fns[0].Len())
	assert.Equal(t, "int", fns[0].Overloads()[0].Args()[0].Type.Name())

	gen.ModuleName = "override"
	m, _, err = gen.Load()
	require.NoError(t, err)
	assert.Equal(t, "override", m.Name)
}

func TestGeneratorErrors(t *testing.T) {
	tmpDir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(tmpDir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	t.Run("no inputs", func(t *testing.T) {
		_, err := (&Generator{OutputDir: tmpDir}).Run()
		assert.ErrorContains(t, err, "no input files")
	})

	t.Run("no module", func(t *testing.T) {
		in := write("nomodule.yaml", "functions: [{name: f}]\n")
		_, err := (&Generator{InputFiles: []string{in}, OutputDir: tmpDir}).Run()
		assert.ErrorContains(t, err, "no module name")
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := (&Generator{InputFiles: []string{filepath.Join(tmpDir, "missing.yaml")}, ModuleName: "m"}).Load()
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("unknown class", func(t *testing.T) {
		in := write("unknown.yaml", "module: m\nfunctions: [{name: \"n::f\", returns: \"n::Thing\"}]\n")
		toolbox := filepath.Join(tmpDir, "unknown")
		_, err := (&Generator{InputFiles: []string{in}, OutputDir: toolbox}).Run()
		assert.ErrorIs(t, err, wrap.ErrUnknownType)
		assert.NoFileExists(t, filepath.Join(toolbox, "m_wrapper.cpp"))
	})

	t.Run("locked", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("toolbox locking is advisory on unix only")
		}
		in := write("locked.yaml", "module: m\nfunctions: [{name: f}]\n")
		toolbox := filepath.Join(tmpDir, "locked")
		unlock, err := wrap.LockToolbox(toolbox)
		require.NoError(t, err)
		defer unlock()

		_, err = (&Generator{InputFiles: []string{in}, OutputDir: toolbox}).Run()
		assert.ErrorIs(t, err, wrap.ErrToolboxLocked)
		assert.NoFileExists(t, filepath.Join(toolbox, "m_wrapper.cpp"))
	})
}

func TestCLIGenerateAndList(t *testing.T) {
	tmpDir := t.TempDir()
	inputs, _ := extractInputs(t, filepath.Join("testdata", "geometry.txtar"), tmpDir)
	toolbox := filepath.Join(tmpDir, "toolbox")

	var stdout bytes.Buffer
	cmd := NewCLI()
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"generate", "-o", toolbox, inputs[0]})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "Successfully generated 5 wrappers in "+toolbox+"\n", stdout.String())
	assert.FileExists(t, filepath.Join(toolbox, "geometry_wrapper.cpp"))

	stdout.Reset()
	cmd = NewCLI()
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"list", "-i", inputs[0], "-m", "renamed"})
	require.NoError(t, cmd.Execute())

	out := stdout.String()
	for _, want := range []string{"WRAPPER", "mfoo_1", "m.foo", "(double)", "gtsammidpoint_0", "(gtsam::Point2, gtsam::Point2)", "void"} {
		assert.Contains(t, out, want)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 6, "header plus one row per wrapper")
}
