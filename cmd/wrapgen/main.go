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

// Command wrapgen generates MATLAB toolbox bindings for overloaded C++ free
// functions described in YAML interface files.
//
// Usage:
//
//	wrapgen generate -i geometry.yaml -o toolbox
//	wrapgen generate -m geometry -o toolbox points.yaml poses.yaml
//	wrapgen list -i geometry.yaml                # show the wrapper ids only
//
// For each function the generator produces:
//  1. One dispatch script per namespace, toolbox/+ns/name.m
//  2. One C++ wrapper per overload in toolbox/<module>_wrapper.cpp, plus the
//     mexFunction that routes dispatch ids to wrappers
//
// WRAP_DEBUG=1 enables debug logging, WRAP_DEBUG=2 traces every file.
// WRAP_TOOLBOX sets the default output directory.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-wrap/internal/logutil"
)

func main() {
	slog.SetDefault(logutil.NewLogger(os.Stderr, logLevel()))
	if err := NewCLI().Execute(); err != nil {
		os.Exit(1)
	}
}

// NewCLI builds the wrapgen command tree.
func NewCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wrapgen",
		Short: "MATLAB binding generator for overloaded C++ functions",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Disable usage printing on errors
			cmd.SilenceUsage = true
		},
	}

	rootCmd.PersistentFlags().StringSliceP("input", "i", nil, "Interface files (YAML), in declaration order")
	rootCmd.PersistentFlags().StringP("module", "m", "", "Module name (default: module of the first interface file)")

	generateCmd := &cobra.Command{
		Use:   "generate [interface files...]",
		Short: "Generate dispatch scripts and the MEX wrapper source",
		RunE:  runGenerate,
	}
	generateCmd.Flags().StringP("output", "o", defaultToolbox(), "Toolbox directory")
	generateCmd.Flags().BoolP("verbose", "v", false, "Log every generated file")

	listCmd := &cobra.Command{
		Use:   "list [interface files...]",
		Short: "List the wrappers and dispatch ids without writing files",
		RunE:  runList,
	}

	rootCmd.AddCommand(generateCmd, listCmd)
	return rootCmd
}

func generatorFromFlags(cmd *cobra.Command, args []string) (*Generator, error) {
	inputs, err := cmd.Flags().GetStringSlice("input")
	if err != nil {
		return nil, err
	}
	module, err := cmd.Flags().GetString("module")
	if err != nil {
		return nil, err
	}
	return &Generator{
		InputFiles: append(inputs, args...),
		ModuleName: module,
	}, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	gen, err := generatorFromFlags(cmd, args)
	if err != nil {
		return err
	}
	if gen.OutputDir, err = cmd.Flags().GetString("output"); err != nil {
		return err
	}
	if gen.Verbose, err = cmd.Flags().GetBool("verbose"); err != nil {
		return err
	}
	if gen.Verbose {
		slog.SetDefault(logutil.NewLogger(cmd.ErrOrStderr(), min(logLevel(), slog.LevelDebug)))
	}

	reg, err := gen.Run()
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Successfully generated %d wrappers in %s\n", reg.Len(), gen.OutputDir)
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	gen, err := generatorFromFlags(cmd, args)
	if err != nil {
		return err
	}
	m, _, err := gen.Load()
	if err != nil {
		return err
	}
	plan, err := m.Plan()
	if err != nil {
		return err
	}
	writePlan(cmd.OutOrStdout(), plan)
	return nil
}
