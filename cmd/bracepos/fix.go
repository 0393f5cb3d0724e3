// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/bufbuild/bracepos/internal/runner"
	"github.com/bufbuild/bracepos/report"
)

type fixOptions struct {
	*rootOptions
	dryRun bool
	diff   bool
	jobs   int
}

func newFixCommand(root *rootOptions) *cobra.Command {
	opts := &fixOptions{rootOptions: root}
	cmd := &cobra.Command{
		Use:   "fix [paths...]",
		Short: "Fix brace placement in files and directories",
		Long: `Fix rewrites every selected PHP file in place. Directories are searched
for files matching the configured include globs; the current directory is
used if no paths are given.

With --dry-run no file is written, and the exit status is 8 if any file
needs fixing.`,
		RunE: opts.run,
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.dryRun, "dry-run", false, "report files that need fixing without writing them")
	flags.BoolVar(&opts.diff, "diff", false, "print a unified diff of every change")
	flags.IntVarP(&opts.jobs, "jobs", "j", 0, "number of files to process at once (default: number of CPUs)")
	return cmd
}

func (o *fixOptions) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if len(args) == 0 {
		args = []string{"."}
	}

	file, err := o.loadConfig(cmd, args[0])
	if err != nil {
		return err
	}
	resolved, err := file.Braces()
	if err != nil {
		return err
	}
	include, exclude := file.Patterns()

	r := &runner.Runner{
		Config:         resolved,
		Include:        include,
		Exclude:        exclude,
		MaxParallelism: o.jobs,
		DryRun:         o.dryRun,
	}
	results, err := r.Run(ctx, args...)
	if err != nil {
		return errors.Errorf("fixing files: %w", err)
	}

	out := cmd.OutOrStdout()
	for result := range results.All() {
		if !result.Changed() {
			continue
		}
		if !o.diff {
			fmt.Fprintln(out, filepath.ToSlash(result.Path))
			continue
		}
		diff, err := result.Diff()
		if err != nil {
			return errors.Errorf("diffing %s: %w", result.Path, err)
		}
		fmt.Fprint(out, colorizeDiff(diff, o.colorize()))
	}

	diagnostics := results.Report()
	if len(*diagnostics) > 0 {
		fmt.Fprint(cmd.ErrOrStderr(), report.Renderer{Colorize: o.colorize()}.Render(diagnostics))
	}

	zerolog.Ctx(ctx).Info().
		Int("files", results.Len()).
		Int("changed", results.Changed()).
		Bool("dry_run", o.dryRun).
		Msg("done")

	switch {
	case diagnostics.HasErrors():
		return &exitStatus{code: exitError}
	case o.dryRun && results.Changed() > 0:
		return &exitStatus{code: exitNeedsFixing}
	default:
		return nil
	}
}

func colorizeDiff(diff string, colorize bool) string {
	if !colorize {
		return diff
	}

	added := color.New(color.FgGreen)
	removed := color.New(color.FgRed)
	header := color.New(color.Bold)
	for _, c := range []*color.Color{added, removed, header} {
		c.EnableColor()
	}

	lines := strings.SplitAfter(diff, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			lines[i] = header.Sprint(line)
		case strings.HasPrefix(line, "+"):
			lines[i] = added.Sprint(line)
		case strings.HasPrefix(line, "-"):
			lines[i] = removed.Sprint(line)
		}
	}
	return strings.Join(lines, "")
}
