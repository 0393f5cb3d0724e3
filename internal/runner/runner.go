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

// Package runner applies the brace placement rule to files on disk.
package runner

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"

	"github.com/bufbuild/bracepos/braces"
	"github.com/bufbuild/bracepos/internal/lexer"
	"github.com/bufbuild/bracepos/report"
)

// Runner fixes a set of files.
//
// The zero value fixes every .php file it is given with the default
// configuration.
type Runner struct {
	Config braces.Config

	// Globs selecting the files to fix under a directory, matched against
	// slash-separated paths relative to that directory. Files passed to
	// [Runner.Run] by name are fixed unless excluded.
	Include, Exclude []string

	// The maximum number of files processed at once. If non-positive,
	// min(runtime.NumCPU(), runtime.GOMAXPROCS(-1)) is used.
	MaxParallelism int

	// If set, fixed files are not written back.
	DryRun bool
}

// Run fixes every file selected by paths, which may name files or
// directories.
//
// Problems with individual files, such as malformed constructs, are
// recorded in the results. The returned error is reserved for I/O failures
// and cancellation.
func (r *Runner) Run(ctx context.Context, paths ...string) (*Results, error) {
	files, err := r.expand(paths)
	if err != nil {
		return nil, err
	}

	par := r.MaxParallelism
	if par <= 0 {
		par = min(runtime.GOMAXPROCS(-1), runtime.NumCPU())
	}

	results := &Results{}
	var mu sync.Mutex

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(par)
	for _, file := range files {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return errors.Errorf("fixing %s: %w", file, err)
			}

			result, err := r.fix(ctx, file)
			if err != nil {
				return err
			}

			mu.Lock()
			defer mu.Unlock()
			results.tree.Set(file, result)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// fix fixes a single file.
func (r *Runner) fix(ctx context.Context, path string) (*Result, error) {
	log := zerolog.Ctx(ctx).With().Str("path", path).Logger()

	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Errorf("reading %s: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading %s: %w", path, err)
	}

	result := &Result{Path: path, Original: string(data)}
	stream := new(lexer.Lexer).Lex(path, result.Original, &result.Report)
	if result.Report.HasErrors() {
		log.Error().Msg("could not tokenize file, skipping")
		result.Fixed = result.Original
		return result, nil
	}

	result.Constructs, err = braces.Fix(stream, r.Config)
	result.Fixed = stream.Text()
	if err != nil {
		var diagnose report.Diagnose
		if !errors.As(err, &diagnose) {
			return nil, errors.Errorf("fixing %s: %w", path, err)
		}
		d := result.Report.Error(diagnose).Apply(report.InFile(path))
		if report.IsICE(err) {
			d.Level = report.ICE
		}
		log.Error().Err(err).Msg("could not fix file")
	}

	log.Debug().
		Int("constructs", result.Constructs).
		Bool("changed", result.Changed()).
		Msg("fixed file")

	if r.DryRun || !result.Changed() {
		return result, nil
	}
	if err := os.WriteFile(path, []byte(result.Fixed), info.Mode().Perm()); err != nil {
		return nil, errors.Errorf("writing %s: %w", path, err)
	}
	return result, nil
}

// expand resolves paths into the list of files to fix.
func (r *Runner) expand(paths []string) ([]string, error) {
	include := r.Include
	if len(include) == 0 {
		include = []string{"**/*.php"}
	}

	var files []string
	seen := make(map[string]bool)
	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, errors.Errorf("resolving %s: %w", root, err)
		}
		if !info.IsDir() {
			if !matchAny(r.Exclude, filepath.ToSlash(root)) {
				add(root)
			}
			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			rel = filepath.ToSlash(rel)
			if d.IsDir() {
				if rel != "." && matchAny(r.Exclude, rel) {
					return filepath.SkipDir
				}
				return nil
			}
			if matchAny(include, rel) && !matchAny(r.Exclude, rel) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, errors.Errorf("walking %s: %w", root, err)
		}
	}
	return files, nil
}

func matchAny(globs []string, path string) bool {
	for _, glob := range globs {
		if ok, _ := doublestar.Match(glob, path); ok {
			return true
		}
	}
	return false
}
