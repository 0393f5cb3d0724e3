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

package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/bracepos/braces"
	"github.com/bufbuild/bracepos/internal/runner"
	"github.com/bufbuild/bracepos/report"
)

const (
	unfixed = "<?php\nfunction foo() {\n    if ($x)\n    {\n    }\n}\n"
	fixed   = "<?php\nfunction foo()\n{\n    if ($x) {\n    }\n}\n"
)

func setup(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	write := func(path, text string) {
		path = filepath.Join(root, path)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
		require.NoError(t, os.WriteFile(path, []byte(text), 0o600))
	}
	write("src/a.php", unfixed)
	write("src/b.php", fixed)
	write("src/broken.php", "<?php\nwhile ($x {\n")
	write("vendor/c.php", unfixed)
	write("README.md", unfixed)
	return root
}

func testContext(t *testing.T) context.Context {
	t.Helper()
	return zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
}

func read(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestRun(t *testing.T) {
	t.Parallel()

	root := setup(t)
	r := &runner.Runner{
		Config:         braces.DefaultConfig(),
		Exclude:        []string{"vendor/**"},
		MaxParallelism: 2,
	}
	results, err := r.Run(testContext(t), root)
	require.NoError(t, err)

	var paths []string
	for result := range results.All() {
		rel, err := filepath.Rel(root, result.Path)
		require.NoError(t, err)
		paths = append(paths, filepath.ToSlash(rel))
	}
	assert.Equal(t, []string{"src/a.php", "src/b.php", "src/broken.php"}, paths)
	assert.Equal(t, 1, results.Changed())

	a, ok := results.Get(filepath.Join(root, "src", "a.php"))
	require.True(t, ok)
	assert.Equal(t, 2, a.Constructs)
	assert.Equal(t, fixed, a.Fixed)
	assert.Equal(t, fixed, read(t, a.Path))
	assert.Equal(t, unfixed, read(t, filepath.Join(root, "vendor", "c.php")))

	broken, ok := results.Get(filepath.Join(root, "src", "broken.php"))
	require.True(t, ok)
	assert.False(t, broken.Changed())
	require.Len(t, broken.Report, 1)
	assert.Equal(t, report.Error, broken.Report[0].Level)
	assert.ErrorIs(t, broken.Report[0].Err, braces.ErrMalformedConstruct)
	assert.True(t, results.Report().HasErrors())
}

func TestRunDryRun(t *testing.T) {
	t.Parallel()

	root := setup(t)
	path := filepath.Join(root, "src", "a.php")
	r := &runner.Runner{Config: braces.DefaultConfig(), DryRun: true}
	results, err := r.Run(testContext(t), path)
	require.NoError(t, err)
	require.Equal(t, 1, results.Len())

	result, ok := results.Get(path)
	require.True(t, ok)
	assert.True(t, result.Changed())
	assert.Equal(t, unfixed, read(t, path))

	diff, err := result.Diff()
	require.NoError(t, err)
	assert.Contains(t, diff, "-function foo() {\n")
	assert.Contains(t, diff, "+function foo()\n+{\n")
	assert.Contains(t, diff, "+++ b/"+path)
}

func TestRunCancelled(t *testing.T) {
	t.Parallel()

	root := setup(t)
	ctx, cancel := context.WithCancel(testContext(t))
	cancel()

	_, err := (&runner.Runner{}).Run(ctx, root)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunMissing(t *testing.T) {
	t.Parallel()

	_, err := (&runner.Runner{}).Run(testContext(t), filepath.Join(t.TempDir(), "nope"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
