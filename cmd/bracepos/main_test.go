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
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	unfixed = "<?php\nclass Foo {\n    public function bar() {\n    }\n}\n"
	fixed   = "<?php\nclass Foo\n{\n    public function bar()\n    {\n    }\n}\n"
)

func setup(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for path, text := range files {
		path = filepath.Join(root, path)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
		require.NoError(t, os.WriteFile(path, []byte(text), 0o600))
	}
	return root
}

func execute(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()

	var out, err bytes.Buffer
	code = run(context.Background(), append([]string{"--no-color"}, args...), &out, &err)
	return code, out.String(), err.String()
}

func TestFix(t *testing.T) {
	t.Parallel()

	root := setup(t, map[string]string{"a.php": unfixed})
	code, stdout, _ := execute(t, "fix", root)
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "a.php")

	data, err := os.ReadFile(filepath.Join(root, "a.php"))
	require.NoError(t, err)
	assert.Equal(t, fixed, string(data))
}

func TestFixDryRun(t *testing.T) {
	t.Parallel()

	root := setup(t, map[string]string{"a.php": unfixed})
	code, stdout, _ := execute(t, "fix", "--dry-run", "--diff", root)
	assert.Equal(t, exitNeedsFixing, code)
	assert.Contains(t, stdout, "-class Foo {\n")
	assert.Contains(t, stdout, "+class Foo\n+{\n")

	data, err := os.ReadFile(filepath.Join(root, "a.php"))
	require.NoError(t, err)
	assert.Equal(t, unfixed, string(data))

	root = setup(t, map[string]string{"a.php": fixed})
	code, stdout, _ = execute(t, "fix", "--dry-run", root)
	assert.Equal(t, 0, code)
	assert.Empty(t, stdout)
}

func TestFixConfig(t *testing.T) {
	t.Parallel()

	root := setup(t, map[string]string{
		"src/a.php":     fixed,
		"vendor/b.php":  fixed,
		".bracepos.yml": "rules:\n  braces_position:\n    classes_opening_brace: same_line\nexclude: [\"vendor/**\"]\n",
	})
	code, _, _ := execute(t, "fix", "--set", "functions_opening_brace=same_line_without_extra_space", root)
	assert.Equal(t, 0, code)

	data, err := os.ReadFile(filepath.Join(root, "src", "a.php"))
	require.NoError(t, err)
	assert.Equal(t, "<?php\nclass Foo {\n    public function bar(){\n    }\n}\n", string(data))

	data, err = os.ReadFile(filepath.Join(root, "vendor", "b.php"))
	require.NoError(t, err)
	assert.Equal(t, fixed, string(data))
}

func TestFixErrors(t *testing.T) {
	t.Parallel()

	root := setup(t, map[string]string{"bad.php": "<?php\nif ($x]) {}\n"})
	code, _, stderr := execute(t, "fix", root)
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, "malformed `if`: unexpected `]`")

	code, _, stderr = execute(t, "fix", "--set", "functions_opening_brace=sideways", root)
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, `invalid value "sideways" for option "functions_opening_brace"`)

	code, _, stderr = execute(t, "fix", "--set", "nonsense", root)
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, "expected key=value")
}

func TestRules(t *testing.T) {
	t.Parallel()

	root := setup(t, map[string]string{
		".bracepos.json": `{"rules": {"braces_position": {"classes_opening_brace": "same_line"}}}`,
	})
	code, stdout, _ := execute(t, "rules", root)
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "    classes_opening_brace: same_line\n")
	assert.Contains(t, stdout, "    functions_opening_brace: next_line_unless_newline_at_signature_end\n")
	assert.Contains(t, stdout, "include:\n")
}
