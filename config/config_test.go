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

package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/bracepos/braces"
	"github.com/bufbuild/bracepos/config"
)

func testContext(t *testing.T) context.Context {
	t.Helper()
	return zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
}

func TestLoad(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"valid.yaml", "valid.json", "valid.hcl", "valid.toml"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join("testdata", name)
			file, err := config.Load(testContext(t), path)
			require.NoError(t, err)
			assert.Equal(t, path, file.Path())

			include, exclude := file.Patterns()
			assert.Equal(t, []string{"src/**/*.php"}, include)
			assert.Equal(t, []string{"vendor/**"}, exclude)

			resolved, err := file.Braces()
			require.NoError(t, err)
			assert.Equal(t, braces.SameLine, resolved.Policy(braces.Function))
			assert.Equal(t, braces.NextLineUnlessNewlineAtSignatureEnd, resolved.Policy(braces.ControlStructure))
			assert.Equal(t, braces.SameLine, resolved.Policy(braces.AnonymousFunction))
		})
	}
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, contains string
	}{
		{name: "unknown_field.yaml", contains: "field includes not found"},
		{name: "unknown_field.json", contains: `unknown field "rule"`},
		{name: "bad_option.yaml", contains: `invalid value "sameline" for option "functions_opening_brace"`},
		{name: "bad_option.hcl", contains: `option "functions_opening_brace" must be a string`},
		{name: "bad_glob.json", contains: `invalid glob "src/[*.php"`},
		{name: "unknown_field.toml", contains: "brace_position"},
		{name: "config.ini", contains: `unsupported file extension ".ini"`},
		{name: "missing.yaml", contains: "reading config file"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			_, err := config.Load(testContext(t), filepath.Join("testdata", test.name))
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.contains)
		})
	}

	_, err := config.Load(testContext(t), filepath.Join("testdata", "bad_option.yaml"))
	require.ErrorIs(t, err, braces.ErrInvalidConfiguration)
}

func TestDiscover(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o700))

	file, err := config.Discover(testContext(t), nested)
	require.NoError(t, err)
	assert.Empty(t, file.Path())

	path := filepath.Join(root, ".bracepos.yml")
	require.NoError(t, os.WriteFile(path, []byte("rules:\n  braces_position:\n    classes_opening_brace: same_line\n"), 0o600))

	file, err = config.Discover(testContext(t), nested)
	require.NoError(t, err)
	assert.Equal(t, path, file.Path())
	resolved, err := file.Braces()
	require.NoError(t, err)
	assert.Equal(t, braces.SameLine, resolved.Policy(braces.Class))
}

func TestSet(t *testing.T) {
	t.Parallel()

	file := config.Default()
	file.Set("anonymous_classes_opening_brace", "same_line_without_extra_space")
	require.NoError(t, file.Validate())

	resolved, err := file.Braces()
	require.NoError(t, err)
	assert.Equal(t, braces.SameLineWithoutExtraSpace, resolved.Policy(braces.AnonymousClass))

	file.Set("nope", "same_line")
	assert.ErrorIs(t, file.Validate(), braces.ErrInvalidConfiguration)
}
