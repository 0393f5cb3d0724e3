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

package braces_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/bracepos/braces"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	config := braces.DefaultConfig()
	assert.Equal(t, braces.SameLine, config.Policy(braces.ControlStructure))
	assert.Equal(t, braces.NextLineUnlessNewlineAtSignatureEnd, config.Policy(braces.Class))
	assert.Equal(t, braces.SameLine, config.Policy(braces.AnonymousClass))
	assert.Equal(t, braces.NextLineUnlessNewlineAtSignatureEnd, config.Policy(braces.Function))
	assert.Equal(t, braces.SameLine, config.Policy(braces.AnonymousFunction))

	// The zero value behaves like the defaults.
	assert.Equal(t, config.Options(), braces.Config{}.Options())
}

func TestParseConfig(t *testing.T) {
	t.Parallel()

	config, err := braces.ParseConfig(map[string]string{
		"functions_opening_brace":          "same_line",
		"control_structures_opening_brace": "same_line_without_extra_space",
	})
	require.NoError(t, err)
	assert.Equal(t, braces.SameLine, config.Policy(braces.Function))
	assert.Equal(t, braces.SameLineWithoutExtraSpace, config.Policy(braces.ControlStructure))
	assert.Equal(t, braces.NextLineUnlessNewlineAtSignatureEnd, config.Policy(braces.Class))

	roundTrip, err := braces.ParseConfig(config.Options())
	require.NoError(t, err)
	assert.Equal(t, config, roundTrip)

	_, err = braces.ParseConfig(map[string]string{"functions_opening_brace": "sameline"})
	require.ErrorIs(t, err, braces.ErrInvalidConfiguration)
	assert.EqualError(t, err, `invalid value "sameline" for option "functions_opening_brace"`)

	_, err = braces.ParseConfig(map[string]string{
		"zzz":                     "same_line",
		"classes_opening_brace":   "same_line",
		"functions_opening_brace": "bogus",
	})
	var invalid *braces.InvalidConfigurationError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "functions_opening_brace", invalid.Key)
	assert.True(t, invalid.BadValue)

	_, err = braces.ParseConfig(map[string]string{"braces": "same_line"})
	assert.EqualError(t, err, `unknown option "braces"`)
}

func TestPolicyNames(t *testing.T) {
	t.Parallel()

	var names []string
	for policy := range braces.Policies() {
		names = append(names, policy.String())
		parsed, ok := braces.ParsePolicy(policy.String())
		assert.True(t, ok)
		assert.Equal(t, policy, parsed)
	}
	assert.Equal(t, []string{
		"same_line",
		"same_line_without_extra_space",
		"next_line_unless_newline_at_signature_end",
	}, names)

	_, ok := braces.ParsePolicy("")
	assert.False(t, ok)
	assert.False(t, braces.Policy(0).IsValid())
}
