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

package keyword_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/bracepos/token/keyword"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	assert.Equal(t, keyword.Function, keyword.Lookup("function"))
	assert.Equal(t, keyword.Function, keyword.Lookup("FUNCTION"))
	assert.Equal(t, keyword.Elseif, keyword.Lookup("ElseIf"))
	assert.Equal(t, keyword.LParen, keyword.Lookup("("))
	assert.Equal(t, keyword.NullsafeArrow, keyword.Lookup("?->"))
	assert.Equal(t, keyword.Unknown, keyword.Lookup("foo"))
	assert.Equal(t, keyword.Unknown, keyword.Lookup(""))
	assert.Equal(t, keyword.Unknown, keyword.Lookup("$class"))
}

func TestPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want keyword.Keyword
	}{
		{"?->foo", keyword.NullsafeArrow},
		{"??= 1", keyword.AskAskEq},
		{"?int", keyword.Ask},
		{"::class", keyword.DoubleColon},
		{"...$args", keyword.Ellipsis},
		{"#[Attr]", keyword.LAttr},
		{"<=>", keyword.Spaceship},
		{"|float", keyword.Pipe},
		{"# comment", keyword.Unknown},
		{"foo", keyword.Unknown},
		{"", keyword.Unknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, keyword.Prefix(tt.text), "%q", tt.text)
	}
}

func TestBrackets(t *testing.T) {
	t.Parallel()

	for kw := range keyword.All() {
		if !kw.IsBrackets() {
			continue
		}
		left, right := kw.Brackets()
		assert.True(t, left.IsOpen(), "%v", kw)
		assert.True(t, right.IsClose(), "%v", kw)
		assert.NotEqual(t, left, right, "%v", kw)
	}

	left, right := keyword.LAttr.Brackets()
	assert.Equal(t, keyword.LAttr, left)
	assert.Equal(t, keyword.RBracket, right)
	assert.False(t, keyword.Semi.IsOpen())
	assert.True(t, keyword.Arrow.IsMemberAccess())
	assert.True(t, keyword.Amp.IsTypeOperator())
	assert.True(t, keyword.Trait.IsClassLike())
	assert.True(t, keyword.Finally.IsControl())
}
