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

package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/bracepos/token"
	"github.com/bufbuild/bracepos/token/keyword"
)

func newStream(t *testing.T) *token.Stream {
	t.Helper()
	s := token.NewStream("test.php")
	s.Push(token.Markup, "<?php")
	s.Push(token.Space, "\n    ")
	s.Push(token.Ident, "IF")
	s.Push(token.Space, " ")
	s.Push(token.Punct, "(")
	s.Push(token.Variable, "$x")
	s.Push(token.Punct, ")")
	s.Push(token.Comment, "// c")
	s.Push(token.Space, "\n")
	s.Push(token.Punct, "{")
	s.Push(token.Punct, "}")
	return s
}

func TestNew(t *testing.T) {
	t.Parallel()

	assert.Equal(t, keyword.If, token.New(token.Ident, "If").Keyword())
	assert.Equal(t, keyword.LBrace, token.New(token.Punct, "{").Keyword())
	assert.Equal(t, keyword.Unknown, token.New(token.String, "'if'").Keyword())
	assert.Equal(t, keyword.Unknown, token.New(token.Ident, "iffy").Keyword())

	assert.True(t, token.New(token.Comment, "# x").IsLineComment())
	assert.True(t, token.New(token.Comment, "/* x */").IsBlockComment())
	assert.False(t, token.New(token.Comment, "/* x */").IsLineComment())
	assert.True(t, token.NewSpace(" \n").HasNewline())
	assert.True(t, token.Zero.IsZero())
}

func TestStreamEdit(t *testing.T) {
	t.Parallel()

	s := newStream(t)
	text := s.Text()
	assert.Equal(t, "<?php\n    IF ($x)// c\n{}", text)
	assert.Equal(t, 11, s.Len())
	assert.Equal(t, len("<?php\n    "), s.Offset(2))
	assert.Equal(t, len(text), s.Offset(s.Len()))

	clone := s.Clone()

	// Replace an existing space.
	assert.Equal(t, 0, s.SetSpace(4, "  "))
	assert.Equal(t, "<?php\n    IF  ($x)// c\n{}", s.Text())

	// Delete it.
	assert.Equal(t, -1, s.SetSpace(4, ""))
	assert.Equal(t, "<?php\n    IF($x)// c\n{}", s.Text())

	// Insert a new one.
	assert.Equal(t, 1, s.SetSpace(3, " "))
	assert.Equal(t, "<?php\n    IF ($x)// c\n{}", s.Text())

	// No space to delete.
	assert.Equal(t, 0, s.SetSpace(5, ""))

	removed := s.Remove(9)
	assert.Equal(t, "{", removed.Text())
	s.Insert(7, removed)
	assert.Equal(t, "<?php\n    IF ($x){// c\n}", s.Text())

	assert.Panics(t, func() { s.Remove(s.Len()) })
	assert.Panics(t, func() { s.Insert(-1, token.Zero) })

	// The clone is unaffected.
	assert.Equal(t, text, clone.Text())
}

func TestLineIndent(t *testing.T) {
	t.Parallel()

	s := newStream(t)
	assert.Equal(t, "", s.LineIndent(0))
	assert.Equal(t, "    ", s.LineIndent(2))
	assert.Equal(t, "    ", s.LineIndent(6))
	assert.Equal(t, "", s.LineIndent(9))

	tabs := token.NewStream("", token.NewSpace("\n\t \t"), token.New(token.Ident, "x"))
	assert.Equal(t, "\t \t", tabs.LineIndent(1))

	comment := token.NewStream("",
		token.NewSpace("\n    "),
		token.New(token.Comment, "/* a\n       b */"),
		token.NewSpace(" "),
		token.New(token.Ident, "function"),
	)
	assert.Equal(t, "    ", comment.LineIndent(3))

	str := token.NewStream("",
		token.New(token.Variable, "$x"),
		token.New(token.String, "'a\n  '"),
		token.New(token.Punct, ";"),
		token.NewSpace(" "),
		token.New(token.Ident, "function"),
	)
	assert.Equal(t, "", str.LineIndent(4))
}

func TestCursor(t *testing.T) {
	t.Parallel()

	s := newStream(t)
	require.Equal(t, 11, s.Len())

	c := s.Cursor()
	assert.Equal(t, -1, c.Last())
	assert.Equal(t, token.Markup, c.Next().Kind())
	assert.Equal(t, keyword.If, c.Peek().Keyword())
	assert.Equal(t, token.Space, c.PeekSkippable().Kind())
	assert.Equal(t, keyword.If, c.Next().Keyword())
	assert.Equal(t, 2, c.Last())

	mark := c.Mark()
	assert.Equal(t, keyword.LParen, c.Next().Keyword())
	assert.Equal(t, token.Variable, c.Next().Kind())
	assert.Equal(t, keyword.RParen, c.Next().Keyword())
	assert.Equal(t, keyword.LBrace, c.Next().Keyword())
	assert.Equal(t, 9, c.Last())
	assert.Equal(t, keyword.LBrace, c.Prev().Keyword())
	assert.Equal(t, keyword.RParen, c.Prev().Keyword())
	assert.Equal(t, 6, c.Last())

	c.Rewind(mark)
	assert.Equal(t, 2, c.Last())
	assert.Equal(t, 3, c.Index())
	assert.Panics(t, func() { s.Cursor().Rewind(mark) })

	var texts []string
	for tok := range c.Rest() {
		texts = append(texts, tok.Text())
	}
	assert.Equal(t, []string{"(", "$x", ")", "{", "}"}, texts)
	assert.True(t, c.Done())
	assert.True(t, c.Next().IsZero())

	require.True(t, c.Seek(7))
	assert.Equal(t, "// c", c.NextSkippable().Text())
	assert.Equal(t, "// c", c.PrevSkippable().Text())
	assert.Equal(t, keyword.RParen, c.Prev().Keyword())
	assert.False(t, c.Seek(100))

	var n int
	for range s.CursorAt(7).RestSkippable() {
		n++
	}
	assert.Equal(t, 4, n)
}

func TestSpan(t *testing.T) {
	t.Parallel()

	s := newStream(t)
	span := s.Span(2, 7)
	assert.Equal(t, "test.php", span.File().Path)
	assert.Equal(t, 2, span.Start().Line)
	assert.Equal(t, 5, span.Start().Column)
	assert.Equal(t, 12, span.End().Column)
}
