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

package braces

import (
	"github.com/bufbuild/bracepos/token"
	"github.com/bufbuild/bracepos/token/keyword"
)

// parseReturnType parses the return type after the colon at index colon.
//
// The grammar is
//
//	type := ['?'] term (('|' | '&') term)*
//	term := name | '(' type ')'
//	name := ['\'] ident ('\' ident)*
//
// which covers nullable, union, intersection and DNF types. Parsing stops at
// the first token outside the grammar.
//
// Returns the index of the last token of the type, and false if no type
// follows the colon.
func parseReturnType(s *token.Stream, colon int) (int, bool) {
	p := &typeParser{cursor: s.CursorAt(colon + 1), end: colon}
	if !p.parseType() {
		return -1, false
	}
	return p.end, true
}

type typeParser struct {
	cursor *token.Cursor
	// The index of the last token consumed.
	end int
}

type typeParserMark struct {
	cursor token.CursorMark
	end    int
}

func (p *typeParser) mark() typeParserMark {
	return typeParserMark{p.cursor.Mark(), p.end}
}

func (p *typeParser) rewind(m typeParserMark) {
	p.cursor.Rewind(m.cursor)
	p.end = m.end
}

func (p *typeParser) peek() token.Token {
	return p.cursor.Peek()
}

func (p *typeParser) take() {
	p.cursor.Next()
	p.end = p.cursor.Last()
}

func (p *typeParser) parseType() bool {
	start := p.mark()
	if p.peek().Keyword() == keyword.Ask {
		p.take()
	}
	if !p.parseTerm() {
		p.rewind(start)
		return false
	}

	for p.peek().Keyword().IsTypeOperator() {
		// A dangling operator is not part of the type.
		m := p.mark()
		p.take()
		if !p.parseTerm() {
			p.rewind(m)
			break
		}
	}
	return true
}

func (p *typeParser) parseTerm() bool {
	if p.peek().Keyword() != keyword.LParen {
		return p.parseName()
	}

	m := p.mark()
	p.take()
	if p.parseType() && p.peek().Keyword() == keyword.RParen {
		p.take()
		return true
	}
	p.rewind(m)
	return false
}

func (p *typeParser) parseName() bool {
	m := p.mark()
	if p.peek().Keyword() == keyword.Backslash {
		p.take()
	}
	if p.peek().Kind() != token.Ident {
		p.rewind(m)
		return false
	}
	p.take()

	for p.peek().Keyword() == keyword.Backslash {
		m := p.mark()
		p.take()
		if p.peek().Kind() != token.Ident {
			p.rewind(m)
			break
		}
		p.take()
	}
	return true
}
