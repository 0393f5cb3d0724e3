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
	"strings"

	"github.com/bufbuild/bracepos/token"
)

// rewriter edits the layout between a construct's signature and its body.
type rewriter struct {
	Construct
	stream *token.Stream

	// The line ending to use for inserted line breaks.
	eol string
}

func newRewriter(s *token.Stream) *rewriter {
	return &rewriter{stream: s, eol: lineEnding(s)}
}

// joinLine puts the brace directly after the signature end, separated from
// it by spacing. Comments between the signature end and the brace always
// end up after the brace, even ones that were already on the signature line.
func (r *rewriter) joinLine(spacing string) {
	if !r.hasComments(r.SignatureEnd+1, r.Brace) {
		r.stream.SetSpace(r.Brace, spacing)
		return
	}

	brace := r.stream.At(r.Brace)
	r.removeBrace()
	toks := []token.Token{brace}
	if spacing != "" {
		toks = []token.Token{token.NewSpace(spacing), brace}
	}
	r.stream.Insert(r.SignatureEnd+1, toks...)
}

// ownLine puts the brace on a line of its own, indented like the line with
// the construct's keyword.
//
// Comments before the brace stay where they are. If the brace is followed by
// nothing but comments on its line, those comments move in front of it.
func (r *rewriter) ownLine() {
	s := r.stream
	nl := r.eol + s.LineIndent(r.Keyword)

	if prev := s.At(r.Brace - 1); prev.Kind() == token.Space && prev.HasNewline() {
		s.SetSpace(r.Brace, nl)
		return
	}

	last := -1
scan:
	for i := r.Brace + 1; i < s.Len(); i++ {
		tok := s.At(i)
		switch tok.Kind() {
		case token.Comment:
			last = i
		case token.Space:
			if tok.HasNewline() {
				break scan
			}
		default:
			// Code shares the brace's line.
			s.SetSpace(r.Brace, nl)
			return
		}
	}
	if last < 0 {
		s.SetSpace(r.Brace, nl)
		return
	}

	brace := s.At(r.Brace)
	last -= r.removeBrace()
	s.Insert(last+1, token.NewSpace(nl), brace)
}

// removeBrace deletes the brace from the stream. If it sat between two
// whitespace runs, they are merged into one, preferring a run that breaks
// the line.
//
// Returns the number of tokens removed.
func (r *rewriter) removeBrace() int {
	s, b := r.stream, r.Brace
	before, after := s.At(b-1), s.At(b+1)
	s.Remove(b)
	if before.Kind() != token.Space || after.Kind() != token.Space {
		return 1
	}

	keep := after
	if !after.HasNewline() && before.HasNewline() {
		keep = before
	}
	s.Remove(b)
	s.SetSpace(b, keep.Text())
	return 2
}

// hasComments returns whether there is a comment in [start, end).
func (r *rewriter) hasComments(start, end int) bool {
	for i := start; i < end; i++ {
		if r.stream.At(i).Kind() == token.Comment {
			return true
		}
	}
	return false
}

// lineEnding returns the line ending used by the first line break in s.
func lineEnding(s *token.Stream) string {
	for _, tok := range s.All() {
		if tok.Kind() != token.Space || !tok.HasNewline() {
			continue
		}
		if strings.Contains(tok.Text(), "\r\n") {
			return "\r\n"
		}
		break
	}
	return "\n"
}
