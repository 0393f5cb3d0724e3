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

package token

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/bufbuild/bracepos/report"
)

// Stream is an editable token stream.
type Stream struct {
	// The path of the file this stream was lexed from. Only used for
	// diagnostics.
	Path string

	toks []Token
}

// NewStream returns a stream over the given tokens.
func NewStream(path string, toks ...Token) *Stream {
	return &Stream{Path: path, toks: slices.Clone(toks)}
}

// Len returns the number of tokens in the stream.
func (s *Stream) Len() int {
	return len(s.toks)
}

// At returns the token at index i.
//
// Returns [Zero] if i is out of bounds.
func (s *Stream) At(i int) Token {
	if i < 0 || i >= len(s.toks) {
		return Zero
	}
	return s.toks[i]
}

// All returns an iterator over the stream's tokens and their indices.
func (s *Stream) All() iter.Seq2[int, Token] {
	return func(yield func(int, Token) bool) {
		for i := 0; i < len(s.toks); i++ {
			if !yield(i, s.toks[i]) {
				return
			}
		}
	}
}

// Push appends a new token to the end of the stream and returns it.
func (s *Stream) Push(kind Kind, text string) Token {
	tok := New(kind, text)
	s.toks = append(s.toks, tok)
	return tok
}

// Insert inserts tokens before index i; i may equal [Stream.Len].
//
// Panics if i is out of bounds.
func (s *Stream) Insert(i int, toks ...Token) {
	if i < 0 || i > len(s.toks) {
		panic(fmt.Sprintf("bracepos/token: Insert() index out of bounds: %d of %d", i, len(s.toks)))
	}
	s.toks = slices.Insert(s.toks, i, toks...)
}

// Remove deletes the token at index i and returns it.
//
// Panics if i is out of bounds.
func (s *Stream) Remove(i int) Token {
	if i < 0 || i >= len(s.toks) {
		panic(fmt.Sprintf("bracepos/token: Remove() index out of bounds: %d of %d", i, len(s.toks)))
	}
	tok := s.toks[i]
	s.toks = slices.Delete(s.toks, i, i+1)
	return tok
}

// SetSpace makes the whitespace between the tokens at i-1 and i equal to
// text. If there is a [Space] token at i-1, it is replaced (or removed, if
// text is empty); otherwise a new one is inserted.
//
// Returns the change in the stream's length, which is -1, 0 or 1.
func (s *Stream) SetSpace(i int, text string) int {
	if prev := s.At(i - 1); prev.Kind() == Space {
		if text == "" {
			s.Remove(i - 1)
			return -1
		}
		s.toks[i-1] = NewSpace(text)
		return 0
	}
	if text == "" {
		return 0
	}
	s.Insert(i, NewSpace(text))
	return 1
}

// LineIndent returns the indentation of the line on which the token at i
// begins: the spaces and tabs that follow the last line break in a [Space]
// token before it. Line breaks inside comments, strings and markup are not
// considered.
func (s *Stream) LineIndent(i int) string {
	for j := min(i, len(s.toks)) - 1; j >= 0; j-- {
		tok := s.toks[j]
		if tok.kind != Space {
			continue
		}
		nl := strings.LastIndexAny(tok.text, "\n\r")
		if nl < 0 {
			continue
		}
		rest := tok.text[nl+1:]
		return rest[:len(rest)-len(strings.TrimLeft(rest, " \t"))]
	}
	return ""
}

// Offset returns the byte offset at which the token at i begins in the
// text of the stream.
func (s *Stream) Offset(i int) int {
	var n int
	for _, tok := range s.toks[:min(max(i, 0), len(s.toks))] {
		n += len(tok.text)
	}
	return n
}

// Span returns a diagnostic span covering the tokens in [start, end), as
// they appear in the current text of the stream.
func (s *Stream) Span(start, end int) report.Span {
	file := report.NewIndexedFile(report.File{Path: s.Path, Text: s.Text()})
	return file.NewSpan(s.Offset(start), s.Offset(end))
}

// Text reassembles the source text of the stream.
func (s *Stream) Text() string {
	var out strings.Builder
	for _, tok := range s.toks {
		out.WriteString(tok.text)
	}
	return out.String()
}

// Clone returns a copy of this stream that can be edited independently.
func (s *Stream) Clone() *Stream {
	return &Stream{Path: s.Path, toks: slices.Clone(s.toks)}
}

// Cursor returns a cursor positioned at the start of the stream.
func (s *Stream) Cursor() *Cursor {
	return &Cursor{stream: s, last: -1}
}

// CursorAt returns a cursor positioned at index i.
func (s *Stream) CursorAt(i int) *Cursor {
	return &Cursor{stream: s, idx: i, last: -1}
}
