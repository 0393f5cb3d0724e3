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

import "iter"

// Cursor is an iterator-like construct for looping over a [Stream].
// Unlike a plain range func, it supports peeking and moving backwards.
//
// A cursor addresses tokens by index, so it remains valid across edits that
// only touch tokens at or after its position.
type Cursor struct {
	stream *Stream
	// idx is the index of the token that NextSkippable will yield.
	idx int
	// last is the index of the token most recently yielded by any of the
	// Next or Prev methods, or -1.
	last int
}

// CursorMark is the return value of [Cursor.Mark], which marks a position on
// a Cursor for rewinding to.
type CursorMark struct {
	owner     *Cursor
	idx, last int
}

// Done returns whether or not there are still tokens left to yield.
func (c *Cursor) Done() bool {
	return c.Peek().IsZero()
}

// Index returns the index of the token that [Cursor.NextSkippable] would
// yield.
func (c *Cursor) Index() int {
	return c.idx
}

// Last returns the index of the token most recently yielded by one of
// the Next or Prev methods.
//
// Returns -1 if no token has been yielded yet.
func (c *Cursor) Last() int {
	return c.last
}

// Mark makes a mark on this cursor to indicate a place that can be rewound
// to.
func (c *Cursor) Mark() CursorMark {
	return CursorMark{owner: c, idx: c.idx, last: c.last}
}

// Rewind moves this cursor back to the position described by mark.
//
// Panics if mark was not created using this cursor's Mark method.
func (c *Cursor) Rewind(mark CursorMark) {
	if c != mark.owner {
		panic("bracepos/token: rewound cursor using the wrong cursor's mark")
	}
	c.idx = mark.idx
	c.last = mark.last
}

// Seek moves the cursor to the given index.
//
// Returns false if i is out of bounds.
func (c *Cursor) Seek(i int) bool {
	if i < 0 || i > c.stream.Len() {
		return false
	}
	c.idx = i
	return true
}

// PeekSkippable returns the current token in the sequence, if there is one.
// This may return a skippable token.
//
// Returns the zero token if this cursor is at the end of the stream.
func (c *Cursor) PeekSkippable() Token {
	return c.stream.At(c.idx)
}

// BeforeSkippable returns the token before the current token, if there is
// one. This may return a skippable token.
func (c *Cursor) BeforeSkippable() Token {
	return c.stream.At(c.idx - 1)
}

// NextSkippable returns the next token in the sequence, including skippable
// tokens, and advances the cursor.
func (c *Cursor) NextSkippable() Token {
	tok := c.PeekSkippable()
	if tok.IsZero() {
		return tok
	}
	c.last = c.idx
	c.idx++
	return tok
}

// PrevSkippable returns the previous token in the sequence, including
// skippable tokens, and decrements the cursor.
func (c *Cursor) PrevSkippable() Token {
	tok := c.BeforeSkippable()
	if tok.IsZero() {
		return tok
	}
	c.idx--
	c.last = c.idx
	return tok
}

// Peek returns the next token in the sequence, if there is one.
// This automatically skips past skippable tokens.
//
// Returns the zero token if this cursor is at the end of the stream.
func (c *Cursor) Peek() Token {
	mark := c.Mark()
	tok := c.Next()
	c.Rewind(mark)
	return tok
}

// Next returns the next token in the sequence, and advances the cursor.
func (c *Cursor) Next() Token {
	for {
		next := c.NextSkippable()
		if next.IsZero() || !next.IsSkippable() {
			return next
		}
	}
}

// Prev returns the previous token in the sequence, and decrements the cursor.
func (c *Cursor) Prev() Token {
	for {
		prev := c.PrevSkippable()
		if prev.IsZero() || !prev.IsSkippable() {
			return prev
		}
	}
}

// Rest returns an iterator over the remaining non-skippable tokens in the
// cursor.
//
// Breaking out of a loop over this iterator and starting a new loop resumes
// at the token that was broken at.
func (c *Cursor) Rest() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			tok := c.Peek()
			if tok.IsZero() || !yield(tok) {
				break
			}
			_ = c.Next()
		}
	}
}

// RestSkippable is like [Cursor.Rest], but it yields skippable tokens, too.
func (c *Cursor) RestSkippable() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			tok := c.PeekSkippable()
			if tok.IsZero() || !yield(tok) {
				break
			}
			_ = c.NextSkippable()
		}
	}
}
