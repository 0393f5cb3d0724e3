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
	"iter"

	"github.com/bufbuild/bracepos/token"
	"github.com/bufbuild/bracepos/token/keyword"
)

// Constructs returns an iterator over the constructs in stream, in source
// order. Constructs nested in other constructs' signatures or bodies are
// yielded after the construct that contains them.
//
// The iterator reads the live stream: the caller may edit the stream between
// iterations, provided it only touches tokens after the Keyword of the
// construct most recently yielded. Iteration ends after the first error,
// which is always a [*MalformedConstructError].
func Constructs(stream *token.Stream) iter.Seq2[Construct, error] {
	return func(yield func(Construct, error) bool) {
		for i := 0; i < stream.Len(); i++ {
			construct, ok, err := classify(stream, i)
			if err != nil {
				yield(Construct{}, err)
				return
			}
			if ok && !yield(construct, nil) {
				return
			}
		}
	}
}

// classify checks whether the token at i introduces a construct with a
// block body.
//
// Returns false if it does not.
func classify(s *token.Stream, i int) (Construct, bool, error) {
	tok := s.At(i)
	if tok.Kind() != token.Ident {
		return Construct{}, false, nil
	}
	kw := tok.Keyword()
	if !kw.IsControl() && !kw.IsClassLike() && kw != keyword.Function {
		return Construct{}, false, nil
	}

	// Reserved words are valid member and method names.
	prev := s.At(prevCode(s, i)).Keyword()
	if prev.IsMemberAccess() || prev == keyword.Function {
		return Construct{}, false, nil
	}

	switch {
	case kw == keyword.Function:
		return resolveFunction(s, i)
	case kw.IsClassLike():
		return resolveClass(s, i)
	}

	switch kw {
	case keyword.Else, keyword.Do, keyword.Try, keyword.Finally:
		return resolveBare(s, i)
	default:
		return resolveCondition(s, i)
	}
}

// isAnonymousClass returns whether the class keyword at kw is part of a
// new expression.
func isAnonymousClass(s *token.Stream, kw int) bool {
	prev := prevCode(s, kw)
	// Anonymous classes may carry attributes: new #[A] class {}.
	for s.At(prev).Keyword() == keyword.RBracket {
		open := matchAttribute(s, prev)
		if open < 0 {
			return false
		}
		prev = prevCode(s, open)
	}

	switch s.At(prev).Keyword() {
	case keyword.New:
		return true
	case keyword.Readonly:
		return s.At(prevCode(s, prev)).Keyword() == keyword.New
	default:
		return false
	}
}

// matchAttribute walks back from the ] at end to the #[ that opens it.
//
// Returns -1 if the brackets ending at end are not an attribute group.
func matchAttribute(s *token.Stream, end int) int {
	var depth int
	c := s.CursorAt(end + 1)
	for tok := c.Prev(); !tok.IsZero(); tok = c.Prev() {
		kw := tok.Keyword()
		switch {
		case tok.Kind() != token.Punct:
		case kw.IsClose():
			depth++
		case kw.IsOpen():
			depth--
			if depth > 0 {
				continue
			}
			if kw == keyword.LAttr {
				return c.Last()
			}
			return -1
		}
	}
	return -1
}

// prevCode returns the index of the last non-skippable token before i, or
// -1 if there is none.
func prevCode(s *token.Stream, i int) int {
	c := s.CursorAt(i)
	if c.Prev().IsZero() {
		return -1
	}
	return c.Last()
}

// nextCode returns the index of the first non-skippable token after i, or
// -1 if there is none.
func nextCode(s *token.Stream, i int) int {
	c := s.CursorAt(i + 1)
	if c.Next().IsZero() {
		return -1
	}
	return c.Last()
}
