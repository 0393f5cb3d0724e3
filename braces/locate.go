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

// locateBrace finds the opening brace after the signature ending at end,
// skipping whitespace and comments.
func locateBrace(s *token.Stream, kw, end int) (int, error) {
	c := s.CursorAt(end + 1)
	tok := c.Next()
	if tok.Kind() != token.Punct || tok.Keyword() != keyword.LBrace {
		if tok.IsZero() {
			return -1, malformed(s, kw, -1, "missing body")
		}
		return -1, malformed(s, kw, c.Last(), "expected `{`, found `%s`", tok.Text())
	}
	return c.Last(), nil
}

// matchClose finds the bracket that closes the one at open. Brackets in
// between must nest properly.
func matchClose(s *token.Stream, kw, open int) (int, error) {
	var stack []keyword.Keyword
	c := s.CursorAt(open)
	for tok := c.Next(); !tok.IsZero(); tok = c.Next() {
		if tok.Kind() != token.Punct {
			continue
		}

		k := tok.Keyword()
		switch {
		case k.IsOpen():
			_, right := k.Brackets()
			stack = append(stack, right)
		case k.IsClose():
			if len(stack) == 0 || stack[len(stack)-1] != k {
				return -1, malformed(s, kw, c.Last(), "unexpected `%s`", tok.Text())
			}
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return c.Last(), nil
			}
		}
	}
	return -1, malformed(s, kw, open, "`%s` is never closed", s.At(open).Text())
}
