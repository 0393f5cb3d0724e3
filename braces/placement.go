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
	"fmt"

	"github.com/bufbuild/bracepos/token"
)

// hasNewlineAtSignatureEnd returns whether the construct's closing
// parenthesis starts its own line, possibly after a comment. Line breaks
// anywhere else in the signature do not count.
func hasNewlineAtSignatureEnd(s *token.Stream, c Construct) bool {
	if c.Paren < 0 {
		return false
	}
	prev := c.Paren - 1
	if s.At(prev).Kind() == token.Comment {
		prev--
	}
	tok := s.At(prev)
	return tok.Kind() == token.Space && tok.HasNewline()
}

// place moves the brace of c according to policy.
func place(r *rewriter, c Construct, policy Policy) {
	r.Construct = c
	switch policy {
	case SameLine:
		r.joinLine(" ")
	case SameLineWithoutExtraSpace:
		r.joinLine("")
	case NextLineUnlessNewlineAtSignatureEnd:
		if hasNewlineAtSignatureEnd(r.stream, c) {
			r.joinLine(" ")
		} else {
			r.ownLine()
		}
	default:
		panic(fmt.Sprintf("bracepos/braces: unexpected policy %v", policy))
	}
}
