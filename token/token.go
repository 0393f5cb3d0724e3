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
	"strings"

	"github.com/bufbuild/bracepos/token/keyword"
)

// Zero is the zero [Token], used to denote the absence of a token.
var Zero Token

// Token is a lexical element of a source file.
//
// Tokens are immutable values; a [Stream] edits layout by replacing whole
// [Space] tokens.
type Token struct {
	kind Kind
	kw   keyword.Keyword
	text string
}

// New returns a new token of the given kind. Identifiers and punctuation are
// classified as keywords where appropriate.
func New(kind Kind, text string) Token {
	var kw keyword.Keyword
	switch kind {
	case Ident, Punct:
		kw = keyword.Lookup(text)
	}
	return Token{kind: kind, kw: kw, text: text}
}

// NewSpace returns a new whitespace token.
func NewSpace(text string) Token {
	return Token{kind: Space, text: text}
}

// IsZero returns whether this is the zero token.
func (t Token) IsZero() bool {
	return t == Zero
}

// Kind returns what kind of token this is.
//
// Returns [Unrecognized] for the zero token.
func (t Token) Kind() Kind {
	return t.kind
}

// Keyword returns the keyword this token represents, if any.
//
// Returns [keyword.Unknown] for tokens that are not keywords.
func (t Token) Keyword() keyword.Keyword {
	return t.kw
}

// Text returns the text of this token, exactly as it appears in the source.
func (t Token) Text() string {
	return t.text
}

// IsSkippable returns whether this is whitespace or a comment.
func (t Token) IsSkippable() bool {
	return t.kind.IsSkippable()
}

// IsLineComment returns whether this is a comment that runs to the end of
// its line, i.e. a // or # comment. Such a comment can never be followed by
// other tokens on the same line.
func (t Token) IsLineComment() bool {
	return t.kind == Comment && !strings.HasPrefix(t.text, "/*")
}

// IsBlockComment returns whether this is a /* */ comment.
func (t Token) IsBlockComment() bool {
	return t.kind == Comment && strings.HasPrefix(t.text, "/*")
}

// HasNewline returns whether this token's text contains a line break.
func (t Token) HasNewline() bool {
	return strings.ContainsAny(t.text, "\n\r")
}

// String implements [fmt.Stringer].
func (t Token) String() string {
	if t.IsZero() {
		return "Token(<zero>)"
	}
	return fmt.Sprintf("Token(%v, %q)", t.kind, t.text)
}
