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

import "fmt"

const (
	Unrecognized Kind = iota // Unrecognized garbage in the input file.

	Space    // Non-comment contiguous whitespace.
	Comment  // A single comment, without its terminating newline.
	Ident    // An identifier or reserved word.
	Variable // A variable, including its leading $.
	String   // A string literal, including heredocs.
	Number   // A run of digits that is some kind of number.
	Punct    // Some punctuation.
	Markup   // Inline markup outside of <?php ... ?>, and the tags themselves.
)

// Kind identifies what kind of token a particular [Token] is.
type Kind byte

// IsSkippable returns whether this is a token that should be skipped over
// during structural analysis.
func (t Kind) IsSkippable() bool {
	return t == Space || t == Comment
}

// String implements [fmt.Stringer].
func (t Kind) String() string {
	switch t {
	case Unrecognized:
		return "Unrecognized"
	case Space:
		return "Space"
	case Comment:
		return "Comment"
	case Ident:
		return "Ident"
	case Variable:
		return "Variable"
	case String:
		return "String"
	case Number:
		return "Number"
	case Punct:
		return "Punct"
	case Markup:
		return "Markup"
	default:
		return fmt.Sprintf("token.Kind(%d)", int(t))
	}
}
