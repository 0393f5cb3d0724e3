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

package keyword

import (
	"fmt"
	"iter"
)

// Keyword is a special "grammar particle": a reserved word or a piece of
// punctuation with meaning to the brace-placement rules.
type Keyword byte

const (
	Unknown Keyword = iota

	If
	Elseif
	Else
	For
	Foreach
	While
	Do
	Switch
	Try
	Catch
	Finally

	Class
	Interface
	Trait
	Enum
	Function
	Fn
	New
	Use
	Readonly
	Static
	Extends
	Implements
	Return

	Semi          // ;
	Comma         // ,
	Colon         // :
	DoubleColon   // ::
	Ask           // ?
	Pipe          // |
	Amp           // &
	Backslash     // \
	Arrow         // ->
	NullsafeArrow // ?->
	DoubleArrow   // =>
	Eq            // =
	Dollar        // $
	At            // @
	Dot           // .
	Ellipsis      // ...

	LParen   // (
	RParen   // )
	LBracket // [
	RBracket // ]
	LBrace   // {
	RBrace   // }
	LAttr    // #[

	// Operators that are recognized only so that the lexer keeps them in one
	// piece. None of them matter to brace placement.
	Plus
	Minus
	Star
	Slash
	Percent
	Bang
	Less
	Greater
	Caret
	Tilde
	PlusPlus
	MinusMinus
	EqEq
	BangEq
	EqEqEq
	BangEqEq
	LessEq
	GreaterEq
	LessGreater
	Spaceship
	AndAnd
	OrOr
	AskAsk
	AskAskEq
	PlusEq
	MinusEq
	StarEq
	SlashEq
	DotEq
	PercentEq
	AmpEq
	PipeEq
	CaretEq
	Shl
	Shr
	ShlEq
	ShrEq
	StarStar
	StarStarEq

	total
)

var names = [...]string{
	Unknown: "",

	If:       "if",
	Elseif:   "elseif",
	Else:     "else",
	For:      "for",
	Foreach:  "foreach",
	While:    "while",
	Do:       "do",
	Switch:   "switch",
	Try:      "try",
	Catch:    "catch",
	Finally:  "finally",

	Class:      "class",
	Interface:  "interface",
	Trait:      "trait",
	Enum:       "enum",
	Function:   "function",
	Fn:         "fn",
	New:        "new",
	Use:        "use",
	Readonly:   "readonly",
	Static:     "static",
	Extends:    "extends",
	Implements: "implements",
	Return:     "return",

	Semi:          ";",
	Comma:         ",",
	Colon:         ":",
	DoubleColon:   "::",
	Ask:           "?",
	Pipe:          "|",
	Amp:           "&",
	Backslash:     "\\",
	Arrow:         "->",
	NullsafeArrow: "?->",
	DoubleArrow:   "=>",
	Eq:            "=",
	Dollar:        "$",
	At:            "@",
	Dot:           ".",
	Ellipsis:      "...",

	LParen:   "(",
	RParen:   ")",
	LBracket: "[",
	RBracket: "]",
	LBrace:   "{",
	RBrace:   "}",
	LAttr:    "#[",

	Plus:        "+",
	Minus:       "-",
	Star:        "*",
	Slash:       "/",
	Percent:     "%",
	Bang:        "!",
	Less:        "<",
	Greater:     ">",
	Caret:       "^",
	Tilde:       "~",
	PlusPlus:    "++",
	MinusMinus:  "--",
	EqEq:        "==",
	BangEq:      "!=",
	EqEqEq:      "===",
	BangEqEq:    "!==",
	LessEq:      "<=",
	GreaterEq:   ">=",
	LessGreater: "<>",
	Spaceship:   "<=>",
	AndAnd:      "&&",
	OrOr:        "||",
	AskAsk:      "??",
	AskAskEq:    "??=",
	PlusEq:      "+=",
	MinusEq:     "-=",
	StarEq:      "*=",
	SlashEq:     "/=",
	DotEq:       ".=",
	PercentEq:   "%=",
	AmpEq:       "&=",
	PipeEq:      "|=",
	CaretEq:     "^=",
	Shl:         "<<",
	Shr:         ">>",
	ShlEq:       "<<=",
	ShrEq:       ">>=",
	StarStar:    "**",
	StarStarEq:  "**=",
}

// String implements [fmt.Stringer].
func (k Keyword) String() string {
	if int(k) < len(names) {
		return names[k]
	}
	return fmt.Sprintf("keyword.Keyword(%d)", int(k))
}

// GoString implements [fmt.GoStringer].
func (k Keyword) GoString() string {
	if k == Unknown {
		return "keyword.Unknown"
	}
	if int(k) < len(names) {
		return fmt.Sprintf("keyword.Keyword(%q)", names[k])
	}
	return fmt.Sprintf("keyword.Keyword(%d)", int(k))
}

// All returns an iterator over all valid keywords, in declaration order.
func All() iter.Seq[Keyword] {
	return func(yield func(Keyword) bool) {
		for k := Keyword(1); k < total; k++ {
			if !yield(k) {
				return
			}
		}
	}
}
