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

type property uint16

const (
	valid property = 1 << iota

	punct
	word
	brackets

	control
	classLike
	typeOperator
	memberAccess
)

func (k Keyword) properties() property {
	if int(k) < len(properties) {
		return properties[k]
	}
	return 0
}

// properties is a table of keyword properties, stored as bitsets.
var properties = [...]property{
	If:      valid | word | control,
	Elseif:  valid | word | control,
	Else:    valid | word | control,
	For:     valid | word | control,
	Foreach: valid | word | control,
	While:   valid | word | control,
	Do:      valid | word | control,
	Switch:  valid | word | control,
	Try:     valid | word | control,
	Catch:   valid | word | control,
	Finally: valid | word | control,

	Class:      valid | word | classLike,
	Interface:  valid | word | classLike,
	Trait:      valid | word | classLike,
	Enum:       valid | word | classLike,
	Function:   valid | word,
	Fn:         valid | word,
	New:        valid | word,
	Use:        valid | word,
	Readonly:   valid | word,
	Static:     valid | word,
	Extends:    valid | word,
	Implements: valid | word,
	Return:     valid | word,

	Semi:          valid | punct,
	Comma:         valid | punct,
	Colon:         valid | punct,
	DoubleColon:   valid | punct | memberAccess,
	Ask:           valid | punct,
	Pipe:          valid | punct | typeOperator,
	Amp:           valid | punct | typeOperator,
	Backslash:     valid | punct,
	Arrow:         valid | punct | memberAccess,
	NullsafeArrow: valid | punct | memberAccess,
	DoubleArrow:   valid | punct,
	Eq:            valid | punct,
	Dollar:        valid | punct,
	At:            valid | punct,
	Dot:           valid | punct,
	Ellipsis:      valid | punct,

	LParen:   valid | punct | brackets,
	RParen:   valid | punct | brackets,
	LBracket: valid | punct | brackets,
	RBracket: valid | punct | brackets,
	LBrace:   valid | punct | brackets,
	RBrace:   valid | punct | brackets,
	LAttr:    valid | punct | brackets,

	Plus:        valid | punct,
	Minus:       valid | punct,
	Star:        valid | punct,
	Slash:       valid | punct,
	Percent:     valid | punct,
	Bang:        valid | punct,
	Less:        valid | punct,
	Greater:     valid | punct,
	Caret:       valid | punct,
	Tilde:       valid | punct,
	PlusPlus:    valid | punct,
	MinusMinus:  valid | punct,
	EqEq:        valid | punct,
	BangEq:      valid | punct,
	EqEqEq:      valid | punct,
	BangEqEq:    valid | punct,
	LessEq:      valid | punct,
	GreaterEq:   valid | punct,
	LessGreater: valid | punct,
	Spaceship:   valid | punct,
	AndAnd:      valid | punct,
	OrOr:        valid | punct,
	AskAsk:      valid | punct,
	AskAskEq:    valid | punct,
	PlusEq:      valid | punct,
	MinusEq:     valid | punct,
	StarEq:      valid | punct,
	SlashEq:     valid | punct,
	DotEq:       valid | punct,
	PercentEq:   valid | punct,
	AmpEq:       valid | punct,
	PipeEq:      valid | punct,
	CaretEq:     valid | punct,
	Shl:         valid | punct,
	Shr:         valid | punct,
	ShlEq:       valid | punct,
	ShrEq:       valid | punct,
	StarStar:    valid | punct,
	StarStarEq:  valid | punct,
}

// braces maps each bracket keyword to its open/close pair. An attribute
// opener #[ is closed by an ordinary ].
var braces = [...][2]Keyword{
	LParen: {LParen, RParen},
	RParen: {LParen, RParen},

	LBracket: {LBracket, RBracket},
	RBracket: {LBracket, RBracket},
	LAttr:    {LAttr, RBracket},

	LBrace: {LBrace, RBrace},
	RBrace: {LBrace, RBrace},
}
