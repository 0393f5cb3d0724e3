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

import "strings"

// maxPunct is the length of the longest punctuation keyword.
const maxPunct = 3

var byName = func() map[string]Keyword {
	m := make(map[string]Keyword, int(total))
	for kw := range All() {
		m[kw.String()] = kw
	}
	return m
}()

// Lookup looks up a keyword by name.
//
// Reserved words are matched case-insensitively, the way PHP treats them.
// Returns [Unknown] if text is not a keyword.
func Lookup(text string) Keyword {
	if kw, ok := byName[text]; ok {
		return kw
	}
	if len(text) > 0 && isWordByte(text[0]) {
		if kw, ok := byName[strings.ToLower(text)]; ok && kw.IsReservedWord() {
			return kw
		}
	}
	return Unknown
}

// Prefix returns the longest punctuation keyword that text starts with.
//
// Returns [Unknown] if there is none.
func Prefix(text string) Keyword {
	for n := min(maxPunct, len(text)); n > 0; n-- {
		if kw, ok := byName[text[:n]]; ok && kw.IsPunctuation() {
			return kw
		}
	}
	return Unknown
}

// Brackets returns the open and close brackets if k is a bracket keyword.
func (k Keyword) Brackets() (left, right Keyword) {
	if int(k) >= len(braces) {
		return Unknown, Unknown
	}
	return braces[k][0], braces[k][1]
}

// IsOpen returns whether this is an opening bracket.
func (k Keyword) IsOpen() bool {
	left, _ := k.Brackets()
	return k.IsBrackets() && left == k
}

// IsClose returns whether this is a closing bracket.
func (k Keyword) IsClose() bool {
	_, right := k.Brackets()
	return k.IsBrackets() && right == k
}

// IsValid returns whether this is a valid keyword value (not including
// [Unknown]).
func (k Keyword) IsValid() bool {
	return k.properties()&valid != 0
}

// IsPunctuation returns whether this keyword is punctuation (i.e., not a word).
func (k Keyword) IsPunctuation() bool {
	return k.properties()&punct != 0
}

// IsReservedWord returns whether this keyword is a known reserved word (i.e.,
// not punctuation).
func (k Keyword) IsReservedWord() bool {
	return k.properties()&word != 0
}

// IsBrackets returns whether this is a bracket keyword.
func (k Keyword) IsBrackets() bool {
	return k.properties()&brackets != 0
}

// IsControl returns whether this keyword introduces a control structure
// that may own a block.
func (k Keyword) IsControl() bool {
	return k.properties()&control != 0
}

// IsClassLike returns whether this keyword declares a class, interface,
// trait or enum.
func (k Keyword) IsClassLike() bool {
	return k.properties()&classLike != 0
}

// IsTypeOperator returns whether this keyword joins the members of a union
// or intersection type.
func (k Keyword) IsTypeOperator() bool {
	return k.properties()&typeOperator != 0
}

// IsMemberAccess returns whether this keyword is followed by a member name,
// such as -> and ::. A reserved word after one of these is just a name.
func (k Keyword) IsMemberAccess() bool {
	return k.properties()&memberAccess != 0
}

func isWordByte(b byte) bool {
	return b == '_' || (b|0x20) >= 'a' && (b|0x20) <= 'z'
}
