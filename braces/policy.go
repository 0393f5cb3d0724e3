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
	"iter"
)

// Category is a kind of construct that owns a block.
type Category int8

const (
	ControlStructure Category = iota
	Class
	AnonymousClass
	Function
	AnonymousFunction

	numCategories
)

// Categories returns an iterator over every category, in declaration order.
func Categories() iter.Seq[Category] {
	return func(yield func(Category) bool) {
		for c := range numCategories {
			if !yield(c) {
				return
			}
		}
	}
}

// String implements [fmt.Stringer].
func (c Category) String() string {
	switch c {
	case ControlStructure:
		return "control_structure"
	case Class:
		return "class"
	case AnonymousClass:
		return "anonymous_class"
	case Function:
		return "function"
	case AnonymousFunction:
		return "anonymous_function"
	default:
		return fmt.Sprintf("braces.Category(%d)", int(c))
	}
}

// Key returns the configuration key that selects the policy for this
// category.
func (c Category) Key() string {
	switch c {
	case ControlStructure:
		return "control_structures_opening_brace"
	case Class:
		return "classes_opening_brace"
	case AnonymousClass:
		return "anonymous_classes_opening_brace"
	case Function:
		return "functions_opening_brace"
	case AnonymousFunction:
		return "anonymous_functions_opening_brace"
	default:
		return ""
	}
}

// Policy is a rule for where an opening brace goes relative to the end of
// its construct's signature.
type Policy int8

const (
	// The brace follows the signature on the same line, after one space.
	SameLine Policy = 1 + iota

	// The brace follows the signature on the same line, with no space.
	SameLineWithoutExtraSpace

	// The brace goes on its own line, indented like the construct, unless
	// the signature already ends with a line break before its closing
	// parenthesis; in that case it behaves like [SameLine].
	NextLineUnlessNewlineAtSignatureEnd
)

var policyNames = [...]string{
	SameLine:                            "same_line",
	SameLineWithoutExtraSpace:           "same_line_without_extra_space",
	NextLineUnlessNewlineAtSignatureEnd: "next_line_unless_newline_at_signature_end",
}

// Policies returns an iterator over every valid policy.
func Policies() iter.Seq[Policy] {
	return func(yield func(Policy) bool) {
		for p := SameLine; int(p) < len(policyNames); p++ {
			if !yield(p) {
				return
			}
		}
	}
}

// ParsePolicy parses a policy by its configuration name.
func ParsePolicy(name string) (Policy, bool) {
	for p := range Policies() {
		if policyNames[p] == name {
			return p, true
		}
	}
	return 0, false
}

// IsValid returns whether this is one of the named policies.
func (p Policy) IsValid() bool {
	return p > 0 && int(p) < len(policyNames)
}

// String implements [fmt.Stringer].
func (p Policy) String() string {
	if p.IsValid() {
		return policyNames[p]
	}
	return fmt.Sprintf("braces.Policy(%d)", int(p))
}
