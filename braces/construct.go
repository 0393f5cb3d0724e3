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

import "fmt"

// Construct is a block-introducing construct found in a token stream.
//
// All fields other than Category are token indices into the stream the
// construct was found in, and are only valid until that stream is edited
// before Brace.
type Construct struct {
	Category Category

	// The introducing keyword: if, class, function, and so on.
	Keyword int
	// The closing parenthesis whose leading whitespace decides whether the
	// signature ends with a line break, or -1 if there is none.
	Paren int
	// The last token of the signature. Keyword <= SignatureEnd < Brace.
	SignatureEnd int
	// The opening brace of the construct's body.
	Brace int
}

// String implements [fmt.Stringer].
func (c Construct) String() string {
	return fmt.Sprintf("%v{keyword: %d, paren: %d, end: %d, brace: %d}",
		c.Category, c.Keyword, c.Paren, c.SignatureEnd, c.Brace)
}
