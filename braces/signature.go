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

// resolveCondition resolves a control structure with a parenthesized
// condition, such as if or foreach.
func resolveCondition(s *token.Stream, kw int) (Construct, bool, error) {
	open := nextCode(s, kw)
	if s.At(open).Keyword() != keyword.LParen {
		return Construct{}, false, nil
	}
	paren, err := matchClose(s, kw, open)
	if err != nil {
		return Construct{}, false, err
	}

	// Alternative syntax, a single-statement body, or the tail of a
	// do-while.
	brace := nextCode(s, paren)
	if s.At(brace).Keyword() != keyword.LBrace {
		return Construct{}, false, nil
	}

	return Construct{
		Category:     ControlStructure,
		Keyword:      kw,
		Paren:        paren,
		SignatureEnd: paren,
		Brace:        brace,
	}, true, nil
}

// resolveBare resolves a control structure with no condition: else, do,
// try and finally. The keyword is the whole signature.
func resolveBare(s *token.Stream, kw int) (Construct, bool, error) {
	brace := nextCode(s, kw)
	if s.At(brace).Keyword() != keyword.LBrace {
		return Construct{}, false, nil
	}
	return Construct{
		Category:     ControlStructure,
		Keyword:      kw,
		Paren:        -1,
		SignatureEnd: kw,
		Brace:        brace,
	}, true, nil
}

// resolveClass resolves a class, interface, trait or enum declaration, or
// an anonymous class.
//
// The signature runs up to the last token before the body, which may be the
// name, the end of an extends/implements list, an enum's backing type, or
// the closing parenthesis of an anonymous class's constructor arguments.
func resolveClass(s *token.Stream, kw int) (Construct, bool, error) {
	category := Class
	if isAnonymousClass(s, kw) {
		category = AnonymousClass
	} else if s.At(nextCode(s, kw)).Kind() != token.Ident {
		return Construct{}, false, nil
	}

	end := kw
	c := s.CursorAt(kw + 1)
	for {
		tok := c.Next()
		if tok.IsZero() {
			return Construct{}, false, malformed(s, kw, -1, "missing body")
		}
		if tok.Kind() != token.Punct {
			end = c.Last()
			continue
		}

		switch k := tok.Keyword(); {
		case k == keyword.Semi:
			return Construct{}, false, nil

		case k == keyword.LBrace:
			paren := -1
			if category == AnonymousClass && s.At(end).Keyword() == keyword.RParen {
				paren = end
			}
			return Construct{
				Category:     category,
				Keyword:      kw,
				Paren:        paren,
				SignatureEnd: end,
				Brace:        c.Last(),
			}, true, nil

		case k.IsOpen():
			closer, err := matchClose(s, kw, c.Last())
			if err != nil {
				return Construct{}, false, err
			}
			c.Seek(closer + 1)
			end = closer

		case k.IsClose():
			return Construct{}, false, malformed(s, kw, c.Last(), "unexpected `%s`", tok.Text())

		default:
			end = c.Last()
		}
	}
}

// resolveFunction resolves a named function or method, or a closure.
func resolveFunction(s *token.Stream, kw int) (Construct, bool, error) {
	// use function Foo\bar;
	if s.At(prevCode(s, kw)).Keyword() == keyword.Use {
		return Construct{}, false, nil
	}

	next := nextCode(s, kw)
	if s.At(next).Keyword() == keyword.Amp {
		next = nextCode(s, next)
	}
	category := AnonymousFunction
	if s.At(next).Kind() == token.Ident {
		category = Function
		next = nextCode(s, next)
	}
	if s.At(next).Keyword() != keyword.LParen {
		return Construct{}, false, nil
	}

	paren, err := matchClose(s, kw, next)
	if err != nil {
		return Construct{}, false, err
	}
	end := paren
	next = nextCode(s, end)

	if category == AnonymousFunction && s.At(next).Keyword() == keyword.Use {
		open := nextCode(s, next)
		if s.At(open).Keyword() != keyword.LParen {
			return Construct{}, false, malformed(s, kw, open, "expected `(` after `use`")
		}
		if paren, err = matchClose(s, kw, open); err != nil {
			return Construct{}, false, err
		}
		end = paren
		next = nextCode(s, end)
	}

	if s.At(next).Keyword() == keyword.Colon {
		var ok bool
		if end, ok = parseReturnType(s, next); !ok {
			return Construct{}, false, malformed(s, kw, next, "expected a return type")
		}
		next = nextCode(s, end)
	}

	// Abstract and interface methods have no body.
	if s.At(next).Keyword() == keyword.Semi {
		return Construct{}, false, nil
	}

	brace, err := locateBrace(s, kw, end)
	if err != nil {
		return Construct{}, false, err
	}
	return Construct{
		Category:     category,
		Keyword:      kw,
		Paren:        paren,
		SignatureEnd: end,
		Brace:        brace,
	}, true, nil
}
