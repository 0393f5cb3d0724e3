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

package lexer

import (
	"strings"

	"github.com/bufbuild/bracepos/report"
	"github.com/bufbuild/bracepos/token"
	"github.com/bufbuild/bracepos/token/keyword"
)

// loop is the main loop of the lexer.
func loop(l *lexer) {
	defer l.CatchICE(false, func(d *report.Diagnostic) {
		d.Apply(
			report.Snippet(l.span(l.cursor, l.cursor), "cursor is here"),
			report.Note("cursor: %d, count: %d", l.cursor, l.count),
		)
	})

	if !lexPrelude(l) {
		return
	}

	// This is the main loop of the lexer. Each iteration will examine the next
	// rune in the source file to determine what action to take.
	mp := l.mustProgress()
	for !l.done() {
		mp.check()
		start := l.cursor

		if !l.inCode {
			lexMarkup(l)
			continue
		}

		if isSpace(l.peek()) {
			l.takeWhile(isSpace)
			l.push(l.cursor-start, token.Space)
			continue
		}

		rest := l.rest()
		switch {
		case strings.HasPrefix(rest, "?>"):
			l.cursor += 2
			l.push(2, token.Markup)
			l.inCode = false
			continue

		case strings.HasPrefix(rest, "//"),
			strings.HasPrefix(rest, "#") && !strings.HasPrefix(rest, "#["):
			lexLineComment(l)
			continue

		case strings.HasPrefix(rest, "/*"):
			lexBlockComment(l)
			continue

		case strings.HasPrefix(rest, "<<<"):
			if lexHeredoc(l) {
				continue
			}
		}

		r := l.peek()
		switch {
		case r == '\'', r == '"', r == '`':
			lexString(l)
			continue

		case isDigit(r), r == '.' && isDigit(l.peekAt(1)):
			lexNumber(l)
			continue

		case r == '$' && isIdentStart(l.peekAt(1)):
			l.cursor++
			l.takeWhile(isIdentContinue)
			l.push(l.cursor-start, token.Variable)
			continue

		case isIdentStart(r):
			l.takeWhile(isIdentContinue)
			l.push(l.cursor-start, token.Ident)
			continue
		}

		if kw := keyword.Prefix(rest); kw != keyword.Unknown {
			word := kw.String()
			l.cursor += len(word)
			l.push(len(word), token.Punct)
			continue
		}

		_, n := l.peekN()
		l.cursor += n
		l.badBytes += n
	}

	l.flush(l.cursor)
}

// lexPrelude performs various file-prelude checks, such as size and encoding
// verification. Returns whether lexing should proceed.
func lexPrelude(l *lexer) bool {
	if l.src == "" {
		return true
	}

	// Check that the file isn't too big. We give up immediately if that's
	// the case.
	if len(l.src) > MaxFileSize {
		l.Errorf("files larger than 2GB (%d bytes) are not supported", MaxFileSize).Apply(
			report.InFile(l.Path),
		)
		return false
	}

	// Heuristically check for a UTF-16-encoded file: either a UTF-16 BOM, or
	// exactly one NUL among the first two bytes.
	bom16 := strings.HasPrefix(l.src, "\xfe\xff") || strings.HasPrefix(l.src, "\xff\xfe")
	ascii16 := len(l.src) >= 2 && (l.src[0] == 0) != (l.src[1] == 0)
	if bom16 || ascii16 {
		l.Errorf("input appears to be encoded with UTF-16").Apply(
			report.InFile(l.Path),
			report.Note("PHP files must be encoded with UTF-8 or another ASCII-compatible encoding"),
		)
		return false
	}

	const bom = "\uFEFF"
	if strings.HasPrefix(l.src, bom) {
		// Peel off a leading UTF-8 BOM. It is output as-is, like markup.
		l.cursor += len(bom)
		l.push(len(bom), token.Markup)
	}

	return true
}

// lexMarkup consumes inline markup up to and including the next open tag.
func lexMarkup(l *lexer) {
	rest := l.rest()
	at, tag := findOpenTag(rest)
	if at < 0 {
		l.push(len(l.seekEOF()), token.Markup)
		return
	}

	if at > 0 {
		l.cursor += at
		l.push(at, token.Markup)
	}
	l.cursor += len(tag)
	l.push(len(tag), token.Markup)
	l.inCode = true
}

// findOpenTag finds the first <?php (in any case, followed by whitespace or
// the end of the text) or <?= in text. Returns the offset and the tag text,
// or -1.
func findOpenTag(text string) (int, string) {
	var base int
	for {
		idx := strings.Index(text[base:], "<?")
		if idx < 0 {
			return -1, ""
		}
		at := base + idx
		after := text[at+2:]
		switch {
		case strings.HasPrefix(after, "="):
			return at, text[at : at+3]
		case len(after) >= 3 && strings.EqualFold(after[:3], "php") &&
			(len(after) == 3 || isSpace(rune(after[3]))):
			return at, text[at : at+5]
		}
		base = at + 2
	}
}

// lexLineComment lexes a // or # comment. The comment ends before the
// newline that terminates it, or before a closing ?> tag.
func lexLineComment(l *lexer) {
	start := l.cursor
	rest := l.rest()
	end := len(rest)
	if idx := strings.IndexAny(rest, "\r\n"); idx >= 0 {
		end = idx
	}
	if idx := strings.Index(rest[:end], "?>"); idx >= 0 {
		end = idx
	}
	l.cursor += end
	l.push(l.cursor-start, token.Comment)
}

// lexBlockComment lexes a /* */ comment, including doc comments.
func lexBlockComment(l *lexer) {
	start := l.cursor
	l.cursor += len("/*")
	if _, ok := l.seekInclusive("*/"); !ok {
		l.Errorf("unterminated block comment").Apply(
			report.Snippet(l.span(start, start+2), "expected to be closed by `*/`"),
		)
		l.seekEOF()
	}
	l.push(l.cursor-start, token.Comment)
}

// lexNumber lexes an integer or floating-point literal, including any
// digit separators, exponents, and (invalid) trailing letters.
func lexNumber(l *lexer) {
	start := l.cursor
	hex := len(l.rest()) >= 2 && l.rest()[0] == '0' && (l.rest()[1]|0x20) == 'x'
	var dot bool
	for !l.done() {
		r := l.peek()
		switch {
		case r == '.' && !dot && !hex && isDigit(l.peekAt(1)):
			dot = true
			l.cursor++
		case (r == 'e' || r == 'E') && !hex && l.cursor > start &&
			(l.peekAt(1) == '+' || l.peekAt(1) == '-') && isDigit(l.peekAt(2)):
			l.cursor += 2
		case isIdentContinue(r) && r < 0x80:
			l.cursor++
		default:
			l.push(l.cursor-start, token.Number)
			return
		}
	}
	l.push(l.cursor-start, token.Number)
}
