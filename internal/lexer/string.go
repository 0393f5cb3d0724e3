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
	"unicode/utf8"

	"github.com/bufbuild/bracepos/report"
	"github.com/bufbuild/bracepos/token"
)

// lexString lexes a quoted string starting at the current cursor, which
// should be just before the opening quote.
//
// Single-quoted strings only have the escapes \\ and \'. Double-quoted and
// backtick strings may contain {$...} interpolations, which may themselves
// contain quotes.
func lexString(l *lexer) {
	start := l.cursor
	quote := l.pop()

	var terminated bool
loop:
	for !l.done() {
		switch r := l.pop(); {
		case r == '\\':
			l.pop()
		case r == quote:
			terminated = true
			break loop
		case quote != '\'' && r == '{' && l.peek() == '$':
			skipInterpolation(l)
		}
	}

	tok := l.push(l.cursor-start, token.String)
	if !terminated {
		var note report.DiagnosticOption
		if len(tok.Text()) == 1 {
			note = report.Note("this string consists of a single orphaned quote")
		}
		l.Errorf("unterminated string literal").Apply(
			report.Snippet(l.spanFrom(start), "expected to be terminated by `%c`", quote),
			note,
		)
	}
}

// skipInterpolation skips over the body of a {$...} interpolation, up to
// and including its closing brace. The cursor should be just after the {.
func skipInterpolation(l *lexer) {
	depth := 1
	for !l.done() {
		switch r := l.peek(); r {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				l.pop()
				return
			}
		case '\'', '"':
			// Nested strings are lexed only to be skipped.
			skipQuoted(l)
			continue
		}
		l.pop()
	}
}

// skipQuoted skips a quoted string without emitting a token.
func skipQuoted(l *lexer) {
	quote := l.pop()
	for !l.done() {
		switch l.pop() {
		case '\\':
			l.pop()
		case quote:
			return
		}
	}
}

// lexHeredoc attempts to lex a heredoc or nowdoc starting at the cursor,
// which should be at a <<<. Returns false, consuming nothing, if the text
// does not begin a heredoc.
//
// The closing label may be indented and may be followed by anything that
// cannot continue a label, as in PHP 7.3 and later.
func lexHeredoc(l *lexer) bool {
	start := l.cursor
	rest := l.rest()[len("<<<"):]
	rest = strings.TrimLeft(rest, " \t")

	var quote string
	if rest != "" && (rest[0] == '\'' || rest[0] == '"') {
		quote, rest = rest[:1], rest[1:]
	}
	label := labelPrefix(rest)
	if label == "" {
		return false
	}
	rest = rest[len(label):]
	if quote != "" {
		if !strings.HasPrefix(rest, quote) {
			return false
		}
		rest = rest[1:]
	}
	switch {
	case strings.HasPrefix(rest, "\r\n"):
		rest = rest[2:]
	case strings.HasPrefix(rest, "\n"):
		rest = rest[1:]
	default:
		return false
	}

	body := len(l.src) - len(rest)
	for pos := body; ; {
		line := l.src[pos:]
		if nl := strings.IndexByte(line, '\n'); nl >= 0 {
			line = line[:nl]
		}
		trimmed := strings.TrimLeft(line, " \t")
		if after, ok := strings.CutPrefix(trimmed, label); ok {
			if r, _ := utf8.DecodeRuneInString(after); after == "" || !isIdentContinue(r) {
				l.cursor = pos + len(line) - len(after)
				l.push(l.cursor-start, token.String)
				return true
			}
		}
		if pos+len(line) >= len(l.src) {
			break
		}
		pos += len(line) + 1
	}

	l.seekEOF()
	l.push(l.cursor-start, token.String)
	l.Errorf("unterminated heredoc").Apply(
		report.Snippet(l.span(start, body), "expected to be closed by `%s`", label),
	)
	return true
}

// labelPrefix returns the PHP label that text begins with, if any.
func labelPrefix(text string) string {
	for i, r := range text {
		if i == 0 && !isIdentStart(r) || i > 0 && !isIdentContinue(r) {
			return text[:i]
		}
	}
	return text
}
