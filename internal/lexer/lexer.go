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

// Package lexer turns the text of a PHP source file into a [token.Stream].
//
// The lexer is lossless: concatenating the text of the tokens it produces
// yields the input exactly, including any bytes it failed to recognize.
package lexer

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/bufbuild/bracepos/report"
	"github.com/bufbuild/bracepos/token"
)

// MaxFileSize is the maximum file size the lexer supports.
const MaxFileSize int = math.MaxInt32 // 2GB

// Lexer is the general-purpose lexer exposed by this package.
type Lexer struct {
	// If true, the text is lexed as PHP code from the first byte, as if it
	// were preceded by an open tag. Otherwise, everything before the first
	// <?php or <?= is inline markup.
	StartInCode bool
}

// Lex runs lexical analysis on text and returns a new token stream as a
// result. Problems are recorded in r; the stream is returned regardless.
func (l *Lexer) Lex(path, text string, r *report.Report) *token.Stream {
	stream := token.NewStream(path)
	loop(&lexer{
		Lexer:  l,
		Stream: stream,
		Report: r,
		src:    text,
		file:   report.NewIndexedFile(report.File{Path: path, Text: text}),
		inCode: l.StartInCode,
	})
	return stream
}

// lexer is the actual lexer book-keeping used in this package.
type lexer struct {
	*Lexer
	*token.Stream
	*report.Report

	src  string
	file *report.IndexedFile

	cursor, count int
	inCode        bool

	// Used for determining longest runs of unrecognized tokens.
	badBytes int
}

// push pushes a new token of the given length, ending at the cursor, onto
// the stream the lexer is building.
func (l *lexer) push(length int, kind token.Kind) token.Token {
	l.flush(l.cursor - length)
	l.count++
	return l.Stream.Push(kind, l.src[l.cursor-length:l.cursor])
}

// flush emits any pending unrecognized bytes, which end at offset end.
func (l *lexer) flush(end int) {
	if l.badBytes == 0 {
		return
	}
	start := end - l.badBytes
	l.badBytes = 0
	l.count++
	l.Stream.Push(token.Unrecognized, l.src[start:end])
	l.Errorf("unrecognized token").Apply(
		report.Snippet(l.span(start, end), ""),
	)
}

// rest returns the remaining unlexed text.
func (l *lexer) rest() string {
	return l.src[l.cursor:]
}

// done returns whether or not we're done lexing runes.
func (l *lexer) done() bool {
	return l.rest() == ""
}

// peek peeks the next character.
//
// Returns -1 if l.done().
func (l *lexer) peek() rune {
	r, _ := l.peekN()
	return r
}

// peekAt peeks the character n bytes past the cursor.
//
// Returns -1 past the end of the text.
func (l *lexer) peekAt(n int) rune {
	if l.cursor+n >= len(l.src) {
		return -1
	}
	r, _ := utf8.DecodeRuneInString(l.src[l.cursor+n:])
	return r
}

func (l *lexer) peekN() (rune, int) {
	if l.done() {
		return -1, 0
	}
	return utf8.DecodeRuneInString(l.rest())
}

// pop consumes the next character.
//
// Returns -1 if l.done().
func (l *lexer) pop() rune {
	r, n := l.peekN()
	l.cursor += n
	return r
}

// takeWhile consumes the characters while they match the given function.
// Returns consumed characters.
func (l *lexer) takeWhile(f func(rune) bool) string {
	start := l.cursor
	for !l.done() {
		r, n := l.peekN()
		if !f(r) {
			break
		}
		l.cursor += n
	}
	return l.src[start:l.cursor]
}

// seekInclusive seeks until the given needle is found; returns the prefix
// including the needle, and updates the cursor to point after it.
func (l *lexer) seekInclusive(needle string) (string, bool) {
	if idx := strings.Index(l.rest(), needle); idx != -1 {
		prefix := l.rest()[:idx+len(needle)]
		l.cursor += idx + len(needle)
		return prefix, true
	}
	return "", false
}

// seekEOF seeks the cursor to the end of the file and returns the remaining text.
func (l *lexer) seekEOF() string {
	rest := l.rest()
	l.cursor += len(rest)
	return rest
}

func (l *lexer) span(start, end int) report.Span {
	return l.file.NewSpan(start, end)
}

func (l *lexer) spanFrom(start int) report.Span {
	return l.span(start, l.cursor)
}

// mustProgress returns a progress checker for this lexer.
func (l *lexer) mustProgress() mustProgress {
	return mustProgress{l, -1}
}

func isSpace(r rune) bool {
	return strings.ContainsRune(" \t\n\r\v\f", r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isIdentStart matches the first byte of a PHP label. Every non-ASCII
// character may appear in a label.
func isIdentStart(r rune) bool {
	return r == '_' || r >= 0x80 || (r|0x20) >= 'a' && (r|0x20) <= 'z'
}

func isIdentContinue(r rune) bool {
	return isIdentStart(r) || isDigit(r)
}
