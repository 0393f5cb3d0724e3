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

package lexer_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/bracepos/internal/lexer"
	"github.com/bufbuild/bracepos/report"
	"github.com/bufbuild/bracepos/token"
	"github.com/bufbuild/bracepos/token/keyword"
)

type tok struct {
	Kind token.Kind
	Text string
}

func lex(t *testing.T, text string, inCode bool) ([]tok, report.Report) {
	t.Helper()

	var r report.Report
	stream := (&lexer.Lexer{StartInCode: inCode}).Lex("test.php", text, &r)
	for _, d := range r {
		require.NotEqual(t, report.ICE, d.Level, "%v", d.Notes())
	}
	assert.Equal(t, text, stream.Text(), "lexing must be lossless")

	var toks []tok
	for _, tk := range stream.All() {
		toks = append(toks, tok{tk.Kind(), tk.Text()})
	}
	return toks, r
}

func TestLex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		text   string
		inCode bool
		want   []tok
		errors int
	}{
		{
			name: "markup",
			text: "<html><?php if ($x) { ?>yes<?= $y ?></html>",
			want: []tok{
				{token.Markup, "<html>"},
				{token.Markup, "<?php"},
				{token.Space, " "},
				{token.Ident, "if"},
				{token.Space, " "},
				{token.Punct, "("},
				{token.Variable, "$x"},
				{token.Punct, ")"},
				{token.Space, " "},
				{token.Punct, "{"},
				{token.Space, " "},
				{token.Markup, "?>"},
				{token.Markup, "yes"},
				{token.Markup, "<?="},
				{token.Space, " "},
				{token.Variable, "$y"},
				{token.Space, " "},
				{token.Markup, "?>"},
				{token.Markup, "</html>"},
			},
		},
		{
			name: "not_a_tag",
			text: "<?phpx <?xml",
			want: []tok{{token.Markup, "<?phpx <?xml"}},
		},
		{
			name:   "comments",
			text:   "// a\n# b ?>\n/* c\n*/#[Attr]",
			inCode: true,
			want: []tok{
				{token.Comment, "// a"},
				{token.Space, "\n"},
				{token.Comment, "# b "},
				{token.Markup, "?>"},
				{token.Markup, "\n/* c\n*/#[Attr]"},
			},
		},
		{
			name:   "attribute",
			text:   "#[Attr] /** doc */",
			inCode: true,
			want: []tok{
				{token.Punct, "#["},
				{token.Ident, "Attr"},
				{token.Punct, "]"},
				{token.Space, " "},
				{token.Comment, "/** doc */"},
			},
		},
		{
			name:   "strings",
			text:   "'a\\'b' \"c{$d[\"}\"]}e\" `ls`",
			inCode: true,
			want: []tok{
				{token.String, `'a\'b'`},
				{token.Space, " "},
				{token.String, `"c{$d["}"]}e"`},
				{token.Space, " "},
				{token.String, "`ls`"},
			},
		},
		{
			name:   "heredoc",
			text:   "<<<EOT\n  {\n  EOT;\n<<<'NOW'\nNOWX\nNOW\n",
			inCode: true,
			want: []tok{
				{token.String, "<<<EOT\n  {\n  EOT"},
				{token.Punct, ";"},
				{token.Space, "\n"},
				{token.String, "<<<'NOW'\nNOWX\nNOW"},
				{token.Space, "\n"},
			},
		},
		{
			name:   "shift",
			text:   "$a <<<$b",
			inCode: true,
			want: []tok{
				{token.Variable, "$a"},
				{token.Space, " "},
				{token.Punct, "<<"},
				{token.Punct, "<"},
				{token.Variable, "$b"},
			},
		},
		{
			name:   "numbers",
			text:   "1 0x1F 1_000 1.5e-3 .5 1..2",
			inCode: true,
			want: []tok{
				{token.Number, "1"},
				{token.Space, " "},
				{token.Number, "0x1F"},
				{token.Space, " "},
				{token.Number, "1_000"},
				{token.Space, " "},
				{token.Number, "1.5e-3"},
				{token.Space, " "},
				{token.Number, ".5"},
				{token.Space, " "},
				{token.Number, "1"},
				{token.Punct, "."},
				{token.Number, ".2"},
			},
		},
		{
			name:   "punctuation",
			text:   "$o?->f()::c \\A\\B ?int|(X&Y) $$v",
			inCode: true,
			want: []tok{
				{token.Variable, "$o"},
				{token.Punct, "?->"},
				{token.Ident, "f"},
				{token.Punct, "("},
				{token.Punct, ")"},
				{token.Punct, "::"},
				{token.Ident, "c"},
				{token.Space, " "},
				{token.Punct, "\\"},
				{token.Ident, "A"},
				{token.Punct, "\\"},
				{token.Ident, "B"},
				{token.Space, " "},
				{token.Punct, "?"},
				{token.Ident, "int"},
				{token.Punct, "|"},
				{token.Punct, "("},
				{token.Ident, "X"},
				{token.Punct, "&"},
				{token.Ident, "Y"},
				{token.Punct, ")"},
				{token.Space, " "},
				{token.Punct, "$"},
				{token.Variable, "$v"},
			},
		},
		{
			name:   "unterminated",
			text:   "f('abc",
			inCode: true,
			want: []tok{
				{token.Ident, "f"},
				{token.Punct, "("},
				{token.String, "'abc"},
			},
			errors: 1,
		},
		{
			name:   "garbage",
			text:   "ab\x00\x01c",
			inCode: true,
			want: []tok{
				{token.Ident, "ab"},
				{token.Unrecognized, "\x00\x01"},
				{token.Ident, "c"},
			},
			errors: 1,
		},
		{
			name:   "unterminated_comment",
			text:   "/* abc",
			inCode: true,
			want:   []tok{{token.Comment, "/* abc"}},
			errors: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, r := lex(t, tt.text, tt.inCode)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", diff)
			}
			assert.Len(t, r, tt.errors, report.Renderer{Compact: true}.Render(&r))
		})
	}
}

func TestKeywords(t *testing.T) {
	t.Parallel()

	var r report.Report
	stream := (&lexer.Lexer{}).Lex("test.php", "<?php\nFUNCTION Foo(): Static {}", &r)
	require.Empty(t, r)

	var kws []keyword.Keyword
	for _, tok := range stream.All() {
		if kw := tok.Keyword(); kw != keyword.Unknown {
			kws = append(kws, kw)
		}
	}
	assert.Equal(t, []keyword.Keyword{
		keyword.Function,
		keyword.LParen, keyword.RParen, keyword.Colon,
		keyword.Static,
		keyword.LBrace, keyword.RBrace,
	}, kws)
}

func TestUTF16(t *testing.T) {
	t.Parallel()

	for _, text := range []string{
		"\xff\xfe<\x00?\x00",
		"\xfe\xff\x00<\x00?",
		"a\x00\x01b",
		"\x00<\x00?",
	} {
		var r report.Report
		stream := (&lexer.Lexer{StartInCode: true}).Lex("test.php", text, &r)
		assert.Equal(t, 0, stream.Len(), "%q", text)
		require.Len(t, r, 1, "%q", text)
		assert.Equal(t, report.Error, r[0].Level)
		assert.Contains(t, r[0].Err.Error(), "UTF-16")
	}
}

func TestLossless(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"\uFEFF<?php echo 1;",
		"<?php\r\nclass A {\r\n}\r\n",
		"<?php $x = <<<A\n{$y}\nA . 'b';\n?>\n<p>",
		strings.Repeat("<?php /*", 3),
		"<?php \"${a}\" '\\' \"{$a['}']}\" \"x",
	}
	for _, input := range inputs {
		_, _ = lex(t, input, false)
	}
}
