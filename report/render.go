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

package report

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Renderer configures a diagnostic rendering operation.
type Renderer struct {
	// If set, uses a compact one-line format for each diagnostic, imitating
	// the Go compiler.
	Compact bool

	// If set, renders with ANSI colors.
	Colorize bool

	// If set, remark diagnostics are rendered too.
	ShowRemarks bool
}

type palette struct {
	err, warning, remark, ice *color.Color
	gutter, footer            *color.Color
}

func (r Renderer) palette() palette {
	mk := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if r.Colorize {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}
	return palette{
		err:     mk(color.FgRed, color.Bold),
		warning: mk(color.FgYellow, color.Bold),
		remark:  mk(color.FgCyan, color.Bold),
		ice:     mk(color.FgMagenta, color.Bold),
		gutter:  mk(color.FgBlue),
		footer:  mk(color.FgCyan, color.Bold),
	}
}

func (p palette) forLevel(l Level) *color.Color {
	switch l {
	case Warning:
		return p.warning
	case Remark:
		return p.remark
	case ICE:
		return p.ice
	default:
		return p.err
	}
}

// Render renders a report, followed by a summary line unless the renderer
// is compact.
func (r Renderer) Render(report *Report) string {
	var out strings.Builder
	var errors, warnings int
	for i := range *report {
		d := &(*report)[i]
		if d.Level == Remark && !r.ShowRemarks {
			continue
		}
		out.WriteString(r.RenderDiagnostic(d))
		out.WriteByte('\n')
		if !r.Compact {
			out.WriteByte('\n')
		}
		switch d.Level {
		case Error, ICE:
			errors++
		case Warning:
			warnings++
		}
	}
	if r.Compact {
		return out.String()
	}

	pluralize := func(count int, what string) string {
		if count == 1 {
			return "1 " + what
		}
		return fmt.Sprint(count, " ", what, "s")
	}

	p := r.palette()
	switch {
	case errors > 0 && warnings > 0:
		fmt.Fprintln(&out, p.err.Sprint("encountered ", pluralize(errors, "error"), " and ", pluralize(warnings, "warning")))
	case errors > 0:
		fmt.Fprintln(&out, p.err.Sprint("encountered ", pluralize(errors, "error")))
	case warnings > 0:
		fmt.Fprintln(&out, p.warning.Sprint("encountered ", pluralize(warnings, "warning")))
	}
	return out.String()
}

// RenderDiagnostic renders a single diagnostic.
func (r Renderer) RenderDiagnostic(d *Diagnostic) string {
	p := r.palette()
	file, start, _ := d.Primary()
	path := file.Path
	if path == "" {
		path = "<unknown>"
	}

	// For the compact style, we imitate the Go compiler.
	if r.Compact {
		if start.Line == 0 {
			return fmt.Sprintf("%s: %s: %s", d.Level, path, d.Err.Error())
		}
		return fmt.Sprintf("%s: %s:%d:%d: %s", d.Level, path, start.Line, start.Column, d.Err.Error())
	}

	// Otherwise, we imitate the Rust compiler.
	var out strings.Builder
	out.WriteString(p.forLevel(d.Level).Sprint(d.Level, ": ", d.Err.Error()))

	var greatestLine int
	for _, snip := range d.snippets {
		greatestLine = max(greatestLine, snip.end.Line)
	}
	barWidth := max(2, len(fmt.Sprint(greatestLine)))
	bar := strings.Repeat(" ", barWidth)

	if len(d.snippets) == 0 {
		fmt.Fprintf(&out, "\n%s", p.gutter.Sprintf("%s--> %s", bar, path))
	}
	for i, snip := range d.snippets {
		arrow := "-->"
		if i > 0 {
			arrow = ":::"
		}
		fmt.Fprintf(&out, "\n%s", p.gutter.Sprintf("%s%s %s:%d:%d", bar, arrow, snip.file.Path, snip.start.Line, snip.start.Column))
		fmt.Fprintf(&out, "\n%s", p.gutter.Sprintf("%s |", bar))

		line := lineAt(snip.file.Text, snip.start.Offset)
		fmt.Fprintf(&out, "\n%s %s", p.gutter.Sprintf("%*d |", barWidth, snip.start.Line), expandTabs(line))

		// Underline the span, clipped to the first line.
		width := 1
		if snip.end.Line == snip.start.Line {
			width = max(1, snip.end.Column-snip.start.Column)
		}
		underline := strings.Repeat(" ", snip.start.Column-1) + strings.Repeat("^", width)
		if snip.message != "" {
			underline += " " + snip.message
		}
		level := d.Level
		if i > 0 {
			level = Remark
		}
		fmt.Fprintf(&out, "\n%s %s", p.gutter.Sprintf("%s |", bar), p.forLevel(level).Sprint(underline))
	}

	var footers [][2]string
	for _, note := range d.notes {
		footers = append(footers, [2]string{"note", note})
	}
	for _, help := range d.help {
		footers = append(footers, [2]string{"help", help})
	}
	for i, frame := range d.trace {
		if tracing < traceAll && i > 0 {
			break
		}
		footers = append(footers, [2]string{"debug", fmt.Sprintf("at %s", frame.Function)})
		footers = append(footers, [2]string{"debug", fmt.Sprintf("   %s:%d", frame.File, frame.Line)})
	}
	for _, footer := range footers {
		fmt.Fprintf(&out, "\n%s %s%s", p.gutter.Sprintf("%s =", bar), p.footer.Sprint(footer[0], ": "), footer[1])
	}

	return out.String()
}

// lineAt returns the line of text containing offset, without its newline.
func lineAt(text string, offset int) string {
	offset = min(max(offset, 0), len(text))
	start := strings.LastIndexByte(text[:offset], '\n') + 1
	end := strings.IndexByte(text[offset:], '\n')
	if end < 0 {
		return strings.TrimRight(text[start:], "\r")
	}
	return strings.TrimRight(text[start:offset+end], "\r")
}

// expandTabs replaces tabs with spaces so that columns computed with
// [TabstopWidth] line up with the rendered text.
func expandTabs(line string) string {
	if !strings.Contains(line, "\t") {
		return line
	}
	var out strings.Builder
	var column int
	for i, chunk := range strings.Split(line, "\t") {
		if i > 0 {
			tab := TabstopWidth - (column % TabstopWidth)
			out.WriteString(strings.Repeat(" ", tab))
			column += tab
		}
		out.WriteString(chunk)
		column = stringWidth(column, chunk)
	}
	return out.String()
}
