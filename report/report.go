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
	"errors"
	"fmt"
	"runtime"
	"runtime/debug"
)

const (
	Error Level = 1 + iota
	Warning
	Remark
	// ICE is an internal compiler error: a panic caught and turned into a
	// diagnostic.
	ICE
)

// Level represents the severity of a diagnostic message.
type Level int8

// String implements [fmt.Stringer].
func (l Level) String() string {
	switch l {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Remark:
		return "remark"
	case ICE:
		return "internal error"
	default:
		return fmt.Sprintf("report.Level(%d)", int(l))
	}
}

// Diagnose is an error that can be rendered as a diagnostic.
type Diagnose interface {
	error

	// Diagnose writes out this error to the given diagnostic.
	//
	// This function should not set Level; that is set by the [Report] when
	// the diagnostic is pushed.
	Diagnose(*Diagnostic)
}

// Diagnostic is a type of error that can be rendered as a rich diagnostic.
//
// Not all Diagnostics are "errors", even though Diagnostic does embed error;
// some represent warnings, or perhaps debugging remarks.
type Diagnostic struct {
	// The error that prompted this diagnostic. Its Error() return is used
	// as the diagnostic message.
	Err error

	// The kind of diagnostic this is, which affects how and whether it is shown
	// to users.
	Level Level

	mention     string
	snippets    []snippet
	notes, help []string

	// Stack trace information for the diagnostic, for use in debugging.
	// Only populated when BRACEPOS_DEBUG is set.
	trace []runtime.Frame
}

type snippet struct {
	file       File
	start, end Location
	message    string
}

// Primary returns this diagnostic's primary span, if it has one.
func (d *Diagnostic) Primary() (file File, start, end Location) {
	if len(d.snippets) == 0 {
		file.Path = d.mention
		return file, start, end
	}
	return d.snippets[0].file, d.snippets[0].start, d.snippets[0].end
}

// Notes returns the notes attached to this diagnostic.
func (d *Diagnostic) Notes() []string {
	return d.notes
}

// Apply applies the given options to this diagnostic. Nil options are
// ignored.
func (d *Diagnostic) Apply(opts ...DiagnosticOption) *Diagnostic {
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}
	return d
}

// DiagnosticOption is an option that can be applied to a [Diagnostic].
type DiagnosticOption func(*Diagnostic)

// InFile returns a DiagnosticOption that causes a diagnostic without
// a primary span to mention the given file.
func InFile(path string) DiagnosticOption {
	return func(d *Diagnostic) { d.mention = path }
}

// Snippet returns a DiagnosticOption that adds a new snippet to the
// diagnostic.
//
// The first snippet added is the "primary" snippet, and will be rendered
// differently from the others.
func Snippet(span Span, format string, args ...any) DiagnosticOption {
	return func(d *Diagnostic) {
		if span == nil {
			return
		}
		d.snippets = append(d.snippets, snippet{
			file:    span.File(),
			start:   span.Start(),
			end:     span.End(),
			message: fmt.Sprintf(format, args...),
		})
	}
}

// Note returns a DiagnosticOption that provides the user with context about the
// diagnostic, after the snippets.
func Note(format string, args ...any) DiagnosticOption {
	return func(d *Diagnostic) {
		d.notes = append(d.notes, fmt.Sprintf(format, args...))
	}
}

// Help returns a DiagnosticOption that provides the user with a helpful prose
// suggestion for resolving the diagnostic.
func Help(format string, args ...any) DiagnosticOption {
	return func(d *Diagnostic) {
		d.help = append(d.help, fmt.Sprintf(format, args...))
	}
}

// Report is a collection of diagnostics.
type Report []Diagnostic

// Error pushes an error diagnostic onto this report.
func (r *Report) Error(err Diagnose) *Diagnostic {
	d := r.push(1, err, Error)
	err.Diagnose(d)
	return d
}

// Warn pushes a warning diagnostic onto this report.
func (r *Report) Warn(err Diagnose) *Diagnostic {
	d := r.push(1, err, Warning)
	err.Diagnose(d)
	return d
}

// Errorf creates an ad-hoc error diagnostic with the given message.
func (r *Report) Errorf(format string, args ...any) *Diagnostic {
	return r.push(1, fmt.Errorf(format, args...), Error)
}

// Warnf creates an ad-hoc warning diagnostic with the given message.
func (r *Report) Warnf(format string, args ...any) *Diagnostic {
	return r.push(1, fmt.Errorf(format, args...), Warning)
}

// Remarkf creates an ad-hoc remark diagnostic with the given message.
func (r *Report) Remarkf(format string, args ...any) *Diagnostic {
	return r.push(1, fmt.Errorf(format, args...), Remark)
}

// HasErrors returns whether this report contains any diagnostics at the
// [Error] or [ICE] level.
func (r *Report) HasErrors() bool {
	for i := range *r {
		if (*r)[i].Level == Error || (*r)[i].Level == ICE {
			return true
		}
	}
	return false
}

// Err returns the first error-level diagnostic's underlying error, or nil.
func (r *Report) Err() error {
	for i := range *r {
		if (*r)[i].Level == Error || (*r)[i].Level == ICE {
			return (*r)[i].Err
		}
	}
	return nil
}

// CatchICE recovers a panic and turns it into an [ICE] diagnostic, to which
// diagnose may add context. Must be called via defer.
//
// If resume is true, the panic is re-raised after the diagnostic is
// recorded.
func (r *Report) CatchICE(resume bool, diagnose func(*Diagnostic)) {
	panicked := recover()
	if panicked == nil {
		return
	}

	err := &ErrPanic{Value: panicked}
	if tracing > traceNone {
		err.Stack = debug.Stack()
	}
	d := r.push(1, err, ICE)
	err.Diagnose(d)
	if diagnose != nil {
		diagnose(d)
	}

	if resume {
		panic(panicked)
	}
}

// ErrPanic is the error recorded by [Report.CatchICE].
type ErrPanic struct {
	// The value passed to panic().
	Value any
	// The stack at the time of the panic, if captured.
	Stack []byte
}

var _ Diagnose = &ErrPanic{}

// Error implements [error].
func (e *ErrPanic) Error() string {
	return "unexpected panic; this is a bug"
}

// Unwrap implements [errors.Unwrap].
func (e *ErrPanic) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// Diagnose implements [Diagnose].
func (e *ErrPanic) Diagnose(d *Diagnostic) {
	d.Apply(Note("%v", e.Value))
	if e.Stack != nil {
		d.Apply(Note("%s", e.Stack))
	}
}

// IsICE returns whether err was produced by [Report.CatchICE].
func IsICE(err error) bool {
	var p *ErrPanic
	return errors.As(err, &p)
}

// push is the core "make me a diagnostic" function.
func (r *Report) push(skip int, err error, level Level) *Diagnostic {
	*r = append(*r, Diagnostic{Err: err, Level: level})
	d := &(*r)[len(*r)-1]

	// If debugging is on, capture a stack trace.
	if tracing > traceNone {
		// Unwind the stack to find program counter information.
		pc := make([]uintptr, 64)
		pc = pc[:runtime.Callers(skip+2, pc)]

		// Fill trace with the result.
		var zero runtime.Frame
		frames := runtime.CallersFrames(pc)
		for {
			next, more := frames.Next()
			if next != zero {
				d.trace = append(d.trace, next)
			}
			if !more {
				break
			}
		}
	}

	return d
}
