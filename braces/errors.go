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
	"errors"
	"fmt"
	"strings"

	"github.com/bufbuild/bracepos/report"
	"github.com/bufbuild/bracepos/token"
)

var (
	// ErrInvalidConfiguration is matched by errors.Is for every
	// [InvalidConfigurationError].
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrMalformedConstruct is matched by errors.Is for every
	// [MalformedConstructError].
	ErrMalformedConstruct = errors.New("malformed construct")
)

// InvalidConfigurationError is returned by [ParseConfig] for an unknown key
// or an unknown policy name.
type InvalidConfigurationError struct {
	Key, Value string
	// Set if Key is valid, but Value is not.
	BadValue bool
}

var _ report.Diagnose = &InvalidConfigurationError{}

// Error implements [error].
func (e *InvalidConfigurationError) Error() string {
	if e.BadValue {
		return fmt.Sprintf("invalid value %q for option %q", e.Value, e.Key)
	}
	return fmt.Sprintf("unknown option %q", e.Key)
}

// Is implements [errors.Is].
func (e *InvalidConfigurationError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}

// Diagnose implements [report.Diagnose].
func (e *InvalidConfigurationError) Diagnose(d *report.Diagnostic) {
	if e.BadValue {
		var names []string
		for p := range Policies() {
			names = append(names, p.String())
		}
		d.Apply(report.Help("valid values are: %s", strings.Join(names, ", ")))
		return
	}

	var keys []string
	for c := range Categories() {
		keys = append(keys, c.Key())
	}
	d.Apply(report.Help("valid options are: %s", strings.Join(keys, ", ")))
}

// MalformedConstructError is returned by [Fix] when a construct's signature
// has unbalanced brackets or its body cannot be found.
type MalformedConstructError struct {
	// The construct's introducing keyword.
	Keyword token.Token
	Span    report.Span

	// What went wrong, and where, if that is not the keyword.
	Reason string
	At     report.Span
}

var _ report.Diagnose = &MalformedConstructError{}

// Error implements [error].
func (e *MalformedConstructError) Error() string {
	return fmt.Sprintf("malformed `%s`: %s", strings.ToLower(e.Keyword.Text()), e.Reason)
}

// Is implements [errors.Is].
func (e *MalformedConstructError) Is(target error) bool {
	return target == ErrMalformedConstruct
}

// Diagnose implements [report.Diagnose].
func (e *MalformedConstructError) Diagnose(d *report.Diagnostic) {
	d.Apply(report.Snippet(e.Span, "construct starts here"))
	if e.At != nil {
		d.Apply(report.Snippet(e.At, "%s", e.Reason))
	}
	d.Apply(report.Note("no changes were made to this construct or any that follow it"))
}

// malformed builds a [MalformedConstructError] for the construct introduced
// at kw, with the problem at index at (or at kw, if at is negative).
func malformed(stream *token.Stream, kw, at int, format string, args ...any) error {
	err := &MalformedConstructError{
		Keyword: stream.At(kw),
		Span:    stream.Span(kw, kw+1),
		Reason:  fmt.Sprintf(format, args...),
	}
	if at >= 0 && at != kw {
		err.At = stream.Span(at, min(at+1, stream.Len()))
	}
	return err
}
