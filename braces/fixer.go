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
	"strings"

	"github.com/bufbuild/bracepos/report"
	"github.com/bufbuild/bracepos/token"
)

// Fix moves the opening brace of every construct in stream to where config
// says it belongs. The stream is edited in place.
//
// Returns the number of constructs whose layout changed.
//
// If a construct turns out to be malformed, Fix stops there and returns a
// [*MalformedConstructError]; constructs before it stay rewritten. An
// internal failure is returned as a [*report.ErrPanic].
func Fix(stream *token.Stream, config Config) (changed int, err error) {
	r := new(report.Report)
	defer func() {
		if err == nil {
			err = r.Err()
		}
	}()
	defer r.CatchICE(false, func(d *report.Diagnostic) {
		d.Apply(report.InFile(stream.Path))
	})

	rw := newRewriter(stream)
	for construct, err := range Constructs(stream) {
		if err != nil {
			return changed, err
		}

		start, end := construct.SignatureEnd, bodyStart(stream, construct.Brace)
		before := text(stream, start, end)
		n := stream.Len()

		place(rw, construct, config.Policy(construct.Category))

		if text(stream, start, end+stream.Len()-n) != before {
			changed++
		}
	}
	return changed, nil
}

// bodyStart returns the index of the first non-skippable token after the
// brace at i, or the end of the stream.
func bodyStart(s *token.Stream, i int) int {
	if next := nextCode(s, i); next >= 0 {
		return next
	}
	return s.Len()
}

func text(s *token.Stream, start, end int) string {
	var out strings.Builder
	for i := start; i < end; i++ {
		out.WriteString(s.At(i).Text())
	}
	return out.String()
}
