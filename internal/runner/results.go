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

package runner

import (
	"iter"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/tidwall/btree"

	"github.com/bufbuild/bracepos/report"
)

// Result is the outcome of fixing one file.
type Result struct {
	Path string

	Original, Fixed string

	// The number of constructs whose layout changed.
	Constructs int

	// Diagnostics produced while lexing and fixing the file.
	Report report.Report
}

// Changed returns whether fixing changed the file.
func (r *Result) Changed() bool {
	return r.Original != r.Fixed
}

// Diff returns a unified diff from the original file to the fixed one, or
// the empty string if there is no change.
func (r *Result) Diff() (string, error) {
	if !r.Changed() {
		return "", nil
	}
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(r.Original),
		B:        difflib.SplitLines(r.Fixed),
		FromFile: "a/" + r.Path,
		ToFile:   "b/" + r.Path,
		Context:  3,
	})
}

// Results are the results of a [Runner.Run], ordered by path.
type Results struct {
	tree btree.Map[string, *Result]
}

// Len returns the number of files processed.
func (r *Results) Len() int {
	return r.tree.Len()
}

// Get returns the result for the given path, if it was processed.
func (r *Results) Get(path string) (*Result, bool) {
	return r.tree.Get(path)
}

// All returns an iterator over the results, in path order.
func (r *Results) All() iter.Seq[*Result] {
	return func(yield func(*Result) bool) {
		r.tree.Scan(func(_ string, result *Result) bool {
			return yield(result)
		})
	}
}

// Changed returns the number of files that were changed.
func (r *Results) Changed() int {
	var n int
	for result := range r.All() {
		if result.Changed() {
			n++
		}
	}
	return n
}

// Report collects the diagnostics for every file, in path order.
func (r *Results) Report() *report.Report {
	all := new(report.Report)
	for result := range r.All() {
		*all = append(*all, result.Report...)
	}
	return all
}
