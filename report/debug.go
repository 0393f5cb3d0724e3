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
	"os"
	"strings"
)

// traceLevel controls how much of the Go stack is attached to diagnostics.
type traceLevel int

const (
	traceNone   traceLevel = iota // No stacks.
	traceCaller                   // Only the frame that created the diagnostic.
	traceAll                      // Every frame.
)

// tracing is read from BRACEPOS_DEBUG once, when the program starts.
var tracing = parseTraceLevel(os.Getenv("BRACEPOS_DEBUG"))

// parseTraceLevel maps a BRACEPOS_DEBUG value to a trace level. Empty and
// false-like values disable tracing; "full" or "all" trace the whole stack.
func parseTraceLevel(value string) traceLevel {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "0", "off", "false", "no":
		return traceNone
	case "full", "all":
		return traceAll
	default:
		return traceCaller
	}
}
