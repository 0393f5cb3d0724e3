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

// Package report provides a robust diagnostics framework. It offers a
// [Report] type for collecting diagnostics, and a [Renderer] that turns
// them into output suitable for a terminal, in the style of the Go and Rust
// compilers.
//
// Errors produced by the fixer implement [Diagnose], so they carry their own
// source locations and notes.
package report
