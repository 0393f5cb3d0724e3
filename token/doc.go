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

// Package token provides an editable token stream for PHP-like source.
//
// # Whitespace
//
// Whitespace is not attached to other tokens; every run of it is a [Space]
// token of its own, so rules that rewrite layout address whitespace by index
// exactly like any other token. A well-formed stream never holds two adjacent
// [Space] tokens, nor an empty one; [Stream.SetSpace] maintains this.
//
// # Editing
//
// A [Stream] is edited in place. Edits shift the indices of every later
// token, so code that edits a stream while walking it must only edit at or
// after the position it will resume from. [Cursor] reads the live stream and
// remains valid across such edits.
package token
