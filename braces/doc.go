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

// Package braces relocates the opening braces of block-introducing PHP
// constructs according to a per-category placement [Policy].
//
// The rule works on a [token.Stream] and edits it in place. It never builds
// a syntax tree: constructs are recognized by keyword, and their extent is
// found by matching brackets. Only whitespace tokens change and only the
// opening brace moves; every other token, comments included, keeps its text
// and relative order.
package braces
