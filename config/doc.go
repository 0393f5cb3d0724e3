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

// Package config loads bracepos configuration files.
//
// The format is chosen by file extension: .yaml and .yml files are YAML,
// .json files are JSON, .hcl files are HCL and .toml files are TOML. All of
// them describe the same [File]:
//
//	rules:
//	  braces_position:
//	    functions_opening_brace: same_line
//	include: ["src/**/*.php"]
//	exclude: ["vendor/**"]
//
// Unknown fields are an error in every format.
package config
