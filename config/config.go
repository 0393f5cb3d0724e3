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

package config

import (
	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"

	"github.com/bufbuild/bracepos/braces"
)

// DefaultInclude is the include pattern used when a file names none.
const DefaultInclude = "**/*.php"

// Names are the file names [Discover] looks for, in order.
var Names = []string{
	".bracepos.yaml",
	".bracepos.yml",
	".bracepos.json",
	".bracepos.hcl",
	".bracepos.toml",
}

// File is the contents of a configuration file.
type File struct {
	Rules Rules `json:"rules" toml:"rules" yaml:"rules"`

	// Globs, relative to the directory being fixed, selecting the files
	// to fix. Exclusions win.
	Include []string `json:"include,omitempty" toml:"include,omitempty" yaml:"include,omitempty"`
	Exclude []string `json:"exclude,omitempty" toml:"exclude,omitempty" yaml:"exclude,omitempty"`

	path string
}

// Rules holds the options of each rule.
type Rules struct {
	// Options for the braces_position rule, as accepted by
	// [braces.ParseConfig].
	BracesPosition map[string]string `json:"braces_position,omitempty" toml:"braces_position,omitempty" yaml:"braces_position,omitempty"`
}

// Default returns the configuration used when there is no file.
func Default() *File {
	return &File{Include: []string{DefaultInclude}}
}

// Path returns the path this file was loaded from, if any.
func (f *File) Path() string {
	return f.path
}

// Braces resolves the braces_position options.
func (f *File) Braces() (braces.Config, error) {
	config, err := braces.ParseConfig(f.Rules.BracesPosition)
	if err != nil {
		return braces.Config{}, errors.Errorf("rules.braces_position: %w", err)
	}
	return config, nil
}

// Set overrides a single braces_position option.
func (f *File) Set(key, value string) {
	if f.Rules.BracesPosition == nil {
		f.Rules.BracesPosition = make(map[string]string)
	}
	f.Rules.BracesPosition[key] = value
}

// Validate checks that the rule options and globs are well-formed.
func (f *File) Validate() error {
	if _, err := f.Braces(); err != nil {
		return err
	}
	for _, globs := range [][]string{f.Include, f.Exclude} {
		for _, glob := range globs {
			if !doublestar.ValidatePattern(glob) {
				return errors.Errorf("invalid glob %q", glob)
			}
		}
	}
	return nil
}

// Patterns returns the include and exclude globs, applying
// [DefaultInclude] if there are no includes.
func (f *File) Patterns() (include, exclude []string) {
	include = f.Include
	if len(include) == 0 {
		include = []string{DefaultInclude}
	}
	return include, f.Exclude
}
