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
	"maps"
	"slices"
)

// Config is a resolved configuration: one [Policy] per [Category].
//
// A Config is a value and is never mutated by [Fix], so one may be shared
// between concurrent passes.
type Config struct {
	policies [numCategories]Policy
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	var c Config
	c.policies[ControlStructure] = SameLine
	c.policies[Class] = NextLineUnlessNewlineAtSignatureEnd
	c.policies[AnonymousClass] = SameLine
	c.policies[Function] = NextLineUnlessNewlineAtSignatureEnd
	c.policies[AnonymousFunction] = SameLine
	return c
}

// ParseConfig builds a configuration from key/value options, starting from
// [DefaultConfig]. Keys are the values returned by [Category.Key]; values
// are policy names.
//
// Returns an [InvalidConfigurationError] for the first (in sorted order)
// unknown key or value.
func ParseConfig(options map[string]string) (Config, error) {
	config := DefaultConfig()
	for _, key := range slices.Sorted(maps.Keys(options)) {
		category, ok := categoryForKey(key)
		if !ok {
			return Config{}, &InvalidConfigurationError{Key: key}
		}
		value := options[key]
		policy, ok := ParsePolicy(value)
		if !ok {
			return Config{}, &InvalidConfigurationError{Key: key, Value: value, BadValue: true}
		}
		config.policies[category] = policy
	}
	return config, nil
}

// With returns a copy of this configuration with the policy for category
// replaced.
func (c Config) With(category Category, policy Policy) Config {
	c.policies[category] = policy
	return c
}

// Policy returns the policy for the given category.
func (c Config) Policy(category Category) Policy {
	if p := c.policies[category]; p.IsValid() {
		return p
	}
	// The zero Config behaves like the default one.
	return DefaultConfig().policies[category]
}

// Options returns the key/value form of this configuration, which
// [ParseConfig] accepts.
func (c Config) Options() map[string]string {
	options := make(map[string]string, numCategories)
	for category := range Categories() {
		options[category.Key()] = c.Policy(category).String()
	}
	return options
}

func categoryForKey(key string) (Category, bool) {
	for category := range Categories() {
		if category.Key() == key {
			return category, true
		}
	}
	return 0, false
}
