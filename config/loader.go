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
	"bytes"
	"context"
	"encoding/json"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/rs/zerolog"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// Load loads and validates the configuration file at path.
func Load(ctx context.Context, path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	var file *File
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		file, err = loadJSON(data)
	case ".yaml", ".yml":
		file, err = loadYAML(data)
	case ".hcl":
		file, err = loadHCL(data, path)
	case ".toml":
		file, err = loadTOML(data)
	default:
		return nil, errors.Errorf("unsupported file extension %q", ext)
	}
	if err != nil {
		return nil, errors.Errorf("%s: %w", path, err)
	}

	file.path = path
	if err := file.Validate(); err != nil {
		return nil, errors.Errorf("%s: %w", path, err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("path", path).
		Int("options", len(file.Rules.BracesPosition)).
		Msg("loaded config")
	return file, nil
}

// Discover looks for one of [Names] in dir and its parents, and loads the
// first one found.
//
// Returns [Default] if there is none.
func Discover(ctx context.Context, dir string) (*File, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Errorf("resolving %q: %w", dir, err)
	}

	for {
		for _, name := range Names {
			path := filepath.Join(dir, name)
			_, err := os.Stat(path)
			switch {
			case err == nil:
				return Load(ctx, path)
			case !errors.Is(err, fs.ErrNotExist):
				return nil, errors.Errorf("checking for config file: %w", err)
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	zerolog.Ctx(ctx).Debug().Msg("no config file found, using defaults")
	return Default(), nil
}

func loadJSON(data []byte) (*File, error) {
	var file File
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&file); err != nil {
		return nil, errors.Errorf("parsing JSON: %w", err)
	}
	return &file, nil
}

func loadYAML(data []byte) (*File, error) {
	var file File
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	// An empty document is an empty configuration.
	if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}
	return &file, nil
}

func loadTOML(data []byte) (*File, error) {
	var file File
	meta, err := toml.Decode(string(data), &file)
	if err != nil {
		return nil, errors.Errorf("parsing TOML: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Errorf("parsing TOML: unknown field %q", undecoded[0].String())
	}
	return &file, nil
}

type hclFile struct {
	Include []string  `hcl:"include,optional"`
	Exclude []string  `hcl:"exclude,optional"`
	Rules   *hclRules `hcl:"rules,block"`
}

type hclRules struct {
	BracesPosition *hclOptions `hcl:"braces_position,block"`
}

type hclOptions struct {
	Body hcl.Body `hcl:",remain"`
}

func loadHCL(data []byte, filename string) (*File, error) {
	parser := hclparse.NewParser()
	parsed, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	ctx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	var raw hclFile
	if diags := gohcl.DecodeBody(parsed.Body, ctx, &raw); diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	file := &File{Include: raw.Include, Exclude: raw.Exclude}
	if raw.Rules == nil || raw.Rules.BracesPosition == nil {
		return file, nil
	}

	attrs, diags := raw.Rules.BracesPosition.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}
	file.Rules.BracesPosition = make(map[string]string, len(attrs))
	for name, attr := range attrs {
		value, diags := attr.Expr.Value(ctx)
		if diags.HasErrors() {
			return nil, errors.Errorf("decoding HCL: %s", diags.Error())
		}
		if value.IsNull() || !value.Type().Equals(cty.String) {
			return nil, errors.Errorf("decoding HCL: %s: option %q must be a string", attr.Range, name)
		}
		file.Rules.BracesPosition[name] = value.AsString()
	}
	return file, nil
}
