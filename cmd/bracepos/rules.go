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

package main

import (
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"

	"github.com/bufbuild/bracepos/config"
)

func newRulesCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rules [dir]",
		Short: "Print the resolved configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			file, err := root.loadConfig(cmd, dir)
			if err != nil {
				return err
			}
			resolved, err := file.Braces()
			if err != nil {
				return err
			}

			include, exclude := file.Patterns()
			out := config.File{
				Rules:   config.Rules{BracesPosition: resolved.Options()},
				Include: include,
				Exclude: exclude,
			}

			encoder := yaml.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent(2)
			if err := encoder.Encode(&out); err != nil {
				return errors.Errorf("encoding config: %w", err)
			}
			return encoder.Close()
		},
	}
}
