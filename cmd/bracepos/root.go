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
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/bufbuild/bracepos/config"
)

type rootOptions struct {
	configPath string
	set        []string
	debug      bool
	noColor    bool
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "bracepos",
		Short: "Fix the placement of opening braces in PHP code",
		Long: `bracepos moves the opening brace of every control structure, class,
anonymous class, function and closure to the position chosen for its kind:
on the same line as the signature, with or without a space, or on a line of
its own.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := zerolog.InfoLevel
			if opts.debug {
				level = zerolog.DebugLevel
			}
			logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: !opts.colorize()}).
				Level(level).
				With().Timestamp().Logger()
			cmd.SetContext(logger.WithContext(cmd.Context()))
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "config file path (default: discovered from the working directory)")
	flags.StringArrayVar(&opts.set, "set", nil, "override a braces_position option, as key=value")
	flags.BoolVarP(&opts.debug, "debug", "d", false, "enable debug logging")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	cmd.AddCommand(
		newFixCommand(opts),
		newRulesCommand(opts),
	)
	return cmd
}

// colorize returns whether output should be colored.
func (o *rootOptions) colorize() bool {
	return !o.noColor && !color.NoColor
}

// loadConfig loads the configuration file named by --config, or discovers
// one starting from dir, then applies --set overrides.
func (o *rootOptions) loadConfig(cmd *cobra.Command, dir string) (*config.File, error) {
	ctx := cmd.Context()

	var file *config.File
	var err error
	if o.configPath != "" {
		file, err = config.Load(ctx, o.configPath)
	} else {
		if info, statErr := os.Stat(dir); statErr == nil && !info.IsDir() {
			dir = filepath.Dir(dir)
		}
		file, err = config.Discover(ctx, dir)
	}
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}

	for _, option := range o.set {
		key, value, ok := strings.Cut(option, "=")
		if !ok {
			return nil, errors.Errorf("--set %q: expected key=value", option)
		}
		file.Set(strings.TrimSpace(key), strings.TrimSpace(value))
	}
	if err := file.Validate(); err != nil {
		return nil, errors.Errorf("--set: %w", err)
	}
	return file, nil
}
