// Copyright 2024 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	fc_lib "android/buildermodel/cmd/flavor_config/flavor_config_lib"
	"android/buildermodel/model"
)

const logLevelEnv = "FLAVOR_CONFIG_LOG_LEVEL"

type options struct {
	inputs   []string
	logLevel string
}

func (o *options) addFlags(flags *pflag.FlagSet) {
	flags.StringSliceVarP(&o.inputs, "input", "i", nil,
		"Android.bp or YAML file declaring product flavors. May be repeated")
	defaultLevel := os.Getenv(logLevelEnv)
	if defaultLevel == "" {
		defaultLevel = zerolog.InfoLevel.String()
	}
	flags.StringVar(&o.logLevel, "log-level", defaultLevel, "one of trace, debug, info, warn, error")
}

func (o *options) load(logger *zerolog.Logger) (*model.FlavorSet, error) {
	if len(o.inputs) == 0 {
		return nil, errors.New("at least one --input is required")
	}
	for _, input := range o.inputs {
		logger.Debug().Str("input", input).Msg("reading flavors")
	}
	set, err := fc_lib.LoadFlavorSet(o.inputs)
	if err != nil {
		return nil, errors.Wrap(err, "loading flavors")
	}
	logger.Info().Int("flavors", set.Len()).Strs("inputs", o.inputs).Msg("loaded flavors")
	return set, nil
}

func newRootCommand(logger *zerolog.Logger) *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "flavor_config",
		Short:         "flavor_config reads product flavor declarations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := zerolog.ParseLevel(opts.logLevel)
			if err != nil {
				return errors.Wrapf(err, "invalid --log-level %q", opts.logLevel)
			}
			*logger = logger.Level(level)
			return nil
		},
	}
	opts.addFlags(root.PersistentFlags())

	root.AddCommand(newDumpCommand(opts, logger))
	root.AddCommand(newListCommand(opts, logger))
	root.AddCommand(newShowCommand(opts, logger))
	return root
}

func newDumpCommand(opts *options, logger *zerolog.Logger) *cobra.Command {
	var out, format string
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Write all flavors to a json, pb or textproto file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			set, err := opts.load(logger)
			if err != nil {
				return err
			}
			message := fc_lib.FlavorSetToList(set)
			if out == "" {
				if format == "" {
					format = "textproto"
				}
				data, err := fc_lib.MarshalMessage(format, message)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if format == "" {
				err = fc_lib.WriteMessage(out, message)
			} else {
				err = fc_lib.WriteFormattedMessage(out, format, message)
			}
			if err != nil {
				return errors.Wrapf(err, "writing %s", out)
			}
			logger.Info().Str("out", out).Msg("wrote flavors")
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "",
		"file to write, the format is taken from its extension unless --format is given. Defaults to stdout")
	cmd.Flags().StringVar(&format, "format", "",
		"output format, one of "+strings.Join(fc_lib.Formats, ", "))
	return cmd
}

func newListCommand(opts *options, logger *zerolog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the flavor names in declaration order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			set, err := opts.load(logger)
			if err != nil {
				return err
			}
			for _, name := range set.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newShowCommand(opts *options, logger *zerolog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME...",
		Short: "Print the properties set on the named flavors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := opts.load(logger)
			if err != nil {
				return err
			}
			flavors, missing := fc_lib.FilterFlavors(set, lo.Uniq(args))
			if len(missing) > 0 {
				return errors.Errorf("unknown flavors: %s", strings.Join(missing, ", "))
			}
			for i, f := range flavors {
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				for _, line := range fc_lib.DescribeFlavor(f) {
					fmt.Fprintln(cmd.OutOrStdout(), line)
				}
			}
			return nil
		},
	}
}
