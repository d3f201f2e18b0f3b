// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// subcommandFns is the registry of subcommand constructors. Each command
// file adds itself in its init function, which ensures no two commands
// share a name.
var subcommandFns = map[string]func(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command{}

// NewRootCommand returns the root bitmapindex command with all subcommands
// attached.
func NewRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	rc := &cobra.Command{
		Use:   "bitmapindex",
		Short: "Tools for succinct rank/select bit-vector indexes.",
		Long: `Tools for working with bit-vector files and the succinct
rank/select index built over them: generate test vectors, report index
stats, run individual queries, and benchmark query throughput.
`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setAllConfig(viper.New(), cmd.Flags())
		},
	}
	for _, fn := range subcommandFns {
		rc.AddCommand(fn(stdin, stdout, stderr))
	}
	rc.SetOutput(stderr)
	return rc
}

// setAllConfig takes a FlagSet to be the definition of all configuration
// options and applies the environment on top of the command line: any flag
// not set explicitly may be set through a BITMAPINDEX_-prefixed environment
// variable, capitalized, with dashes replaced by underscores.
func setAllConfig(v *viper.Viper, flags *pflag.FlagSet) error {
	if err := v.BindPFlags(flags); err != nil {
		return err
	}
	v.SetEnvPrefix("BITMAPINDEX")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	var flagErr error
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Changed || !v.IsSet(f.Name) {
			return
		}
		if err := flags.Set(f.Name, v.GetString(f.Name)); err != nil && flagErr == nil {
			flagErr = err
		}
	})
	return flagErr
}
