// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"context"
	"io"

	"github.com/featurebasedb/bitmapindex/ctl"
	"github.com/spf13/cobra"
)

var Generator *ctl.GenCommand

func NewGenCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	Generator = ctl.NewGenCommand(stdin, stdout, stderr)
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a random bit-vector file.",
		Long: `
Generates a bit-vector file where each bit is set with the given
probability. Useful as input for inspect, query, and bench.
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Generator.Run(context.Background())
		},
	}
	flags := genCmd.Flags()
	flags.StringVarP(&Generator.Path, "path", "p", "", "Destination file. A .gz suffix enables gzip compression.")
	flags.Uint64VarP(&Generator.Bits, "bits", "n", 1<<20, "Number of bits to generate.")
	flags.Float64VarP(&Generator.Density, "density", "d", 0.5, "Probability that each bit is set.")
	flags.Int64VarP(&Generator.Seed, "seed", "s", 0, "Random seed.")

	return genCmd
}

func init() {
	subcommandFns["gen"] = NewGenCommand
}
