// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"context"
	"io"

	"github.com/featurebasedb/bitmapindex/ctl"
	"github.com/spf13/cobra"
)

var Bencher *ctl.BenchCommand

func NewBenchCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	Bencher = ctl.NewBenchCommand(stdin, stdout, stderr)
	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark index queries.",
		Long: `
Builds the index over a bit-vector file and times a random query workload
against it.
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Bencher.Run(context.Background())
		},
	}
	flags := benchCmd.Flags()
	flags.StringVarP(&Bencher.Path, "path", "p", "", "Bit-vector file to query.")
	flags.StringVarP(&Bencher.Op, "operation", "o", "rank1", "Operation to perform: choose from [rank0 rank1 select0 select1 select0s]")
	flags.IntVarP(&Bencher.N, "num", "n", 1000000, "Number of operations to perform.")
	flags.IntVarP(&Bencher.Concurrency, "concurrency", "j", 1, "Number of concurrent readers.")
	flags.Int64VarP(&Bencher.Seed, "seed", "s", 0, "Random seed for query positions.")
	flags.BoolVarP(&Bencher.Select0, "select0", "", true, "Build the select-0 acceleration array.")
	flags.BoolVarP(&Bencher.Select1, "select1", "", true, "Build the select-1 acceleration array.")

	return benchCmd
}

func init() {
	subcommandFns["bench"] = NewBenchCommand
}
