// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"context"
	"io"

	"github.com/featurebasedb/bitmapindex/ctl"
	"github.com/spf13/cobra"
)

var Querier *ctl.QueryCommand

func NewQueryCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	Querier = ctl.NewQueryCommand(stdin, stdout, stderr)
	queryCmd := &cobra.Command{
		Use:   "query",
		Short: "Run a single rank/select query.",
		Long: `
Builds the index over a bit-vector file and runs one query against it,
printing the result to stdout.
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Querier.Run(context.Background())
		},
	}
	flags := queryCmd.Flags()
	flags.StringVarP(&Querier.Path, "path", "p", "", "Bit-vector file to query.")
	flags.StringVarP(&Querier.Op, "operation", "o", "", "Operation to perform: choose from [get rank0 rank1 select0 select1 select0s]")
	flags.Uint64VarP(&Querier.K, "arg", "k", 0, "Query argument: a position for get/rank, a rank for select.")
	flags.BoolVarP(&Querier.Select0, "select0", "", false, "Build the select-0 acceleration array.")
	flags.BoolVarP(&Querier.Select1, "select1", "", false, "Build the select-1 acceleration array.")

	return queryCmd
}

func init() {
	subcommandFns["query"] = NewQueryCommand
}
