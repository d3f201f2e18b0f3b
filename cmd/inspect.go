// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"context"
	"io"

	"github.com/featurebasedb/bitmapindex/ctl"
	"github.com/spf13/cobra"
)

var Inspector *ctl.InspectCommand

func NewInspectCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	Inspector = ctl.NewInspectCommand(stdin, stdout, stderr)
	inspectCmd := &cobra.Command{
		Use:   "inspect",
		Short: "Get stats on a bit-vector file.",
		Long: `
Builds the index over a bit-vector file and reports bit counts, storage
and index sizes, and build time.
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Inspector.Run(context.Background())
		},
	}
	flags := inspectCmd.Flags()
	flags.StringVarP(&Inspector.Path, "path", "p", "", "Bit-vector file to inspect.")
	flags.BoolVarP(&Inspector.Select0, "select0", "", false, "Build the select-0 acceleration array.")
	flags.BoolVarP(&Inspector.Select1, "select1", "", false, "Build the select-1 acceleration array.")

	return inspectCmd
}

func init() {
	subcommandFns["inspect"] = NewInspectCommand
}
