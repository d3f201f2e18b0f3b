// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package ctl

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/featurebasedb/bitmapindex"
	"github.com/pkg/errors"
)

// InspectCommand represents a command for reporting stats on a bit-vector
// file and the index built over it.
type InspectCommand struct {
	// Path to the bit-vector file.
	Path string

	// Select acceleration arrays to build.
	Select0 bool
	Select1 bool

	// Standard input/output
	*bitmapindex.CmdIO
}

// NewInspectCommand returns a new instance of InspectCommand.
func NewInspectCommand(stdin io.Reader, stdout, stderr io.Writer) *InspectCommand {
	return &InspectCommand{
		CmdIO: bitmapindex.NewCmdIO(stdin, stdout, stderr),
	}
}

// Run executes the inspect command.
func (cmd *InspectCommand) Run(ctx context.Context) error {
	if cmd.Path == "" {
		return errors.New("path required")
	}
	words, numBits, err := ReadBitVector(cmd.Path)
	if err != nil {
		return err
	}

	start := time.Now()
	idx, err := bitmapindex.New(words, numBits, cmd.Select0, cmd.Select1)
	if err != nil {
		return errors.Wrap(err, "building index")
	}
	elapsed := time.Since(start)

	ones := idx.OnesCount()
	var density float64
	if numBits > 0 {
		density = float64(ones) / float64(numBits)
	}
	fmt.Fprintf(cmd.Stdout, "bits:        %d\n", idx.Bits())
	fmt.Fprintf(cmd.Stdout, "ones:        %d\n", ones)
	fmt.Fprintf(cmd.Stdout, "zeros:       %d\n", idx.ZerosCount())
	fmt.Fprintf(cmd.Stdout, "density:     %.4f\n", density)
	fmt.Fprintf(cmd.Stdout, "array bytes: %d\n", idx.ArrayBytes())
	fmt.Fprintf(cmd.Stdout, "index bytes: %d\n", idx.IndexBytes())
	if idx.ArrayBytes() > 0 {
		fmt.Fprintf(cmd.Stdout, "overhead:    %.2f%%\n", 100*float64(idx.IndexBytes())/float64(idx.ArrayBytes()))
	}
	fmt.Fprintf(cmd.Stdout, "build time:  %s\n", elapsed)
	return nil
}
