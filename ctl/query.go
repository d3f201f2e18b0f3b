// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package ctl

import (
	"context"
	"fmt"
	"io"

	"github.com/featurebasedb/bitmapindex"
	"github.com/pkg/errors"
)

// QueryCommand represents a command for running a single rank/select query
// against a bit-vector file.
type QueryCommand struct {
	// Path to the bit-vector file.
	Path string

	// Operation and its argument: get takes a bit position, rank0/rank1
	// take an exclusive end position, select0/select1/select0s take a
	// zero-based bit rank.
	Op string
	K  uint64

	// Select acceleration arrays to build.
	Select0 bool
	Select1 bool

	// Standard input/output
	*bitmapindex.CmdIO
}

// NewQueryCommand returns a new instance of QueryCommand.
func NewQueryCommand(stdin io.Reader, stdout, stderr io.Writer) *QueryCommand {
	return &QueryCommand{
		CmdIO: bitmapindex.NewCmdIO(stdin, stdout, stderr),
	}
}

// Run executes the query command.
func (cmd *QueryCommand) Run(ctx context.Context) error {
	if cmd.Path == "" {
		return errors.New("path required")
	}
	words, numBits, err := ReadBitVector(cmd.Path)
	if err != nil {
		return err
	}
	idx, err := bitmapindex.New(words, numBits, cmd.Select0, cmd.Select1)
	if err != nil {
		return errors.Wrap(err, "building index")
	}

	switch cmd.Op {
	case "get":
		if cmd.K >= idx.Bits() {
			return errors.Errorf("bit %d out of range, have %d bits", cmd.K, idx.Bits())
		}
		fmt.Fprintf(cmd.Stdout, "%v\n", idx.Get(cmd.K))
	case "rank1":
		if cmd.K > idx.Bits() {
			return errors.Errorf("end %d out of range, have %d bits", cmd.K, idx.Bits())
		}
		fmt.Fprintf(cmd.Stdout, "%d\n", idx.Rank1(cmd.K))
	case "rank0":
		if cmd.K > idx.Bits() {
			return errors.Errorf("end %d out of range, have %d bits", cmd.K, idx.Bits())
		}
		fmt.Fprintf(cmd.Stdout, "%d\n", idx.Rank0(cmd.K))
	case "select1":
		fmt.Fprintf(cmd.Stdout, "%d\n", idx.Select1(cmd.K))
	case "select0":
		fmt.Fprintf(cmd.Stdout, "%d\n", idx.Select0(cmd.K))
	case "select0s":
		first, second := idx.Select0s(cmd.K)
		fmt.Fprintf(cmd.Stdout, "%d %d\n", first, second)
	case "":
		return errors.New("op required")
	default:
		return errors.Errorf("unknown query op: %q", cmd.Op)
	}
	return nil
}
