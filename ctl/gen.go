// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package ctl

import (
	"context"
	"io"
	"math/rand"

	"github.com/featurebasedb/bitmapindex"
	"github.com/pkg/errors"
)

// GenCommand represents a command for generating random bit-vector files.
type GenCommand struct {
	// Destination file. A .gz suffix enables gzip compression.
	Path string

	// Number of bits to generate and the probability that each is set.
	Bits    uint64
	Density float64

	// Seed for the generator, so runs are reproducible.
	Seed int64

	// Standard input/output
	*bitmapindex.CmdIO
}

// NewGenCommand returns a new instance of GenCommand.
func NewGenCommand(stdin io.Reader, stdout, stderr io.Writer) *GenCommand {
	return &GenCommand{
		CmdIO: bitmapindex.NewCmdIO(stdin, stdout, stderr),
	}
}

// Run executes the gen command.
func (cmd *GenCommand) Run(ctx context.Context) error {
	if cmd.Path == "" {
		return errors.New("path required")
	}
	if cmd.Bits >= 1<<32 {
		return errors.Errorf("bit count %d out of range", cmd.Bits)
	}
	if cmd.Density < 0 || cmd.Density > 1 {
		return errors.Errorf("density %v must be in [0, 1]", cmd.Density)
	}

	rng := rand.New(rand.NewSource(cmd.Seed))
	words := make([]uint64, bitmapindex.StorageSize(cmd.Bits))
	var ones uint64
	for i := uint64(0); i < cmd.Bits; i++ {
		if rng.Float64() < cmd.Density {
			bitmapindex.Set(words, i)
			ones++
		}
	}

	if err := WriteBitVector(cmd.Path, words, cmd.Bits); err != nil {
		return errors.Wrap(err, "writing bit vector")
	}
	cmd.Logger().Infof("wrote %d bits (%d set) to %s", cmd.Bits, ones, cmd.Path)
	return nil
}
