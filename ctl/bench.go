// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package ctl

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/featurebasedb/bitmapindex"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// benchSink keeps the compiler from discarding benchmark results.
var benchSink uint64

// BenchCommand represents a command for benchmarking index queries against
// a bit-vector file.
type BenchCommand struct {
	// Path to the bit-vector file.
	Path string

	// Type of operation and number to execute.
	Op string
	N  int

	// Number of concurrent readers. A built index takes no locks, so
	// readers scale freely.
	Concurrency int

	// Seed for query positions.
	Seed int64

	// Select acceleration arrays to build.
	Select0 bool
	Select1 bool

	// Standard input/output
	*bitmapindex.CmdIO
}

// NewBenchCommand returns a new instance of BenchCommand.
func NewBenchCommand(stdin io.Reader, stdout, stderr io.Writer) *BenchCommand {
	return &BenchCommand{
		CmdIO: bitmapindex.NewCmdIO(stdin, stdout, stderr),
	}
}

// Run executes the bench command.
func (cmd *BenchCommand) Run(ctx context.Context) error {
	if cmd.Path == "" {
		return errors.New("path required")
	}
	if cmd.N <= 0 {
		return errors.New("operation count required")
	}
	if cmd.Concurrency <= 0 {
		cmd.Concurrency = 1
	}

	words, numBits, err := ReadBitVector(cmd.Path)
	if err != nil {
		return err
	}
	idx, err := bitmapindex.New(words, numBits, cmd.Select0, cmd.Select1)
	if err != nil {
		return errors.Wrap(err, "building index")
	}

	query, limit, err := benchOp(idx, cmd.Op)
	if err != nil {
		return err
	}
	if limit == 0 {
		return errors.Errorf("vector has no positions for op %q", cmd.Op)
	}
	cmd.Logger().Debugf("benchmarking %s over %d bits, %d ops, %d readers",
		cmd.Op, numBits, cmd.N, cmd.Concurrency)

	g, _ := errgroup.WithContext(ctx)
	start := time.Now()
	for i := 0; i < cmd.Concurrency; i++ {
		rng := rand.New(rand.NewSource(cmd.Seed + int64(i)))
		n := cmd.N / cmd.Concurrency
		if i < cmd.N%cmd.Concurrency {
			n++
		}
		g.Go(func() error {
			var sink uint64
			for j := 0; j < n; j++ {
				sink += query(uint64(rng.Int63n(int64(limit))))
			}
			atomic.AddUint64(&benchSink, sink)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Fprintf(cmd.Stdout, "%d %s ops in %s (%.0f ops/sec)\n",
		cmd.N, cmd.Op, elapsed, float64(cmd.N)/elapsed.Seconds())
	return nil
}

// benchOp returns the query function for op and the exclusive upper bound
// of its argument range.
func benchOp(idx *bitmapindex.BitmapIndex, op string) (func(uint64) uint64, uint64, error) {
	switch op {
	case "rank1":
		return idx.Rank1, idx.Bits() + 1, nil
	case "rank0":
		return idx.Rank0, idx.Bits() + 1, nil
	case "select1":
		return idx.Select1, idx.OnesCount(), nil
	case "select0":
		return idx.Select0, idx.ZerosCount(), nil
	case "select0s":
		return func(k uint64) uint64 {
			first, second := idx.Select0s(k)
			return first + second
		}, idx.ZerosCount(), nil
	case "":
		return nil, 0, errors.New("op required")
	default:
		return nil, 0, errors.Errorf("unknown bench op: %q", op)
	}
}
