// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package ctl

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/featurebasedb/bitmapindex"
	"github.com/featurebasedb/bitmapindex/logger"
	"github.com/stretchr/testify/require"
)

func TestGenCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vec.bits")
	var stdout, stderr bytes.Buffer
	cmd := NewGenCommand(strings.NewReader(""), &stdout, &stderr)
	cmd.SetLogger(logger.NewLogfLogger(t))
	cmd.Path = path
	cmd.Bits = 10000
	cmd.Density = 0.5
	cmd.Seed = 1
	require.NoError(t, cmd.Run(context.Background()))

	words, numBits, err := ReadBitVector(path)
	require.NoError(t, err)
	require.Equal(t, uint64(10000), numBits)

	idx, err := bitmapindex.New(words, numBits, true, true)
	require.NoError(t, err)
	// Density 0.5 over 10k bits stays well inside these bounds.
	require.Greater(t, idx.OnesCount(), uint64(4000))
	require.Less(t, idx.OnesCount(), uint64(6000))
}

func TestGenCommandValidation(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cmd := NewGenCommand(strings.NewReader(""), &stdout, &stderr)
	cmd.SetLogger(logger.NopLogger)

	require.EqualError(t, cmd.Run(context.Background()), "path required")

	cmd.Path = "x.bits"
	cmd.Density = 1.5
	require.Error(t, cmd.Run(context.Background()))

	cmd.Density = 0.5
	cmd.Bits = 1 << 32
	require.Error(t, cmd.Run(context.Background()))
}
