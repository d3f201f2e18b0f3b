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
	"github.com/stretchr/testify/require"
)

func TestQueryCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vec.bits")
	const n = 128
	bits := make([]uint64, bitmapindex.StorageSize(n))
	for i := uint64(0); i < n; i += 2 {
		bitmapindex.Set(bits, i)
	}
	require.NoError(t, WriteBitVector(path, bits, n))

	tests := []struct {
		op   string
		k    uint64
		want string
	}{
		{"get", 0, "true\n"},
		{"get", 1, "false\n"},
		{"rank1", 10, "5\n"},
		{"rank0", 10, "5\n"},
		{"select1", 5, "10\n"},
		{"select0", 5, "11\n"},
		{"select0s", 0, "1 3\n"},
		{"select1", 64, "128\n"},
	}
	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			cmd := NewQueryCommand(strings.NewReader(""), &stdout, &stderr)
			cmd.Path = path
			cmd.Op = tt.op
			cmd.K = tt.k
			require.NoError(t, cmd.Run(context.Background()))
			require.Equal(t, tt.want, stdout.String())
		})
	}
}

func TestQueryCommandErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vec.bits")
	require.NoError(t, WriteBitVector(path, make([]uint64, 2), 128))

	var stdout, stderr bytes.Buffer
	cmd := NewQueryCommand(strings.NewReader(""), &stdout, &stderr)
	cmd.Path = path
	require.EqualError(t, cmd.Run(context.Background()), "op required")

	cmd.Op = "frobnicate"
	require.Error(t, cmd.Run(context.Background()))

	cmd.Op = "get"
	cmd.K = 128
	require.Error(t, cmd.Run(context.Background()))

	cmd.Op = "rank1"
	cmd.K = 129
	require.Error(t, cmd.Run(context.Background()))
}
