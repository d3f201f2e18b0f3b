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

func TestInspectCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vec.bits")
	const n = 2048
	bits := make([]uint64, bitmapindex.StorageSize(n))
	for i := uint64(0); i < n; i += 2 {
		bitmapindex.Set(bits, i)
	}
	require.NoError(t, WriteBitVector(path, bits, n))

	var stdout, stderr bytes.Buffer
	cmd := NewInspectCommand(strings.NewReader(""), &stdout, &stderr)
	cmd.Path = path
	cmd.Select0 = true
	cmd.Select1 = true
	require.NoError(t, cmd.Run(context.Background()))

	out := stdout.String()
	require.Contains(t, out, "bits:        2048")
	require.Contains(t, out, "ones:        1024")
	require.Contains(t, out, "zeros:       1024")
	require.Contains(t, out, "density:     0.5000")
	require.Contains(t, out, "array bytes: 256")
}

func TestInspectCommandNoPath(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cmd := NewInspectCommand(strings.NewReader(""), &stdout, &stderr)
	require.EqualError(t, cmd.Run(context.Background()), "path required")
}
