// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0
package cmd_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/featurebasedb/bitmapindex/cmd"
	"github.com/stretchr/testify/require"
)

func TestRootCommandHasSubcommands(t *testing.T) {
	var stdout, stderr bytes.Buffer
	rc := cmd.NewRootCommand(strings.NewReader(""), &stdout, &stderr)

	want := []string{"gen", "inspect", "query", "bench"}
	have := map[string]bool{}
	for _, c := range rc.Commands() {
		have[c.Name()] = true
	}
	for _, name := range want {
		require.True(t, have[name], "missing subcommand %q", name)
	}
}

func TestGenThenQuery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vec.bits.gz")

	var stdout, stderr bytes.Buffer
	rc := cmd.NewRootCommand(strings.NewReader(""), &stdout, &stderr)
	rc.SetArgs([]string{"gen", "--path", path, "--bits", "4096", "--density", "1", "--seed", "3"})
	require.NoError(t, rc.Execute())

	stdout.Reset()
	rc = cmd.NewRootCommand(strings.NewReader(""), &stdout, &stderr)
	rc.SetArgs([]string{"query", "--path", path, "--operation", "rank1", "--arg", "4096"})
	require.NoError(t, rc.Execute())
	require.Equal(t, "4096\n", stdout.String())
}

func TestEnvConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vec.bits")

	var stdout, stderr bytes.Buffer
	rc := cmd.NewRootCommand(strings.NewReader(""), &stdout, &stderr)
	rc.SetArgs([]string{"gen", "--path", path, "--bits", "128", "--density", "1"})
	require.NoError(t, rc.Execute())

	// Flags not given on the command line come from the environment.
	t.Setenv("BITMAPINDEX_OPERATION", "select1")
	t.Setenv("BITMAPINDEX_ARG", "5")
	stdout.Reset()
	rc = cmd.NewRootCommand(strings.NewReader(""), &stdout, &stderr)
	rc.SetArgs([]string{"query", "--path", path})
	require.NoError(t, rc.Execute())
	require.Equal(t, "5\n", stdout.String())
}
