// Copyright 2022 Molecula Corp. (DBA FeatureBase).
// SPDX-License-Identifier: Apache-2.0

/*
Package cmd contains all the bitmapindex subcommand definitions (1 per
file).

Each command file has an init function and a New*Command function, as well
as a global exported instance of the command.

The New*Command function returns a cobra.Command wrapping the subcommand
from the ctl package, with flags bound to the ctl struct's fields.

The init function adds the New*Command to a map of subcommand functions
which ensures that no two commands have the same name, and is used when a
new root command is created to instantiate all of the subcommands.

The instance of the command is global and exported so that it can be
tested.
*/
package cmd
