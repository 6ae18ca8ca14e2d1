//-----------------------------------------------------------------------------
// Copyright (c) 2024-present The zortex authors
//
// This file is part of zortex.
//
// zortex is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//
// SPDX-License-Identifier: EUPL-1.2
// SPDX-FileCopyrightText: 2024-present The zortex authors
//-----------------------------------------------------------------------------

// Package main starts the zortex command line tool.
package main

import (
	"os"

	"github.com/t-wilkinson/zortex/cmd"
)

// Version variable. Usually set by ldflags.
var version string = "dev"

func main() {
	exitCode := cmd.Main("zortex", version)
	os.Exit(exitCode)
}
