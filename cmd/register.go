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

package cmd

// Mention all needed syntaxes to have them registered.
import (
	_ "github.com/t-wilkinson/zortex/parser/none"
	_ "github.com/t-wilkinson/zortex/parser/plain"
	_ "github.com/t-wilkinson/zortex/parser/zortexmark"
)
