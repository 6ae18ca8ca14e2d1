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

// Package none provides a none-parser, e.g. for files that should not be
// interpreted at all.
package none

import (
	"github.com/t-wilkinson/zortex/ast"
	"github.com/t-wilkinson/zortex/input"
	"github.com/t-wilkinson/zortex/parser"
)

func init() {
	parser.Register(&parser.Info{
		Name:         "none",
		AltNames:     []string{},
		IsASTParser:  false,
		IsTextFormat: false,
		ParseBlocks:  func(*input.Input, string) ast.BlockSlice { return nil },
	})
}
