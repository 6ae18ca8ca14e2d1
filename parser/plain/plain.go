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

// Package plain provides a parser for plain text data.
package plain

import (
	"bytes"
	"strings"

	"t73f.de/r/sx/sxreader"

	"github.com/t-wilkinson/zortex/ast"
	"github.com/t-wilkinson/zortex/input"
	"github.com/t-wilkinson/zortex/parser"
)

func init() {
	parser.Register(&parser.Info{
		Name:         "plain",
		AltNames:     []string{"txt", "text"},
		IsASTParser:  false,
		IsTextFormat: true,
		ParseBlocks:  parseBlocks,
	})
	parser.Register(&parser.Info{
		Name:         "sxn",
		AltNames:     []string{},
		IsASTParser:  false,
		IsTextFormat: true,
		ParseBlocks:  parseSxnBlocks,
	})
}

func parseBlocks(inp *input.Input, syntax string) ast.BlockSlice {
	return ast.BlockSlice{
		&ast.VerbatimNode{
			Kind:    ast.VerbatimCode,
			Lang:    syntax,
			Content: inp.ScanLineContent(),
		},
	}
}

// parseSxnBlocks parses symbolic expressions, mostly to check their syntax.
// A read error is reported as an additional paragraph.
func parseSxnBlocks(inp *input.Input, syntax string) ast.BlockSlice {
	rd := sxreader.MakeReader(bytes.NewReader(inp.Src))
	_, err := rd.ReadAll()
	result := parseBlocks(inp, syntax)
	if err != nil {
		result = append(result, &ast.ParaNode{
			Inlines: ast.CreateInlineSliceFromWords(strings.Fields(err.Error())...),
		})
	}
	return result
}
