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

// Package parser provides a generic interface to a range of different parsers.
package parser

import (
	"fmt"

	"github.com/t-wilkinson/zortex/ast"
	"github.com/t-wilkinson/zortex/input"
)

// Info describes a single parser.
//
// Before ParseBlocks() is called, ensure the input stream to be valid. This
// can be achieved on calling inp.Next() after the input stream was created.
type Info struct {
	Name         string
	AltNames     []string
	IsASTParser  bool
	IsTextFormat bool
	ParseBlocks  func(*input.Input, string) ast.BlockSlice
	ParseArticle func(*input.Input) *ast.Article
}

var registry = map[string]*Info{}

// Register the parser (info) for later retrieval.
func Register(pi *Info) {
	if _, ok := registry[pi.Name]; ok {
		panic(fmt.Sprintf("Parser %q already registered", pi.Name))
	}
	registry[pi.Name] = pi
	for _, alt := range pi.AltNames {
		if _, ok := registry[alt]; ok {
			panic(fmt.Sprintf("Parser %q already registered", alt))
		}
		registry[alt] = pi
	}
}

// GetSyntaxes returns a list of syntaxes implemented by all registered parsers.
func GetSyntaxes() []string {
	result := make([]string, 0, len(registry))
	for syntax := range registry {
		result = append(result, syntax)
	}
	return result
}

// Get the parser (info) by name. If name not found, use a default parser.
func Get(name string) *Info {
	if pi := registry[name]; pi != nil {
		return pi
	}
	if pi := registry["plain"]; pi != nil {
		return pi
	}
	panic(fmt.Sprintf("No parser for %q found", name))
}

// IsASTParser returns whether the given syntax parses text into an AST or not.
func IsASTParser(syntax string) bool {
	pi, ok := registry[syntax]
	if !ok {
		return false
	}
	return pi.IsASTParser
}

// ParseBlocks parses some input of the given syntax into a block slice.
// Identifiers for headings and labels are assigned afterwards.
func ParseBlocks(inp *input.Input, syntax string) ast.BlockSlice {
	bs := Get(syntax).ParseBlocks(inp, syntax)
	cleanBlockSlice(&bs)
	return bs
}

// ParseArticle parses a complete article, header included, based on the
// syntax. Parsers without article support deliver an untitled article that
// contains just the parsed blocks.
func ParseArticle(inp *input.Input, syntax string) *ast.Article {
	pi := Get(syntax)
	var art *ast.Article
	if pi.ParseArticle != nil {
		art = pi.ParseArticle(inp)
	} else {
		art = &ast.Article{
			Name:   "Untitled",
			Blocks: pi.ParseBlocks(inp, syntax),
		}
	}
	cleanBlockSlice(&art.Blocks)
	return art
}
