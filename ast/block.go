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

package ast

// Definition of block nodes.

// ParaNode contains just a sequence of inline elements.
type ParaNode struct {
	Inlines InlineSlice
}

func (*ParaNode) node()      {}
func (*ParaNode) blockNode() {}

// CreateParaNode creates a parameter block from inline nodes.
func CreateParaNode(ins ...InlineNode) *ParaNode {
	return &ParaNode{Inlines: ins}
}

// HeadingNode stores the heading text and level.
type HeadingNode struct {
	Level    int         // Heading level, starting with 1
	Inlines  InlineSlice // Heading text, possibly formatted
	Slug     string      // Heading text, normalized
	Fragment string      // Heading text, suitable as a unique URL fragment
}

func (*HeadingNode) node()      {}
func (*HeadingNode) blockNode() {}

// LabelNode is a labeled anchor: a single line of the form "name:". It marks
// a position in the article that other notes may link to.
type LabelNode struct {
	Name     string // Label name as written
	Slug     string // Label name, normalized
	Fragment string // Label name, suitable as a unique URL fragment
}

func (*LabelNode) node()      {}
func (*LabelNode) blockNode() {}

// VerbatimKind specifies the format that is applied to code content.
type VerbatimKind int

// Constants for VerbatimKind.
const (
	_            VerbatimKind = iota
	VerbatimCode              // Program code, fenced by three backticks
	VerbatimMath              // LaTeX block, fenced by two dollar signs
)

// VerbatimNode contains lines to be printed without further processing.
type VerbatimNode struct {
	Kind    VerbatimKind
	Lang    string // Language hint after the opening fence, may be empty
	Content []byte
}

func (*VerbatimNode) node()      {}
func (*VerbatimNode) blockNode() {}

// NestedListKind specifies the actual list type.
type NestedListKind int

// Constants for NestedListKind.
const (
	_                   NestedListKind = iota
	NestedListOrdered                  // Ordered list "1."
	NestedListUnordered                // Unordered list "-"
)

// ItemSlice contains the blocks of one list item.
type ItemSlice []ItemNode

// ItemNode is a node that can occur as a list item.
type ItemNode interface {
	BlockNode
	itemNode()
}

// NestedListNode is a list of items, either ordered or unordered. Items may
// contain nested lists, tracked by the indentation scanner.
type NestedListNode struct {
	Kind  NestedListKind
	Items []ItemSlice
}

func (*NestedListNode) node()      {}
func (*NestedListNode) blockNode() {}
func (*NestedListNode) itemNode()  {}

func (*ParaNode) itemNode()     {}
func (*VerbatimNode) itemNode() {}
