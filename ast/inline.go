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

// Definitions of inline nodes.

// TextNode just contains some text.
type TextNode struct {
	Text string // The text itself
}

func (*TextNode) node()       {}
func (*TextNode) inlineNode() {}

// BreakNode signals a new line that must / should be interpreted as a new
// line break. A soft break is rendered as a space.
type BreakNode struct {
	Hard bool // Hard line break?
}

func (*BreakNode) node()       {}
func (*BreakNode) inlineNode() {}

// FormatKind specifies the format that is applied to the inline nodes.
type FormatKind int

// Constants for FormatKind.
const (
	_                FormatKind = iota
	FormatEmph                  // Emphasized text, "*"
	FormatStrong                // Strongly emphasized text, "**"
	FormatStrongEmph            // Both strongly emphasized and emphasized, "***"
)

// FormatNode specifies some inline formatting.
type FormatNode struct {
	Kind    FormatKind
	Inlines InlineSlice
}

func (*FormatNode) node()       {}
func (*FormatNode) inlineNode() {}

// LiteralKind specifies the format that is applied to code content.
type LiteralKind int

// Constants for LiteralKind.
const (
	_           LiteralKind = iota
	LiteralCode             // Inline code, fenced by single backticks
)

// LiteralNode specifies some uninterpreted text.
type LiteralNode struct {
	Kind    LiteralKind
	Content []byte
}

func (*LiteralNode) node()       {}
func (*LiteralNode) inlineNode() {}

// LinkNode contains the specified link: some text pointing to a URL or to
// another article.
type LinkNode struct {
	URL     string      // Link target
	Inlines InlineSlice // The text associated with the link
}

func (*LinkNode) node()       {}
func (*LinkNode) inlineNode() {}
