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

// Package ast provides the abstract syntax tree for parsed zortex articles.
package ast

// Node is the interface all AST nodes must implement.
type Node interface {
	node()
}

// BlockNode is the interface of all block nodes.
type BlockNode interface {
	Node
	blockNode()
}

// InlineNode is the interface of all inline nodes.
type InlineNode interface {
	Node
	inlineNode()
}

// BlockSlice is a sequence of block nodes.
type BlockSlice []BlockNode

func (*BlockSlice) node() {}

// FirstParagraphInlines returns the inline list of the first paragraph, or
// nil if the first block is something else.
func (bs BlockSlice) FirstParagraphInlines() InlineSlice {
	if len(bs) == 0 {
		return nil
	}
	if pn, ok := bs[0].(*ParaNode); ok {
		return pn.Inlines
	}
	return nil
}

// InlineSlice is a sequence of inline nodes.
type InlineSlice []InlineNode

func (*InlineSlice) node() {}

// CreateInlineSliceFromWords makes a new inline slice from words, that are
// separated by one space.
func CreateInlineSliceFromWords(words ...string) InlineSlice {
	inl := make(InlineSlice, 0, 2*len(words)-1)
	for i, word := range words {
		if i > 0 {
			inl = append(inl, &BreakNode{})
		}
		inl = append(inl, &TextNode{Text: word})
	}
	return inl
}

// Article is the root of one parsed zortex article: its header data plus the
// block structure of the body.
type Article struct {
	Name   string     // Article name, from the "@@" header line
	Tags   []string   // Tag names, from the "@" header lines
	Blocks BlockSlice // Block structure of the article body
}
