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

package encoder

// textenc encodes the abstract syntax tree into its text.

import (
	"io"

	"github.com/t-wilkinson/zortex/ast"
)

// TextEncoder encodes just the text and ignores any formatting.
type TextEncoder struct{}

// WriteArticle writes name, tags, and content.
func (te *TextEncoder) WriteArticle(w io.Writer, art *ast.Article) error {
	v := newTextVisitor(w)
	v.b.WriteString(art.Name)
	v.b.WriteLn()
	for i, tag := range art.Tags {
		if i > 0 {
			v.b.WriteSpace()
		}
		v.b.WriteString(tag)
	}
	if len(art.Tags) > 0 {
		v.b.WriteLn()
	}
	ast.Walk(&v, &art.Blocks)
	return v.b.Flush()
}

// WriteBlocks writes the text of the given block list.
func (te *TextEncoder) WriteBlocks(w io.Writer, bs *ast.BlockSlice) error {
	v := newTextVisitor(w)
	ast.Walk(&v, bs)
	return v.b.Flush()
}

// WriteInlines writes the text of the given inline list.
func (te *TextEncoder) WriteInlines(w io.Writer, is *ast.InlineSlice) error {
	v := newTextVisitor(w)
	ast.WalkInlineSlice(&v, *is)
	return v.b.Flush()
}

// textVisitor writes the AST to an io.Writer.
type textVisitor struct {
	b          encWriter
	blockCount int
}

func newTextVisitor(w io.Writer) textVisitor {
	return textVisitor{b: newEncWriter(w)}
}

func (v *textVisitor) Visit(node ast.Node) ast.Visitor {
	switch n := node.(type) {
	case *ast.ParaNode, *ast.HeadingNode:
		v.startBlock()
	case *ast.LabelNode:
		v.startBlock()
		v.b.WriteString(n.Name)
		return nil
	case *ast.VerbatimNode:
		v.startBlock()
		v.b.WriteBytes(n.Content...)
		return nil
	case *ast.NestedListNode:
		v.startBlock()
		for i, item := range n.Items {
			if i > 0 {
				v.b.WriteLn()
			}
			v.visitItem(item)
		}
		return nil
	case *ast.TextNode:
		v.b.WriteString(n.Text)
	case *ast.BreakNode:
		if n.Hard {
			v.b.WriteLn()
		} else {
			v.b.WriteSpace()
		}
	case *ast.LiteralNode:
		v.b.WriteBytes(n.Content...)
	}
	return v
}

func (v *textVisitor) startBlock() {
	if v.blockCount > 0 {
		v.b.WriteLn()
	}
	v.blockCount++
}

func (v *textVisitor) visitItem(item ast.ItemSlice) {
	save := v.blockCount
	v.blockCount = 0
	for i, in := range item {
		if i > 0 {
			v.b.WriteLn()
		}
		sub := textVisitor{b: v.b}
		ast.Walk(&sub, in)
		v.b = sub.b
	}
	v.blockCount = save
}
