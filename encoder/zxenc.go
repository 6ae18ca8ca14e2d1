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

// zxenc encodes the abstract syntax tree back into zortex markup.

import (
	"io"
	"strconv"
	"strings"

	"github.com/t-wilkinson/zortex/ast"
)

type zxEncoder struct{}

// WriteArticle writes the header lines and the article content as zortex.
func (ze *zxEncoder) WriteArticle(w io.Writer, art *ast.Article) error {
	b := newEncWriter(w)
	b.WriteStrings("@@", art.Name)
	b.WriteLn()
	for _, tag := range art.Tags {
		b.WriteStrings("@", tag)
		b.WriteLn()
	}
	v := zxVisitor{b: b}
	v.writeBlockSlice(art.Blocks)
	return v.b.Flush()
}

// WriteBlocks writes the content of a block slice to the writer.
func (ze *zxEncoder) WriteBlocks(w io.Writer, bs *ast.BlockSlice) error {
	v := zxVisitor{b: newEncWriter(w)}
	v.writeBlockSlice(*bs)
	return v.b.Flush()
}

// WriteInlines writes an inline slice to the writer.
func (ze *zxEncoder) WriteInlines(w io.Writer, is *ast.InlineSlice) error {
	v := zxVisitor{b: newEncWriter(w)}
	v.writeInlines(*is)
	return v.b.Flush()
}

// zxVisitor writes the abstract syntax tree as zortex markup. Nested lists
// are written with a four space indentation step.
type zxVisitor struct {
	b      encWriter
	indent string
}

const indentStep = "    "

func (v *zxVisitor) writeBlockSlice(bs ast.BlockSlice) {
	for i, bn := range bs {
		if i > 0 {
			v.b.WriteLn()
		}
		v.writeBlock(bn)
	}
}

func (v *zxVisitor) writeBlock(bn ast.BlockNode) {
	switch n := bn.(type) {
	case *ast.ParaNode:
		v.b.WriteString(v.indent)
		v.writeInlines(n.Inlines)
		v.b.WriteLn()
	case *ast.HeadingNode:
		v.b.WriteString(strings.Repeat("#", n.Level))
		v.b.WriteSpace()
		v.writeInlines(n.Inlines)
		v.b.WriteLn()
	case *ast.LabelNode:
		v.b.WriteStrings(n.Name, ":")
		v.b.WriteLn()
	case *ast.VerbatimNode:
		v.writeVerbatim(n)
	case *ast.NestedListNode:
		v.writeNestedList(n)
	}
}

func (v *zxVisitor) writeVerbatim(vn *ast.VerbatimNode) {
	fence := "```"
	if vn.Kind == ast.VerbatimMath {
		fence = "$$"
	}
	v.b.WriteString(fence)
	if vn.Lang != "" {
		v.b.WriteString(vn.Lang)
	}
	v.b.WriteLn()
	if len(vn.Content) > 0 {
		v.b.WriteBytes(vn.Content...)
		v.b.WriteLn()
	}
	v.b.WriteString(fence)
	v.b.WriteLn()
}

func (v *zxVisitor) writeNestedList(ln *ast.NestedListNode) {
	for i, item := range ln.Items {
		v.b.WriteString(v.indent)
		if ln.Kind == ast.NestedListOrdered {
			v.b.WriteStrings(strconv.Itoa(i+1), ". ")
		} else {
			v.b.WriteString("- ")
		}
		v.writeItem(item)
	}
}

// writeItem writes the inline content of a list item, followed by its
// nested lists at a deeper indentation.
func (v *zxVisitor) writeItem(item ast.ItemSlice) {
	lineDone := false
	for _, in := range item {
		switch n := in.(type) {
		case *ast.ParaNode:
			if !lineDone {
				v.writeInlines(n.Inlines)
				v.b.WriteLn()
				lineDone = true
			}
		case *ast.NestedListNode:
			if !lineDone {
				v.b.WriteLn()
				lineDone = true
			}
			saved := v.indent
			v.indent += indentStep
			v.writeNestedList(n)
			v.indent = saved
		}
	}
	if !lineDone {
		v.b.WriteLn()
	}
}
