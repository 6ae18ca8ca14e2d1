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

// szenc encodes the abstract syntax tree into a s-expression.

import (
	"io"

	"t73f.de/r/sx"

	"github.com/t-wilkinson/zortex/ast"
	"github.com/t-wilkinson/zortex/sz"
)

type szEncoder struct{}

func (*szEncoder) WriteArticle(w io.Writer, art *ast.Article) error {
	var tags sx.ListBuilder
	for _, tag := range art.Tags {
		tags.Add(sx.MakeString(tag))
	}
	obj := sz.MakeArticle(art.Name, tags.List(), getBlockList(&art.Blocks))
	_, err := sx.Print(w, obj)
	return err
}

func (*szEncoder) WriteBlocks(w io.Writer, bs *ast.BlockSlice) error {
	_, err := sx.Print(w, getBlockList(bs))
	return err
}

func (*szEncoder) WriteInlines(w io.Writer, is *ast.InlineSlice) error {
	_, err := sx.Print(w, sz.MakeInlineList(getInlineList(*is)))
	return err
}

func getBlockList(bs *ast.BlockSlice) *sx.Pair {
	var lb sx.ListBuilder
	for _, bn := range *bs {
		lb.Add(getBlock(bn))
	}
	return sz.MakeBlockList(lb.List())
}

func getBlock(bn ast.BlockNode) *sx.Pair {
	switch n := bn.(type) {
	case *ast.ParaNode:
		return sz.MakePara(getInlineList(n.Inlines))
	case *ast.HeadingNode:
		return sz.MakeHeading(n.Level, n.Slug, n.Fragment, getInlineList(n.Inlines))
	case *ast.LabelNode:
		return sz.MakeLabel(n.Name, n.Slug, n.Fragment)
	case *ast.VerbatimNode:
		sym := sz.SymVerbatimCode
		if n.Kind == ast.VerbatimMath {
			sym = sz.SymVerbatimMath
		}
		return sz.MakeVerbatim(sym, n.Lang, string(n.Content))
	case *ast.NestedListNode:
		sym := sz.SymListUnordered
		if n.Kind == ast.NestedListOrdered {
			sym = sz.SymListOrdered
		}
		var items sx.ListBuilder
		for _, item := range n.Items {
			var ib sx.ListBuilder
			for _, in := range item {
				ib.Add(getBlock(in))
			}
			items.Add(sz.MakeBlockList(ib.List()))
		}
		return sz.MakeList(sym, items.List())
	}
	return sx.MakeList(sz.SymUnknown)
}

func getInlineList(is ast.InlineSlice) *sx.Pair {
	var lb sx.ListBuilder
	for _, in := range is {
		lb.Add(getInline(in))
	}
	return lb.List()
}

func getInline(in ast.InlineNode) *sx.Pair {
	switch n := in.(type) {
	case *ast.TextNode:
		return sz.MakeText(n.Text)
	case *ast.BreakNode:
		if n.Hard {
			return sz.MakeHard()
		}
		return sz.MakeSoft()
	case *ast.FormatNode:
		var sym *sx.Symbol
		switch n.Kind {
		case ast.FormatEmph:
			sym = sz.SymFormatEmph
		case ast.FormatStrong:
			sym = sz.SymFormatStrong
		case ast.FormatStrongEmph:
			sym = sz.SymFormatStrongEmph
		default:
			return sx.MakeList(sz.SymUnknown)
		}
		return sz.MakeFormat(sym, getInlineList(n.Inlines))
	case *ast.LiteralNode:
		return sz.MakeLiteral(sz.SymLiteralCode, string(n.Content))
	case *ast.LinkNode:
		return sz.MakeLink(n.URL, getInlineList(n.Inlines))
	}
	return sx.MakeList(sz.SymUnknown)
}
