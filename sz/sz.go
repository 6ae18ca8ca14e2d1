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

// Package sz provides the s-expression vocabulary to encode a zortex syntax
// tree as a symbolic expression.
package sz

import "t73f.de/r/sx"

// Symbols for the zortex syntax tree.
var (
	SymArticle          = sx.MakeSymbol("ARTICLE")
	SymTags             = sx.MakeSymbol("TAGS")
	SymBlock            = sx.MakeSymbol("BLOCK")
	SymInline           = sx.MakeSymbol("INLINE")
	SymPara             = sx.MakeSymbol("PARA")
	SymHeading          = sx.MakeSymbol("HEADING")
	SymLabel            = sx.MakeSymbol("LABEL")
	SymListOrdered      = sx.MakeSymbol("ORDERED")
	SymListUnordered    = sx.MakeSymbol("UNORDERED")
	SymVerbatimCode     = sx.MakeSymbol("VERBATIM-CODE")
	SymVerbatimMath     = sx.MakeSymbol("VERBATIM-MATH")
	SymText             = sx.MakeSymbol("TEXT")
	SymSoft             = sx.MakeSymbol("SOFT")
	SymHard             = sx.MakeSymbol("HARD")
	SymFormatEmph       = sx.MakeSymbol("FORMAT-EMPH")
	SymFormatStrong     = sx.MakeSymbol("FORMAT-STRONG")
	SymFormatStrongEmph = sx.MakeSymbol("FORMAT-STRONG-EMPH")
	SymLiteralCode      = sx.MakeSymbol("LITERAL-CODE")
	SymLink             = sx.MakeSymbol("LINK")
	SymUnknown          = sx.MakeSymbol("UNKNOWN-NODE")
)

// MakeArticle creates the sz representation of a whole article.
func MakeArticle(name string, tags *sx.Pair, blocks *sx.Pair) *sx.Pair {
	return sx.MakeList(SymArticle, sx.MakeString(name), tags.Cons(SymTags), blocks)
}

// MakeBlockList prepends the BLOCK symbol to the given list of block objects.
func MakeBlockList(lst *sx.Pair) *sx.Pair { return lst.Cons(SymBlock) }

// MakeInlineList prepends the INLINE symbol to the given list of inline objects.
func MakeInlineList(lst *sx.Pair) *sx.Pair { return lst.Cons(SymInline) }

// MakePara creates a paragraph from a list of inline objects.
func MakePara(lst *sx.Pair) *sx.Pair { return lst.Cons(SymPara) }

// MakeHeading creates a heading with the given level, slugs, and text.
func MakeHeading(level int, slug, fragment string, inlines *sx.Pair) *sx.Pair {
	return inlines.
		Cons(sx.MakeString(fragment)).
		Cons(sx.MakeString(slug)).
		Cons(sx.Int64(int64(level))).
		Cons(SymHeading)
}

// MakeLabel creates a labeled anchor.
func MakeLabel(name, slug, fragment string) *sx.Pair {
	return sx.MakeList(SymLabel, sx.MakeString(name), sx.MakeString(slug), sx.MakeString(fragment))
}

// MakeList creates an ordered or unordered list from its item lists.
func MakeList(kind *sx.Symbol, items *sx.Pair) *sx.Pair { return items.Cons(kind) }

// MakeVerbatim creates a verbatim block of the given kind.
func MakeVerbatim(kind *sx.Symbol, lang, content string) *sx.Pair {
	return sx.MakeList(kind, sx.MakeString(lang), sx.MakeString(content))
}

// MakeText creates a text object.
func MakeText(s string) *sx.Pair { return sx.MakeList(SymText, sx.MakeString(s)) }

// MakeSoft creates a soft line break object.
func MakeSoft() *sx.Pair { return sx.MakeList(SymSoft) }

// MakeHard creates a hard line break object.
func MakeHard() *sx.Pair { return sx.MakeList(SymHard) }

// MakeFormat creates a formatted inline span of the given kind.
func MakeFormat(kind *sx.Symbol, inlines *sx.Pair) *sx.Pair { return inlines.Cons(kind) }

// MakeLiteral creates an uninterpreted inline span of the given kind.
func MakeLiteral(kind *sx.Symbol, content string) *sx.Pair {
	return sx.MakeList(kind, sx.MakeString(content))
}

// MakeLink creates a link with the given target and text.
func MakeLink(url string, inlines *sx.Pair) *sx.Pair {
	return inlines.Cons(sx.MakeString(url)).Cons(SymLink)
}
