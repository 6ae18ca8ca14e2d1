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

// Package sztrans allows to transform a sz representation of an article back
// into its abstract syntax tree.
package sztrans

import (
	"fmt"

	"t73f.de/r/sx"

	"github.com/t-wilkinson/zortex/ast"
	"github.com/t-wilkinson/zortex/sz"
)

// GetArticle transforms a (ARTICLE ...) list into an article tree.
func GetArticle(obj sx.Object) (*ast.Article, error) {
	pair, rest, err := seekForm(obj, sz.SymArticle)
	if err != nil {
		return nil, err
	}
	if rest == nil {
		return nil, fmt.Errorf("article is empty: %v", pair)
	}
	s, isString := sx.GetString(rest.Car())
	if !isString {
		return nil, fmt.Errorf("article has no name: %v", pair)
	}
	art := ast.Article{Name: s.GetValue()}
	if rest = rest.Tail(); rest == nil || rest.Tail() == nil {
		return nil, fmt.Errorf("article has no tag list: %v", pair)
	}
	if art.Tags, err = getTags(rest.Car()); err != nil {
		return nil, err
	}
	if art.Blocks, err = GetBlockSlice(rest.Tail().Car()); err != nil {
		return nil, err
	}
	return &art, nil
}

// GetBlockSlice transforms a (BLOCK ...) list into a block slice.
func GetBlockSlice(obj sx.Object) (ast.BlockSlice, error) {
	_, rest, err := seekForm(obj, sz.SymBlock)
	if err != nil {
		return nil, err
	}
	return getBlocks(rest)
}

// GetInlineSlice transforms a (INLINE ...) list into an inline slice.
func GetInlineSlice(obj sx.Object) (ast.InlineSlice, error) {
	_, rest, err := seekForm(obj, sz.SymInline)
	if err != nil {
		return nil, err
	}
	return getInlines(rest)
}

func seekForm(obj sx.Object, symbol *sx.Symbol) (*sx.Pair, *sx.Pair, error) {
	pair, isPair := sx.GetPair(obj)
	if !isPair || pair == nil {
		return nil, nil, fmt.Errorf("not a list: %v", obj)
	}
	sym, isSymbol := sx.GetSymbol(pair.Car())
	if !isSymbol || !sym.IsEqual(symbol) {
		return nil, nil, fmt.Errorf("not a %v list: %v", symbol, obj)
	}
	return pair, pair.Tail(), nil
}

func getTags(obj sx.Object) ([]string, error) {
	_, rest, err := seekForm(obj, sz.SymTags)
	if err != nil {
		return nil, err
	}
	var tags []string
	for curr := rest; curr != nil; curr = curr.Tail() {
		s, isString := sx.GetString(curr.Car())
		if !isString {
			return nil, fmt.Errorf("tag is not a string: %v", curr.Car())
		}
		tags = append(tags, s.GetValue())
	}
	return tags, nil
}

func getBlocks(lst *sx.Pair) (ast.BlockSlice, error) {
	var result ast.BlockSlice
	for curr := lst; curr != nil; curr = curr.Tail() {
		bn, err := getBlock(curr.Car())
		if err != nil {
			return nil, err
		}
		result = append(result, bn)
	}
	return result, nil
}

func getBlock(obj sx.Object) (ast.BlockNode, error) {
	pair, isPair := sx.GetPair(obj)
	if !isPair || pair == nil {
		return nil, fmt.Errorf("block is not a list: %v", obj)
	}
	sym, isSymbol := sx.GetSymbol(pair.Car())
	if !isSymbol {
		return nil, fmt.Errorf("block has no symbol: %v", obj)
	}
	rest := pair.Tail()
	switch {
	case sym.IsEqual(sz.SymPara):
		ins, err := getInlines(rest)
		if err != nil {
			return nil, err
		}
		return &ast.ParaNode{Inlines: ins}, nil
	case sym.IsEqual(sz.SymHeading):
		return getHeading(pair, rest)
	case sym.IsEqual(sz.SymLabel):
		return getLabel(pair, rest)
	case sym.IsEqual(sz.SymListOrdered):
		return getNestedList(ast.NestedListOrdered, rest)
	case sym.IsEqual(sz.SymListUnordered):
		return getNestedList(ast.NestedListUnordered, rest)
	case sym.IsEqual(sz.SymVerbatimCode):
		return getVerbatim(ast.VerbatimCode, pair, rest)
	case sym.IsEqual(sz.SymVerbatimMath):
		return getVerbatim(ast.VerbatimMath, pair, rest)
	}
	return nil, fmt.Errorf("unknown block symbol: %v", sym)
}

func getHeading(pair, rest *sx.Pair) (ast.BlockNode, error) {
	if rest == nil {
		return nil, fmt.Errorf("heading is empty: %v", pair)
	}
	num, isNumber := rest.Car().(sx.Int64)
	if !isNumber || num < 1 || num > 6 {
		return nil, fmt.Errorf("heading has no valid level: %v", pair)
	}
	slug, fragment, rest, err := getTwoStrings(pair, rest.Tail())
	if err != nil {
		return nil, err
	}
	ins, err := getInlines(rest)
	if err != nil {
		return nil, err
	}
	return &ast.HeadingNode{
		Level:    int(num),
		Inlines:  ins,
		Slug:     slug,
		Fragment: fragment,
	}, nil
}

func getLabel(pair, rest *sx.Pair) (ast.BlockNode, error) {
	if rest == nil {
		return nil, fmt.Errorf("label is empty: %v", pair)
	}
	name, isString := sx.GetString(rest.Car())
	if !isString {
		return nil, fmt.Errorf("label has no name: %v", pair)
	}
	slug, fragment, _, err := getTwoStrings(pair, rest.Tail())
	if err != nil {
		return nil, err
	}
	return &ast.LabelNode{Name: name.GetValue(), Slug: slug, Fragment: fragment}, nil
}

func getTwoStrings(pair, rest *sx.Pair) (string, string, *sx.Pair, error) {
	if rest == nil || rest.Tail() == nil {
		return "", "", nil, fmt.Errorf("expected two strings: %v", pair)
	}
	first, isString := sx.GetString(rest.Car())
	if !isString {
		return "", "", nil, fmt.Errorf("expected a string: %v", pair)
	}
	rest = rest.Tail()
	second, isString := sx.GetString(rest.Car())
	if !isString {
		return "", "", nil, fmt.Errorf("expected a second string: %v", pair)
	}
	return first.GetValue(), second.GetValue(), rest.Tail(), nil
}

func getNestedList(kind ast.NestedListKind, rest *sx.Pair) (ast.BlockNode, error) {
	var items []ast.ItemSlice
	for curr := rest; curr != nil; curr = curr.Tail() {
		bns, err := GetBlockSlice(curr.Car())
		if err != nil {
			return nil, err
		}
		item := make(ast.ItemSlice, 0, len(bns))
		for _, bn := range bns {
			in, isItem := bn.(ast.ItemNode)
			if !isItem {
				return nil, fmt.Errorf("not an item node: %v", curr.Car())
			}
			item = append(item, in)
		}
		items = append(items, item)
	}
	return &ast.NestedListNode{Kind: kind, Items: items}, nil
}

func getVerbatim(kind ast.VerbatimKind, pair, rest *sx.Pair) (ast.BlockNode, error) {
	lang, content, _, err := getTwoStrings(pair, rest)
	if err != nil {
		return nil, err
	}
	return &ast.VerbatimNode{Kind: kind, Lang: lang, Content: []byte(content)}, nil
}

func getInlines(lst *sx.Pair) (ast.InlineSlice, error) {
	var result ast.InlineSlice
	for curr := lst; curr != nil; curr = curr.Tail() {
		in, err := getInline(curr.Car())
		if err != nil {
			return nil, err
		}
		result = append(result, in)
	}
	return result, nil
}

func getInline(obj sx.Object) (ast.InlineNode, error) {
	pair, isPair := sx.GetPair(obj)
	if !isPair || pair == nil {
		return nil, fmt.Errorf("inline is not a list: %v", obj)
	}
	sym, isSymbol := sx.GetSymbol(pair.Car())
	if !isSymbol {
		return nil, fmt.Errorf("inline has no symbol: %v", obj)
	}
	rest := pair.Tail()
	switch {
	case sym.IsEqual(sz.SymText):
		if rest == nil {
			return nil, fmt.Errorf("text is empty: %v", pair)
		}
		s, isString := sx.GetString(rest.Car())
		if !isString {
			return nil, fmt.Errorf("text has no string: %v", pair)
		}
		return &ast.TextNode{Text: s.GetValue()}, nil
	case sym.IsEqual(sz.SymSoft):
		return &ast.BreakNode{Hard: false}, nil
	case sym.IsEqual(sz.SymHard):
		return &ast.BreakNode{Hard: true}, nil
	case sym.IsEqual(sz.SymFormatEmph):
		return getFormat(ast.FormatEmph, rest)
	case sym.IsEqual(sz.SymFormatStrong):
		return getFormat(ast.FormatStrong, rest)
	case sym.IsEqual(sz.SymFormatStrongEmph):
		return getFormat(ast.FormatStrongEmph, rest)
	case sym.IsEqual(sz.SymLiteralCode):
		if rest == nil {
			return nil, fmt.Errorf("literal is empty: %v", pair)
		}
		s, isString := sx.GetString(rest.Car())
		if !isString {
			return nil, fmt.Errorf("literal has no string: %v", pair)
		}
		return &ast.LiteralNode{Kind: ast.LiteralCode, Content: []byte(s.GetValue())}, nil
	case sym.IsEqual(sz.SymLink):
		if rest == nil {
			return nil, fmt.Errorf("link is empty: %v", pair)
		}
		s, isString := sx.GetString(rest.Car())
		if !isString {
			return nil, fmt.Errorf("link has no URL: %v", pair)
		}
		ins, err := getInlines(rest.Tail())
		if err != nil {
			return nil, err
		}
		return &ast.LinkNode{URL: s.GetValue(), Inlines: ins}, nil
	}
	return nil, fmt.Errorf("unknown inline symbol: %v", sym)
}

func getFormat(kind ast.FormatKind, rest *sx.Pair) (ast.InlineNode, error) {
	ins, err := getInlines(rest)
	if err != nil {
		return nil, err
	}
	return &ast.FormatNode{Kind: kind, Inlines: ins}, nil
}
