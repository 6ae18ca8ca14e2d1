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

// Package zortexmark provides a parser for zortex markup.
package zortexmark

import (
	"strings"

	"github.com/t-wilkinson/zortex/ast"
	"github.com/t-wilkinson/zortex/input"
	"github.com/t-wilkinson/zortex/parser"
	"github.com/t-wilkinson/zortex/parser/indent"
)

func init() {
	parser.Register(&parser.Info{
		Name:         "zortex",
		AltNames:     []string{"zx"},
		IsASTParser:  true,
		IsTextFormat: true,
		ParseBlocks:  parseBlocks,
		ParseArticle: parseArticle,
	})
}

func parseBlocks(inp *input.Input, _ string) ast.BlockSlice {
	parser := &zxmP{inp: inp, scan: indent.NewScanner()}
	return parser.parseBlockSlice()
}

func parseArticle(inp *input.Input) *ast.Article {
	art := &ast.Article{}
	parseHeader(inp, art)
	if art.Name == "" {
		art.Name = "Untitled"
	}
	parser := &zxmP{inp: inp, scan: indent.NewScanner()}
	art.Blocks = parser.parseBlockSlice()
	return art
}

// parseHeader consumes the article header: one "@@" line naming the article,
// followed by "@" tag lines. The header ends at the first line that carries
// no "@" prefix.
func parseHeader(inp *input.Input, art *ast.Article) {
	for inp.Ch == '@' {
		pos := inp.Pos
		run := 0
		for inp.Ch == '@' {
			run++
			inp.Next()
		}
		var sb strings.Builder
		for !input.IsEOLEOS(inp.Ch) {
			sb.WriteRune(inp.Ch)
			inp.Next()
		}
		text := strings.TrimRight(sb.String(), " \t")
		if run > 1 {
			if art.Name == "" {
				art.Name = text
			} else {
				art.Tags = append(art.Tags, text)
			}
		} else {
			art.Tags = append(art.Tags, text)
		}
		inp.EatEOL()
		if text == "" && run == 1 {
			// A lone "@" line is unlikely to be a tag; treat it as content.
			inp.SetPos(pos)
			art.Tags = art.Tags[:len(art.Tags)-1]
			return
		}
	}
}

// zxmP is the parser state for zortex markup.
type zxmP struct {
	inp         *input.Input          // Input stream
	scan        *indent.Scanner       // Indentation scanner, consulted at line starts
	lists       []*ast.NestedListNode // Stack of open lists, one per indentation level
	pendingNest bool                  // An INDENT was seen; the next item opens a nested list
}

const maxNestingLevel = 50

// clearStacked closes all open lists.
func (cp *zxmP) clearStacked() {
	cp.lists = nil
	cp.pendingNest = false
}

func (cp *zxmP) parseBlockSlice() ast.BlockSlice {
	var bs ast.BlockSlice
	for cp.inp.Ch != input.EOS {
		if bn := cp.parseBlock(); bn != nil {
			bs = append(bs, bn)
		}
	}
	return bs
}

// parseBlock parses the block beginning at the current line. It returns nil
// if the line was folded into an already open block, e.g. a list item that
// was appended to the list on top of the stack.
func (cp *zxmP) parseBlock() ast.BlockNode {
	inp := cp.inp
	cp.scanIndentation()

	for inp.Ch == ' ' {
		inp.Next()
	}

	if input.IsEOLEOS(inp.Ch) {
		// Blank line. Open lists survive it; paragraphs have ended before.
		inp.EatEOL()
		return nil
	}

	switch inp.Ch {
	case '#':
		if hn := cp.parseHeading(); hn != nil {
			return hn
		}
	case '`':
		if vn := cp.parseVerbatim("```", ast.VerbatimCode); vn != nil {
			return vn
		}
	case '$':
		if vn := cp.parseVerbatim("$$", ast.VerbatimMath); vn != nil {
			return vn
		}
	}

	if kind, ok := cp.parseListMarker(); ok {
		return cp.parseListItem(kind)
	}
	if ln := cp.parseLabel(); ln != nil {
		cp.clearStacked()
		return ln
	}

	cp.clearStacked()
	return cp.parseParagraph()
}

// scanIndentation polls the indentation scanner at the start of a line and
// updates the list stack. An INDENT token may only appear while a list is
// open; a DEDENT whenever the scanner still tracks deeper levels.
func (cp *zxmP) scanIndentation() {
	for {
		var want indent.TokenSet
		if len(cp.lists) > 0 {
			want = indent.MakeTokenSet(indent.Indent, indent.Dedent)
		} else if cp.scan.Depth() > 1 || cp.scan.Pending() > 0 {
			want = indent.MakeTokenSet(indent.Dedent)
		} else {
			return
		}
		kind, ok := cp.scan.Scan(cp.inp, want)
		if !ok {
			return
		}
		if kind == indent.Dedent {
			cp.popList()
		} else {
			cp.pendingNest = true
		}
	}
}

func (cp *zxmP) popList() {
	if n := len(cp.lists); n > 0 {
		cp.lists = cp.lists[:n-1]
	}
	cp.pendingNest = false
}

// parseListMarker recognizes "- " and "1. " style markers. On success the
// marker is consumed; otherwise the cursor is left unchanged.
func (cp *zxmP) parseListMarker() (ast.NestedListKind, bool) {
	inp := cp.inp
	pos := inp.Pos
	if inp.Ch == '-' {
		inp.Next()
		if inp.Ch == ' ' {
			inp.Next()
			return ast.NestedListUnordered, true
		}
		inp.SetPos(pos)
		return 0, false
	}
	digits := 0
	for inp.Ch >= '0' && inp.Ch <= '9' {
		digits++
		inp.Next()
	}
	if digits > 0 && inp.Ch == '.' {
		inp.Next()
		if inp.Ch == ' ' {
			inp.Next()
			return ast.NestedListOrdered, true
		}
	}
	inp.SetPos(pos)
	return 0, false
}

// parseListItem appends an item to the proper list, opening a nested or a
// fresh root list when needed. It returns the list node if a new root list
// was created, since only that node must be added to the block slice.
func (cp *zxmP) parseListItem(kind ast.NestedListKind) ast.BlockNode {
	item := ast.ItemSlice{&ast.ParaNode{Inlines: cp.parseInlineSlice()}}
	cp.inp.EatEOL()

	if cp.pendingNest && len(cp.lists) > 0 && len(cp.lists) < maxNestingLevel {
		cp.pendingNest = false
		parent := cp.lists[len(cp.lists)-1]
		nested := &ast.NestedListNode{Kind: kind, Items: []ast.ItemSlice{item}}
		if n := len(parent.Items); n > 0 {
			parent.Items[n-1] = append(parent.Items[n-1], nested)
		} else {
			parent.Items = append(parent.Items, ast.ItemSlice{nested})
		}
		cp.lists = append(cp.lists, nested)
		return nil
	}
	cp.pendingNest = false

	if len(cp.lists) > 0 {
		if top := cp.lists[len(cp.lists)-1]; top.Kind == kind {
			top.Items = append(top.Items, item)
			return nil
		}
		// A differing marker at the same level starts a new list.
		cp.clearStacked()
	}

	ln := &ast.NestedListNode{Kind: kind, Items: []ast.ItemSlice{item}}
	cp.lists = append(cp.lists, ln)
	return ln
}

// parseHeading parses a line like "## Heading text".
func (cp *zxmP) parseHeading() *ast.HeadingNode {
	inp := cp.inp
	pos := inp.Pos
	level := 0
	for inp.Ch == '#' {
		level++
		inp.Next()
	}
	if level > 6 || inp.Ch != ' ' {
		inp.SetPos(pos)
		return nil
	}
	inp.Next()
	cp.clearStacked()
	hn := &ast.HeadingNode{Level: level, Inlines: cp.parseInlineSlice()}
	inp.EatEOL()
	return hn
}

// parseLabel parses a labeled anchor: a line consisting of a name directly
// followed by a colon, e.g. "Resources:".
func (cp *zxmP) parseLabel() *ast.LabelNode {
	inp := cp.inp
	pos := inp.Pos
	var sb strings.Builder
	for isLabelRune(inp.Ch) {
		sb.WriteRune(inp.Ch)
		inp.Next()
	}
	if sb.Len() == 0 || inp.Ch != ':' {
		inp.SetPos(pos)
		return nil
	}
	inp.Next()
	if !input.IsEOLEOS(inp.Ch) {
		inp.SetPos(pos)
		return nil
	}
	inp.EatEOL()
	return &ast.LabelNode{Name: sb.String()}
}

func isLabelRune(ch rune) bool {
	return ch == '-' || ch == '_' ||
		('0' <= ch && ch <= '9') || ('A' <= ch && ch <= 'Z') || ('a' <= ch && ch <= 'z')
}

// parseVerbatim parses a fenced block: code fenced by "```", possibly with a
// language hint on the opening line, or LaTeX fenced by "$$".
func (cp *zxmP) parseVerbatim(fence string, kind ast.VerbatimKind) *ast.VerbatimNode {
	inp := cp.inp
	pos := inp.Pos
	if !inp.Accept(fence) {
		return nil
	}
	var lang strings.Builder
	for !input.IsEOLEOS(inp.Ch) {
		lang.WriteRune(inp.Ch)
		inp.Next()
	}
	if inp.Ch == input.EOS {
		inp.SetPos(pos)
		return nil
	}
	inp.EatEOL()
	cp.clearStacked()

	var lines []string
	for {
		if inp.Ch == input.EOS {
			break
		}
		posL := inp.Pos
		for inp.Ch == ' ' {
			inp.Next()
		}
		if inp.Accept(fence) {
			for !input.IsEOLEOS(inp.Ch) {
				inp.Next()
			}
			inp.EatEOL()
			break
		}
		inp.SetPos(posL)
		var line strings.Builder
		for !input.IsEOLEOS(inp.Ch) {
			line.WriteRune(inp.Ch)
			inp.Next()
		}
		inp.EatEOL()
		lines = append(lines, line.String())
	}
	return &ast.VerbatimNode{
		Kind:    kind,
		Lang:    strings.TrimSpace(lang.String()),
		Content: []byte(strings.Join(lines, "\n")),
	}
}

// parseParagraph parses consecutive content lines into one paragraph,
// joined by soft line breaks.
func (cp *zxmP) parseParagraph() *ast.ParaNode {
	inp := cp.inp
	pn := &ast.ParaNode{Inlines: cp.parseInlineSlice()}
	inp.EatEOL()
	for cp.continuesParagraph() {
		pn.Inlines = append(pn.Inlines, &ast.BreakNode{})
		inp.SkipSpace()
		pn.Inlines = append(pn.Inlines, cp.parseInlineSlice()...)
		inp.EatEOL()
	}
	return pn
}

// continuesParagraph reports whether the current line continues the
// paragraph just parsed: it is not blank and does not start another block.
func (cp *zxmP) continuesParagraph() bool {
	inp := cp.inp
	pos := inp.Pos
	defer inp.SetPos(pos)

	for inp.Ch == ' ' {
		inp.Next()
	}
	switch {
	case input.IsEOLEOS(inp.Ch):
		return false
	case inp.Ch == '#':
		return false
	case inp.Ch == '`':
		return !startsWith(inp, "```")
	case inp.Ch == '$':
		return !startsWith(inp, "$$")
	}
	if _, isItem := cp.parseListMarker(); isItem {
		return false
	}
	if ln := cp.parseLabel(); ln != nil {
		return false
	}
	return true
}

func startsWith(inp *input.Input, s string) bool {
	pos := inp.Pos
	return pos+len(s) <= len(inp.Src) && string(inp.Src[pos:pos+len(s)]) == s
}
