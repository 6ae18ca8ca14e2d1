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

package zortexmark

import (
	"strings"

	"github.com/t-wilkinson/zortex/ast"
	"github.com/t-wilkinson/zortex/input"
)

// parseInlineSlice parses inline elements up to, but not including, the end
// of the current line. Adjacent text nodes are merged.
func (cp *zxmP) parseInlineSlice() ast.InlineSlice {
	var ins ast.InlineSlice
	for !input.IsEOLEOS(cp.inp.Ch) {
		ins = appendInline(ins, cp.parseInline())
	}
	if n := len(ins); n > 0 {
		if tn, isText := ins[n-1].(*ast.TextNode); isText {
			tn.Text = strings.TrimRight(tn.Text, " ")
			if tn.Text == "" {
				ins = ins[:n-1]
			}
		}
	}
	return ins
}

// appendInline merges consecutive text nodes, which occur when a span
// delimiter did not find its closing counterpart.
func appendInline(ins ast.InlineSlice, in ast.InlineNode) ast.InlineSlice {
	if tn, isText := in.(*ast.TextNode); isText && len(ins) > 0 {
		if prev, prevText := ins[len(ins)-1].(*ast.TextNode); prevText {
			prev.Text += tn.Text
			return ins
		}
	}
	return append(ins, in)
}

func (cp *zxmP) parseInline() ast.InlineNode {
	switch cp.inp.Ch {
	case '*':
		if fn := cp.parseFormat(); fn != nil {
			return fn
		}
	case '`':
		if ln := cp.parseLiteral(); ln != nil {
			return ln
		}
	case '[':
		if ln := cp.parseLink(); ln != nil {
			return ln
		}
	}
	return cp.parseText()
}

// parseText collects plain text until the next possible span delimiter. A
// delimiter at the current position is consumed as text, since the caller
// already failed to parse a span there.
func (cp *zxmP) parseText() *ast.TextNode {
	inp := cp.inp
	var sb strings.Builder
	if isInlineDelim(inp.Ch) {
		ch := inp.Ch
		for inp.Ch == ch {
			sb.WriteRune(ch)
			inp.Next()
		}
	}
	for !input.IsEOLEOS(inp.Ch) && !isInlineDelim(inp.Ch) {
		sb.WriteRune(inp.Ch)
		inp.Next()
	}
	return &ast.TextNode{Text: sb.String()}
}

func isInlineDelim(ch rune) bool {
	return ch == '*' || ch == '`' || ch == '['
}

// parseFormat parses *emphasized*, **strong** and ***both*** spans. The
// delimiter run determines the kind; a run longer than three is plain text.
func (cp *zxmP) parseFormat() *ast.FormatNode {
	inp := cp.inp
	pos := inp.Pos
	run := 0
	for inp.Ch == '*' {
		run++
		inp.Next()
	}
	var kind ast.FormatKind
	switch run {
	case 1:
		kind = ast.FormatEmph
	case 2:
		kind = ast.FormatStrong
	case 3:
		kind = ast.FormatStrongEmph
	default:
		inp.SetPos(pos)
		return nil
	}
	delim := strings.Repeat("*", run)

	var ins ast.InlineSlice
	for !input.IsEOLEOS(inp.Ch) {
		if inp.Accept(delim) {
			return &ast.FormatNode{Kind: kind, Inlines: ins}
		}
		ins = appendInline(ins, cp.parseInline())
	}
	inp.SetPos(pos)
	return nil
}

// parseLiteral parses an inline `code` span.
func (cp *zxmP) parseLiteral() *ast.LiteralNode {
	inp := cp.inp
	pos := inp.Pos
	inp.Next()
	var sb strings.Builder
	for inp.Ch != '`' {
		if input.IsEOLEOS(inp.Ch) {
			inp.SetPos(pos)
			return nil
		}
		sb.WriteRune(inp.Ch)
		inp.Next()
	}
	inp.Next()
	return &ast.LiteralNode{Kind: ast.LiteralCode, Content: []byte(sb.String())}
}

// parseLink parses a [text](url) span.
func (cp *zxmP) parseLink() *ast.LinkNode {
	inp := cp.inp
	pos := inp.Pos
	inp.Next()
	var ins ast.InlineSlice
	for inp.Ch != ']' {
		if input.IsEOLEOS(inp.Ch) {
			inp.SetPos(pos)
			return nil
		}
		ins = appendInline(ins, cp.parseLinkText())
	}
	inp.Next()
	if inp.Ch != '(' {
		inp.SetPos(pos)
		return nil
	}
	inp.Next()
	var url strings.Builder
	for inp.Ch != ')' {
		if input.IsEOLEOS(inp.Ch) {
			inp.SetPos(pos)
			return nil
		}
		url.WriteRune(inp.Ch)
		inp.Next()
	}
	inp.Next()
	return &ast.LinkNode{URL: url.String(), Inlines: ins}
}

// parseLinkText parses inline content inside link brackets, where spans are
// recognized but a closing bracket ends the text.
func (cp *zxmP) parseLinkText() ast.InlineNode {
	inp := cp.inp
	switch inp.Ch {
	case '*':
		if fn := cp.parseFormat(); fn != nil {
			return fn
		}
	case '`':
		if ln := cp.parseLiteral(); ln != nil {
			return ln
		}
	}
	var sb strings.Builder
	if isInlineDelim(inp.Ch) {
		ch := inp.Ch
		for inp.Ch == ch {
			sb.WriteRune(ch)
			inp.Next()
		}
	}
	for !input.IsEOLEOS(inp.Ch) && !isInlineDelim(inp.Ch) && inp.Ch != ']' {
		sb.WriteRune(inp.Ch)
		inp.Next()
	}
	return &ast.TextNode{Text: sb.String()}
}
