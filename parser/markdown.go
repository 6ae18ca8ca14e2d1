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

package parser

// markdown provides a parser for markdown.

import (
	"bytes"
	"fmt"
	"strings"

	gm "github.com/yuin/goldmark"
	gmAst "github.com/yuin/goldmark/ast"
	gmText "github.com/yuin/goldmark/text"

	"github.com/t-wilkinson/zortex/ast"
	"github.com/t-wilkinson/zortex/input"
)

func init() {
	Register(&Info{
		Name:         "markdown",
		AltNames:     []string{"md"},
		IsASTParser:  true,
		IsTextFormat: true,
		ParseBlocks:  parseMarkdown,
	})
}

func parseMarkdown(inp *input.Input, _ string) ast.BlockSlice {
	source := []byte(inp.Src[inp.Pos:])
	parser := gm.DefaultParser()
	node := parser.Parse(gmText.NewReader(source))
	p := mdP{source: source, docNode: node}
	return p.acceptBlockChildren(p.docNode)
}

type mdP struct {
	source  []byte
	docNode gmAst.Node
}

func (p *mdP) acceptBlockChildren(docNode gmAst.Node) ast.BlockSlice {
	if docNode.Type() != gmAst.TypeDocument {
		panic(fmt.Sprintf("Expected document, but got node type %v", docNode.Type()))
	}
	var result ast.BlockSlice
	for child := docNode.FirstChild(); child != nil; child = child.NextSibling() {
		result = append(result, p.acceptBlocks(child)...)
	}
	return result
}

func (p *mdP) acceptBlocks(node gmAst.Node) ast.BlockSlice {
	if node.Type() != gmAst.TypeBlock {
		panic(fmt.Sprintf("Expected block node, but got node type %v", node.Type()))
	}
	switch n := node.(type) {
	case *gmAst.Paragraph:
		return p.acceptParagraph(n)
	case *gmAst.TextBlock:
		return p.acceptTextBlock(n)
	case *gmAst.Heading:
		return ast.BlockSlice{&ast.HeadingNode{
			Level:   n.Level,
			Inlines: p.acceptInlineChildren(n),
		}}
	case *gmAst.ThematicBreak:
		return nil
	case *gmAst.CodeBlock:
		return ast.BlockSlice{&ast.VerbatimNode{
			Kind:    ast.VerbatimCode,
			Content: p.acceptRawText(n),
		}}
	case *gmAst.FencedCodeBlock:
		return ast.BlockSlice{&ast.VerbatimNode{
			Kind:    ast.VerbatimCode,
			Lang:    cleanText(n.Language(p.source)),
			Content: p.acceptRawText(n),
		}}
	case *gmAst.Blockquote:
		// There is no quotation node; hoist the quoted blocks.
		items := p.acceptItemSlice(n)
		result := make(ast.BlockSlice, len(items))
		for i, it := range items {
			result[i] = it
		}
		return result
	case *gmAst.List:
		return ast.BlockSlice{p.acceptList(n)}
	case *gmAst.HTMLBlock:
		return ast.BlockSlice{&ast.VerbatimNode{
			Kind:    ast.VerbatimCode,
			Lang:    "html",
			Content: p.acceptRawText(n),
		}}
	}
	panic(fmt.Sprintf("Unhandled block node of kind %v", node.Kind()))
}

func (p *mdP) acceptParagraph(node *gmAst.Paragraph) ast.BlockSlice {
	if is := p.acceptInlineChildren(node); len(is) > 0 {
		return ast.BlockSlice{&ast.ParaNode{Inlines: is}}
	}
	return nil
}

func (p *mdP) acceptTextBlock(node *gmAst.TextBlock) ast.BlockSlice {
	if is := p.acceptInlineChildren(node); len(is) > 0 {
		return ast.BlockSlice{&ast.ParaNode{Inlines: is}}
	}
	return nil
}

func (p *mdP) acceptRawText(node gmAst.Node) []byte {
	lines := node.Lines()
	result := make([]byte, 0, 512)
	for i := range lines.Len() {
		s := lines.At(i)
		line := s.Value(p.source)
		if l := len(line); l > 0 {
			if l > 1 && line[l-2] == '\r' && line[l-1] == '\n' {
				line = line[0 : l-2]
			} else if line[l-1] == '\n' || line[l-1] == '\r' {
				line = line[0 : l-1]
			}
		}
		if i > 0 {
			result = append(result, '\n')
		}
		result = append(result, line...)
	}
	return result
}

func (p *mdP) acceptList(node *gmAst.List) *ast.NestedListNode {
	kind := ast.NestedListUnordered
	if node.IsOrdered() {
		kind = ast.NestedListOrdered
	}
	result := &ast.NestedListNode{Kind: kind}
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		item, ok := child.(*gmAst.ListItem)
		if !ok {
			panic(fmt.Sprintf("Expected list item node, but got %v", child.Kind()))
		}
		result.Items = append(result.Items, p.acceptItemSlice(item))
	}
	return result
}

func (p *mdP) acceptItemSlice(node gmAst.Node) ast.ItemSlice {
	var result ast.ItemSlice
	for elem := node.FirstChild(); elem != nil; elem = elem.NextSibling() {
		for _, bn := range p.acceptBlocks(elem) {
			if in, ok := bn.(ast.ItemNode); ok {
				result = append(result, in)
			}
		}
	}
	return result
}

func (p *mdP) acceptInlineChildren(node gmAst.Node) ast.InlineSlice {
	var result ast.InlineSlice
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		n1, n2 := p.acceptInline(child)
		if n1 != nil {
			result = append(result, n1)
		}
		if n2 != nil {
			result = append(result, n2)
		}
	}
	return result
}

func (p *mdP) acceptInline(node gmAst.Node) (ast.InlineNode, ast.InlineNode) {
	if node.Type() != gmAst.TypeInline {
		panic(fmt.Sprintf("Expected inline node, but got %v", node.Type()))
	}
	switch n := node.(type) {
	case *gmAst.Text:
		return p.acceptText(n)
	case *gmAst.String:
		return &ast.TextNode{Text: string(n.Value)}, nil
	case *gmAst.CodeSpan:
		return p.acceptCodeSpan(n), nil
	case *gmAst.Emphasis:
		kind := ast.FormatEmph
		if n.Level == 2 {
			kind = ast.FormatStrong
		}
		return &ast.FormatNode{Kind: kind, Inlines: p.acceptInlineChildren(n)}, nil
	case *gmAst.Link:
		return &ast.LinkNode{
			URL:     cleanText(n.Destination),
			Inlines: p.acceptInlineChildren(n),
		}, nil
	case *gmAst.Image:
		// There is no image node; an image becomes a link to its source.
		return &ast.LinkNode{
			URL:     cleanText(n.Destination),
			Inlines: p.acceptInlineChildren(n),
		}, nil
	case *gmAst.AutoLink:
		u := n.URL(p.source)
		if n.AutoLinkType == gmAst.AutoLinkEmail &&
			!bytes.HasPrefix(bytes.ToLower(u), []byte("mailto:")) {
			u = append([]byte("mailto:"), u...)
		}
		url := cleanText(u)
		return &ast.LinkNode{
			URL:     url,
			Inlines: ast.InlineSlice{&ast.TextNode{Text: url}},
		}, nil
	case *gmAst.RawHTML:
		segs := make([][]byte, 0, n.Segments.Len())
		for i := range n.Segments.Len() {
			segment := n.Segments.At(i)
			segs = append(segs, segment.Value(p.source))
		}
		return &ast.LiteralNode{
			Kind:    ast.LiteralCode,
			Content: bytes.Join(segs, nil),
		}, nil
	}
	panic(fmt.Sprintf("Unhandled inline node %v", node.Kind()))
}

func (p *mdP) acceptText(node *gmAst.Text) (ast.InlineNode, ast.InlineNode) {
	segment := node.Segment
	text := segment.Value(p.source)
	if text == nil {
		return nil, nil
	}
	if node.IsRaw() {
		return &ast.TextNode{Text: string(text)}, nil
	}
	in := &ast.TextNode{Text: cleanText(text)}
	if node.HardLineBreak() {
		return in, &ast.BreakNode{Hard: true}
	}
	if node.SoftLineBreak() {
		return in, &ast.BreakNode{}
	}
	return in, nil
}

func (p *mdP) acceptCodeSpan(node *gmAst.CodeSpan) *ast.LiteralNode {
	var segBuf strings.Builder
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		segment := c.(*gmAst.Text).Segment
		segBuf.Write(segment.Value(p.source))
	}
	content := segBuf.String()

	// Newlines inside a code span are rendered as a space.
	if len(content) > 0 {
		lastPos := 0
		var buf strings.Builder
		for pos, ch := range content {
			if ch == '\n' {
				buf.WriteString(content[lastPos:pos])
				if pos < len(content)-1 {
					buf.WriteByte(' ')
				}
				lastPos = pos + 1
			}
		}
		buf.WriteString(content[lastPos:])
		content = buf.String()
	}
	return &ast.LiteralNode{Kind: ast.LiteralCode, Content: []byte(content)}
}

var ignoreAfterBS = map[byte]struct{}{
	'!': {}, '"': {}, '#': {}, '$': {}, '%': {}, '&': {}, '\'': {}, '(': {},
	')': {}, '*': {}, '+': {}, ',': {}, '-': {}, '.': {}, '/': {}, ':': {},
	';': {}, '<': {}, '=': {}, '>': {}, '?': {}, '@': {}, '[': {}, '\\': {},
	']': {}, '^': {}, '_': {}, '`': {}, '{': {}, '|': {}, '}': {}, '~': {},
}

// cleanText removes backslash escapes from text.
func cleanText(text []byte) string {
	lastPos := 0
	var sb strings.Builder
	for pos := 0; pos < len(text); pos++ {
		ch := text[pos]
		if ch == '\\' && pos < len(text)-1 {
			if _, found := ignoreAfterBS[text[pos+1]]; found {
				sb.Write(text[lastPos:pos])
				sb.WriteByte(text[pos+1])
				lastPos = pos + 2
				pos++
			}
		}
	}
	if lastPos < len(text) {
		sb.Write(text[lastPos:])
	}
	return sb.String()
}
