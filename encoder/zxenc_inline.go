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

import "github.com/t-wilkinson/zortex/ast"

func (v *zxVisitor) writeInlines(is ast.InlineSlice) {
	for _, in := range is {
		v.writeInline(in)
	}
}

func (v *zxVisitor) writeInline(in ast.InlineNode) {
	switch n := in.(type) {
	case *ast.TextNode:
		v.b.WriteString(n.Text)
	case *ast.BreakNode:
		v.b.WriteLn()
		v.b.WriteString(v.indent)
	case *ast.FormatNode:
		delim := "*"
		switch n.Kind {
		case ast.FormatStrong:
			delim = "**"
		case ast.FormatStrongEmph:
			delim = "***"
		}
		v.b.WriteString(delim)
		v.writeInlines(n.Inlines)
		v.b.WriteString(delim)
	case *ast.LiteralNode:
		_ = v.b.WriteByte('`')
		v.b.WriteBytes(n.Content...)
		_ = v.b.WriteByte('`')
	case *ast.LinkNode:
		_ = v.b.WriteByte('[')
		v.writeInlines(n.Inlines)
		v.b.WriteString("](")
		v.b.WriteString(n.URL)
		_ = v.b.WriteByte(')')
	}
}
