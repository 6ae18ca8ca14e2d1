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

package ast

// Visitor is a visitor for walking the AST. If the visit method returns a
// non-nil visitor, Walk continues with each of the children of the node,
// followed by a call of Visit(nil).
type Visitor interface {
	Visit(node Node) Visitor
}

// Walk traverses the AST in depth-first order.
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {
	case *BlockSlice:
		for _, bn := range *n {
			Walk(v, bn)
		}
	case *InlineSlice:
		for _, in := range *n {
			Walk(v, in)
		}
	case *ParaNode:
		Walk(v, &n.Inlines)
	case *HeadingNode:
		Walk(v, &n.Inlines)
	case *NestedListNode:
		for i := range n.Items {
			WalkItemSlice(v, n.Items[i])
		}
	case *FormatNode:
		Walk(v, &n.Inlines)
	case *LinkNode:
		Walk(v, &n.Inlines)
	}
	v.Visit(nil)
}

// WalkItemSlice traverses an item slice.
func WalkItemSlice(v Visitor, ins ItemSlice) {
	for _, in := range ins {
		Walk(v, in)
	}
}

// WalkInlineSlice traverses an inline slice.
func WalkInlineSlice(v Visitor, ins InlineSlice) {
	for _, in := range ins {
		Walk(v, in)
	}
}
