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

// cleaner provides functions to clean up the parsed AST.

import (
	"strconv"
	"strings"

	zerostrings "t73f.de/r/zero/strings"

	"github.com/t-wilkinson/zortex/ast"
	"github.com/t-wilkinson/zortex/encoder"
)

// cleanBlockSlice assigns slugs and unique fragments to all headings and
// labels of the given block list.
func cleanBlockSlice(bs *ast.BlockSlice) {
	cv := cleanVisitor{}
	ast.Walk(&cv, bs)
}

type cleanVisitor struct {
	textEnc encoder.TextEncoder
	ids     map[string]ast.Node
}

func (cv *cleanVisitor) Visit(node ast.Node) ast.Visitor {
	switch n := node.(type) {
	case *ast.HeadingNode:
		cv.visitHeading(n)
		return nil
	case *ast.LabelNode:
		cv.visitLabel(n)
		return nil
	}
	return cv
}

func (cv *cleanVisitor) visitHeading(hn *ast.HeadingNode) {
	if hn == nil || len(hn.Inlines) == 0 {
		return
	}
	if hn.Slug == "" {
		var sb strings.Builder
		if err := cv.textEnc.WriteInlines(&sb, &hn.Inlines); err != nil {
			return
		}
		hn.Slug = zerostrings.Slugify(sb.String())
	}
	if hn.Slug != "" {
		hn.Fragment = cv.addIdentifier(hn.Slug, hn)
	}
}

func (cv *cleanVisitor) visitLabel(ln *ast.LabelNode) {
	if ln == nil || ln.Name == "" {
		return
	}
	if ln.Slug == "" {
		ln.Slug = zerostrings.Slugify(ln.Name)
	}
	ln.Fragment = cv.addIdentifier(ln.Slug, ln)
}

func (cv *cleanVisitor) addIdentifier(id string, node ast.Node) string {
	if cv.ids == nil {
		cv.ids = map[string]ast.Node{id: node}
		return id
	}
	if n, ok := cv.ids[id]; ok && n != node {
		prefix := id + "-"
		for count := 1; ; count++ {
			newID := prefix + strconv.Itoa(count)
			if n2, ok2 := cv.ids[newID]; !ok2 || n2 == node {
				cv.ids[newID] = node
				return newID
			}
		}
	}
	cv.ids[id] = node
	return id
}
