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

// Package article provides the domain model of a stored zortex article.
package article

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/t-wilkinson/zortex/ast"
	"github.com/t-wilkinson/zortex/input"
	"github.com/t-wilkinson/zortex/parser"
)

// Extension is the file name extension of stored articles.
const Extension = ".zortex"

// Syntax names the markup articles are written in.
const Syntax = "zortex"

// Article is one stored article: its file of origin, the raw content, and
// the parsed structure.
type Article struct {
	Path    string     // File the article was read from, may be empty
	Content []byte     // Normalized raw content
	Name    string     // Article name, from the "@@" header or "Untitled"
	Tags    []string   // Tag names from the header, without their "@" runs
	Blocks  ast.BlockSlice
}

// NameFromPath derives a fallback article name from its file name.
func NameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, Extension)
}

// NormalizeContent brings raw file content into the canonical form the
// parser expects: Unix line endings.
func NormalizeContent(src []byte) []byte {
	src = bytes.ReplaceAll(src, []byte("\r\n"), []byte("\n"))
	return bytes.ReplaceAll(src, []byte("\r"), []byte("\n"))
}

// Tag is one header line: the length of its "@" run and the text after it.
// More "@" characters signal a more important tag; the most important one
// names the article.
type Tag struct {
	Run  int
	Text string
}

// ExtractTags reads the tag header of an article. Empty lines inside the
// header are skipped; the first line that carries no "@" prefix ends it.
// The result is ordered by run length, longest first, and never empty: an
// article without a header gets the single tag "Untitled".
func ExtractTags(lines []string) []Tag {
	var tags []Tag
	for _, line := range lines {
		if len(line) == 0 {
			continue
		}
		run := 0
		for run < len(line) && line[run] == '@' {
			run++
		}
		if run == 0 {
			break
		}
		tags = append(tags, Tag{Run: run, Text: strings.TrimSpace(line[run:])})
	}
	sort.SliceStable(tags, func(i, j int) bool { return tags[i].Run > tags[j].Run })
	if len(tags) == 0 {
		return []Tag{{Run: 0, Text: "Untitled"}}
	}
	return tags
}

// Parse creates an article from raw content. An article without a "@@"
// header line is named by its most important tag; failing that, by its
// file name.
func Parse(path string, src []byte) *Article {
	content := NormalizeContent(src)
	parsed := parser.ParseArticle(input.NewInput(content), Syntax)
	name := parsed.Name
	if name == "Untitled" {
		if tags := ExtractTags(strings.Split(string(content), "\n")); tags[0].Run > 0 && tags[0].Text != "" {
			name = tags[0].Text
		} else if path != "" {
			name = NameFromPath(path)
		}
	}
	return &Article{
		Path:    path,
		Content: content,
		Name:    name,
		Tags:    parsed.Tags,
		Blocks:  parsed.Blocks,
	}
}

// Load reads and parses the article stored in the given file.
func Load(path string) (*Article, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(path, src), nil
}
