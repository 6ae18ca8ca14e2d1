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

package zortexmark_test

import (
	"strings"
	"testing"

	"github.com/t-wilkinson/zortex/encoder"
	"github.com/t-wilkinson/zortex/input"
	"github.com/t-wilkinson/zortex/parser"
	_ "github.com/t-wilkinson/zortex/parser/zortexmark"
)

// parseAndEncode parses src as zortex markup and returns its syntax tree as
// a symbolic expression.
func parseAndEncode(t *testing.T, src string) string {
	t.Helper()
	bs := parser.ParseBlocks(input.NewInput([]byte(src)), "zortex")
	var sb strings.Builder
	if err := encoder.Create(encoder.EncoderSz).WriteBlocks(&sb, &bs); err != nil {
		t.Fatalf("encoding %q failed: %v", src, err)
	}
	return sb.String()
}

func checkTcs(t *testing.T, tcs []zmkTestCase) {
	t.Helper()
	for i, tc := range tcs {
		if got := parseAndEncode(t, tc.source); got != tc.expect {
			t.Errorf("%d: %q\ngot:      %v\nexpected: %v", i, tc.source, got, tc.expect)
		}
	}
}

type zmkTestCase struct {
	source string
	expect string
}

func TestParagraph(t *testing.T) {
	t.Parallel()
	checkTcs(t, []zmkTestCase{
		{"", "(BLOCK)"},
		{"hello world", `(BLOCK (PARA (TEXT "hello world")))`},
		{"line one\nline two", `(BLOCK (PARA (TEXT "line one") (SOFT) (TEXT "line two")))`},
		{"first\n\nsecond", `(BLOCK (PARA (TEXT "first")) (PARA (TEXT "second")))`},
		{"   \n  ", "(BLOCK)"},
	})
}

func TestHeading(t *testing.T) {
	t.Parallel()
	checkTcs(t, []zmkTestCase{
		{"# Heading", `(BLOCK (HEADING 1 "heading" "heading" (TEXT "Heading")))`},
		{"### Deep One", `(BLOCK (HEADING 3 "deep-one" "deep-one" (TEXT "Deep One")))`},
		{"#NoSpace", `(BLOCK (PARA (TEXT "#NoSpace")))`},
		{
			"# A\ntext",
			`(BLOCK (HEADING 1 "a" "a" (TEXT "A")) (PARA (TEXT "text")))`,
		},
	})
}

func TestLabel(t *testing.T) {
	t.Parallel()
	checkTcs(t, []zmkTestCase{
		{"Resources:", `(BLOCK (LABEL "Resources" "resources" "resources"))`},
		{"some_label:", `(BLOCK (LABEL "some_label" "some-label" "some-label"))`},
		{"not a label:", `(BLOCK (PARA (TEXT "not a label:")))`},
		{"trailing: text", `(BLOCK (PARA (TEXT "trailing: text")))`},
	})
}

func TestFormat(t *testing.T) {
	t.Parallel()
	checkTcs(t, []zmkTestCase{
		{"*emph*", `(BLOCK (PARA (FORMAT-EMPH (TEXT "emph"))))`},
		{"**strong**", `(BLOCK (PARA (FORMAT-STRONG (TEXT "strong"))))`},
		{"***both***", `(BLOCK (PARA (FORMAT-STRONG-EMPH (TEXT "both"))))`},
		{"a *b* c", `(BLOCK (PARA (TEXT "a ") (FORMAT-EMPH (TEXT "b")) (TEXT " c")))`},
		{"*unclosed", `(BLOCK (PARA (TEXT "*unclosed")))`},
		{
			"**a *b* c**",
			`(BLOCK (PARA (FORMAT-STRONG (TEXT "a ") (FORMAT-EMPH (TEXT "b")) (TEXT " c"))))`,
		},
	})
}

func TestLiteral(t *testing.T) {
	t.Parallel()
	checkTcs(t, []zmkTestCase{
		{"`code`", `(BLOCK (PARA (LITERAL-CODE "code")))`},
		{"a `b` c", `(BLOCK (PARA (TEXT "a ") (LITERAL-CODE "b") (TEXT " c")))`},
		{"`unclosed", "(BLOCK (PARA (TEXT \"`unclosed\")))"},
	})
}

func TestLink(t *testing.T) {
	t.Parallel()
	checkTcs(t, []zmkTestCase{
		{
			"[text](https://example.com)",
			`(BLOCK (PARA (LINK "https://example.com" (TEXT "text"))))`,
		},
		{
			"see [*docs*](x)",
			`(BLOCK (PARA (TEXT "see ") (LINK "x" (FORMAT-EMPH (TEXT "docs")))))`,
		},
		{"[no url]", `(BLOCK (PARA (TEXT "[no url]")))`},
		{"[broken](x", `(BLOCK (PARA (TEXT "[broken](x")))`},
	})
}

func TestVerbatim(t *testing.T) {
	t.Parallel()
	checkTcs(t, []zmkTestCase{
		{"```\ncode\n```", `(BLOCK (VERBATIM-CODE "" "code"))`},
		{"```go\nx := 1\n```", `(BLOCK (VERBATIM-CODE "go" "x := 1"))`},
		{"```\na\nb\n```", `(BLOCK (VERBATIM-CODE "" "a\nb"))`},
		{"$$\nE = mc^2\n$$", `(BLOCK (VERBATIM-MATH "" "E = mc^2"))`},
		{"```\nunclosed", `(BLOCK (VERBATIM-CODE "" "unclosed"))`},
	})
}

func TestList(t *testing.T) {
	t.Parallel()
	checkTcs(t, []zmkTestCase{
		{
			"- a\n- b",
			`(BLOCK (UNORDERED (BLOCK (PARA (TEXT "a"))) (BLOCK (PARA (TEXT "b")))))`,
		},
		{
			"1. a\n2. b",
			`(BLOCK (ORDERED (BLOCK (PARA (TEXT "a"))) (BLOCK (PARA (TEXT "b")))))`,
		},
		{
			"- a\n\n- b",
			`(BLOCK (UNORDERED (BLOCK (PARA (TEXT "a"))) (BLOCK (PARA (TEXT "b")))))`,
		},
		{
			"- a\n    - b\n- c",
			`(BLOCK (UNORDERED (BLOCK (PARA (TEXT "a")) (UNORDERED (BLOCK (PARA (TEXT "b"))))) (BLOCK (PARA (TEXT "c")))))`,
		},
		{
			"- a\n    1. b\n    2. c",
			`(BLOCK (UNORDERED (BLOCK (PARA (TEXT "a")) (ORDERED (BLOCK (PARA (TEXT "b"))) (BLOCK (PARA (TEXT "c")))))))`,
		},
		{"-no item", `(BLOCK (PARA (TEXT "-no item")))`},
		{"3.14", `(BLOCK (PARA (TEXT "3.14")))`},
	})
}

func TestListAfterBlock(t *testing.T) {
	t.Parallel()
	checkTcs(t, []zmkTestCase{
		{
			"# H\n- a",
			`(BLOCK (HEADING 1 "h" "h" (TEXT "H")) (UNORDERED (BLOCK (PARA (TEXT "a")))))`,
		},
		{
			"- a\npara",
			`(BLOCK (UNORDERED (BLOCK (PARA (TEXT "a")))) (PARA (TEXT "para")))`,
		},
	})
}

func TestArticle(t *testing.T) {
	t.Parallel()
	testcases := []zmkTestCase{
		{
			"@@Physics\n@science\n@reference\n\nSome text.\n",
			`(ARTICLE "Physics" (TAGS "science" "reference") (BLOCK (PARA (TEXT "Some text."))))`,
		},
		{
			"no header\n",
			`(ARTICLE "Untitled" (TAGS) (BLOCK (PARA (TEXT "no header"))))`,
		},
	}
	for i, tc := range testcases {
		art := parser.ParseArticle(input.NewInput([]byte(tc.source)), "zortex")
		var sb strings.Builder
		if err := encoder.Create(encoder.EncoderSz).WriteArticle(&sb, art); err != nil {
			t.Fatalf("%d: encoding failed: %v", i, err)
		}
		if got := sb.String(); got != tc.expect {
			t.Errorf("%d: %q\ngot:      %v\nexpected: %v", i, tc.source, got, tc.expect)
		}
	}
}
