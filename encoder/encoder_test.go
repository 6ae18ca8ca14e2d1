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

package encoder_test

import (
	"fmt"
	"strings"
	"testing"

	"t73f.de/r/sx/sxreader"

	"github.com/t-wilkinson/zortex/ast"
	"github.com/t-wilkinson/zortex/encoder"
	"github.com/t-wilkinson/zortex/input"
	"github.com/t-wilkinson/zortex/parser"

	_ "github.com/t-wilkinson/zortex/parser/zortexmark" // Allow to use zortex parser.
)

type testCase struct {
	descr  string
	zx     string
	expect expectMap
}

type expectMap map[encoder.Enum]string

// useZx marks an expectation that the zortex encoder reproduces the source.
const useZx = "\000"

var testCases = []testCase{
	{
		descr: "empty content",
		zx:    "",
		expect: expectMap{
			encoder.EncoderSz:     "(BLOCK)",
			encoder.EncoderText:   "",
			encoder.EncoderZortex: "",
		},
	},
	{
		descr: "simple paragraph",
		zx:    "Hello, world\n",
		expect: expectMap{
			encoder.EncoderSz:     `(BLOCK (PARA (TEXT "Hello, world")))`,
			encoder.EncoderText:   "Hello, world",
			encoder.EncoderZortex: "Hello, world\n",
		},
	},
	{
		descr: "heading with formatting",
		zx:    "## Basics of *zortex*\n",
		expect: expectMap{
			encoder.EncoderSz:     `(BLOCK (HEADING 2 "basics-of-zortex" "basics-of-zortex" (TEXT "Basics of ") (FORMAT-EMPH (TEXT "zortex"))))`,
			encoder.EncoderText:   "Basics of zortex",
			encoder.EncoderZortex: useZx,
		},
	},
	{
		descr: "label anchor",
		zx:    "Resources:\n",
		expect: expectMap{
			encoder.EncoderSz:     `(BLOCK (LABEL "Resources" "resources" "resources"))`,
			encoder.EncoderText:   "Resources",
			encoder.EncoderZortex: useZx,
		},
	},
	{
		descr: "code block",
		zx:    "```go\nx := 1\n```\n",
		expect: expectMap{
			encoder.EncoderSz:     `(BLOCK (VERBATIM-CODE "go" "x := 1"))`,
			encoder.EncoderText:   "x := 1",
			encoder.EncoderZortex: useZx,
		},
	},
	{
		descr: "math block",
		zx:    "$$\ne^{i\\pi} = -1\n$$\n",
		expect: expectMap{
			encoder.EncoderSz:     `(BLOCK (VERBATIM-MATH "" "e^{i\\pi} = -1"))`,
			encoder.EncoderText:   "e^{i\\pi} = -1",
			encoder.EncoderZortex: useZx,
		},
	},
	{
		descr: "nested list",
		zx:    "- a\n    - b\n- c\n",
		expect: expectMap{
			encoder.EncoderSz:     `(BLOCK (UNORDERED (BLOCK (PARA (TEXT "a")) (UNORDERED (BLOCK (PARA (TEXT "b"))))) (BLOCK (PARA (TEXT "c")))))`,
			encoder.EncoderText:   "a\nb\nc",
			encoder.EncoderZortex: useZx,
		},
	},
	{
		descr: "ordered list",
		zx:    "1. first\n2. second\n",
		expect: expectMap{
			encoder.EncoderSz:     `(BLOCK (ORDERED (BLOCK (PARA (TEXT "first"))) (BLOCK (PARA (TEXT "second")))))`,
			encoder.EncoderText:   "first\nsecond",
			encoder.EncoderZortex: useZx,
		},
	},
	{
		descr: "inline spans",
		zx:    "a **b** `c` [d](u)\n",
		expect: expectMap{
			encoder.EncoderSz:     `(BLOCK (PARA (TEXT "a ") (FORMAT-STRONG (TEXT "b")) (TEXT " ") (LITERAL-CODE "c") (TEXT " ") (LINK "u" (TEXT "d"))))`,
			encoder.EncoderText:   "a b c d",
			encoder.EncoderZortex: useZx,
		},
	},
}

func TestEncoder(t *testing.T) {
	for testNum, tc := range testCases {
		inp := input.NewInput([]byte(tc.zx))
		bs := parser.ParseBlocks(inp, "zortex")
		checkEncodings(t, testNum, bs, tc.descr, tc.expect, tc.zx)
		checkSzReadable(t, testNum, bs, tc.descr)
	}
}

func checkEncodings(t *testing.T, testNum int, bs ast.BlockSlice, descr string, expected expectMap, zxDefault string) {
	t.Helper()
	for enc, exp := range expected {
		encdr := encoder.Create(enc)
		var sb strings.Builder
		if err := encdr.WriteBlocks(&sb, &bs); err != nil {
			t.Errorf("Test #%d (%s)\nEncoder:  %s\nError:    %v", testNum, descr, enc, err)
			continue
		}
		if exp == useZx {
			exp = zxDefault
		}
		if got := sb.String(); got != exp {
			t.Errorf("Test #%d (%s)\nEncoder:  %s\nExpected: %q\nGot:      %q",
				testNum, descr, enc, exp, got)
		}
	}
}

// checkSzReadable ensures the sz encoding is a well-formed symbolic
// expression.
func checkSzReadable(t *testing.T, testNum int, bs ast.BlockSlice, descr string) {
	t.Helper()
	var sb strings.Builder
	if err := encoder.Create(encoder.EncoderSz).WriteBlocks(&sb, &bs); err != nil {
		t.Fatalf("Test #%d (%s): sz encoding failed: %v", testNum, descr, err)
	}
	rd := sxreader.MakeReader(strings.NewReader(sb.String()))
	if _, err := rd.Read(); err != nil {
		t.Errorf("Test #%d (%s): sz output %q is not readable: %v", testNum, descr, sb.String(), err)
	}
}

// TestWriteInlines checks the inline entry points of the encoders, fed with
// the first paragraph of a parsed article body.
func TestWriteInlines(t *testing.T) {
	bs := parser.ParseBlocks(input.NewInput([]byte("# Head\nfirst *para* text\n\nsecond\n")), "zortex")
	ins := bs.FirstParagraphInlines()
	if ins != nil {
		t.Errorf("expected no inlines for a leading heading, got %v", ins)
	}
	ins = bs[1:].FirstParagraphInlines()
	if ins == nil {
		t.Fatal("expected the inlines of the first paragraph")
	}
	expect := expectMap{
		encoder.EncoderSz:     `(INLINE (TEXT "first ") (FORMAT-EMPH (TEXT "para")) (TEXT " text"))`,
		encoder.EncoderText:   "first para text",
		encoder.EncoderZortex: "first *para* text",
	}
	for enc, exp := range expect {
		var sb strings.Builder
		if err := encoder.Create(enc).WriteInlines(&sb, &ins); err != nil {
			t.Errorf("Encoder %s: %v", enc, err)
			continue
		}
		if got := sb.String(); got != exp {
			t.Errorf("Encoder %s\nExpected: %q\nGot:      %q", enc, exp, got)
		}
	}
	words := ast.CreateInlineSliceFromWords("three", "small", "words")
	var sb strings.Builder
	if err := encoder.Create(encoder.EncoderText).WriteInlines(&sb, &words); err != nil {
		t.Fatal(err)
	}
	if got := sb.String(); got != "three small words" {
		t.Errorf("expected %q, got %q", "three small words", got)
	}
}

func TestEnumNames(t *testing.T) {
	for _, enc := range encoder.GetEncodings() {
		name := fmt.Sprint(enc)
		if back := encoder.ParseEnum(name); back != enc {
			t.Errorf("Encoding %v does not round-trip through %q", enc, name)
		}
	}
	if got := encoder.ParseEnum("no such encoding"); got != encoder.EncoderUnknown {
		t.Errorf("expected unknown encoding, got %v", got)
	}
}

// TestZortexRoundTrip re-parses the zortex encoding and checks that the sz
// form is stable.
func TestZortexRoundTrip(t *testing.T) {
	for testNum, tc := range testCases {
		bs := parser.ParseBlocks(input.NewInput([]byte(tc.zx)), "zortex")
		var first strings.Builder
		if err := encoder.Create(encoder.EncoderZortex).WriteBlocks(&first, &bs); err != nil {
			t.Fatalf("Test #%d: zortex encoding failed: %v", testNum, err)
		}
		bs2 := parser.ParseBlocks(input.NewInput([]byte(first.String())), "zortex")
		var szA, szB strings.Builder
		_ = encoder.Create(encoder.EncoderSz).WriteBlocks(&szA, &bs)
		_ = encoder.Create(encoder.EncoderSz).WriteBlocks(&szB, &bs2)
		if szA.String() != szB.String() {
			t.Errorf("Test #%d (%s) is not stable\nfirst:  %v\nsecond: %v",
				testNum, tc.descr, szA.String(), szB.String())
		}
	}
}
