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

package indent_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/t-wilkinson/zortex/input"
	"github.com/t-wilkinson/zortex/parser/indent"
)

var bothKinds = indent.MakeTokenSet(indent.Indent, indent.Dedent)

// scanLines polls the scanner at the start of every line of src and returns
// the token produced per line ("-" if the scanner declined). Queued dedents
// are drained at the line where they become due.
func scanLines(t *testing.T, s *indent.Scanner, src string) []string {
	t.Helper()
	inp := input.NewInput([]byte(src))
	var result []string
	for !inp.IsEOS() {
		tokens := ""
		for {
			kind, ok := s.Scan(inp, bothKinds)
			if !ok {
				break
			}
			if tokens != "" {
				tokens += " "
			}
			tokens += kind.String()
		}
		if tokens == "" {
			tokens = "-"
		}
		result = append(result, tokens)
		inp.SkipToEOL()
		inp.EatEOL()
	}
	return result
}

func TestScanWidthSequence(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		src string
		exp string
	}{
		{"a", "-"},
		{"a\nb", "-;-"},
		{"a\n  b\n  c\n    d\ne", "-;INDENT;-;INDENT;DEDENT DEDENT"},
		{"a\n      b\n  c", "-;INDENT;INDENT"},
		{"a\n  b\n\n  c", "-;INDENT;-;-"},
		{"a\n  b\n    c\n  d\na", "-;INDENT;INDENT;DEDENT;DEDENT"},
	}
	for i, tc := range testcases {
		s := indent.NewScanner()
		got := strings.Join(scanLines(t, s, tc.src), ";")
		if got != tc.exp {
			t.Errorf("%d: scan of %q returned %q, expected %q", i, tc.src, got, tc.exp)
		}
	}
}

func TestScanDeclinesOffColumn(t *testing.T) {
	t.Parallel()
	inp := input.NewInput([]byte("word  rest"))
	inp.Next() // now at column 1
	s := indent.NewScanner()
	pos := inp.Pos
	if _, ok := s.Scan(inp, bothKinds); ok {
		t.Error("scan within a line must not produce a token")
	}
	if inp.Pos != pos {
		t.Errorf("scan moved the cursor from %d to %d", pos, inp.Pos)
	}
}

func TestScanDeclineKeepsState(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		src  string
		want indent.TokenSet
	}{
		{"  text", indent.MakeTokenSet(indent.Dedent)}, // deeper, but only dedent wanted
		{"text", bothKinds},                            // unchanged indentation
		{"   \n", bothKinds},                           // blank line
		{"  ", bothKinds},                              // spaces at end of input
		{"text", 0},                                    // nothing requested
	}
	for i, tc := range testcases {
		s := indent.NewScanner()
		inp := input.NewInput([]byte(tc.src))
		levels := s.Levels()
		pending := s.Pending()
		if kind, ok := s.Scan(inp, tc.want); ok {
			t.Errorf("%d: scan of %q produced %v", i, tc.src, kind)
			continue
		}
		if inp.Pos != 0 {
			t.Errorf("%d: declined scan of %q consumed %d bytes", i, tc.src, inp.Pos)
		}
		if !slices.Equal(s.Levels(), levels) || s.Pending() != pending {
			t.Errorf("%d: declined scan of %q mutated state to %v/%d",
				i, tc.src, s.Levels(), s.Pending())
		}
	}
}

func TestScanStackInvariants(t *testing.T) {
	t.Parallel()
	src := "a\n  b\n      c\n   d\n\n        e\nf\nq\n    r\n  s\nt"
	s := indent.NewScanner()
	inp := input.NewInput([]byte(src))
	for !inp.IsEOS() {
		for {
			if _, ok := s.Scan(inp, bothKinds); !ok {
				break
			}
			levels := s.Levels()
			if len(levels) == 0 {
				t.Fatal("stack must never become empty")
			}
			if levels[0] != 0 {
				t.Fatalf("stack root is %d, expected 0", levels[0])
			}
			for i := 1; i < len(levels); i++ {
				if levels[i-1] >= levels[i] {
					t.Fatalf("stack %v is not strictly increasing", levels)
				}
			}
		}
		inp.SkipToEOL()
		inp.EatEOL()
	}
}

func TestScanDedentDraining(t *testing.T) {
	t.Parallel()
	s := indent.NewScanner()
	inp := input.NewInput([]byte("a\n  b\n    c\n      d\ne"))
	nextLine(inp)
	for range 3 { // up to {0, 2, 4, 6}
		mustScan(t, s, inp, indent.Indent)
		nextLine(inp)
	}
	if depth := s.Depth(); depth != 4 {
		t.Fatalf("depth is %d, expected 4", depth)
	}

	// The line at width 0 closes three levels: one dedent per call.
	mustScan(t, s, inp, indent.Dedent)
	if s.Pending() != 2 || s.Depth() != 3 {
		t.Errorf("after first dedent: pending %d, depth %d", s.Pending(), s.Depth())
	}
	mustScan(t, s, inp, indent.Dedent)
	if s.Pending() != 1 || s.Depth() != 2 {
		t.Errorf("after second dedent: pending %d, depth %d", s.Pending(), s.Depth())
	}
	mustScan(t, s, inp, indent.Dedent)
	if s.Pending() != 0 || s.Depth() != 1 {
		t.Errorf("after third dedent: pending %d, depth %d", s.Pending(), s.Depth())
	}
	if _, ok := s.Scan(inp, bothKinds); ok {
		t.Error("no further token expected after draining")
	}
}

func nextLine(inp *input.Input) {
	inp.SkipToEOL()
	inp.EatEOL()
}

func mustScan(t *testing.T, s *indent.Scanner, inp *input.Input, exp indent.TokenKind) {
	t.Helper()
	kind, ok := s.Scan(inp, bothKinds)
	if !ok {
		t.Fatalf("expected %v token, scanner declined", exp)
	}
	if kind != exp {
		t.Fatalf("expected %v token, got %v", exp, kind)
	}
}

func TestScanSyntheticLevel(t *testing.T) {
	t.Parallel()
	// Build the stack {0, 2, 8}, then measure a line at width 5. The width
	// matches no open level: a synthetic level is inserted and the deeper
	// level 8 is dropped.
	s := indent.NewScanner()
	inp := input.NewInput([]byte("a\n  b\n        c\n     d"))
	nextLine(inp)
	mustScan(t, s, inp, indent.Indent)
	nextLine(inp)
	mustScan(t, s, inp, indent.Indent)
	nextLine(inp)
	if levels := s.Levels(); !slices.Equal(levels, []int{0, 2, 8}) {
		t.Fatalf("stack is %v, expected [0 2 8]", levels)
	}
	mustScan(t, s, inp, indent.Indent)
	if levels := s.Levels(); !slices.Equal(levels, []int{0, 2, 5}) {
		t.Errorf("stack is %v, expected [0 2 5]", levels)
	}
	if s.Pending() != 0 {
		t.Errorf("pending is %d, expected 0", s.Pending())
	}
}

func TestScanDepthCeiling(t *testing.T) {
	t.Parallel()
	var sb strings.Builder
	for i := range indent.MaxDepth + 8 {
		sb.WriteString(strings.Repeat(" ", i))
		sb.WriteString("x\n")
	}
	s := indent.NewScanner()
	inp := input.NewInput([]byte(sb.String()))
	pushed := 0
	for !inp.IsEOS() {
		if _, ok := s.Scan(inp, indent.MakeTokenSet(indent.Indent)); ok {
			pushed++
		}
		inp.SkipToEOL()
		inp.EatEOL()
	}
	if pushed != indent.MaxDepth-1 {
		t.Errorf("pushed %d levels, expected %d", pushed, indent.MaxDepth-1)
	}
	if s.Depth() != indent.MaxDepth {
		t.Errorf("depth is %d, expected %d", s.Depth(), indent.MaxDepth)
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	t.Parallel()
	s := indent.NewScanner()
	inp := input.NewInput([]byte("a\n   b\n       c"))
	nextLine(inp)
	mustScan(t, s, inp, indent.Indent)
	nextLine(inp)
	mustScan(t, s, inp, indent.Indent)
	if levels := s.Levels(); !slices.Equal(levels, []int{0, 3, 7}) {
		t.Fatalf("stack is %v, expected [0 3 7]", levels)
	}

	buf := make([]byte, s.SerializedLen())
	if n := s.Serialize(buf); n != len(buf) {
		t.Fatalf("serialize wrote %d bytes, expected %d", n, len(buf))
	}
	s2 := indent.NewScanner()
	s2.Deserialize(buf)
	if !slices.Equal(s2.Levels(), s.Levels()) || s2.Pending() != s.Pending() {
		t.Errorf("round trip changed state to %v/%d, expected %v/%d",
			s2.Levels(), s2.Pending(), s.Levels(), s.Pending())
	}
}

func TestSerializeShortBuffer(t *testing.T) {
	t.Parallel()
	s := indent.NewScanner()
	if n := s.Serialize(make([]byte, 3)); n != 0 {
		t.Errorf("serialize into a short buffer wrote %d bytes", n)
	}
}

func TestDeserializeMalformed(t *testing.T) {
	t.Parallel()
	good := indent.NewScanner()
	inp := input.NewInput([]byte("a\n  b"))
	nextLine(inp)
	mustScan(t, good, inp, indent.Indent)
	buf := make([]byte, good.SerializedLen())
	good.Serialize(buf)

	testcases := []struct {
		name string
		buf  []byte
	}{
		{"nil", nil},
		{"too short", buf[:3]},
		{"zero depth", []byte{0, 0, 0, 0}},
		{"over-deep", []byte{255, 255, 0, 0}},
		{"truncated levels", buf[:len(buf)-2]},
		{"pending exceeds levels", []byte{1, 0, 5, 0, 0, 0}},
		{"nonzero root level", []byte{1, 0, 0, 0, 7, 0}},
		{"non-increasing levels", []byte{3, 0, 0, 0, 0, 0, 4, 0, 2, 0}},
		{"duplicate level", []byte{2, 0, 0, 0, 0, 0, 0, 0}},
	}
	for _, tc := range testcases {
		s := indent.NewScanner()
		s.Deserialize(buf)
		s.Deserialize(tc.buf)
		if levels := s.Levels(); !slices.Equal(levels, []int{0}) || s.Pending() != 0 {
			t.Errorf("%s: state is %v/%d, expected initial [0]/0", tc.name, levels, s.Pending())
		}
	}
}

// Snapshots that pass the shape checks but encode impossible states must
// not be trusted: scanning after accepting them would walk off the stack.
func TestDeserializeInconsistent(t *testing.T) {
	t.Parallel()

	s := indent.NewScanner()
	s.Deserialize([]byte{1, 0, 5, 0, 0, 0})
	inp := input.NewInput([]byte("x"))
	for range 6 {
		s.Scan(inp, indent.MakeTokenSet(indent.Dedent))
		if depth := s.Depth(); depth < 1 {
			t.Fatalf("stack emptied, depth is %d", depth)
		}
	}

	s.Deserialize([]byte{1, 0, 0, 0, 7, 0})
	inp = input.NewInput([]byte("x"))
	s.Scan(inp, indent.MakeTokenSet(indent.Indent, indent.Dedent))
	if levels := s.Levels(); levels[0] != 0 {
		t.Errorf("root level is %d, expected 0", levels[0])
	}
}

func TestResumeMidDrain(t *testing.T) {
	t.Parallel()
	s := indent.NewScanner()
	inp := input.NewInput([]byte("a\n  b\n    c\nd"))
	nextLine(inp)
	mustScan(t, s, inp, indent.Indent)
	nextLine(inp)
	mustScan(t, s, inp, indent.Indent)
	nextLine(inp)
	mustScan(t, s, inp, indent.Dedent)
	if s.Pending() != 1 {
		t.Fatalf("pending is %d, expected 1", s.Pending())
	}

	// Suspend and resume between the two dedents.
	buf := make([]byte, s.SerializedLen())
	s.Serialize(buf)
	resumed := indent.NewScanner()
	resumed.Deserialize(buf)

	mustScan(t, resumed, inp, indent.Dedent)
	if resumed.Pending() != 0 || resumed.Depth() != 1 {
		t.Errorf("after resume: pending %d, depth %d", resumed.Pending(), resumed.Depth())
	}
}

func TestReset(t *testing.T) {
	t.Parallel()
	s := indent.NewScanner()
	inp := input.NewInput([]byte("a\n  b"))
	nextLine(inp)
	mustScan(t, s, inp, indent.Indent)
	s.Reset()
	if levels := s.Levels(); !slices.Equal(levels, []int{0}) || s.Pending() != 0 {
		t.Errorf("state after reset is %v/%d, expected [0]/0", levels, s.Pending())
	}
}
