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

// Package indent provides the indentation scanner for the zortex parser.
//
// The scanner augments the context-free zortex grammar with the synthetic
// tokens Indent and Dedent, similar to Python's off-side rule. It owns a
// stack of previously seen indentation widths and is asked by the parser,
// at positions where the grammar could accept such a token, whether the
// current line starts a deeper, a shallower, or an unchanged block level.
// Each call emits at most one token; if a line closes several levels at
// once, the missing Dedent tokens are queued and drained one per call.
package indent

import (
	"encoding/binary"

	"github.com/t-wilkinson/zortex/input"
)

// TokenKind identifies the synthetic tokens the scanner can produce.
type TokenKind uint8

// Constants for TokenKind.
const (
	Indent TokenKind = iota // Entry into a deeper block level
	Dedent                  // Exit from a block level
)

func (k TokenKind) String() string {
	if k == Indent {
		return "INDENT"
	}
	return "DEDENT"
}

// TokenSet is the set of token kinds the parser is willing to accept.
type TokenSet uint8

// MakeTokenSet creates a token set from the given kinds.
func MakeTokenSet(kinds ...TokenKind) TokenSet {
	var ts TokenSet
	for _, kind := range kinds {
		ts |= 1 << kind
	}
	return ts
}

// Contains returns true if the given kind is part of the set.
func (ts TokenSet) Contains(kind TokenKind) bool { return ts&(1<<kind) != 0 }

// MaxDepth is the maximum reasonable nesting depth for indented blocks.
// A scan that would push beyond it declines instead of overflowing.
const MaxDepth = 128

// maxWidth bounds a single indentation width so that every reachable state
// survives the uint16 wire encoding.
const maxWidth = 1<<16 - 1

// Scanner holds the indentation state of one parse session. It must not be
// shared between two parses; use Reset before reusing it for another one.
//
// The zero value is not ready for use, call NewScanner.
type Scanner struct {
	levels  []int // Stack of open indentation widths, levels[0] is always 0
	pending int   // Number of Dedent tokens still owed to the parser
}

// NewScanner creates a scanner with the initial single-level stack.
func NewScanner() *Scanner {
	s := &Scanner{levels: make([]int, 1, 8)}
	s.Reset()
	return s
}

// Reset restores the initial state: one open level of width zero, no
// pending dedents.
func (s *Scanner) Reset() {
	s.levels = append(s.levels[:0], 0)
	s.pending = 0
}

// Depth returns the number of open indentation levels.
func (s *Scanner) Depth() int { return len(s.levels) }

// Pending returns the number of Dedent tokens still owed to the parser.
func (s *Scanner) Pending() int { return s.pending }

// Levels returns a copy of the stack of open indentation widths.
func (s *Scanner) Levels() []int {
	result := make([]int, len(s.levels))
	copy(result, s.levels)
	return result
}

// Scan decides whether the current input position changes the indentation
// level and returns the corresponding token. The second result reports
// whether a token was produced. If the scanner declines, the cursor and
// the persisted state are left exactly as they were, so that other
// tokenization paths can try.
func (s *Scanner) Scan(inp *input.Input, want TokenSet) (TokenKind, bool) {
	// Owed dedents are delivered before any new measurement, one per call.
	if s.pending > 0 {
		if !want.Contains(Dedent) {
			return 0, false
		}
		s.pending--
		s.levels = s.levels[:len(s.levels)-1]
		return Dedent, true
	}

	// Indentation is only meaningful at the start of a line.
	if inp.Column() != 0 {
		return 0, false
	}

	wantIndent := want.Contains(Indent)
	wantDedent := want.Contains(Dedent)
	if !wantIndent && !wantDedent {
		return 0, false
	}

	pos := inp.Pos
	width := 0
	for inp.Ch == ' ' {
		if width < maxWidth {
			width++
		}
		inp.Next()
	}

	// A blank line never perturbs the stack; other grammar rules decide
	// what to do with it.
	if input.IsEOLEOS(inp.Ch) {
		inp.SetPos(pos)
		return 0, false
	}

	current := s.levels[len(s.levels)-1]
	if width > current {
		if !wantIndent || len(s.levels) == MaxDepth {
			inp.SetPos(pos)
			return 0, false
		}
		s.levels = append(s.levels, width)
		return Indent, true
	}

	if width < current {
		// Find the highest level that stays open.
		target := len(s.levels) - 1
		for s.levels[target] > width {
			target--
		}

		if s.levels[target] != width {
			// The width matches no open level. Insert a synthetic level
			// above the target to keep the stack well-formed and report it
			// as a fresh indent. Levels deeper than the new one are gone.
			if !wantIndent || len(s.levels) == MaxDepth {
				inp.SetPos(pos)
				return 0, false
			}
			s.levels = append(s.levels[:target+1], width)
			return Indent, true
		}

		// One pop is reported right now, the remaining ones are queued and
		// drained by the calls that follow.
		if !wantDedent {
			inp.SetPos(pos)
			return 0, false
		}
		s.pending = len(s.levels) - target - 2
		s.levels = s.levels[:len(s.levels)-1]
		return Dedent, true
	}

	// Unchanged indentation.
	inp.SetPos(pos)
	return 0, false
}

// SerializedLen returns the number of bytes Serialize will write for the
// current state.
func (s *Scanner) SerializedLen() int { return 2 + 2 + 2*len(s.levels) }

// Serialize encodes the state into the given buffer and returns the number
// of bytes written: the level count, the pending dedent count, then each
// level width in stack order, all as little-endian uint16 values. It writes
// nothing and returns 0 if the buffer is too short.
func (s *Scanner) Serialize(buf []byte) int {
	size := s.SerializedLen()
	if len(buf) < size {
		return 0
	}
	binary.LittleEndian.PutUint16(buf[0:], uint16(len(s.levels)))
	binary.LittleEndian.PutUint16(buf[2:], uint16(s.pending))
	for i, width := range s.levels {
		binary.LittleEndian.PutUint16(buf[4+2*i:], uint16(width))
	}
	return size
}

// Deserialize reconstructs the state from a buffer written by Serialize.
// A corrupted snapshot, one that is too short, declares a depth over
// MaxDepth, truncates the level list, or encodes a state no sequence of
// scans can reach, resets the scanner to the initial state instead of
// trusting it.
func (s *Scanner) Deserialize(buf []byte) {
	if len(buf) < 4 {
		s.Reset()
		return
	}
	depth := int(binary.LittleEndian.Uint16(buf[0:]))
	pending := int(binary.LittleEndian.Uint16(buf[2:]))
	if depth == 0 || depth > MaxDepth || len(buf) < 4+2*depth || pending >= depth {
		s.Reset()
		return
	}
	levels := s.levels[:0]
	for i := range depth {
		width := int(binary.LittleEndian.Uint16(buf[4+2*i:]))
		// The stack must grow strictly from the root level zero; anything
		// else cannot have come from Serialize.
		if (i == 0 && width != 0) || (i > 0 && width <= levels[i-1]) {
			s.Reset()
			return
		}
		levels = append(levels, width)
	}
	s.levels = levels
	s.pending = pending
}
