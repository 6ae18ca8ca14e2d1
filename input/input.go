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

// Package input provides a read-only cursor over zortex source text.
package input

import "unicode/utf8"

// EOS is the rune signalling the end of the source.
const EOS = rune(-1)

// Input is the cursor. Clients may read Src, Pos, and Ch, but must mutate the
// cursor only through its methods.
type Input struct {
	// Src contains the source text to be scanned.
	Src []byte

	// Pos is the byte offset of Ch within Src.
	Pos int

	// Ch is the current lookahead rune, EOS at the end of the source.
	Ch rune

	readPos int // reading position: byte offset after Ch
}

// NewInput creates a new input cursor and reads the first rune.
func NewInput(src []byte) *Input {
	inp := &Input{Src: src}
	inp.Next()
	return inp
}

// Next reads the next rune into Ch and advances the cursor.
func (inp *Input) Next() {
	inp.Pos = inp.readPos
	if inp.readPos >= len(inp.Src) {
		inp.Ch = EOS
		return
	}
	inp.Ch, inp.readPos = inp.decodeRune(inp.readPos)
}

func (inp *Input) decodeRune(pos int) (rune, int) {
	if b := inp.Src[pos]; b < utf8.RuneSelf {
		return rune(b), pos + 1
	}
	r, size := utf8.DecodeRune(inp.Src[pos:])
	return r, pos + size
}

// Peek returns the rune after Ch without advancing the cursor.
func (inp *Input) Peek() rune {
	if inp.readPos >= len(inp.Src) {
		return EOS
	}
	r, _ := inp.decodeRune(inp.readPos)
	return r
}

// SetPos rewinds or advances the cursor to the given byte offset.
func (inp *Input) SetPos(pos int) {
	if pos != inp.Pos {
		inp.readPos = pos
		inp.Next()
	}
}

// Column returns the number of bytes between the start of the current line
// and the cursor. A result of 0 means the cursor sits at a line start.
func (inp *Input) Column() int {
	col := 0
	for i := inp.Pos - 1; i >= 0 && inp.Src[i] != '\n'; i-- {
		col++
	}
	return col
}

// IsEOS returns true if the cursor is at the end of the source.
func (inp *Input) IsEOS() bool { return inp.Ch == EOS }

// EatEOL consumes one line terminator: LF, CR, or CRLF.
func (inp *Input) EatEOL() {
	switch inp.Ch {
	case '\r':
		inp.Next()
		if inp.Ch == '\n' {
			inp.Next()
		}
	case '\n':
		inp.Next()
	}
}

// SkipSpace skips spaces and tabs.
func (inp *Input) SkipSpace() {
	for inp.Ch == ' ' || inp.Ch == '\t' {
		inp.Next()
	}
}

// SkipToEOL advances the cursor to the next line terminator or the end of the
// source, without consuming the terminator.
func (inp *Input) SkipToEOL() {
	for {
		switch inp.Ch {
		case EOS, '\n', '\r':
			return
		}
		inp.Next()
	}
}

// Accept consumes the given string if the input starts with it.
func (inp *Input) Accept(s string) bool {
	pos := inp.Pos
	if s == "" || pos+len(s) > len(inp.Src) {
		return false
	}
	if string(inp.Src[pos:pos+len(s)]) != s {
		return false
	}
	inp.SetPos(pos + len(s))
	return true
}

// ScanLineContent returns the remaining source, without a trailing line
// terminator, and moves the cursor to the end of the source.
func (inp *Input) ScanLineContent() []byte {
	src := inp.Src[inp.Pos:]
	for len(src) > 0 {
		if ch := src[len(src)-1]; ch == '\n' || ch == '\r' {
			src = src[:len(src)-1]
			continue
		}
		break
	}
	inp.SetPos(len(inp.Src))
	return src
}

// IsSpace returns true if the rune is a space or tab.
func IsSpace(ch rune) bool { return ch == ' ' || ch == '\t' }

// IsEOL returns true if the rune is a line terminator.
func IsEOL(ch rune) bool { return ch == '\n' || ch == '\r' }

// IsEOLEOS returns true if the rune is a line terminator or signals the end
// of the source.
func IsEOLEOS(ch rune) bool {
	switch ch {
	case EOS, '\n', '\r':
		return true
	}
	return false
}
